package declaration

import (
	"fmt"
	"strings"
	"time"
)

// Period is the calendar month a declaration reports on.
type Period struct {
	Year  int
	Month time.Month
}

const (
	periodLayout     = "2006-01"
	periodDateLayout = "2006-01-02"
)

// NewPeriod validates a year/month pair.
func NewPeriod(year int, month time.Month) (Period, error) {
	if year < 1900 || year > 9999 {
		return Period{}, fmt.Errorf("%w: period year %d out of range", ErrInvalidInput, year)
	}
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("%w: period month %d out of range", ErrInvalidInput, month)
	}
	return Period{Year: year, Month: month}, nil
}

// ParsePeriod accepts "YYYY-MM" or a full "YYYY-MM-DD" date whose day is ignored.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	layout := periodLayout
	if len(s) == len(periodDateLayout) {
		layout = periodDateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: period %q must be formatted as YYYY-MM", ErrInvalidInput, s)
	}
	return NewPeriod(t.Year(), t.Month())
}

// PeriodOf returns the period containing t (in UTC).
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) IsZero() bool { return p.Year == 0 && p.Month == 0 }

// Start is the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (p Period) String() string {
	return p.Start().Format(periodLayout)
}
