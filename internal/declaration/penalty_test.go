package declaration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueDate(t *testing.T) {
	cases := []struct {
		period Period
		want   time.Time
	}{
		{Period{2025, time.January}, time.Date(2025, time.February, 20, 23, 59, 59, 0, time.UTC)},
		{Period{2025, time.December}, time.Date(2026, time.January, 20, 23, 59, 59, 0, time.UTC)},
		{Period{2024, time.February}, time.Date(2024, time.March, 20, 23, 59, 59, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.period.String(), func(t *testing.T) {
			for _, tt := range []TaxType{TaxTypeIncome, TaxTypeVAT, TaxTypeExcise} {
				assert.Equal(t, tc.want, DueDate(tc.period, tt))
			}
		})
	}
}

func TestDaysAndMonthsLate(t *testing.T) {
	due := time.Date(2025, time.March, 20, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, 0, DaysLate(due, due))
	assert.Equal(t, 0, DaysLate(due, due.Add(-time.Hour)))
	assert.Equal(t, 0, DaysLate(due, due.Add(23*time.Hour)))
	assert.Equal(t, 1, DaysLate(due, due.Add(24*time.Hour)))
	assert.Equal(t, 45, DaysLate(due, due.Add(45*24*time.Hour+time.Hour)))

	assert.Equal(t, 0, MonthsLate(0))
	assert.Equal(t, 1, MonthsLate(1))
	assert.Equal(t, 1, MonthsLate(30))
	assert.Equal(t, 2, MonthsLate(31))
	assert.Equal(t, 2, MonthsLate(45))
	assert.Equal(t, 4, MonthsLate(120))
}

func TestPenaltyFor(t *testing.T) {
	due := time.Date(2025, time.March, 20, 23, 59, 59, 0, time.UTC)
	tax := dec("10000")

	cases := []struct {
		name    string
		filedAt time.Time
		want    string
	}{
		{"on the deadline", due, "0"},
		{"early", due.AddDate(0, -1, 0), "0"},
		{"one second late", due.Add(time.Second), "1000"},
		{"one day late", due.Add(24 * time.Hour), "1400"},
		{"thirty days late", due.Add(30 * 24 * time.Hour), "1400"},
		{"forty five days late", due.Add(45 * 24 * time.Hour), "1800"},
		{"a year late", due.Add(365 * 24 * time.Hour), "6200"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PenaltyFor(tax, due, tc.filedAt)
			assert.True(t, dec(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}

	assert.True(t, PenaltyFor(dec("0"), due, due.AddDate(1, 0, 0)).IsZero())
	assert.True(t, dec("0.15").Equal(PenaltyFor(dec("1.07"), due, due.Add(24*time.Hour))))
}

func TestPeriod(t *testing.T) {
	p, err := ParsePeriod("2025-07")
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2025, Month: time.July}, p)
	assert.Equal(t, "2025-07", p.String())

	p, err = ParsePeriod(" 2024-11-30 ")
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2024, Month: time.November}, p)

	for _, s := range []string{"", "2025", "2025-13", "07-2025", "2025/07", "0999-01"} {
		_, err := ParsePeriod(s)
		assert.ErrorIs(t, err, ErrInvalidInput, s)
	}

	_, err = NewPeriod(2025, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	loc := time.FixedZone("AST", -4*3600)
	assert.Equal(t, Period{Year: 2025, Month: time.February}, PeriodOf(time.Date(2025, time.January, 31, 22, 0, 0, 0, loc)))
	assert.True(t, Period{}.IsZero())
}
