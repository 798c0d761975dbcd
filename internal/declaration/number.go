package declaration

import (
	"fmt"
	"regexp"
)

// SequenceFunc hands out the next filing sequence number for a year. Values
// must never repeat within a year; the storage layer backs this with a
// per-year counter.
type SequenceFunc func(year int) (int64, error)

var filingNumberPattern = regexp.MustCompile(`^DECL-\d{4}-\d{6,}$`)

// FormatFilingNumber renders the display code DECL-<year>-<sequence>. The
// sequence is zero padded to six digits and widens past 999999.
func FormatFilingNumber(year int, seq int64) string {
	return fmt.Sprintf("DECL-%04d-%06d", year, seq)
}

// ValidFilingNumber reports whether s looks like a filing number.
func ValidFilingNumber(s string) bool {
	return filingNumberPattern.MatchString(s)
}
