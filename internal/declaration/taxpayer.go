package declaration

import (
	"fmt"
	"strings"
)

// TaxpayerIDLength is the length of a national taxpayer number (RNC).
const TaxpayerIDLength = 9

// NormalizeTaxpayerID strips surrounding whitespace and the hyphens commonly
// used when the number is printed (1-01-12345-6), then checks the format.
func NormalizeTaxpayerID(raw string) (string, error) {
	id := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	if id == "" {
		return "", fmt.Errorf("%w: taxpayer id is required", ErrInvalidInput)
	}
	if len(id) != TaxpayerIDLength || !allDigits(id) {
		return "", fmt.Errorf("%w: taxpayer id must be %d digits", ErrInvalidInput, TaxpayerIDLength)
	}
	return id, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
