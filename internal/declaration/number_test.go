package declaration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilingNumber(t *testing.T) {
	assert.Equal(t, "DECL-2025-000001", FormatFilingNumber(2025, 1))
	assert.Equal(t, "DECL-2025-1234567", FormatFilingNumber(2025, 1234567))
	assert.True(t, ValidFilingNumber("DECL-2025-000001"))
	assert.True(t, ValidFilingNumber(FormatFilingNumber(2025, 1234567)))
	assert.False(t, ValidFilingNumber("DECL-25-000001"))
	assert.False(t, ValidFilingNumber("INV-20250101-00001"))
}
