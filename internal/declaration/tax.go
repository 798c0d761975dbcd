package declaration

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxType is the closed set of taxes a declaration can be filed for.
// The numeric values are the codes accepted on the wire.
type TaxType int

const (
	TaxTypeIncome TaxType = 1 // income tax, progressive brackets
	TaxTypeVAT    TaxType = 2 // value added equivalent, flat rate
	TaxTypeExcise TaxType = 3 // excise, flat rate
)

// Income tax brackets. Each bracket taxes the excess over its floor at its
// rate and adds the fixed amount accumulated by the brackets below it.
var (
	incomeExemptCeiling = decimal.NewFromInt(416220)
	incomeSecondCeiling = decimal.NewFromInt(624329)
	incomeThirdCeiling  = decimal.NewFromInt(867123)

	incomeSecondRate = decimal.RequireFromString("0.15")
	incomeThirdRate  = decimal.RequireFromString("0.20")
	incomeTopRate    = decimal.RequireFromString("0.25")

	incomeThirdFixed = decimal.NewFromInt(31216)
	incomeTopFixed   = decimal.NewFromInt(79775)
)

// Flat rates.
var (
	vatRate    = decimal.RequireFromString("0.18")
	exciseRate = decimal.RequireFromString("0.10")
)

const moneyPlaces = 2

var taxTypeNames = map[TaxType]string{
	TaxTypeIncome: "INCOME",
	TaxTypeVAT:    "VAT",
	TaxTypeExcise: "EXCISE",
}

// ParseTaxType converts a wire code (1, 2, 3) into a TaxType.
func ParseTaxType(code int) (TaxType, error) {
	t := TaxType(code)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: unknown tax type code %d", ErrInvalidInput, code)
	}
	return t, nil
}

// ParseTaxTypeName converts a name such as "VAT" into a TaxType.
func ParseTaxTypeName(name string) (TaxType, error) {
	for t, n := range taxTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown tax type %q", ErrInvalidInput, name)
}

func (t TaxType) Valid() bool {
	_, ok := taxTypeNames[t]
	return ok
}

func (t TaxType) Code() int { return int(t) }

func (t TaxType) String() string {
	if n, ok := taxTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TaxType(%d)", int(t))
}

// Tax returns the liability for a taxable base, rounded to cents.
// A base of zero or less is never taxed.
func (t TaxType) Tax(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	var tax decimal.Decimal
	switch t {
	case TaxTypeIncome:
		tax = incomeTax(base)
	case TaxTypeVAT:
		tax = base.Mul(vatRate)
	case TaxTypeExcise:
		tax = base.Mul(exciseRate)
	default:
		return decimal.Zero
	}
	return tax.Round(moneyPlaces)
}

func incomeTax(base decimal.Decimal) decimal.Decimal {
	switch {
	case base.LessThanOrEqual(incomeExemptCeiling):
		return decimal.Zero
	case base.LessThanOrEqual(incomeSecondCeiling):
		return base.Sub(incomeExemptCeiling).Mul(incomeSecondRate)
	case base.LessThanOrEqual(incomeThirdCeiling):
		return incomeThirdFixed.Add(base.Sub(incomeSecondCeiling).Mul(incomeThirdRate))
	default:
		return incomeTopFixed.Add(base.Sub(incomeThirdCeiling).Mul(incomeTopRate))
	}
}
