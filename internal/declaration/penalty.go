package declaration

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DueDay is the day of the month following the period on which filing closes.
	DueDay = 20

	daysPerPenaltyMonth = 30
)

var (
	lateSurchargeRate    = decimal.RequireFromString("0.10")
	monthlySurchargeRate = decimal.RequireFromString("0.04")
)

// DueDate is the last second of the 20th day of the month after the period, UTC.
// The deadline is the same for every tax type.
func DueDate(p Period, _ TaxType) time.Time {
	next := p.Start().AddDate(0, 1, 0)
	return time.Date(next.Year(), next.Month(), DueDay, 23, 59, 59, 0, time.UTC)
}

// DaysLate is the number of whole days filedAt falls after due, or 0 when on time.
func DaysLate(due, filedAt time.Time) int {
	if !filedAt.After(due) {
		return 0
	}
	return int(filedAt.Sub(due) / (24 * time.Hour))
}

// MonthsLate rounds days late up to 30-day months.
func MonthsLate(daysLate int) int {
	if daysLate <= 0 {
		return 0
	}
	return (daysLate + daysPerPenaltyMonth - 1) / daysPerPenaltyMonth
}

// PenaltyFor is the late filing surcharge: a flat 10% of the tax plus 4% of
// the tax per started month late (linear). Filing on or before due costs nothing.
func PenaltyFor(tax decimal.Decimal, due, filedAt time.Time) decimal.Decimal {
	if !filedAt.After(due) {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(MonthsLate(DaysLate(due, filedAt))))
	flat := tax.Mul(lateSurchargeRate)
	monthly := tax.Mul(monthlySurchargeRate).Mul(months)
	return flat.Add(monthly).Round(moneyPlaces)
}
