// Package declaration holds the tax declaration entity: its invariants, the
// tax and penalty rules, and the Draft -> Filed -> Approved/Rejected lifecycle.
//
// A Declaration is only changed through its methods. Each method checks its
// preconditions first and commits all affected fields together, so a failed
// call leaves the value exactly as it was.
package declaration

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Declaration is a single tax filing for one taxpayer, period and tax type.
type Declaration struct {
	id           uuid.UUID
	filingNumber string
	taxpayerID   string
	legalName    string
	period       Period
	taxType      TaxType

	income   decimal.Decimal
	expenses decimal.Decimal

	computedTax decimal.Decimal
	penalty     decimal.Decimal

	status           Status
	createdAt        time.Time
	filedAt          *time.Time
	rejectionRemarks *string

	version int64
}

// NewParams carries the caller supplied fields of a new declaration.
type NewParams struct {
	TaxpayerID string
	LegalName  string
	Period     Period
	TaxType    TaxType
	Income     decimal.Decimal
	Expenses   decimal.Decimal
}

// New validates params and builds a Draft declaration with its tax already
// computed. The filing number is drawn from next only after validation
// passes. Uniqueness of (taxpayer, period, tax type) is the caller's concern.
func New(params NewParams, next SequenceFunc, now time.Time) (*Declaration, error) {
	taxpayerID, err := NormalizeTaxpayerID(params.TaxpayerID)
	if err != nil {
		return nil, err
	}
	legalName := strings.TrimSpace(params.LegalName)
	if legalName == "" {
		return nil, fmt.Errorf("%w: legal name is required", ErrInvalidInput)
	}
	if params.Period.IsZero() {
		return nil, fmt.Errorf("%w: period is required", ErrInvalidInput)
	}
	if _, err := NewPeriod(params.Period.Year, params.Period.Month); err != nil {
		return nil, err
	}
	if !params.TaxType.Valid() {
		return nil, fmt.Errorf("%w: unknown tax type %d", ErrInvalidInput, int(params.TaxType))
	}
	if err := validateAmounts(params.Income, params.Expenses); err != nil {
		return nil, err
	}
	if next == nil {
		return nil, fmt.Errorf("declaration: filing sequence source is required")
	}

	now = now.UTC()
	seq, err := next(now.Year())
	if err != nil {
		return nil, fmt.Errorf("reserve filing number: %w", err)
	}

	d := &Declaration{
		id:           uuid.New(),
		filingNumber: FormatFilingNumber(now.Year(), seq),
		taxpayerID:   taxpayerID,
		legalName:    legalName,
		period:       params.Period,
		taxType:      params.TaxType,
		income:       params.Income,
		expenses:     params.Expenses,
		penalty:      decimal.Zero,
		status:       StatusDraft,
		createdAt:    now,
	}
	d.computedTax = d.taxType.Tax(d.TaxableBase())
	return d, nil
}

// UpdateAmounts replaces the declared income and expenses of a draft and
// recomputes its tax.
func (d *Declaration) UpdateAmounts(income, expenses decimal.Decimal) error {
	if d.status != StatusDraft {
		return fmt.Errorf("%w: only draft declarations can be modified (status %s)", ErrInvalidState, d.status)
	}
	if err := validateAmounts(income, expenses); err != nil {
		return err
	}

	tax := d.taxType.Tax(income.Sub(expenses))

	d.income = income
	d.expenses = expenses
	d.computedTax = tax
	return nil
}

// File presents a draft at now. A presentation after the due date assesses
// the late filing penalty; it is computed here and never again.
func (d *Declaration) File(now time.Time) error {
	if d.status != StatusDraft {
		return fmt.Errorf("%w: only draft declarations can be filed (status %s)", ErrInvalidState, d.status)
	}
	if strings.TrimSpace(d.taxpayerID) == "" {
		return fmt.Errorf("%w: taxpayer id is required", ErrInvalidState)
	}
	if !d.income.IsPositive() {
		return fmt.Errorf("%w: declared income must be greater than zero", ErrInvalidState)
	}
	if d.TaxableBase().IsNegative() {
		return fmt.Errorf("%w: taxable base cannot be negative", ErrInvalidState)
	}

	filedAt := now.UTC()
	penalty := PenaltyFor(d.computedTax, d.DueDate(), filedAt)

	d.status = StatusFiled
	d.filedAt = &filedAt
	d.penalty = penalty
	return nil
}

// Approve accepts a filed declaration.
func (d *Declaration) Approve() error {
	if !d.status.CanTransitionTo(StatusApproved) {
		return fmt.Errorf("%w: only filed declarations can be approved (status %s)", ErrInvalidState, d.status)
	}
	d.status = StatusApproved
	return nil
}

// Reject turns down a filed declaration, keeping remarks verbatim.
func (d *Declaration) Reject(remarks string) error {
	if !d.status.CanTransitionTo(StatusRejected) {
		return fmt.Errorf("%w: only filed declarations can be rejected (status %s)", ErrInvalidState, d.status)
	}
	d.status = StatusRejected
	d.rejectionRemarks = &remarks
	return nil
}

// Amounts must fit numeric(18,2): at most 16 integer digits and 2 decimals.
const (
	MaxAmountIntegerDigits = 16
	AmountScale            = 2

	// Scales finer than this are rejected without rescaling the value.
	maxInputScale = 20
)

func validateAmounts(income, expenses decimal.Decimal) error {
	if err := ValidateAmount("income", income); err != nil {
		return err
	}
	return ValidateAmount("expense", expenses)
}

// ValidateAmount checks that v is a non-negative money amount that fits the
// stored precision. Only the coefficient and exponent are inspected, so huge
// exponents are rejected without expanding the number.
func ValidateAmount(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s amount cannot be negative", ErrInvalidInput, field)
	}
	if v.IsZero() {
		return nil
	}
	exp := int64(v.Exponent())
	if exp < -maxInputScale {
		return fmt.Errorf("%w: %s amount has more than %d decimal places", ErrInvalidInput, field, AmountScale)
	}
	if exp < -AmountScale && !v.Truncate(AmountScale).Equal(v) {
		return fmt.Errorf("%w: %s amount has more than %d decimal places", ErrInvalidInput, field, AmountScale)
	}
	if int64(v.NumDigits())+exp > MaxAmountIntegerDigits {
		return fmt.Errorf("%w: %s amount exceeds %d integer digits", ErrInvalidInput, field, MaxAmountIntegerDigits)
	}
	return nil
}

func (d *Declaration) ID() uuid.UUID { return d.id }
func (d *Declaration) FilingNumber() string { return d.filingNumber }
func (d *Declaration) TaxpayerID() string { return d.taxpayerID }
func (d *Declaration) LegalName() string { return d.legalName }
func (d *Declaration) Period() Period { return d.period }
func (d *Declaration) TaxType() TaxType { return d.taxType }
func (d *Declaration) Income() decimal.Decimal { return d.income }
func (d *Declaration) Expenses() decimal.Decimal { return d.expenses }
func (d *Declaration) Status() Status { return d.status }
func (d *Declaration) CreatedAt() time.Time { return d.createdAt }
func (d *Declaration) Version() int64 { return d.version }

// ComputedTax is the liability for the current taxable base.
func (d *Declaration) ComputedTax() decimal.Decimal { return d.computedTax }

// Penalty is zero unless the declaration was filed late.
func (d *Declaration) Penalty() decimal.Decimal { return d.penalty }

// TaxableBase is income minus expenses. It may be negative.
func (d *Declaration) TaxableBase() decimal.Decimal {
	return d.income.Sub(d.expenses)
}

// TotalPayable is the computed tax plus any penalty.
func (d *Declaration) TotalPayable() decimal.Decimal {
	return d.computedTax.Add(d.penalty)
}

// DueDate is the filing deadline for the declaration's period and tax type.
func (d *Declaration) DueDate() time.Time {
	return DueDate(d.period, d.taxType)
}

// FiledAt returns the presentation time, or nil while in draft.
func (d *Declaration) FiledAt() *time.Time {
	if d.filedAt == nil {
		return nil
	}
	t := *d.filedAt
	return &t
}

// RejectionRemarks returns the remarks given on rejection, or nil unless rejected.
func (d *Declaration) RejectionRemarks() *string {
	if d.rejectionRemarks == nil {
		return nil
	}
	r := *d.rejectionRemarks
	return &r
}
