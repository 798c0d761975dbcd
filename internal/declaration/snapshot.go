package declaration

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the stored form of a Declaration. Repositories use it to move
// declarations in and out of storage; derived values are not part of it.
type Snapshot struct {
	ID               uuid.UUID
	FilingNumber     string
	TaxpayerID       string
	LegalName        string
	Period           Period
	TaxType          TaxType
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	ComputedTax      decimal.Decimal
	Penalty          decimal.Decimal
	Status           Status
	CreatedAt        time.Time
	FiledAt          *time.Time
	RejectionRemarks *string
	Version          int64
}

// Snapshot copies the stored fields of d.
func (d *Declaration) Snapshot() Snapshot {
	return Snapshot{
		ID:               d.id,
		FilingNumber:     d.filingNumber,
		TaxpayerID:       d.taxpayerID,
		LegalName:        d.legalName,
		Period:           d.period,
		TaxType:          d.taxType,
		Income:           d.income,
		Expenses:         d.expenses,
		ComputedTax:      d.computedTax,
		Penalty:          d.penalty,
		Status:           d.status,
		CreatedAt:        d.createdAt,
		FiledAt:          d.FiledAt(),
		RejectionRemarks: d.RejectionRemarks(),
		Version:          d.version,
	}
}

// Restore rebuilds a declaration read back from storage. It rejects records
// whose enumerations are unknown but otherwise trusts the stored values.
func Restore(s Snapshot) (*Declaration, error) {
	if s.ID == uuid.Nil {
		return nil, fmt.Errorf("restore declaration: missing id")
	}
	if !s.TaxType.Valid() {
		return nil, fmt.Errorf("restore declaration %s: unknown tax type %d", s.ID, int(s.TaxType))
	}
	if _, err := ParseStatus(string(s.Status)); err != nil {
		return nil, fmt.Errorf("restore declaration %s: %w", s.ID, err)
	}

	d := &Declaration{
		id:           s.ID,
		filingNumber: s.FilingNumber,
		taxpayerID:   s.TaxpayerID,
		legalName:    s.LegalName,
		period:       s.Period,
		taxType:      s.TaxType,
		income:       s.Income,
		expenses:     s.Expenses,
		computedTax:  s.ComputedTax,
		penalty:      s.Penalty,
		status:       s.Status,
		createdAt:    s.CreatedAt,
		version:      s.Version,
	}
	if s.FiledAt != nil {
		t := *s.FiledAt
		d.filedAt = &t
	}
	if s.RejectionRemarks != nil {
		r := *s.RejectionRemarks
		d.rejectionRemarks = &r
	}
	return d, nil
}

// SetVersion records the version a repository has persisted. Only storage
// code calls this.
func (d *Declaration) SetVersion(v int64) {
	d.version = v
}
