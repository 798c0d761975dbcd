package repository

import (
	"fmt"
	"time"

	"github.com/N05TR4/gdt-sistema/internal/declaration"
	"github.com/N05TR4/gdt-sistema/internal/model"
)

func toRecord(d *declaration.Declaration) *model.Declaration {
	s := d.Snapshot()
	return &model.Declaration{
		ID:               s.ID,
		FilingNumber:     s.FilingNumber,
		TaxpayerID:       s.TaxpayerID,
		LegalName:        s.LegalName,
		Period:           s.Period.Start(),
		TaxType:          s.TaxType.Code(),
		Income:           s.Income,
		Expenses:         s.Expenses,
		ComputedTax:      s.ComputedTax,
		Penalty:          s.Penalty,
		Status:           s.Status.String(),
		CreatedAt:        s.CreatedAt,
		FiledAt:          s.FiledAt,
		RejectionRemarks: s.RejectionRemarks,
		Version:          s.Version,
	}
}

func toDomain(rec *model.Declaration) (*declaration.Declaration, error) {
	d, err := declaration.Restore(declaration.Snapshot{
		ID:               rec.ID,
		FilingNumber:     rec.FilingNumber,
		TaxpayerID:       rec.TaxpayerID,
		LegalName:        rec.LegalName,
		Period:           declaration.PeriodOf(rec.Period),
		TaxType:          declaration.TaxType(rec.TaxType),
		Income:           rec.Income,
		Expenses:         rec.Expenses,
		ComputedTax:      rec.ComputedTax,
		Penalty:          rec.Penalty,
		Status:           declaration.Status(rec.Status),
		CreatedAt:        rec.CreatedAt.UTC(),
		FiledAt:          utcPtr(rec.FiledAt),
		RejectionRemarks: rec.RejectionRemarks,
		Version:          rec.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("load declaration: %w", err)
	}
	return d, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
