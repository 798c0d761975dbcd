package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status enum constants, mirrored from the domain for raw queries.
const (
	DeclarationDraft    = "DRAFT"
	DeclarationFiled    = "FILED"
	DeclarationApproved = "APPROVED"
	DeclarationRejected = "REJECTED"
)

// Declaration is the stored row of a tax declaration. A taxpayer may hold
// at most one non-rejected row per (period, tax_type); the partial unique
// index enforces it.
type Declaration struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FilingNumber     string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"filing_number"`
	TaxpayerID       string          `gorm:"type:varchar(11);not null;index;uniqueIndex:uq_declarations_open_period,where:status <> 'REJECTED'" json:"taxpayer_id"`
	LegalName        string          `gorm:"type:varchar(200);not null" json:"legal_name"`
	Period           time.Time       `gorm:"type:date;not null;uniqueIndex:uq_declarations_open_period" json:"period"` // first day of the month
	TaxType          int             `gorm:"type:smallint;not null;uniqueIndex:uq_declarations_open_period" json:"tax_type"`
	Income           decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"income"`
	Expenses         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"expenses"`
	ComputedTax      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"computed_tax"`
	Penalty          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"penalty"`
	Status           string          `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`
	FiledAt          *time.Time      `json:"filed_at"`
	RejectionRemarks *string         `gorm:"type:varchar(500)" json:"rejection_remarks"`
	Version          int64           `gorm:"not null" json:"version"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MaxRejectionRemarksLength matches the rejection_remarks column width.
const MaxRejectionRemarksLength = 500

// OpenPeriodIndex is the partial unique index allowing one non-rejected
// declaration per taxpayer, period and tax type.
const OpenPeriodIndex = "uq_declarations_open_period"

// FilingSequence is the per-year counter behind filing numbers.
type FilingSequence struct {
	Year      int   `gorm:"primaryKey;autoIncrement:false"`
	LastValue int64 `gorm:"not null"`
}
