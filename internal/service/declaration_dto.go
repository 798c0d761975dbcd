package service

import (
	"time"

	"github.com/N05TR4/gdt-sistema/internal/declaration"
)

// --- DTOs ---

// Amounts are decimal strings, e.g. "100000.00".
type CreateDeclarationRequest struct {
	TaxpayerID string `json:"taxpayer_id" binding:"required" example:"101123456"`
	LegalName  string `json:"legal_name" binding:"required" example:"Comercial Santo Domingo SRL"`
	Period     string `json:"period" binding:"required" example:"2025-02"`
	TaxType    int    `json:"tax_type" binding:"required" example:"1"` // 1 income, 2 VAT, 3 excise
	Income     string `json:"income" binding:"required" example:"1000000.00"`
	Expenses   string `json:"expenses" binding:"required" example:"200000.00"`
}

type UpdateAmountsRequest struct {
	Income   string `json:"income" binding:"required" example:"500000.00"`
	Expenses string `json:"expenses" binding:"required" example:"0"`
}

type RejectDeclarationRequest struct {
	Remarks string `json:"remarks" example:"Annex IR-2 missing"`
}

type DeclarationResponse struct {
	ID               string  `json:"id"`
	FilingNumber     string  `json:"filing_number"`
	TaxpayerID       string  `json:"taxpayer_id"`
	LegalName        string  `json:"legal_name"`
	Period           string  `json:"period"`
	TaxType          string  `json:"tax_type"`
	TaxTypeCode      int     `json:"tax_type_code"`
	Income           string  `json:"income"`
	Expenses         string  `json:"expenses"`
	TaxableBase      string  `json:"taxable_base"`
	ComputedTax      string  `json:"computed_tax"`
	Penalty          string  `json:"penalty"`
	TotalPayable     string  `json:"total_payable"`
	Status           string  `json:"status"`
	DueDate          string  `json:"due_date"`
	DaysLate         int     `json:"days_late"`
	CreatedAt        string  `json:"created_at"`
	FiledAt          *string `json:"filed_at"`
	RejectionRemarks *string `json:"rejection_remarks"`
	Version          int64   `json:"version"`
}

type DeclarationSummary struct {
	ID           string `json:"id"`
	FilingNumber string `json:"filing_number"`
	Period       string `json:"period"`
	TaxType      string `json:"tax_type"`
	TotalPayable string `json:"total_payable"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type DeclarationPage struct {
	Items      []DeclarationSummary `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

const moneyPlaces = 2

func toResponse(d *declaration.Declaration) DeclarationResponse {
	res := DeclarationResponse{
		ID:               d.ID().String(),
		FilingNumber:     d.FilingNumber(),
		TaxpayerID:       d.TaxpayerID(),
		LegalName:        d.LegalName(),
		Period:           d.Period().String(),
		TaxType:          d.TaxType().String(),
		TaxTypeCode:      d.TaxType().Code(),
		Income:           d.Income().StringFixed(moneyPlaces),
		Expenses:         d.Expenses().StringFixed(moneyPlaces),
		TaxableBase:      d.TaxableBase().StringFixed(moneyPlaces),
		ComputedTax:      d.ComputedTax().StringFixed(moneyPlaces),
		Penalty:          d.Penalty().StringFixed(moneyPlaces),
		TotalPayable:     d.TotalPayable().StringFixed(moneyPlaces),
		Status:           d.Status().String(),
		DueDate:          d.DueDate().Format(time.RFC3339),
		CreatedAt:        d.CreatedAt().Format(time.RFC3339),
		RejectionRemarks: d.RejectionRemarks(),
		Version:          d.Version(),
	}
	if at := d.FiledAt(); at != nil {
		s := at.Format(time.RFC3339)
		res.FiledAt = &s
		res.DaysLate = declaration.DaysLate(d.DueDate(), *at)
	}
	return res
}

func toSummary(d *declaration.Declaration) DeclarationSummary {
	return DeclarationSummary{
		ID:           d.ID().String(),
		FilingNumber: d.FilingNumber(),
		Period:       d.Period().String(),
		TaxType:      d.TaxType().String(),
		TotalPayable: d.TotalPayable().StringFixed(moneyPlaces),
		Status:       d.Status().String(),
		CreatedAt:    d.CreatedAt().Format(time.RFC3339),
	}
}
