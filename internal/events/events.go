// Package events publishes declaration lifecycle changes to subscribers
// outside the request path: dashboards over websocket and downstream
// consumers over Kafka. Publishing is best effort; the write that caused an
// event has already committed.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/N05TR4/gdt-sistema/internal/declaration"

	"github.com/shopspring/decimal"
)

// Type names a lifecycle change.
type Type string

const (
	TypeCreated  Type = "declaration.created"
	TypeUpdated  Type = "declaration.updated"
	TypeFiled    Type = "declaration.filed"
	TypeApproved Type = "declaration.approved"
	TypeRejected Type = "declaration.rejected"
)

// Event is the payload published for every lifecycle change.
type Event struct {
	Type          Type            `json:"type"`
	DeclarationID string          `json:"declaration_id"`
	FilingNumber  string          `json:"filing_number"`
	TaxpayerID    string          `json:"taxpayer_id"`
	Period        string          `json:"period"`
	TaxType       string          `json:"tax_type"`
	Status        string          `json:"status"`
	ComputedTax   decimal.Decimal `json:"computed_tax"`
	Penalty       decimal.Decimal `json:"penalty"`
	TotalPayable  decimal.Decimal `json:"total_payable"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// New builds the event for d as it stands after a change.
func New(t Type, d *declaration.Declaration, at time.Time) Event {
	return Event{
		Type:          t,
		DeclarationID: d.ID().String(),
		FilingNumber:  d.FilingNumber(),
		TaxpayerID:    d.TaxpayerID(),
		Period:        d.Period().String(),
		TaxType:       d.TaxType().String(),
		Status:        d.Status().String(),
		ComputedTax:   d.ComputedTax(),
		Penalty:       d.Penalty(),
		TotalPayable:  d.TotalPayable(),
		OccurredAt:    at.UTC(),
	}
}

// Publisher delivers events to one destination.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
