package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/N05TR4/gdt-sistema/internal/declaration"
	"github.com/N05TR4/gdt-sistema/pkg/pagination"

	"github.com/google/uuid"
)

// memoryDeclarationRepository keeps snapshots in maps. It enforces the same
// unique constraints as the postgres schema.
type memoryDeclarationRepository struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]declaration.Snapshot
	byNumber  map[string]uuid.UUID
	sequences map[int]int64
}

func NewMemoryDeclarationRepository() DeclarationRepository {
	return &memoryDeclarationRepository{
		byID:      make(map[uuid.UUID]declaration.Snapshot),
		byNumber:  make(map[string]uuid.UUID),
		sequences: make(map[int]int64),
	}
}

func (r *memoryDeclarationRepository) FindByID(_ context.Context, id uuid.UUID) (*declaration.Declaration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return declaration.Restore(s)
}

func (r *memoryDeclarationRepository) FindByFilingNumber(_ context.Context, number string) (*declaration.Declaration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byNumber[number]
	if !ok {
		return nil, ErrNotFound
	}
	return declaration.Restore(r.byID[id])
}

func (r *memoryDeclarationRepository) ListByTaxpayer(_ context.Context, taxpayerID string, page, limit int) ([]*declaration.Declaration, error) {
	r.mu.RLock()
	matches := make([]declaration.Snapshot, 0)
	for _, s := range r.byID {
		if s.TaxpayerID == taxpayerID {
			matches = append(matches, s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].FilingNumber > matches[j].FilingNumber
	})

	offset := pagination.Offset(page, limit)
	if offset < 0 || offset >= len(matches) {
		return []*declaration.Declaration{}, nil
	}
	end := min(offset+limit, len(matches))

	out := make([]*declaration.Declaration, 0, end-offset)
	for _, s := range matches[offset:end] {
		d, err := declaration.Restore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *memoryDeclarationRepository) CountByTaxpayer(_ context.Context, taxpayerID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, s := range r.byID {
		if s.TaxpayerID == taxpayerID {
			n++
		}
	}
	return n, nil
}

func (r *memoryDeclarationRepository) Create(_ context.Context, d *declaration.Declaration) error {
	s := d.Snapshot()
	s.Version = 1

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; ok {
		return fmt.Errorf("%w: id %s", ErrDuplicate, s.ID)
	}
	if _, ok := r.byNumber[s.FilingNumber]; ok {
		return fmt.Errorf("%w: filing number %s", ErrDuplicate, s.FilingNumber)
	}
	if r.openPeriodLocked(s.TaxpayerID, s.Period, s.TaxType) && s.Status != declaration.StatusRejected {
		return fmt.Errorf("%w: %s %s %s", ErrOpenPeriodTaken, s.TaxpayerID, s.Period, s.TaxType)
	}

	r.byID[s.ID] = s
	r.byNumber[s.FilingNumber] = s.ID
	d.SetVersion(s.Version)
	return nil
}

func (r *memoryDeclarationRepository) Update(_ context.Context, d *declaration.Declaration) error {
	s := d.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[s.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != s.Version {
		return ErrConflict
	}

	// Identity fields are immutable; only lifecycle and amounts change.
	stored.Income = s.Income
	stored.Expenses = s.Expenses
	stored.ComputedTax = s.ComputedTax
	stored.Penalty = s.Penalty
	stored.Status = s.Status
	stored.FiledAt = s.FiledAt
	stored.RejectionRemarks = s.RejectionRemarks
	stored.Version = s.Version + 1

	r.byID[s.ID] = stored
	d.SetVersion(stored.Version)
	return nil
}

func (r *memoryDeclarationRepository) ExistsForPeriod(_ context.Context, taxpayerID string, period declaration.Period, taxType declaration.TaxType) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.openPeriodLocked(taxpayerID, period, taxType), nil
}

func (r *memoryDeclarationRepository) LockForUpdate(ctx context.Context, id uuid.UUID) (*declaration.Declaration, error) {
	return r.FindByID(ctx, id)
}

// LockPeriod is a no-op; the memory transaction manager already runs one
// transaction at a time.
func (r *memoryDeclarationRepository) LockPeriod(context.Context, string, declaration.Period, declaration.TaxType) error {
	return nil
}

func (r *memoryDeclarationRepository) NextFilingSequence(_ context.Context, year int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequences[year]++
	return r.sequences[year], nil
}

func (r *memoryDeclarationRepository) openPeriodLocked(taxpayerID string, period declaration.Period, taxType declaration.TaxType) bool {
	for _, s := range r.byID {
		if s.TaxpayerID == taxpayerID && s.Period == period && s.TaxType == taxType && s.Status != declaration.StatusRejected {
			return true
		}
	}
	return false
}
