package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/N05TR4/gdt-sistema/internal/declaration"
	"github.com/N05TR4/gdt-sistema/internal/model"
	"github.com/N05TR4/gdt-sistema/pkg/pagination"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=declaration_repo.go -destination=mocks/mocks.go -package=mocks

// DeclarationRepository persists declarations. Lookups that match nothing
// return ErrNotFound.
type DeclarationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*declaration.Declaration, error)
	FindByFilingNumber(ctx context.Context, number string) (*declaration.Declaration, error)
	// ListByTaxpayer returns one page of a taxpayer's declarations, newest first.
	ListByTaxpayer(ctx context.Context, taxpayerID string, page, limit int) ([]*declaration.Declaration, error)
	CountByTaxpayer(ctx context.Context, taxpayerID string) (int64, error)
	// Create inserts d and sets its version. A unique violation yields
	// ErrDuplicate, or ErrOpenPeriodTaken when the period is already open.
	Create(ctx context.Context, d *declaration.Declaration) error
	// Update writes d if the stored version still equals d.Version(), then
	// bumps it. A stale version yields ErrConflict.
	Update(ctx context.Context, d *declaration.Declaration) error
	// ExistsForPeriod ignores rejected declarations.
	ExistsForPeriod(ctx context.Context, taxpayerID string, period declaration.Period, taxType declaration.TaxType) (bool, error)
	// LockForUpdate loads d holding a row lock until the transaction ends.
	LockForUpdate(ctx context.Context, id uuid.UUID) (*declaration.Declaration, error)
	// LockPeriod serializes creators of the same (taxpayer, period, tax type)
	// until the transaction ends.
	LockPeriod(ctx context.Context, taxpayerID string, period declaration.Period, taxType declaration.TaxType) error
	NextFilingSequence(ctx context.Context, year int) (int64, error)
}

type declarationRepository struct {
	db *gorm.DB
}

func NewDeclarationRepository(db *gorm.DB) DeclarationRepository {
	return &declarationRepository{db: db}
}

func (r *declarationRepository) FindByID(ctx context.Context, id uuid.UUID) (*declaration.Declaration, error) {
	var rec model.Declaration
	if err := GetDB(ctx, r.db).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return toDomain(&rec)
}

func (r *declarationRepository) FindByFilingNumber(ctx context.Context, number string) (*declaration.Declaration, error) {
	var rec model.Declaration
	if err := GetDB(ctx, r.db).First(&rec, "filing_number = ?", number).Error; err != nil {
		return nil, translate(err)
	}
	return toDomain(&rec)
}

func (r *declarationRepository) ListByTaxpayer(ctx context.Context, taxpayerID string, page, limit int) ([]*declaration.Declaration, error) {
	var recs []model.Declaration
	offset := pagination.Offset(page, limit)
	err := GetDB(ctx, r.db).
		Where("taxpayer_id = ?", taxpayerID).
		Order("created_at desc").
		Order("filing_number desc").
		Offset(offset).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make([]*declaration.Declaration, 0, len(recs))
	for i := range recs {
		d, err := toDomain(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *declarationRepository) CountByTaxpayer(ctx context.Context, taxpayerID string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Declaration{}).Where("taxpayer_id = ?", taxpayerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *declarationRepository) Create(ctx context.Context, d *declaration.Declaration) error {
	rec := toRecord(d)
	rec.Version = 1
	if err := GetDB(ctx, r.db).Create(rec).Error; err != nil {
		return translate(err)
	}
	d.SetVersion(rec.Version)
	return nil
}

func (r *declarationRepository) Update(ctx context.Context, d *declaration.Declaration) error {
	rec := toRecord(d)
	next := d.Version() + 1

	res := GetDB(ctx, r.db).Model(&model.Declaration{}).
		Where("id = ? AND version = ?", rec.ID, d.Version()).
		Updates(map[string]any{
			"income":            rec.Income,
			"expenses":          rec.Expenses,
			"computed_tax":      rec.ComputedTax,
			"penalty":           rec.Penalty,
			"status":            rec.Status,
			"filed_at":          rec.FiledAt,
			"rejection_remarks": rec.RejectionRemarks,
			"version":           next,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := GetDB(ctx, r.db).Model(&model.Declaration{}).Where("id = ?", rec.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	d.SetVersion(next)
	return nil
}

func (r *declarationRepository) ExistsForPeriod(ctx context.Context, taxpayerID string, period declaration.Period, taxType declaration.TaxType) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Declaration{}).
		Where("taxpayer_id = ? AND period = ? AND tax_type = ? AND status <> ?",
			taxpayerID, period.Start(), taxType.Code(), model.DeclarationRejected).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *declarationRepository) LockForUpdate(ctx context.Context, id uuid.UUID) (*declaration.Declaration, error) {
	if !inTx(ctx) {
		return nil, errors.New("lock declaration: no transaction in context")
	}
	var rec model.Declaration
	err := GetDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomain(&rec)
}

func (r *declarationRepository) LockPeriod(ctx context.Context, taxpayerID string, period declaration.Period, taxType declaration.TaxType) error {
	if !inTx(ctx) {
		return errors.New("lock period: no transaction in context")
	}
	// Transaction-scoped advisory lock keyed on the uniqueness tuple.
	return GetDB(ctx, r.db).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", periodLockKey(taxpayerID, period, taxType)).Error
}

func (r *declarationRepository) NextFilingSequence(ctx context.Context, year int) (int64, error) {
	var next int64
	err := GetDB(ctx, r.db).Raw(`
		INSERT INTO filing_sequences (year, last_value) VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = filing_sequences.last_value + 1
		RETURNING last_value`, year).Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("next filing sequence for %d: %w", year, err)
	}
	return next, nil
}

func periodLockKey(taxpayerID string, period declaration.Period, taxType declaration.TaxType) string {
	return fmt.Sprintf("declaration:%s:%s:%d", taxpayerID, period, taxType.Code())
}

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == model.OpenPeriodIndex {
			return ErrOpenPeriodTaken
		}
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
