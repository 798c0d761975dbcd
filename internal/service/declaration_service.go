package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/N05TR4/gdt-sistema/internal/declaration"
	"github.com/N05TR4/gdt-sistema/internal/events"
	"github.com/N05TR4/gdt-sistema/internal/export"
	"github.com/N05TR4/gdt-sistema/internal/metrics"
	"github.com/N05TR4/gdt-sistema/internal/model"
	"github.com/N05TR4/gdt-sistema/internal/platform/clock"
	"github.com/N05TR4/gdt-sistema/internal/repository"
	"github.com/N05TR4/gdt-sistema/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = pagination.DefaultPageSize
	MaxPageSize     = pagination.MaxPageSize

	exportBatchSize = 100
	publishTimeout  = 5 * time.Second
	maxAmountLength = 64
)

type DeclarationService interface {
	CreateDeclaration(ctx context.Context, req CreateDeclarationRequest) (DeclarationResponse, error)
	GetDeclaration(ctx context.Context, id string) (DeclarationResponse, error)
	GetDeclarationByNumber(ctx context.Context, number string) (DeclarationResponse, error)
	ListByTaxpayer(ctx context.Context, taxpayerID string, page, pageSize int) (DeclarationPage, error)
	UpdateAmounts(ctx context.Context, id string, req UpdateAmountsRequest) (DeclarationResponse, error)
	FileDeclaration(ctx context.Context, id string) (DeclarationResponse, error)
	ApproveDeclaration(ctx context.Context, id string) (DeclarationResponse, error)
	RejectDeclaration(ctx context.Context, id string, req RejectDeclarationRequest) (DeclarationResponse, error)
	ExportTaxpayer(ctx context.Context, taxpayerID string) ([]byte, error)
}

// ViewCache holds rendered DeclarationResponse documents by id. Set must
// keep the cached view when it renders the same or a newer version.
type ViewCache interface {
	Get(ctx context.Context, id uuid.UUID) ([]byte, bool, error)
	Set(ctx context.Context, id uuid.UUID, version int64, view []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Option configures optional collaborators of the declaration service.
type Option func(*declarationService)

func WithCache(c ViewCache) Option {
	return func(s *declarationService) { s.cache = c }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *declarationService) { s.metrics = m }
}

type declarationService struct {
	repo      repository.DeclarationRepository
	txManager repository.TransactionManager
	publisher events.Publisher
	clock     clock.Clock
	log       *slog.Logger
	cache     ViewCache
	metrics   *metrics.Metrics
}

func NewDeclarationService(
	repo repository.DeclarationRepository,
	txManager repository.TransactionManager,
	publisher events.Publisher,
	clk clock.Clock,
	log *slog.Logger,
	opts ...Option,
) DeclarationService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if clk == nil {
		clk = clock.Real()
	}
	if log == nil {
		log = slog.Default()
	}
	s := &declarationService{
		repo:      repo,
		txManager: txManager,
		publisher: publisher,
		clock:     clk,
		log:       log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *declarationService) CreateDeclaration(ctx context.Context, req CreateDeclarationRequest) (DeclarationResponse, error) {
	start := time.Now()
	defer s.metrics.ObserveOperation("create", start)

	taxpayerID, err := declaration.NormalizeTaxpayerID(req.TaxpayerID)
	if err != nil {
		return DeclarationResponse{}, err
	}
	period, err := declaration.ParsePeriod(req.Period)
	if err != nil {
		return DeclarationResponse{}, err
	}
	taxType, err := declaration.ParseTaxType(req.TaxType)
	if err != nil {
		return DeclarationResponse{}, err
	}
	income, err := parseAmount("income", req.Income)
	if err != nil {
		return DeclarationResponse{}, err
	}
	expenses, err := parseAmount("expenses", req.Expenses)
	if err != nil {
		return DeclarationResponse{}, err
	}

	s.log.Info("declaration.creating", "taxpayer_id", taxpayerID, "period", period.String(), "tax_type", taxType.String())

	var created *declaration.Declaration
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.LockPeriod(txCtx, taxpayerID, period, taxType); err != nil {
			return err
		}
		exists, err := s.repo.ExistsForPeriod(txCtx, taxpayerID, period, taxType)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicatePeriod
		}

		next := func(year int) (int64, error) {
			return s.repo.NextFilingSequence(txCtx, year)
		}
		d, err := declaration.New(declaration.NewParams{
			TaxpayerID: taxpayerID,
			LegalName:  req.LegalName,
			Period:     period,
			TaxType:    taxType,
			Income:     income,
			Expenses:   expenses,
		}, next, s.clock.Now())
		if err != nil {
			return err
		}
		if err := s.repo.Create(txCtx, d); err != nil {
			return err
		}
		created = d
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicatePeriod) {
			s.log.Warn("declaration.duplicate_period", "taxpayer_id", taxpayerID, "period", period.String(), "tax_type", taxType.String())
		}
		return DeclarationResponse{}, s.translate("create declaration", err)
	}

	s.metrics.IncrementCreated(created.TaxType().String())
	s.publish(ctx, events.TypeCreated, created)
	s.log.Info("declaration.created",
		"declaration_id", created.ID().String(),
		"filing_number", created.FilingNumber(),
		"taxpayer_id", created.TaxpayerID(),
		"computed_tax", created.ComputedTax().StringFixed(moneyPlaces),
	)
	return toResponse(created), nil
}

func (s *declarationService) GetDeclaration(ctx context.Context, id string) (DeclarationResponse, error) {
	uid, err := parseID(id)
	if err != nil {
		return DeclarationResponse{}, err
	}

	if res, ok := s.cachedView(ctx, uid); ok {
		return res, nil
	}

	d, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return DeclarationResponse{}, s.translate("get declaration", err)
	}
	res := toResponse(d)
	s.storeView(ctx, uid, res)
	return res, nil
}

func (s *declarationService) GetDeclarationByNumber(ctx context.Context, number string) (DeclarationResponse, error) {
	if !declaration.ValidFilingNumber(number) {
		return DeclarationResponse{}, fmt.Errorf("%w: filing number %q is malformed", declaration.ErrInvalidInput, number)
	}
	d, err := s.repo.FindByFilingNumber(ctx, number)
	if err != nil {
		return DeclarationResponse{}, s.translate("get declaration by number", err)
	}
	return toResponse(d), nil
}

func (s *declarationService) ListByTaxpayer(ctx context.Context, taxpayerID string, page, pageSize int) (DeclarationPage, error) {
	id, err := declaration.NormalizeTaxpayerID(taxpayerID)
	if err != nil {
		return DeclarationPage{}, err
	}
	p := pagination.Clamp(page, pageSize)

	total, err := s.repo.CountByTaxpayer(ctx, id)
	if err != nil {
		return DeclarationPage{}, fmt.Errorf("count declarations: %w", err)
	}
	list, err := s.repo.ListByTaxpayer(ctx, id, p.Page, p.PageSize)
	if err != nil {
		return DeclarationPage{}, fmt.Errorf("list declarations: %w", err)
	}

	items := make([]DeclarationSummary, 0, len(list))
	for _, d := range list {
		items = append(items, toSummary(d))
	}
	return DeclarationPage{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: pagination.TotalPages(total, p.PageSize),
	}, nil
}

func (s *declarationService) UpdateAmounts(ctx context.Context, id string, req UpdateAmountsRequest) (DeclarationResponse, error) {
	income, err := parseAmount("income", req.Income)
	if err != nil {
		return DeclarationResponse{}, err
	}
	expenses, err := parseAmount("expenses", req.Expenses)
	if err != nil {
		return DeclarationResponse{}, err
	}

	d, err := s.mutate(ctx, "update", id, func(d *declaration.Declaration) error {
		return d.UpdateAmounts(income, expenses)
	})
	if err != nil {
		return DeclarationResponse{}, err
	}
	s.publish(ctx, events.TypeUpdated, d)
	s.log.Info("declaration.amounts_updated", "declaration_id", d.ID().String(), "computed_tax", d.ComputedTax().StringFixed(moneyPlaces))
	return toResponse(d), nil
}

func (s *declarationService) FileDeclaration(ctx context.Context, id string) (DeclarationResponse, error) {
	now := s.clock.Now()
	d, err := s.mutate(ctx, "file", id, func(d *declaration.Declaration) error {
		return d.File(now)
	})
	if err != nil {
		return DeclarationResponse{}, err
	}

	s.metrics.IncrementTransition(d.Status().String())
	s.metrics.ObservePenalty(d.Penalty().InexactFloat64())
	s.publish(ctx, events.TypeFiled, d)
	if d.Penalty().IsPositive() {
		s.log.Warn("declaration.filed_late",
			"declaration_id", d.ID().String(),
			"filing_number", d.FilingNumber(),
			"days_late", declaration.DaysLate(d.DueDate(), now),
			"penalty", d.Penalty().StringFixed(moneyPlaces),
		)
	} else {
		s.log.Info("declaration.filed", "declaration_id", d.ID().String(), "filing_number", d.FilingNumber())
	}
	return toResponse(d), nil
}

func (s *declarationService) ApproveDeclaration(ctx context.Context, id string) (DeclarationResponse, error) {
	d, err := s.mutate(ctx, "approve", id, func(d *declaration.Declaration) error {
		return d.Approve()
	})
	if err != nil {
		return DeclarationResponse{}, err
	}
	s.metrics.IncrementTransition(d.Status().String())
	s.publish(ctx, events.TypeApproved, d)
	s.log.Info("declaration.approved", "declaration_id", d.ID().String(), "filing_number", d.FilingNumber())
	return toResponse(d), nil
}

func (s *declarationService) RejectDeclaration(ctx context.Context, id string, req RejectDeclarationRequest) (DeclarationResponse, error) {
	if n := utf8.RuneCountInString(req.Remarks); n > model.MaxRejectionRemarksLength {
		return DeclarationResponse{}, fmt.Errorf("%w: remarks exceed %d characters", declaration.ErrInvalidInput, model.MaxRejectionRemarksLength)
	}
	d, err := s.mutate(ctx, "reject", id, func(d *declaration.Declaration) error {
		return d.Reject(req.Remarks)
	})
	if err != nil {
		return DeclarationResponse{}, err
	}
	s.metrics.IncrementTransition(d.Status().String())
	s.publish(ctx, events.TypeRejected, d)
	s.log.Info("declaration.rejected", "declaration_id", d.ID().String(), "filing_number", d.FilingNumber())
	return toResponse(d), nil
}

func (s *declarationService) ExportTaxpayer(ctx context.Context, taxpayerID string) ([]byte, error) {
	start := time.Now()
	id, err := declaration.NormalizeTaxpayerID(taxpayerID)
	if err != nil {
		return nil, err
	}

	var all []*declaration.Declaration
	for page := 1; ; page++ {
		batch, err := s.repo.ListByTaxpayer(ctx, id, page, exportBatchSize)
		if err != nil {
			return nil, fmt.Errorf("list declarations: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < exportBatchSize {
			break
		}
	}

	data, err := export.DeclarationsXLSX(all)
	if err != nil {
		return nil, err
	}
	s.log.Info("export.xlsx.ok",
		"taxpayer_id", id,
		"rows", len(all),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

// mutate runs fn against a row-locked copy of the declaration and saves
// the result in the same transaction.
func (s *declarationService) mutate(ctx context.Context, op, id string, fn func(*declaration.Declaration) error) (*declaration.Declaration, error) {
	start := time.Now()
	defer s.metrics.ObserveOperation(op, start)

	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var out *declaration.Declaration
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.repo.LockForUpdate(txCtx, uid)
		if err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.log.Warn("declaration.conflict", "declaration_id", id, "operation", op)
		}
		return nil, s.translate(op+" declaration", err)
	}

	s.refreshView(ctx, out)
	return out, nil
}

// translate maps storage errors to service errors. Domain errors pass
// through untouched so their messages reach the caller.
func (s *declarationService) translate(op string, err error) error {
	switch {
	case errors.Is(err, declaration.ErrInvalidInput),
		errors.Is(err, declaration.ErrInvalidState),
		errors.Is(err, ErrDuplicatePeriod):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return ErrDeclarationNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrConcurrentUpdate
	case errors.Is(err, repository.ErrOpenPeriodTaken):
		// Lost the race past the existence check; the open period index caught it.
		return ErrDuplicatePeriod
	default:
		s.log.Error("declaration.storage_failed", "operation", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *declarationService) publish(ctx context.Context, t events.Type, d *declaration.Declaration) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, events.New(t, d, s.clock.Now())); err != nil {
		s.log.Warn("declaration.publish_failed", "type", string(t), "declaration_id", d.ID().String(), "error", err)
	}
}

func (s *declarationService) cachedView(ctx context.Context, id uuid.UUID) (DeclarationResponse, bool) {
	if s.cache == nil {
		return DeclarationResponse{}, false
	}
	data, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		s.metrics.IncrementCacheLookup("error")
		s.log.Warn("declaration.cache_get_failed", "declaration_id", id.String(), "error", err)
		return DeclarationResponse{}, false
	}
	if !ok {
		s.metrics.IncrementCacheLookup("miss")
		return DeclarationResponse{}, false
	}
	var res DeclarationResponse
	if err := json.Unmarshal(data, &res); err != nil {
		s.metrics.IncrementCacheLookup("error")
		return DeclarationResponse{}, false
	}
	s.metrics.IncrementCacheLookup("hit")
	return res, true
}

func (s *declarationService) storeView(ctx context.Context, id uuid.UUID, res DeclarationResponse) {
	if s.cache == nil {
		return
	}
	if err := s.putView(ctx, id, res); err != nil {
		s.log.Warn("declaration.cache_set_failed", "declaration_id", id.String(), "error", err)
	}
}

// refreshView replaces the cached view with the committed state of d. A
// read that loaded an older version can no longer overwrite it. When the
// write fails the entry is evicted instead.
func (s *declarationService) refreshView(ctx context.Context, d *declaration.Declaration) {
	if s.cache == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	if err := s.putView(ctx, d.ID(), toResponse(d)); err != nil {
		s.log.Warn("declaration.cache_set_failed", "declaration_id", d.ID().String(), "error", err)
		s.evictView(ctx, d.ID())
	}
}

func (s *declarationService) putView(ctx context.Context, id uuid.UUID, res DeclarationResponse) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, id, res.Version, data)
}

func (s *declarationService) evictView(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.Warn("declaration.cache_evict_failed", "declaration_id", id.String(), "error", err)
	}
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: declaration id %q is not a valid UUID", declaration.ErrInvalidInput, id)
	}
	return uid, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	if len(raw) > maxAmountLength {
		return decimal.Zero, fmt.Errorf("%w: %s is longer than %d characters", declaration.ErrInvalidInput, field, maxAmountLength)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a decimal amount", declaration.ErrInvalidInput, field, raw)
	}
	if err := declaration.ValidateAmount(field, v); err != nil {
		return decimal.Zero, err
	}
	return v, nil
}
