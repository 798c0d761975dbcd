package repository

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/N05TR4/gdt-sistema/internal/declaration"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RepositoryContractSuite runs the same behaviour checks against every
// DeclarationRepository implementation.
type RepositoryContractSuite struct {
	suite.Suite
	setup func(t *testing.T) (DeclarationRepository, TransactionManager)

	repo DeclarationRepository
	tx   TransactionManager
	ctx  context.Context
	tick time.Time
}

func (s *RepositoryContractSuite) SetupTest() {
	s.repo, s.tx = s.setup(s.T())
	s.ctx = context.Background()
	s.tick = time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
}

func (s *RepositoryContractSuite) newDeclaration(taxpayerID string, period declaration.Period, taxType declaration.TaxType) *declaration.Declaration {
	s.T().Helper()
	s.tick = s.tick.Add(time.Minute)
	next := func(year int) (int64, error) { return s.repo.NextFilingSequence(s.ctx, year) }

	d, err := declaration.New(declaration.NewParams{
		TaxpayerID: taxpayerID,
		LegalName:  "Ferreteria Ochoa SRL",
		Period:     period,
		TaxType:    taxType,
		Income:     decimal.RequireFromString("100000.00"),
		Expenses:   decimal.RequireFromString("30000.00"),
	}, next, s.tick)
	s.Require().NoError(err)
	return d
}

func (s *RepositoryContractSuite) create(taxpayerID string, period declaration.Period, taxType declaration.TaxType) *declaration.Declaration {
	s.T().Helper()
	d := s.newDeclaration(taxpayerID, period, taxType)
	s.Require().NoError(s.repo.Create(s.ctx, d))
	return d
}

func (s *RepositoryContractSuite) assertSame(want, got *declaration.Declaration) {
	s.T().Helper()
	s.Equal(want.ID(), got.ID())
	s.Equal(want.FilingNumber(), got.FilingNumber())
	s.Equal(want.TaxpayerID(), got.TaxpayerID())
	s.Equal(want.LegalName(), got.LegalName())
	s.Equal(want.Period(), got.Period())
	s.Equal(want.TaxType(), got.TaxType())
	s.True(want.Income().Equal(got.Income()), "income %s != %s", want.Income(), got.Income())
	s.True(want.Expenses().Equal(got.Expenses()))
	s.True(want.ComputedTax().Equal(got.ComputedTax()), "tax %s != %s", want.ComputedTax(), got.ComputedTax())
	s.True(want.Penalty().Equal(got.Penalty()))
	s.Equal(want.Status(), got.Status())
	s.True(want.CreatedAt().Equal(got.CreatedAt()))
	s.Equal(want.Version(), got.Version())
	if want.FiledAt() == nil {
		s.Nil(got.FiledAt())
	} else {
		s.Require().NotNil(got.FiledAt())
		s.True(want.FiledAt().Equal(*got.FiledAt()))
	}
	s.Equal(want.RejectionRemarks(), got.RejectionRemarks())
}

var (
	periodFeb = declaration.Period{Year: 2025, Month: time.February}
	periodMar = declaration.Period{Year: 2025, Month: time.March}
)

func (s *RepositoryContractSuite) TestCreateAndFind() {
	d := s.create("101000001", periodFeb, declaration.TaxTypeVAT)
	s.Equal(int64(1), d.Version())

	s.Run("by id", func() {
		got, err := s.repo.FindByID(s.ctx, d.ID())
		s.Require().NoError(err)
		s.assertSame(d, got)
	})

	s.Run("by filing number", func() {
		got, err := s.repo.FindByFilingNumber(s.ctx, d.FilingNumber())
		s.Require().NoError(err)
		s.assertSame(d, got)
	})

	s.Run("missing", func() {
		_, err := s.repo.FindByID(s.ctx, uuid.New())
		s.ErrorIs(err, ErrNotFound)
		_, err = s.repo.FindByFilingNumber(s.ctx, "DECL-1999-000001")
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *RepositoryContractSuite) TestCreateRejectsDuplicates() {
	first := s.create("101000002", periodFeb, declaration.TaxTypeIncome)

	s.Run("same open period and tax type", func() {
		dup := s.newDeclaration("101000002", periodFeb, declaration.TaxTypeIncome)
		err := s.repo.Create(s.ctx, dup)
		s.ErrorIs(err, ErrOpenPeriodTaken)
		s.ErrorIs(err, ErrDuplicate)
	})

	s.Run("same filing number", func() {
		snap := s.newDeclaration("101000099", periodMar, declaration.TaxTypeVAT).Snapshot()
		snap.FilingNumber = first.FilingNumber()
		dup, err := declaration.Restore(snap)
		s.Require().NoError(err)

		err = s.repo.Create(s.ctx, dup)
		s.ErrorIs(err, ErrDuplicate)
		s.NotErrorIs(err, ErrOpenPeriodTaken)
	})

	s.Run("other tax type is allowed", func() {
		other := s.newDeclaration("101000002", periodFeb, declaration.TaxTypeExcise)
		s.NoError(s.repo.Create(s.ctx, other))
	})

	s.Run("rejected declaration frees the period", func() {
		s.Require().NoError(first.File(s.tick))
		s.Require().NoError(s.repo.Update(s.ctx, first))
		s.Require().NoError(first.Reject("wrong annex"))
		s.Require().NoError(s.repo.Update(s.ctx, first))

		exists, err := s.repo.ExistsForPeriod(s.ctx, "101000002", periodFeb, declaration.TaxTypeIncome)
		s.Require().NoError(err)
		s.False(exists)

		again := s.newDeclaration("101000002", periodFeb, declaration.TaxTypeIncome)
		s.NoError(s.repo.Create(s.ctx, again))
	})
}

func (s *RepositoryContractSuite) TestExistsForPeriod() {
	s.create("101000003", periodMar, declaration.TaxTypeVAT)

	exists, err := s.repo.ExistsForPeriod(s.ctx, "101000003", periodMar, declaration.TaxTypeVAT)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsForPeriod(s.ctx, "101000003", periodFeb, declaration.TaxTypeVAT)
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.repo.ExistsForPeriod(s.ctx, "101000099", periodMar, declaration.TaxTypeVAT)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositoryContractSuite) TestUpdate() {
	d := s.create("101000004", periodFeb, declaration.TaxTypeExcise)

	s.Run("persists lifecycle changes and bumps version", func() {
		filedAt := time.Date(2025, time.May, 2, 8, 30, 0, 0, time.UTC)
		s.Require().NoError(d.File(filedAt))
		s.Require().NoError(s.repo.Update(s.ctx, d))
		s.Equal(int64(2), d.Version())

		got, err := s.repo.FindByID(s.ctx, d.ID())
		s.Require().NoError(err)
		s.assertSame(d, got)
		s.True(got.Penalty().IsPositive())
	})

	s.Run("stale version conflicts", func() {
		a, err := s.repo.FindByID(s.ctx, d.ID())
		s.Require().NoError(err)
		b, err := s.repo.FindByID(s.ctx, d.ID())
		s.Require().NoError(err)

		s.Require().NoError(a.Approve())
		s.Require().NoError(s.repo.Update(s.ctx, a))

		s.Require().NoError(b.Reject("late"))
		s.ErrorIs(s.repo.Update(s.ctx, b), ErrConflict)

		got, err := s.repo.FindByID(s.ctx, d.ID())
		s.Require().NoError(err)
		s.Equal(declaration.StatusApproved, got.Status())
		s.Nil(got.RejectionRemarks())
	})

	s.Run("unknown id", func() {
		ghost := s.newDeclaration("101000005", periodFeb, declaration.TaxTypeExcise)
		s.ErrorIs(s.repo.Update(s.ctx, ghost), ErrNotFound)
	})
}

func (s *RepositoryContractSuite) TestListByTaxpayer() {
	var created []*declaration.Declaration
	for _, tt := range []declaration.TaxType{declaration.TaxTypeIncome, declaration.TaxTypeVAT, declaration.TaxTypeExcise} {
		created = append(created, s.create("101000006", periodFeb, tt))
	}
	created = append(created, s.create("101000006", periodMar, declaration.TaxTypeVAT))
	s.create("101000007", periodFeb, declaration.TaxTypeVAT)

	total, err := s.repo.CountByTaxpayer(s.ctx, "101000006")
	s.Require().NoError(err)
	s.Equal(int64(4), total)

	page1, err := s.repo.ListByTaxpayer(s.ctx, "101000006", 1, 3)
	s.Require().NoError(err)
	s.Require().Len(page1, 3)
	s.Equal(created[3].ID(), page1[0].ID(), "newest first")
	s.Equal(created[2].ID(), page1[1].ID())
	s.Equal(created[1].ID(), page1[2].ID())

	page2, err := s.repo.ListByTaxpayer(s.ctx, "101000006", 2, 3)
	s.Require().NoError(err)
	s.Require().Len(page2, 1)
	s.Equal(created[0].ID(), page2[0].ID())

	empty, err := s.repo.ListByTaxpayer(s.ctx, "101000006", 5, 3)
	s.Require().NoError(err)
	s.Empty(empty)

	far, err := s.repo.ListByTaxpayer(s.ctx, "101000006", math.MaxInt, 100)
	s.Require().NoError(err)
	s.Empty(far)

	none, err := s.repo.ListByTaxpayer(s.ctx, "999999999", 1, 10)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RepositoryContractSuite) TestNextFilingSequence() {
	a, err := s.repo.NextFilingSequence(s.ctx, 2030)
	s.Require().NoError(err)
	b, err := s.repo.NextFilingSequence(s.ctx, 2030)
	s.Require().NoError(err)
	c, err := s.repo.NextFilingSequence(s.ctx, 2031)
	s.Require().NoError(err)

	s.Equal(int64(1), a)
	s.Equal(int64(2), b)
	s.Equal(int64(1), c)
}

func (s *RepositoryContractSuite) TestConcurrentSequencesAreUnique() {
	const workers = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.tx.RunInTx(s.ctx, func(txCtx context.Context) error {
				v, err := s.repo.NextFilingSequence(txCtx, 2040)
				if err != nil {
					return err
				}
				mu.Lock()
				seen[v] = true
				mu.Unlock()
				return nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()
	s.Len(seen, workers)
}

func (s *RepositoryContractSuite) TestLockForUpdateInTransaction() {
	d := s.create("101000008", periodMar, declaration.TaxTypeIncome)

	err := s.tx.RunInTx(s.ctx, func(txCtx context.Context) error {
		s.Require().NoError(s.repo.LockPeriod(txCtx, d.TaxpayerID(), d.Period(), d.TaxType()))
		locked, err := s.repo.LockForUpdate(txCtx, d.ID())
		if err != nil {
			return err
		}
		if err := locked.UpdateAmounts(decimal.NewFromInt(900000), decimal.Zero); err != nil {
			return err
		}
		return s.repo.Update(txCtx, locked)
	})
	s.Require().NoError(err)

	got, err := s.repo.FindByID(s.ctx, d.ID())
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(900000).Equal(got.Income()))
	s.Equal(int64(2), got.Version())

	err = s.tx.RunInTx(s.ctx, func(txCtx context.Context) error {
		_, err := s.repo.LockForUpdate(txCtx, uuid.New())
		return err
	})
	s.ErrorIs(err, ErrNotFound)
}
