package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/N05TR4/gdt-sistema/internal/declaration"
	"github.com/N05TR4/gdt-sistema/internal/events"
	"github.com/N05TR4/gdt-sistema/internal/platform/clock"
	"github.com/N05TR4/gdt-sistema/internal/platform/logger"
	"github.com/N05TR4/gdt-sistema/internal/repository"
	"github.com/N05TR4/gdt-sistema/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockedService(t *testing.T) (*mocks.MockDeclarationRepository, DeclarationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDeclarationRepository(ctrl)
	svc := NewDeclarationService(
		repo,
		repository.NewMemoryTransactionManager(),
		events.Nop{},
		clock.NewFixed(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
		logger.Discard(),
	)
	return repo, svc
}

func draftDeclaration(t *testing.T) *declaration.Declaration {
	t.Helper()
	d, err := declaration.New(declaration.NewParams{
		TaxpayerID: "101123456",
		LegalName:  "Comercial Santo Domingo SRL",
		Period:     declaration.Period{Year: 2025, Month: time.February},
		TaxType:    declaration.TaxTypeVAT,
		Income:     decimal.NewFromInt(100000),
		Expenses:   decimal.NewFromInt(30000),
	}, func(int) (int64, error) { return 1, nil }, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	d.SetVersion(1)
	return d
}

func vatRequest() CreateDeclarationRequest {
	return CreateDeclarationRequest{
		TaxpayerID: "101123456",
		LegalName:  "Comercial Santo Domingo SRL",
		Period:     "2025-02",
		TaxType:    2,
		Income:     "100000",
		Expenses:   "30000",
	}
}

func TestCreateDeclarationLosesRaceToUniqueIndex(t *testing.T) {
	repo, svc := newMockedService(t)

	gomock.InOrder(
		repo.EXPECT().LockPeriod(gomock.Any(), "101123456", gomock.Any(), declaration.TaxTypeVAT).Return(nil),
		repo.EXPECT().ExistsForPeriod(gomock.Any(), "101123456", gomock.Any(), declaration.TaxTypeVAT).Return(false, nil),
		repo.EXPECT().NextFilingSequence(gomock.Any(), 2025).Return(int64(9), nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrOpenPeriodTaken),
	)

	_, err := svc.CreateDeclaration(context.Background(), vatRequest())
	assert.ErrorIs(t, err, ErrDuplicatePeriod)
}

func TestCreateDeclarationOtherUniqueViolationIsInternal(t *testing.T) {
	for name, dupErr := range map[string]error{
		"filing number": fmt.Errorf("%w: declarations_filing_number_key", repository.ErrDuplicate),
		"primary key":   fmt.Errorf("%w: declarations_pkey", repository.ErrDuplicate),
	} {
		t.Run(name, func(t *testing.T) {
			repo, svc := newMockedService(t)

			repo.EXPECT().LockPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			repo.EXPECT().ExistsForPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			repo.EXPECT().NextFilingSequence(gomock.Any(), 2025).Return(int64(9), nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dupErr)

			_, err := svc.CreateDeclaration(context.Background(), vatRequest())
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrDuplicatePeriod)
			assert.ErrorIs(t, err, repository.ErrDuplicate)
			assert.Contains(t, err.Error(), "create declaration")
		})
	}
}

func TestCreateDeclarationSkipsSequenceOnDuplicate(t *testing.T) {
	repo, svc := newMockedService(t)

	repo.EXPECT().LockPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ExistsForPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().NextFilingSequence(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateDeclaration(context.Background(), vatRequest())
	assert.ErrorIs(t, err, ErrDuplicatePeriod)
}

func TestMutationVersionConflict(t *testing.T) {
	repo, svc := newMockedService(t)
	d := draftDeclaration(t)

	repo.EXPECT().LockForUpdate(gomock.Any(), d.ID()).Return(d, nil)
	repo.EXPECT().Update(gomock.Any(), d).Return(repository.ErrConflict)

	_, err := svc.FileDeclaration(context.Background(), d.ID().String())
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
}

func TestDomainFailureSkipsUpdate(t *testing.T) {
	repo, svc := newMockedService(t)
	d := draftDeclaration(t)

	repo.EXPECT().LockForUpdate(gomock.Any(), d.ID()).Return(d, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ApproveDeclaration(context.Background(), d.ID().String())
	assert.ErrorIs(t, err, declaration.ErrInvalidState)
}

func TestStorageFailureIsWrapped(t *testing.T) {
	repo, svc := newMockedService(t)
	boom := errors.New("connection reset by peer")
	id := uuid.New()

	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, boom)

	_, err := svc.GetDeclaration(context.Background(), id.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDeclarationNotFound)
	assert.Contains(t, err.Error(), "get declaration")
}

func TestListByTaxpayerCountFailure(t *testing.T) {
	repo, svc := newMockedService(t)
	boom := errors.New("timeout")

	repo.EXPECT().CountByTaxpayer(gomock.Any(), "101123456").Return(int64(0), boom)
	repo.EXPECT().ListByTaxpayer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ListByTaxpayer(context.Background(), "101123456", 1, 10)
	assert.ErrorIs(t, err, boom)
}
