package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/banking/internal/fixtures/mocks"
	"github.com/amirasaad/banking/internal/fixtures/seed"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func fixtures() *seed.Fixtures {
	return &seed.Fixtures{
		Individuals: []individual.Params{{
			Username:  "JD",
			Password:  "password123",
			FirstName: "John",
			LastName:  "Doe",
			Age:       42,
			Address:   "12 Elm Street",
		}},
		Employees: []employee.Params{{
			Username:  "admin",
			Password:  "admin123",
			FirstName: "Ada",
			LastName:  "Admin",
		}},
	}
}

func expectDo(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
}

func TestRun_SeedsAccountsAndOpeningDebit(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	accRepo := mocks.NewMockAccountRepository(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	empRepo := mocks.NewMockEmployeeRepository(t)

	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	uow.EXPECT().AccountRepository().Return(accRepo, nil).Once()
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	uow.EXPECT().EmployeeRepository().Return(empRepo, nil).Once()

	indRepo.EXPECT().GetByUsername(mock.Anything, "JD").Return(nil, nil).Once()
	indRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*individual.Individual")).Return(nil).Once()

	balances := map[account.Kind]int64{}
	var checkingID uuid.UUID
	accRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, acc *account.Account) {
			balances[acc.Kind] = acc.Balance()
			if acc.Kind == account.Checking {
				checkingID = acc.ID
			}
		}).
		Return(nil).Times(3)

	var recorded *account.Transaction
	txRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tx *account.Transaction) { recorded = tx }).
		Return(nil).Once()

	empRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(nil, nil).Once()
	empRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*employee.Employee")).Return(nil).Once()

	require.NoError(t, seed.Run(context.Background(), uow, fixtures(), discard))

	assert.Equal(t, map[account.Kind]int64{
		account.Checking:   seed.StartingBalance + seed.OpeningDebit,
		account.Savings:    seed.StartingBalance,
		account.CreditCard: seed.StartingBalance,
	}, balances)
	require.NotNil(t, recorded)
	assert.Equal(t, account.Debit, recorded.Kind)
	assert.Equal(t, seed.OpeningDebit, recorded.Amount)
	assert.Equal(t, checkingID, recorded.AccountID)
}

func TestRun_SkipsExisting(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	empRepo := mocks.NewMockEmployeeRepository(t)

	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	uow.EXPECT().EmployeeRepository().Return(empRepo, nil).Once()

	existing := individual.NewFromData(uuid.New(), "JD", "hash", "John", "Doe", 42, "12 Elm Street", time.Time{})
	indRepo.EXPECT().GetByUsername(mock.Anything, "JD").Return(existing, nil).Once()
	empRepo.EXPECT().GetByUsername(mock.Anything, "admin").
		Return(employee.NewFromData(uuid.New(), "admin", "hash", "Ada", "Admin", time.Time{}), nil).Once()

	require.NoError(t, seed.Run(context.Background(), uow, fixtures(), discard))
}

func TestRun_PropagatesPersistenceError(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	boom := errors.New("boom")

	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	indRepo.EXPECT().GetByUsername(mock.Anything, "JD").Return(nil, nil).Once()
	indRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(boom).Once()

	err := seed.Run(context.Background(), uow, fixtures(), discard)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, `seed individual "JD"`)
}

func TestRun_RejectsInvalidFixture(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	f := fixtures()
	f.Individuals[0].Age = 12

	err := seed.Run(context.Background(), uow, f, discard)
	assert.ErrorContains(t, err, "age_num")
}

func TestLoad_Embedded(t *testing.T) {
	f, err := seed.Load("", "")
	require.NoError(t, err)
	assert.NotEmpty(t, f.Individuals)
	assert.NotEmpty(t, f.Employees)
}
