package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/banking/internal/fixtures/mocks"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/repository"
	authsvc "github.com/amirasaad/banking/pkg/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func validParams() individual.Params {
	return individual.Params{
		Username:  "jdoe",
		Password:  "s3cret",
		FirstName: "John",
		LastName:  "Doe",
		Age:       30,
		Address:   "1 Main St",
	}
}

func expectDo(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
}

func TestSignup_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	accRepo := mocks.NewMockAccountRepository(t)

	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	uow.EXPECT().AccountRepository().Return(accRepo, nil).Once()
	indRepo.EXPECT().GetByUsername(mock.Anything, "jdoe").Return(nil, nil).Once()
	indRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*individual.Individual")).Return(nil).Once()

	var kinds []account.Kind
	accRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, acc *account.Account) {
			kinds = append(kinds, acc.Kind)
			assert.Zero(t, acc.Balance())
		}).
		Return(nil).Times(3)

	ind, err := authsvc.New(uow, discard).Signup(context.Background(), validParams())
	require.NoError(t, err)
	assert.Len(t, ind.ID.String(), 36)
	assert.NotEqual(t, "s3cret", ind.PasswordHash)
	assert.True(t, ind.CheckPassword("s3cret"))
	assert.Equal(t, account.Kinds(), kinds)
}

func TestSignup_Underage(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	p := validParams()
	p.Age = 17

	ind, err := authsvc.New(uow, discard).Signup(context.Background(), p)
	assert.Nil(t, ind)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "18")
}

func TestSignup_UsernameTaken(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	existing, err := individual.New(validParams())
	require.NoError(t, err)

	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	indRepo.EXPECT().GetByUsername(mock.Anything, "jdoe").Return(existing, nil).Once()

	ind, err := authsvc.New(uow, discard).Signup(context.Background(), validParams())
	assert.Nil(t, ind)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestSignup_AccountInsertFails(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	accRepo := mocks.NewMockAccountRepository(t)
	boom := errors.New("insert failed")

	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	uow.EXPECT().AccountRepository().Return(accRepo, nil).Once()
	indRepo.EXPECT().GetByUsername(mock.Anything, "jdoe").Return(nil, nil).Once()
	indRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	accRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(boom).Once()

	ind, err := authsvc.New(uow, discard).Signup(context.Background(), validParams())
	assert.Nil(t, ind)
	assert.ErrorIs(t, err, boom)
}

func setupLogin(t *testing.T, ind *individual.Individual, accounts []*account.Account) *mocks.MockUnitOfWork {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	indRepo.EXPECT().GetByUsername(mock.Anything, "jdoe").Return(ind, nil).Once()
	if accounts != nil {
		accRepo := mocks.NewMockAccountRepository(t)
		uow.EXPECT().AccountRepository().Return(accRepo, nil).Once()
		accRepo.EXPECT().ListByOwner(mock.Anything, ind.ID).Return(accounts, nil).Once()
	}
	return uow
}

func TestLogin_Success(t *testing.T) {
	ind, err := individual.New(validParams())
	require.NoError(t, err)
	accounts, err := ind.MakeBasicAccounts()
	require.NoError(t, err)
	uow := setupLogin(t, ind, accounts)

	sess, ok, err := authsvc.New(uow, discard).Login(context.Background(), "jdoe", "s3cret")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ind, sess.User())
	checking, err := sess.Account("checking")
	require.NoError(t, err)
	assert.Equal(t, accounts[0], checking)
}

func TestLogin_WrongPassword(t *testing.T) {
	ind, err := individual.New(validParams())
	require.NoError(t, err)
	uow := setupLogin(t, ind, nil)

	sess, ok, err := authsvc.New(uow, discard).Login(context.Background(), "jdoe", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sess)
}

func TestLogin_UnknownUser(t *testing.T) {
	uow := setupLogin(t, nil, nil)

	sess, ok, err := authsvc.New(uow, discard).Login(context.Background(), "jdoe", "s3cret")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sess)
}

func TestLogin_MissingAccount(t *testing.T) {
	ind, err := individual.New(validParams())
	require.NoError(t, err)
	accounts, err := ind.MakeBasicAccounts()
	require.NoError(t, err)
	uow := setupLogin(t, ind, accounts[:2])

	sess, ok, err := authsvc.New(uow, discard).Login(context.Background(), "jdoe", "s3cret")
	assert.Nil(t, sess)
	assert.False(t, ok)
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"creditcard"}, cfgErr.Missing)
}

func TestLogin_RepositoryError(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	indRepo := mocks.NewMockIndividualRepository(t)
	dbErr := errors.New("connection refused")
	expectDo(uow)
	uow.EXPECT().IndividualRepository().Return(indRepo, nil).Once()
	indRepo.EXPECT().GetByUsername(mock.Anything, "jdoe").Return(nil, dbErr).Once()

	_, ok, err := authsvc.New(uow, discard).Login(context.Background(), "jdoe", "s3cret")
	assert.False(t, ok)
	assert.ErrorIs(t, err, dbErr)
}

func TestEmployeeLogin(t *testing.T) {
	emp, err := employee.New(employee.Params{
		Username: "teller", Password: "pw", FirstName: "Tess", LastName: "Teller",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		found    *employee.Employee
		password string
		wantOK   bool
	}{
		{"valid credentials", emp, "pw", true},
		{"wrong password", emp, "bad", false},
		{"unknown employee", nil, "pw", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := mocks.NewMockUnitOfWork(t)
			repo := mocks.NewMockEmployeeRepository(t)
			uow.EXPECT().EmployeeRepository().Return(repo, nil).Once()
			repo.EXPECT().GetByUsername(mock.Anything, "teller").Return(tt.found, nil).Once()

			got, ok, err := authsvc.New(uow, discard).EmployeeLogin(context.Background(), "teller", tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, emp.ID, got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
