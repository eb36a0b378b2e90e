package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/amirasaad/banking/pkg/session"
	"github.com/amirasaad/banking/pkg/utils"
)

// dummyHash is compared against when the login name is unknown, so a miss
// costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("dummy-password")
	return hash
})

// Service registers customers and employees and checks their credentials.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// Signup validates p and stores the new individual together with its
// basic account set in one unit of work. A taken login name fails with
// domain.ErrAlreadyExists and stores nothing.
func (s *Service) Signup(
	ctx context.Context,
	p individual.Params,
) (ind *individual.Individual, err error) {
	log := s.logger.With("user", p.Username)
	log.Debug("Signup called")

	ind, err = individual.New(p)
	if err != nil {
		log.Warn("Signup rejected", "error", err)
		return nil, err
	}
	accounts, err := ind.MakeBasicAccounts()
	if err != nil {
		log.Error("Failed to create basic accounts", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return createIndividual(ctx, uow, ind, accounts)
	})
	if err != nil {
		log.Error("Signup failed", "error", err)
		return nil, err
	}
	log.Info("Signup successful", "id", ind.ID)
	return ind, nil
}

func createIndividual(
	ctx context.Context,
	uow repository.UnitOfWork,
	ind *individual.Individual,
	accounts []*account.Account,
) error {
	indRepo, err := uow.IndividualRepository()
	if err != nil {
		return fmt.Errorf("failed to get individual repository: %w", err)
	}
	existing, err := indRepo.GetByUsername(ctx, ind.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user name %q: %w", ind.Username, domain.ErrAlreadyExists)
	}
	if err := indRepo.Create(ctx, ind); err != nil {
		return err
	}

	accRepo, err := uow.AccountRepository()
	if err != nil {
		return fmt.Errorf("failed to get account repository: %w", err)
	}
	for _, acc := range accounts {
		if err := accRepo.Create(ctx, acc); err != nil {
			return fmt.Errorf("create %s account: %w", acc.Kind, err)
		}
	}
	return nil
}

// Login checks the credentials and binds the individual to its accounts.
// An unknown user or a wrong password reports ok == false with a nil error.
// A customer whose account set is incomplete fails with a
// *domain.ConfigurationError.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (sess *session.Context, ok bool, err error) {
	log := s.logger.With("user", username)
	log.Debug("Login called")

	var (
		ind      *individual.Individual
		accounts []*account.Account
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		indRepo, err := uow.IndividualRepository()
		if err != nil {
			return fmt.Errorf("failed to get individual repository: %w", err)
		}
		ind, err = indRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if ind == nil {
			_ = utils.CheckPasswordHash(password, dummyHash())
			return nil
		}
		if !ind.CheckPassword(password) {
			ind = nil
			return nil
		}
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return fmt.Errorf("failed to get account repository: %w", err)
		}
		accounts, err = accRepo.ListByOwner(ctx, ind.ID)
		return err
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, false, err
	}
	if ind == nil {
		log.Warn("Login failed", "error", domain.ErrUnauthorized)
		return nil, false, nil
	}

	sess, err = session.New(ind, accounts)
	if err != nil {
		log.Error("Session setup failed", "error", err)
		return nil, false, err
	}
	log.Info("Login successful", "id", ind.ID)
	return sess, true, nil
}

// EmployeeLogin checks operator credentials with the same outcomes as Login.
func (s *Service) EmployeeLogin(
	ctx context.Context,
	username, password string,
) (*employee.Employee, bool, error) {
	log := s.logger.With("employee", username)
	log.Debug("EmployeeLogin called")

	repo, err := s.uow.EmployeeRepository()
	if err != nil {
		err = fmt.Errorf("failed to get employee repository: %w", err)
		log.Error("EmployeeLogin failed", "error", err)
		return nil, false, err
	}
	emp, err := repo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("EmployeeLogin failed", "error", err)
		return nil, false, err
	}
	if emp == nil {
		_ = utils.CheckPasswordHash(password, dummyHash())
		log.Warn("EmployeeLogin failed", "error", domain.ErrUnauthorized)
		return nil, false, nil
	}
	if !emp.CheckPassword(password) {
		log.Warn("EmployeeLogin failed", "error", domain.ErrUnauthorized)
		return nil, false, nil
	}
	log.Info("EmployeeLogin successful", "id", emp.ID)
	return emp, true, nil
}
