package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/repository"
)

const (
	// StartingBalance is the balance every seeded account opens with.
	StartingBalance int64 = 1000
	// OpeningDebit is recorded against each seeded checking account.
	OpeningDebit int64 = 100
)

// Fixtures is the demo data written by Run.
type Fixtures struct {
	Individuals []individual.Params
	Employees   []employee.Params
}

// Load reads both fixture files; empty paths use the embedded data.
func Load(individualsPath, employeesPath string) (*Fixtures, error) {
	inds, err := LoadIndividualsCSV(individualsPath)
	if err != nil {
		return nil, fmt.Errorf("load individuals: %w", err)
	}
	emps, err := LoadEmployeesCSV(employeesPath)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return &Fixtures{Individuals: inds, Employees: emps}, nil
}

// Run stores every fixture. Each individual is written with its accounts
// and opening transaction in its own unit of work. Login names that already
// exist are skipped so Run can be repeated against a seeded database.
func Run(
	ctx context.Context,
	uow repository.UnitOfWork,
	f *Fixtures,
	logger *slog.Logger,
) error {
	for _, p := range f.Individuals {
		created, err := seedIndividual(ctx, uow, p)
		if err != nil {
			return fmt.Errorf("seed individual %q: %w", p.Username, err)
		}
		if !created {
			logger.Info("Individual already present, skipping", "user", p.Username)
			continue
		}
		logger.Info("Seeded individual", "user", p.Username)
	}
	for _, p := range f.Employees {
		created, err := seedEmployee(ctx, uow, p)
		if err != nil {
			return fmt.Errorf("seed employee %q: %w", p.Username, err)
		}
		if !created {
			logger.Info("Employee already present, skipping", "employee", p.Username)
			continue
		}
		logger.Info("Seeded employee", "employee", p.Username)
	}
	return nil
}

func seedIndividual(
	ctx context.Context,
	uow repository.UnitOfWork,
	p individual.Params,
) (created bool, err error) {
	ind, err := individual.New(p)
	if err != nil {
		return false, err
	}
	accounts, err := ind.MakeAccountsWithBalance(StartingBalance)
	if err != nil {
		return false, err
	}
	var checking *account.Account
	for _, acc := range accounts {
		if acc.Kind == account.Checking {
			checking = acc
		}
	}
	tx, err := checking.Debit(OpeningDebit)
	if err != nil {
		return false, err
	}

	err = uow.Do(ctx, func(uow repository.UnitOfWork) error {
		indRepo, err := uow.IndividualRepository()
		if err != nil {
			return err
		}
		existing, err := indRepo.GetByUsername(ctx, ind.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		if err := indRepo.Create(ctx, ind); err != nil {
			return err
		}
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			if err := accRepo.Create(ctx, acc); err != nil {
				return fmt.Errorf("create %s account: %w", acc.Kind, err)
			}
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

func seedEmployee(
	ctx context.Context,
	uow repository.UnitOfWork,
	p employee.Params,
) (bool, error) {
	emp, err := employee.New(p)
	if err != nil {
		return false, err
	}
	repo, err := uow.EmployeeRepository()
	if err != nil {
		return false, err
	}
	existing, err := repo.GetByUsername(ctx, emp.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := repo.Create(ctx, emp); err != nil {
		return false, err
	}
	return true, nil
}
