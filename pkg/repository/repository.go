package repository

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/google/uuid"
)

// IndividualRepository defines data access for customers.
// Lookups return (nil, nil) when nothing matches.
type IndividualRepository interface {
	Create(ctx context.Context, ind *individual.Individual) error
	Get(ctx context.Context, id uuid.UUID) (*individual.Individual, error)
	GetByUsername(ctx context.Context, username string) (*individual.Individual, error)
	// Search returns individuals whose login name contains query,
	// case-insensitively, with an exact match first.
	Search(ctx context.Context, query string, limit int) ([]*individual.Individual, error)
}

// AccountRepository defines data access for ledger accounts.
type AccountRepository interface {
	Create(ctx context.Context, acc *account.Account) error
	// Update persists the balance and updated-at timestamp. It returns
	// domain.ErrNotFound when no row has the account's ID.
	Update(ctx context.Context, acc *account.Account) error
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error)
}

// TransactionRepository defines data access for the append-only transaction log.
// There is deliberately no Update or Delete.
type TransactionRepository interface {
	Create(ctx context.Context, tx *account.Transaction) error
	// ListByAccount returns the newest entries first.
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*account.Transaction, error)
}

// EmployeeRepository defines data access for operator identities.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *employee.Employee) error
	GetByUsername(ctx context.Context, username string) (*employee.Employee, error)
}
