package repository

import (
	"context"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Repositories obtained from the UnitOfWork passed to Do's callback share one
// database transaction, so a balance update and its transaction record are
// committed together or not at all.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	IndividualRepository() (IndividualRepository, error)
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
	EmployeeRepository() (EmployeeRepository, error)
}
