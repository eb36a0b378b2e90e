package cli

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/session"
)

// AuthService is implemented by *auth.Service.
type AuthService interface {
	Signup(ctx context.Context, p individual.Params) (*individual.Individual, error)
	Login(ctx context.Context, username, password string) (*session.Context, bool, error)
	EmployeeLogin(ctx context.Context, username, password string) (*employee.Employee, bool, error)
}

// LedgerService is implemented by *ledger.Service.
type LedgerService interface {
	Deposit(ctx context.Context, sess *session.Context, kind string, amount int64) (*account.Transaction, error)
	Withdraw(ctx context.Context, sess *session.Context, kind string, amount int64) (*account.Transaction, error)
	History(ctx context.Context, sess *session.Context, kind string, limit int) ([]*account.Transaction, error)
}

// DirectoryService is implemented by *directory.Service.
type DirectoryService interface {
	Search(ctx context.Context, query string) ([]*individual.Individual, error)
}

// Services groups the collaborators the console needs.
type Services struct {
	Auth      AuthService
	Ledger    LedgerService
	Directory DirectoryService
}
