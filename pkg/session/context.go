// Package session binds an authenticated individual to their account set.
package session

import (
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/individual"
)

// ErrUserRequired is returned when a context is built without an individual.
var ErrUserRequired = domain.NewValidationError("user", "is required")

// Context maps normalized account-kind names ("checking", "savings",
// "creditcard") to the logged-in individual's accounts.
type Context struct {
	user     *individual.Individual
	accounts map[string]*account.Account
}

// New builds a Context. Accounts owned by someone else are ignored. The
// individual must hold exactly one account of every kind, otherwise a
// *domain.ConfigurationError is returned.
func New(user *individual.Individual, accounts []*account.Account) (*Context, error) {
	if user == nil {
		return nil, ErrUserRequired
	}
	byKey := make(map[string]*account.Account, len(accounts))
	var duplicate []string
	for _, acc := range accounts {
		if acc == nil || acc.OwnerID != user.ID {
			continue
		}
		key := acc.Kind.Key()
		if _, seen := byKey[key]; seen {
			duplicate = append(duplicate, key)
			continue
		}
		byKey[key] = acc
	}
	var missing []string
	for _, kind := range account.Kinds() {
		if _, ok := byKey[kind.Key()]; !ok {
			missing = append(missing, kind.Key())
		}
	}
	if len(missing) > 0 || len(duplicate) > 0 {
		return nil, &domain.ConfigurationError{
			Owner:     user.ID.String(),
			Missing:   missing,
			Duplicate: duplicate,
		}
	}
	return &Context{user: user, accounts: byKey}, nil
}

// User returns the logged-in individual.
func (c *Context) User() *individual.Individual {
	return c.user
}

// Account looks up an account by kind name; the name is normalized first so
// "Credit Card" and "creditcard" are equivalent.
func (c *Context) Account(name string) (*account.Account, error) {
	acc, ok := c.accounts[account.NormalizeKey(name)]
	if !ok {
		return nil, account.ErrInvalidKind
	}
	return acc, nil
}

// Accounts returns the accounts in statement order.
func (c *Context) Accounts() []*account.Account {
	out := make([]*account.Account, 0, len(c.accounts))
	for _, kind := range account.Kinds() {
		out = append(out, c.accounts[kind.Key()])
	}
	return out
}

// Refresh swaps in the latest persisted state of one of the context's
// accounts. Accounts the context does not already hold are rejected.
func (c *Context) Refresh(acc *account.Account) error {
	current, ok := c.accounts[acc.Kind.Key()]
	if !ok || !current.Equal(acc) {
		return domain.ErrNotFound
	}
	c.accounts[acc.Kind.Key()] = acc
	return nil
}

// Line is one row of a balance statement.
type Line struct {
	Kind    account.Kind
	Balance int64
}

// Statement groups balances by polarity.
type Statement struct {
	Assets      []Line
	Liabilities []Line
}

// Statement reports the current balance of every account.
func (c *Context) Statement() Statement {
	var st Statement
	for _, acc := range c.Accounts() {
		line := Line{Kind: acc.Kind, Balance: acc.Balance()}
		if acc.Polarity.IsLiability() {
			st.Liabilities = append(st.Liabilities, line)
		} else {
			st.Assets = append(st.Assets, line)
		}
	}
	return st
}
