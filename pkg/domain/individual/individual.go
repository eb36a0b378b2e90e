package individual

import (
	"fmt"
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/utils"
	"github.com/amirasaad/banking/pkg/validation"
	"github.com/google/uuid"
)

// Params is the signup input for a new customer.
type Params struct {
	Username  string `json:"user_name" validate:"username"`
	Password  string `json:"password" validate:"password"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	Age       int    `json:"age_num" validate:"adult"`
	Address   string `json:"address" validate:"required,max=255"`
}

// Individual is a bank customer. The password is only ever held as a bcrypt hash.
type Individual struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Age          int
	Address      string
	CreatedAt    time.Time
}

// New validates p, hashes the password and assigns a new ID.
func New(p Params) (*Individual, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	hashedPassword, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Individual{
		ID:           uuid.New(),
		Username:     p.Username,
		PasswordHash: hashedPassword,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Age:          p.Age,
		Address:      p.Address,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NewFromData creates an Individual from raw data (used for DB hydration).
func NewFromData(
	id uuid.UUID,
	username, passwordHash, firstName, lastName string,
	age int,
	address string,
	created time.Time,
) *Individual {
	return &Individual{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Age:          age,
		Address:      address,
		CreatedAt:    created,
	}
}

// CheckPassword reports whether password matches the stored hash.
func (i *Individual) CheckPassword(password string) bool {
	return utils.CheckPasswordHash(password, i.PasswordHash)
}

// FullName joins first and last name.
func (i *Individual) FullName() string {
	return i.FirstName + " " + i.LastName
}

// MakeBasicAccounts returns the checking, savings and credit card accounts
// every individual holds, each with a zero balance.
func (i *Individual) MakeBasicAccounts() ([]*account.Account, error) {
	return i.MakeAccountsWithBalance(0)
}

// MakeAccountsWithBalance is MakeBasicAccounts with a starting balance.
func (i *Individual) MakeAccountsWithBalance(startingBalance int64) ([]*account.Account, error) {
	makers := []func(uuid.UUID, int64) (*account.Account, error){
		account.MakeChecking,
		account.MakeSavings,
		account.MakeCreditCard,
	}
	accounts := make([]*account.Account, 0, len(makers))
	for _, mk := range makers {
		acc, err := mk(i.ID, startingBalance)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// Equal reports whether both individuals have the same identifier.
func (i *Individual) Equal(other *Individual) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.ID == other.ID
}
