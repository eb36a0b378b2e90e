package account

import (
	"math"
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionAmountMustBePositive is returned when a debit or credit amount is zero or negative.
	ErrTransactionAmountMustBePositive = domain.NewValidationError("amount", "must be positive")

	// ErrNegativeBalance is returned when a balance, or the result of an operation, would drop below zero.
	ErrNegativeBalance = domain.NewValidationError("balance", "cannot be negative")

	// ErrBalanceOverflow is returned when an operation would exceed the largest representable balance.
	ErrBalanceOverflow = domain.NewValidationError("amount", "exceeds maximum safe balance")

	// ErrOwnerRequired is returned when an account is built without an owning individual.
	ErrOwnerRequired = domain.NewValidationError("owner_id", "is required")

	// ErrInvalidKind is returned for an account kind outside the supported set.
	ErrInvalidKind = domain.NewValidationError("kind", "must be one of checking, savings, creditcard")

	// ErrInvalidPolarity is returned for a polarity that is neither asset nor liability.
	ErrInvalidPolarity = domain.NewValidationError("polarity", "must be asset or liability")

	// ErrNegativeInterestRate is returned when an interest rate is below zero.
	ErrNegativeInterestRate = domain.NewValidationError("interest_rate", "should be >= 0")
)

// Interest rates of the basic account set.
var (
	CheckingRate   = decimal.Zero
	SavingsRate    = decimal.RequireFromString("0.05")
	CreditCardRate = decimal.RequireFromString("0.025")
)

// Account is a single ledger account owned by an individual.
//
// Invariants:
//   - OwnerID is never nil.
//   - Kind and Polarity are members of their closed sets.
//   - The balance is never negative. Debit and Credit compute the new
//     balance first and leave the account untouched when it is invalid.
type Account struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Kind         Kind
	Polarity     Polarity
	InterestRate decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	balance int64
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	kind        Kind
	polarity    Polarity
	polaritySet bool
	balance     int64
	rate        decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a new Builder with a fresh UUID and the current time.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithOwnerID sets the owning individual. This is a mandatory field.
func (b *Builder) WithOwnerID(ownerID uuid.UUID) *Builder {
	b.ownerID = ownerID
	return b
}

// WithKind sets the account kind. Unless WithPolarity is called, the
// polarity is derived from the kind.
func (b *Builder) WithKind(kind Kind) *Builder {
	b.kind = kind
	return b
}

// WithPolarity overrides the polarity derived from the kind.
func (b *Builder) WithPolarity(p Polarity) *Builder {
	b.polarity = p
	b.polaritySet = true
	return b
}

// WithBalance sets the starting balance.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.balance = balance
	return b
}

// WithInterestRate sets the informational interest rate.
func (b *Builder) WithInterestRate(rate decimal.Decimal) *Builder {
	b.rate = rate
	return b
}

// WithCreatedAt sets the creation timestamp. This is primarily for hydrating
// an existing account from a data store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp. This is primarily for hydrating
// an existing account from a data store.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates every field and returns the account, or the first
// validation error without constructing anything.
func (b *Builder) Build() (*Account, error) {
	if b.ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if !b.kind.Valid() {
		return nil, ErrInvalidKind
	}
	polarity := b.kind.DefaultPolarity()
	if b.polaritySet {
		polarity = b.polarity
	}
	if !polarity.Valid() {
		return nil, ErrInvalidPolarity
	}
	if err := validateBalance(b.balance); err != nil {
		return nil, err
	}
	if b.rate.IsNegative() {
		return nil, ErrNegativeInterestRate
	}
	return &Account{
		ID:           b.id,
		OwnerID:      b.ownerID,
		Kind:         b.kind,
		Polarity:     polarity,
		InterestRate: b.rate,
		CreatedAt:    b.createdAt,
		UpdatedAt:    b.updatedAt,
		balance:      b.balance,
	}, nil
}

// MakeChecking returns an asset account with no interest.
func MakeChecking(ownerID uuid.UUID, startingBalance int64) (*Account, error) {
	return New().
		WithOwnerID(ownerID).
		WithKind(Checking).
		WithBalance(startingBalance).
		WithInterestRate(CheckingRate).
		Build()
}

// MakeSavings returns an asset account earning SavingsRate.
func MakeSavings(ownerID uuid.UUID, startingBalance int64) (*Account, error) {
	return New().
		WithOwnerID(ownerID).
		WithKind(Savings).
		WithBalance(startingBalance).
		WithInterestRate(SavingsRate).
		Build()
}

// MakeCreditCard returns a liability account charging CreditCardRate.
func MakeCreditCard(ownerID uuid.UUID, startingBalance int64) (*Account, error) {
	return New().
		WithOwnerID(ownerID).
		WithKind(CreditCard).
		WithBalance(startingBalance).
		WithInterestRate(CreditCardRate).
		Build()
}

// Balance returns the current balance.
func (a *Account) Balance() int64 {
	return a.balance
}

// Debit records a debit of amount. Asset balances rise, liability balances fall.
func (a *Account) Debit(amount int64) (*Transaction, error) {
	return a.apply(Debit, amount)
}

// Credit records a credit of amount. Asset balances fall, liability balances rise.
func (a *Account) Credit(amount int64) (*Transaction, error) {
	return a.apply(Credit, amount)
}

func (a *Account) apply(kind TransactionKind, amount int64) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrTransactionAmountMustBePositive
	}
	if !a.Polarity.Valid() {
		return nil, ErrInvalidPolarity
	}
	delta := amount * a.Polarity.Sign()
	if kind == Credit {
		delta = -delta
	}
	if delta > 0 && a.balance > math.MaxInt64-delta {
		return nil, ErrBalanceOverflow
	}
	next := a.balance + delta
	if err := validateBalance(next); err != nil {
		return nil, err
	}
	tx, err := NewTransaction(a.ID, kind, amount)
	if err != nil {
		return nil, err
	}
	a.balance = next
	a.UpdatedAt = tx.CreatedAt
	return tx, nil
}

// Clone returns an independent copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

// Equal reports whether both accounts have the same identifier.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.ID == other.ID
}

func validateBalance(balance int64) error {
	if balance < 0 {
		return ErrNegativeBalance
	}
	return nil
}
