package account

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/google/uuid"
)

// ErrInvalidTransactionKind is returned for a transaction kind other than Debit or Credit.
var ErrInvalidTransactionKind = domain.NewValidationError("transaction_type", "must be DEBIT or CREDIT")

// ErrAccountRequired is returned when a transaction has no owning account.
var ErrAccountRequired = domain.NewValidationError("account_id", "is required")

// TransactionKind is either Debit or Credit.
type TransactionKind string

const (
	Debit  TransactionKind = "DEBIT"
	Credit TransactionKind = "CREDIT"
)

// Valid reports whether k is Debit or Credit.
func (k TransactionKind) Valid() bool {
	return k == Debit || k == Credit
}

// Transaction is an immutable entry of an account's append-only log.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Kind      TransactionKind
	Amount    int64
	CreatedAt time.Time
}

// NewTransaction validates its input and stamps the entry with a new ID and
// the current time.
func NewTransaction(accountID uuid.UUID, kind TransactionKind, amount int64) (*Transaction, error) {
	if accountID == uuid.Nil {
		return nil, ErrAccountRequired
	}
	if !kind.Valid() {
		return nil, ErrInvalidTransactionKind
	}
	if amount <= 0 {
		return nil, ErrTransactionAmountMustBePositive
	}
	return &Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewTransactionFromData creates a Transaction from raw data (used for DB hydration or test fixtures).
// This bypasses invariants and should only be used for repository hydration or tests.
func NewTransactionFromData(
	id, accountID uuid.UUID,
	kind TransactionKind,
	amount int64,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:        id,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: created,
	}
}

// Equal reports whether both transactions have the same identifier.
func (t *Transaction) Equal(other *Transaction) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID
}
