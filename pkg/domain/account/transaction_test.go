package account_test

import (
	"testing"
	"time"

	domainaccount "github.com/amirasaad/banking/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	t.Parallel()
	accountID := uuid.New()
	before := time.Now().UTC()
	tx, err := domainaccount.NewTransaction(accountID, domainaccount.Credit, 25)
	require.NoError(t, err)
	assert.Len(t, tx.ID.String(), 36)
	assert.Equal(t, accountID, tx.AccountID)
	assert.False(t, tx.CreatedAt.Before(before))
}

func TestNewTransactionValidation(t *testing.T) {
	t.Parallel()
	_, err := domainaccount.NewTransaction(uuid.Nil, domainaccount.Debit, 1)
	assert.ErrorIs(t, err, domainaccount.ErrAccountRequired)

	_, err = domainaccount.NewTransaction(uuid.New(), "REFUND", 1)
	assert.ErrorIs(t, err, domainaccount.ErrInvalidTransactionKind)

	_, err = domainaccount.NewTransaction(uuid.New(), domainaccount.Debit, -1)
	assert.ErrorIs(t, err, domainaccount.ErrTransactionAmountMustBePositive)
}
