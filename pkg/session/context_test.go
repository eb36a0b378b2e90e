package session_test

import (
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T) *individual.Individual {
	t.Helper()
	return individual.NewFromData(uuid.New(), "alice", "hash", "Alice", "Smith", 30, "1 Main St", testTime)
}

func TestNewContext(t *testing.T) {
	t.Parallel()
	user := newUser(t)
	accounts, err := user.MakeAccountsWithBalance(5)
	require.NoError(t, err)

	sess, err := session.New(user, accounts)
	require.NoError(t, err)
	assert.Equal(t, user, sess.User())

	for _, name := range []string{"checking", "savings", "creditcard", "Credit Card", " CHECKING "} {
		acc, err := sess.Account(name)
		require.NoError(t, err, name)
		assert.Equal(t, user.ID, acc.OwnerID)
	}
	_, err = sess.Account("brokerage")
	assert.ErrorIs(t, err, account.ErrInvalidKind)

	got := sess.Accounts()
	require.Len(t, got, 3)
	assert.Equal(t, account.Checking, got[0].Kind)
	assert.Equal(t, account.Savings, got[1].Kind)
	assert.Equal(t, account.CreditCard, got[2].Kind)
}

func TestNewContextMissingSavings(t *testing.T) {
	t.Parallel()
	user := newUser(t)
	checking, err := account.MakeChecking(user.ID, 0)
	require.NoError(t, err)
	card, err := account.MakeCreditCard(user.ID, 0)
	require.NoError(t, err)

	sess, err := session.New(user, []*account.Account{checking, card})
	assert.Nil(t, sess)
	require.ErrorIs(t, err, domain.ErrConfiguration)
	var cerr *domain.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"savings"}, cerr.Missing)
}

func TestNewContextDuplicateAndForeign(t *testing.T) {
	t.Parallel()
	user := newUser(t)
	accounts, err := user.MakeBasicAccounts()
	require.NoError(t, err)
	extra, err := account.MakeChecking(user.ID, 0)
	require.NoError(t, err)

	_, err = session.New(user, append(accounts, extra))
	var cerr *domain.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"checking"}, cerr.Duplicate)

	foreign, err := account.MakeSavings(uuid.New(), 0)
	require.NoError(t, err)
	_, err = session.New(user, []*account.Account{accounts[0], foreign, accounts[2]})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNewContextNilUser(t *testing.T) {
	t.Parallel()
	_, err := session.New(nil, nil)
	assert.ErrorIs(t, err, session.ErrUserRequired)
}

func TestStatementAndRefresh(t *testing.T) {
	t.Parallel()
	user := newUser(t)
	accounts, err := user.MakeAccountsWithBalance(1000)
	require.NoError(t, err)
	sess, err := session.New(user, accounts)
	require.NoError(t, err)

	checking, err := sess.Account("checking")
	require.NoError(t, err)
	staged := checking.Clone()
	_, err = staged.Debit(100)
	require.NoError(t, err)
	require.NoError(t, sess.Refresh(staged))

	st := sess.Statement()
	assert.Equal(t, []session.Line{
		{Kind: account.Checking, Balance: 1100},
		{Kind: account.Savings, Balance: 1000},
	}, st.Assets)
	assert.Equal(t, []session.Line{{Kind: account.CreditCard, Balance: 1000}}, st.Liabilities)

	stranger, err := account.MakeChecking(uuid.New(), 0)
	require.NoError(t, err)
	assert.ErrorIs(t, sess.Refresh(stranger), domain.ErrNotFound)
}
