package individual_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	domainaccount "github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() individual.Params {
	return individual.Params{
		Username:  "test",
		Password:  "test",
		FirstName: "test",
		LastName:  "test",
		Age:       50,
		Address:   "test",
	}
}

func TestNewIndividual(t *testing.T) {
	t.Parallel()
	ind, err := individual.New(validParams())
	require.NoError(t, err)
	assert.Len(t, ind.ID.String(), 36)
	assert.NotEqual(t, "test", ind.PasswordHash)
	assert.NotEmpty(t, ind.PasswordHash)
	assert.True(t, ind.CheckPassword("test"))
	assert.False(t, ind.CheckPassword("wrong"))
	assert.Equal(t, "test test", ind.FullName())
}

func TestNewIndividualUnderage(t *testing.T) {
	t.Parallel()
	p := validParams()
	p.Age = 17
	ind, err := individual.New(p)
	assert.Nil(t, ind)
	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age_num", verr.Field)
}

func TestNewIndividualMissingFields(t *testing.T) {
	t.Parallel()
	for field, mutate := range map[string]func(*individual.Params){
		"user_name":  func(p *individual.Params) { p.Username = "" },
		"password":   func(p *individual.Params) { p.Password = "" },
		"first_name": func(p *individual.Params) { p.FirstName = "" },
		"last_name":  func(p *individual.Params) { p.LastName = "" },
		"address":    func(p *individual.Params) { p.Address = "" },
	} {
		p := validParams()
		mutate(&p)
		_, err := individual.New(p)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestMakeBasicAccounts(t *testing.T) {
	t.Parallel()
	ind, err := individual.New(validParams())
	require.NoError(t, err)

	accounts, err := ind.MakeBasicAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, kind := range domainaccount.Kinds() {
		assert.Equal(t, kind, accounts[i].Kind)
		assert.Equal(t, ind.ID, accounts[i].OwnerID)
		assert.Equal(t, int64(0), accounts[i].Balance())
	}
}

func TestNewIndividualPasswordTooLong(t *testing.T) {
	t.Parallel()
	p := validParams()
	// 40 runes, 80 bytes.
	p.Password = strings.Repeat("é", 40)
	ind, err := individual.New(p)
	assert.Nil(t, ind)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	assert.Equal(t, "must be non-empty and at most 72 bytes long", verr.Reason)

	p.Password = strings.Repeat("x", 72)
	_, err = individual.New(p)
	assert.NoError(t, err)
}
