package employee_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	t.Parallel()
	e, err := employee.New(employee.Params{
		Username: "teller", Password: "secret", FirstName: "Tess", LastName: "Teller",
	})
	require.NoError(t, err)
	assert.Len(t, e.ID.String(), 36)
	assert.NotEqual(t, "secret", e.PasswordHash)
	assert.True(t, e.CheckPassword("secret"))
	assert.False(t, e.CheckPassword("Secret"))
}

func TestNewEmployeeValidation(t *testing.T) {
	t.Parallel()
	_, err := employee.New(employee.Params{Username: "teller", FirstName: "Tess", LastName: "Teller"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewEmployeePasswordTooLong(t *testing.T) {
	t.Parallel()
	_, err := employee.New(employee.Params{
		Username: "teller", Password: strings.Repeat("x", 80), FirstName: "Tess", LastName: "Teller",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}
