package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)
	emp := employee.NewFromData(uuid.New(), "teller", "hash", "Tess", "Teller", testTime)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "employees"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Create(context.Background(), emp))

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE user_name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "password_hash", "first_name", "last_name", "created_at"}).
			AddRow(emp.ID, "teller", "hash", "Tess", "Teller", testTime))

	got, err := repo.GetByUsername(context.Background(), "teller")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)
}
