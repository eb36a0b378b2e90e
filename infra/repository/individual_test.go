package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var individualColumns = []string{
	"id", "user_name", "password_hash", "first_name", "last_name", "age_num", "address", "created_at",
}

func TestIndividualRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIndividualRepository(db)
	ind := individual.NewFromData(uuid.New(), "jdoe", "hash", "John", "Doe", 30, "1 Main St", testTime)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "individuals"`).
		WithArgs(ind.ID, "jdoe", "hash", "John", "Doe", 30, "1 Main St", testTime).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), ind))
}

func TestIndividualRepository_CreateDuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIndividualRepository(db)
	ind := individual.NewFromData(uuid.New(), "jdoe", "hash", "John", "Doe", 30, "1 Main St", testTime)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "individuals"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), ind)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestIndividualRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIndividualRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "individuals" WHERE user_name = \$1`).
		WillReturnRows(sqlmock.NewRows(individualColumns).
			AddRow(id, "jdoe", "hash", "John", "Doe", 30, "1 Main St", testTime))

	ind, err := repo.GetByUsername(context.Background(), "jdoe")
	require.NoError(t, err)
	require.NotNil(t, ind)
	assert.Equal(t, id, ind.ID)
	assert.Equal(t, "John Doe", ind.FullName())
	assert.Equal(t, 30, ind.Age)
}

func TestIndividualRepository_GetByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIndividualRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "individuals" WHERE user_name = \$1`).
		WillReturnRows(sqlmock.NewRows(individualColumns))

	ind, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, ind)
}

func TestIndividualRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIndividualRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "individuals" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(individualColumns).
			AddRow(id, "jdoe", "hash", "John", "Doe", 30, "1 Main St", testTime))

	ind, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", ind.Username)
}

func TestIndividualRepository_SearchPutsExactMatchFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIndividualRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "individuals" WHERE user_name ILIKE \$1 ` +
		`ORDER BY user_name = \$2 DESC, user_name LIMIT \$3`).
		WithArgs("%ali%", "ali", 10).
		WillReturnRows(sqlmock.NewRows(individualColumns).
			AddRow(uuid.New(), "ali", "h", "B", "B", 21, "y", testTime).
			AddRow(uuid.New(), "alia", "h", "A", "A", 20, "x", testTime).
			AddRow(uuid.New(), "malik", "h", "C", "C", 22, "z", testTime))

	found, err := repo.Search(context.Background(), " ali ", 10)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "ali", found[0].Username)
	assert.Equal(t, "alia", found[1].Username)
	assert.Equal(t, "malik", found[2].Username)
}

func TestIndividualRepository_SearchEscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIndividualRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "individuals" WHERE user_name ILIKE \$1`).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows(individualColumns))

	found, err := repo.Search(context.Background(), "50%_off", 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestIndividualRepository_SearchBlankQuery(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewIndividualRepository(db)

	found, err := repo.Search(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, found)
}
