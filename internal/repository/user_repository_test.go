package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/models"
)

var userColumns = []string{"id", "username", "name", "surname", "api_key"}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("assigns the generated id", func(t *testing.T) {
		user := &models.User{APIKey: "test", Username: "test_username", Name: "test_name", Surname: "test_surname"}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (api_key, username, name, surname)")).
			WithArgs("test", "test_username", "test_name", "test_surname").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		require.NoError(t, repo.CreateUser(ctx, user))
		assert.Equal(t, int64(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate api key", func(t *testing.T) {
		user := &models.User{APIKey: "test", Username: "other", Name: "n", Surname: "s"}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("test", "other", "n", "s").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_users_api_key"})

		err := repo.CreateUser(ctx, user)

		assert.True(t, errors.Is(err, apperror.ErrDuplicate))
		assert.Contains(t, err.Error(), "a user with such data already exists")
		assert.Zero(t, user.ID)
	})

	t.Run("driver failure is not a taxonomy error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(errors.New("connection reset"))

		err := repo.CreateUser(ctx, &models.User{APIKey: "x"})

		assert.Error(t, err)
		_, isAppErr := apperror.As(err)
		assert.False(t, isAppErr)
		assert.Contains(t, err.Error(), "create user")
	})
}

func TestUserRepository_GetUserByAPIKey(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, name, surname, api_key FROM users WHERE api_key = $1")).
			WithArgs("test").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "test_username", "test_name", "test_surname", "test"))

		user, err := repo.GetUserByAPIKey(ctx, "test")

		require.NoError(t, err)
		assert.Equal(t, &models.User{ID: 1, Username: "test_username", Name: "test_name", Surname: "test_surname", APIKey: "test"}, user)
	})

	t.Run("unknown key", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE api_key = $1")).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByAPIKey(ctx, "nope")

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		assert.Equal(t, "user not found", err.Error())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(2, "test_username_2", "test_name_2", "test_surname_2", "test_2"))

	user, err := repo.GetUserByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "test_username_2", user.Username)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetUserByID(ctx, 99)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}
