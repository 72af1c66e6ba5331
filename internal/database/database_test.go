package database

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetfeed/internal/config"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{sqlx.NewDb(db, "sqlmock")}, mock
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DB{
		DbHOST:     "db",
		DbPORT:     "5432",
		DbUSER:     "feed",
		DbPASSWORD: "secret",
		DbNAME:     "tweetfeed",
		DbSSLMODE:  "disable",
	})

	assert.Equal(t, "host=db port=5432 user=feed password=secret dbname=tweetfeed sslmode=disable", dsn)
}

func TestRunMigrations(t *testing.T) {
	db, mock := newMockDB(t)

	path := filepath.Join(t.TempDir(), "001.sql")
	require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE users (id SERIAL PRIMARY KEY);"), 0o600))

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.RunMigrations(path))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_MissingFile(t *testing.T) {
	db, _ := newMockDB(t)

	err := db.RunMigrations(filepath.Join(t.TempDir(), "missing.sql"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read migrations")
}

func TestHealthCheck(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := &DB{sqlx.NewDb(sqlDB, "sqlmock")}
	mock.ExpectPing()

	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())

	var nilDB *DB
	assert.Error(t, nilDB.HealthCheck(context.Background()))
}
