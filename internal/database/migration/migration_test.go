package migration

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/config"
	"bookstore/internal/database"
)

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("skips when table exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery(database.SQLite))).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		var buf bytes.Buffer
		err = EnsureMigrated(ctx, db, database.SQLite, zerolog.New(&buf))

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "db_migration_skip")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("creates table when missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery(database.Postgres))).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS books").
			WillReturnResult(sqlmock.NewResult(0, 0))

		var buf bytes.Buffer
		err = EnsureMigrated(ctx, db, database.Postgres, zerolog.New(&buf))

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "db_migration_success")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sentinel error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("sqlite_master").WillReturnError(errors.New("disk I/O error"))

		err = EnsureMigrated(ctx, db, database.SQLite, zerolog.Nop())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check sentinel table")
	})

	t.Run("step error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("sqlite_master").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS books").
			WillReturnError(errors.New("readonly database"))

		err = EnsureMigrated(ctx, db, database.SQLite, zerolog.Nop())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "migration step create_table_books failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnsureMigrated_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLite(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "books.db")})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, EnsureMigrated(ctx, db, database.SQLite, zerolog.Nop()))
	// Second run finds the table and is a no-op.
	require.NoError(t, EnsureMigrated(ctx, db, database.SQLite, zerolog.Nop()))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&n))
	assert.Zero(t, n)
}
