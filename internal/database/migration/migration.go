package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"bookstore/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_books",
		SQL: `CREATE TABLE IF NOT EXISTS books (
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  title          TEXT    NOT NULL,
  author         TEXT    NOT NULL,
  published_year INTEGER NULL
);`,
	},
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_books",
		SQL: `CREATE TABLE IF NOT EXISTS books (
  id             BIGINT  GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  title          TEXT    NOT NULL,
  author         TEXT    NOT NULL,
  published_year INTEGER NULL
);`,
	},
}

// sentinelQuery reports whether the books table already exists.
func sentinelQuery(d database.Dialect) string {
	if d == database.Postgres {
		return "SELECT to_regclass('public.books') IS NOT NULL"
	}
	return "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'books')"
}

func stepsFor(d database.Dialect) []migrationStep {
	if d == database.Postgres {
		return postgresSteps
	}
	return sqliteSteps
}

// EnsureMigrated checks if the 'books' table exists and creates it if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, d database.Dialect, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("dialect", string(d)).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Msg("checking schema")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery(d)).Scan(&exists); err != nil {
		log.Error().
			Err(err).
			Str("event", "db_migration_failed").
			Str("status", "error").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Msg("creating schema")

	for _, step := range stepsFor(d) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Err(err).
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema ready")

	return nil
}
