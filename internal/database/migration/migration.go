package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// MigrationsTable stores the applied schema version.
const MigrationsTable = "schema_migrations_diaryapi"

//go:embed sql/*.sql
var migrationFiles embed.FS

func newSource() (source.Driver, error) {
	return iofs.New(migrationFiles, "sql")
}

// migrator is the subset of *migrate.Migrate that Up drives.
type migrator interface {
	Version() (version uint, dirty bool, err error)
	Up() error
	Close() (source error, database error)
}

var (
	sqlOpen = sql.Open

	// newMigrator binds the embedded source to db. The pgx driver pins one
	// connection of db until Close, which also closes db.
	newMigrator = func(db *sql.DB) (migrator, error) {
		src, err := newSource()
		if err != nil {
			return nil, fmt.Errorf("failed to create iofs driver: %w", err)
		}

		driver, err := pgx.WithInstance(db, &pgx.Config{MigrationsTable: MigrationsTable})
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("failed to create pgx driver: %w", err)
		}

		m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
		if err != nil {
			_ = driver.Close()
			_ = src.Close()
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return m, nil
	}
)

// Up applies every pending migration over its own connection to dsn, so the
// serving pool never lends a connection to the migrator. A dirty schema is
// reported and left untouched.
func Up(dsn string, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	fail := func(err error) error {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Str("error_message", err.Error()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Send()
		return err
	}

	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return fail(fmt.Errorf("sql open: %w", err))
	}
	defer db.Close()

	m, err := newMigrator(db)
	if err != nil {
		return fail(err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn().
				Str("event", "db_migration_close_failed").
				AnErr("source_error", srcErr).
				AnErr("database_error", dbErr).
				Send()
		}
	}()

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fail(fmt.Errorf("failed to get current version: %w", err))
	}
	if dirty {
		return fail(fmt.Errorf("migration version %d is dirty, fix it before proceeding", from))
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().
				Str("event", "db_migration_skip").
				Str("status", "success").
				Uint("version", from).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("schema already up to date")
			return nil
		}
		return fail(fmt.Errorf("migration failed: %w", err))
	}

	to, _, _ := m.Version()
	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Uint("from_version", from).
		Uint("to_version", to).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
