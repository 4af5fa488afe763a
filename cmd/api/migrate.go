package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"diaryapi/internal/config"
	"diaryapi/internal/database"
	"diaryapi/internal/database/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long:  "Apply the embedded PostgreSQL migrations and exit. Requires STORE_DRIVER=postgres.",
	RunE:  migrate,
}

func migrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		log.Warn().Str("event", "db_migration_skip").Str("store_driver", cfg.StoreDriver).Send()
		return nil
	}

	// Wait for the server to accept connections before migrating.
	db, err := database.NewPostgres(cmd.Context(), cfg.Database)
	if err != nil {
		return logFatal(log, "db_connect_failed", err)
	}
	_ = db.Close()

	return runMigrations(cfg.Database, log)
}

// runMigrations migrates over a connection of its own; the serving pool is untouched.
func runMigrations(c config.DatabaseConfig, log zerolog.Logger) error {
	dsn, err := database.BuildPostgresDSN(c)
	if err != nil {
		return err
	}
	return migration.Up(dsn, log, c.Host)
}
