package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"diaryapi/internal/config"
	"diaryapi/internal/logger"
)

// rootCmd starts the API server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "diaryapi",
	Short:         "Diary and task REST API",
	Long:          `Serve diaries and their tasks over HTTP, backed by PostgreSQL or an in-memory store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          serve,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// execute runs the command tree and returns the process exit code. Cobra's
// own reporting is silenced, so errors such as unknown flags are written here.
func execute(ctx context.Context, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// bootstrap loads configuration and builds the process logger.
// Configuration errors are logged before returning.
func bootstrap() (*config.AppConfig, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("", nil)
		log.Error().Err(err).Str("event", "config_invalid").Send()
		return nil, log, err
	}
	return cfg, logger.New(cfg.LogLevel, logger.Location(cfg.Timezone)), nil
}

func logFatal(log zerolog.Logger, event string, err error) error {
	log.Error().Err(err).Str("event", event).Send()
	return err
}
