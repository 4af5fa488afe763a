package main

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"diaryapi/internal/config"
	"diaryapi/internal/database"
	handlers "diaryapi/internal/http/handler"
	"diaryapi/internal/otel"
	"diaryapi/internal/repository"
	"diaryapi/internal/repository/memory"
	"diaryapi/internal/repository/postgres"
	"diaryapi/internal/service"
	"diaryapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  serve,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup (postgres driver only)")
	}
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return logFatal(log, "tracing_init_failed", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	var (
		db      *sql.DB
		diaries repository.DiaryRepository
		tasks   repository.TaskRepository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		diaries, tasks = memory.NewDiaryStore(), memory.NewTaskStore()
	default:
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Error().Err(err).Str("event", "db_connect_failed").Str("db_host", cfg.Database.Host).Send()
			return err
		}
		defer db.Close()

		if !skipMigrations {
			if err := runMigrations(cfg.Database, log); err != nil {
				return err
			}
		}
		diaries, tasks = postgres.NewDiaryPostgres(db), postgres.NewTaskPostgres(db)
	}

	svc := handlers.Services{
		Diaries: service.NewDiaryService(diaries),
		Tasks:   service.NewTaskService(tasks),
	}

	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Error().Err(err).Str("event", "storage_init_failed").Str("endpoint", cfg.MinIO.Endpoint).Send()
			return err
		}
		svc.Export = service.NewExportService(objStore, diaries, tasks)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if db != nil {
		reg.MustRegister(collectors.NewDBStatsCollector(db, database.ApplicationName))
	}

	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}

	app, err := newApp(log, reg, pinger, svc)
	if err != nil {
		return logFatal(log, "app_init_failed", fmt.Errorf("build app: %w", err))
	}

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	log.Info().
		Str("event", "server_started").
		Str("addr", addr).
		Str("store_driver", cfg.StoreDriver).
		Bool("export_enabled", svc.Export != nil).
		Send()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Str("event", "server_failed").Send()
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Str("event", "server_stopping").Send()
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Str("event", "server_shutdown_failed").Send()
		return err
	}
	return nil
}
