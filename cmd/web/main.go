package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hangulsearch/internal/db"
	"github.com/jusunglee/hangulsearch/internal/db/postgres"
	"github.com/jusunglee/hangulsearch/internal/db/sqlite"
	"github.com/jusunglee/hangulsearch/internal/index"
	"github.com/jusunglee/hangulsearch/internal/logger"
	"github.com/jusunglee/hangulsearch/internal/metrics"
	"github.com/jusunglee/hangulsearch/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hangulsearch-web")

	var (
		port        = fs.Int64Long("port", 3000, "HTTP server port")
		databaseURL = fs.StringLong("database-url", "hangulsearch.db", "PostgreSQL URL or SQLite file path")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()

	ctx, cancel := context.WithCancelCause(context.Background())

	repo, err := openRepository(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer repo.Close()

	// Periodically export pgxpool stats as Prometheus gauges
	if pgRepo, ok := repo.(*postgres.Repository); ok {
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					s := pgRepo.PoolStats()
					metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
					metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
					metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
					metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	router := web.NewRouter(repo, log, index.New(repo, log))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)
		cancel(errors.New("signal received"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "server shutdown error", "error", err)
		}
	}()

	log.InfoContext(ctx, "starting web server", "port", *port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

func openRepository(ctx context.Context, databaseURL string) (db.Repository, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		slog.Info("connected to PostgreSQL database")
		return repo, nil
	}
	repo, err := sqlite.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	slog.Info("opened SQLite database", "path", databaseURL)
	return repo, nil
}
