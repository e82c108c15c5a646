package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lull-backoffice/internal/config"
	"lull-backoffice/internal/database"
	"lull-backoffice/internal/logging"
	"lull-backoffice/internal/seed"
	"lull-backoffice/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New("server", cfg.Log)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	if err := database.EnsureAdmin(ctx, store, logger, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}
	database.EnsureUsers(ctx, store, logger, database.DefaultSeedUsers)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := server.NewRouter(cfg, store, logger)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown initiated")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// openStore uses Postgres when DB_DSN is set and the seeded in-memory
// store otherwise.
func openStore(cfg *config.Config, logger *zap.Logger) (database.Store, error) {
	data, err := seed.Default()
	if err != nil {
		return nil, err
	}
	if cfg.DBDSN == "" {
		logger.Info("DB_DSN not set, serving seed data from memory")
		return database.NewMemoryStore(data), nil
	}
	return database.Open(cfg.DBDSN, data, logger)
}
