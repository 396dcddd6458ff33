// Command frame-server starts the Frame movie-catalog REST API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/framehq/frame-api/internal/config"
	"github.com/framehq/frame-api/internal/limiter"
	"github.com/framehq/frame-api/internal/migrate"
	"github.com/framehq/frame-api/internal/repository/postgres"
	httpserver "github.com/framehq/frame-api/internal/server/http"
	"github.com/framehq/frame-api/internal/service"
	"github.com/framehq/frame-api/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.ServerAddr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, postgres.Config{
		DSN:            cfg.DatabaseURL,
		MinConns:       cfg.DBMinConns,
		MaxConns:       cfg.DBMaxConns,
		CommandTimeout: cfg.DBCommandTimeout,
	})
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	movieRepo := postgres.NewMovieRepo(db)

	lim := limiter.NewPG(db.Pool, cfg.LoginFailWindow, cfg.LoginMaxFails, cfg.LoginBlockFor)

	// Services
	tokens, err := token.NewService([]byte(cfg.SecretKey), cfg.AccessTokenTTL)
	if err != nil {
		logger.Fatal("token.NewService", zap.Error(err))
	}
	authSvc := service.NewAuthService(userRepo, tokens, lim)
	movieSvc := service.NewMovieService(movieRepo)

	app := httpserver.New(authSvc, movieSvc, userRepo, tokens, logger, version)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      app.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.ServerAddr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
