package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/linkstash/linkstash-go/internal/config"
	"github.com/linkstash/linkstash-go/internal/handler"
	"github.com/linkstash/linkstash-go/internal/metrics"
	"github.com/linkstash/linkstash-go/internal/repository"
	"github.com/linkstash/linkstash-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)

	collector := metrics.NewCollector()

	r := handler.NewRouter(handler.RouterConfig{
		Auth:       handler.NewAuthHandler(authService),
		Users:      handler.NewUserHandler(userService),
		Bookmarks:  handler.NewBookmarkHandler(bookmarkService),
		JWTSecret:  cfg.JWTSecret,
		UserFinder: userRepo,
		Logger:     logger,
		Collector:  collector,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
