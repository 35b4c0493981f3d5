package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samuel-prates/find-my-buddy-api/internal/config"
	searchforhandler "github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor/handler"
	searchforrepo "github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor/repository"
	searchforservice "github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor/service"
	userhandler "github.com/samuel-prates/find-my-buddy-api/internal/domains/user/handler"
	userrepo "github.com/samuel-prates/find-my-buddy-api/internal/domains/user/repository"
	userservice "github.com/samuel-prates/find-my-buddy-api/internal/domains/user/service"
	"github.com/samuel-prates/find-my-buddy-api/internal/infrastructure/database"
	"github.com/samuel-prates/find-my-buddy-api/pkg/logger"
)

// Serve builds the dependency graph bottom-up (config, database,
// repositories, services, handlers), starts the HTTP server and blocks
// until SIGINT/SIGTERM, then drains in-flight requests.
func Serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	userRepository := userrepo.NewPostgresUserRepository(db.Pool)
	searchForRepository := searchforrepo.NewPostgresSearchForRepository(db.Pool)

	userService := userservice.NewUserService(userRepository)
	searchForService := searchforservice.NewSearchForService(searchForRepository, userRepository)

	userHandler := userhandler.NewHandler(userService)
	searchForHandler := searchforhandler.NewHandler(searchForService)

	router := NewRouter(db, userHandler, searchForHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", map[string]interface{}{
			"addr": srv.Addr,
			"env":  cfg.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped", nil)
	return nil
}
