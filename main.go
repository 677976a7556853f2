package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"photomagnet_server/api"
	"photomagnet_server/config"
	"photomagnet_server/database"
	"photomagnet_server/repository"
	"photomagnet_server/services"
	"photomagnet_server/structs"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, repos := openStorage(ctx)

	events := services.NewEventPublisher(logger, cfg.Events)
	sm := services.NewServiceManager(logger, cfg, db, repos, events)

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(cfg, logger, sm),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", gecho.Field("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", gecho.Field("error", err))
	}

	// let in-flight admin notifications finish before closing their dependencies
	sm.OrderService.Wait()

	if err := events.Close(); err != nil {
		logger.Warn("Failed to close event publisher", gecho.Field("error", err))
	}
	if err := sm.CacheService.Close(); err != nil {
		logger.Warn("Failed to close cache connection", gecho.Field("error", err))
	}
	if db != nil {
		if err := database.CloseInstance(); err != nil {
			logger.Warn("Failed to close database", gecho.Field("error", err))
		}
	}

	logger.Info("Server stopped")
}

// openStorage picks the repositories for the configured driver
func openStorage(ctx context.Context) (*database.DB, *repository.Repositories) {
	if cfg.Database.Driver == "memory" {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return nil, repository.NewMemory()
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}
	db := database.GetInstance()

	if err := database.CreateSchema(ctx, db, logger); err != nil {
		logger.Fatal("Failed to create database schema", gecho.Field("error", err))
	}

	return db, repository.NewPostgres(db)
}
