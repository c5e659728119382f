package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"engagement-analytics/internal/aggregators"
	internalhttp "engagement-analytics/internal/http"
	"engagement-analytics/internal/ingestors"
	"engagement-analytics/internal/shared/configs"
	"engagement-analytics/internal/shared/filestorages"
	"engagement-analytics/internal/shared/loggers"
	"engagement-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	eventLog stores.EventLog
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "engagement-analytics").
		Logger()

	// Initialize event log
	eventLog, err := newEventLog(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event log: %w", err)
	}

	// Initialize services
	trackingService := ingestors.NewTrackingService(eventLog)
	rolluper := aggregators.NewEngagementRolluper()
	statsService := aggregators.NewStatsService(eventLog, rolluper, aggregators.StatsOptions{
		BatchPageLimit: config.Stats.BatchPageLimit,
		BatchPacing:    time.Duration(config.Stats.BatchPacingMs) * time.Millisecond,
	})

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(trackingService, statsService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		eventLog:  eventLog,
	}, nil
}

func newEventLog(config configs.StorageConfig) (stores.EventLog, error) {
	switch config.Driver {
	case "sqlite":
		return stores.OpenSQLiteEventLog(config.SQLitePath)
	case "file":
		fileStorage, err := filestorages.NewFileStorage(config.FileRootDir)
		if err != nil {
			return nil, err
		}
		return stores.NewFileEventLog(fileStorage), nil
	case "memory":
		return stores.NewMemoryEventLog(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", config.Driver)
	}
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting engagement-analytics service on port %d (log_level=%s, storage_driver=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.Driver)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close the event log if the backend holds resources
	if closer, ok := app.eventLog.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("event log close failed: %w", err)
		}
		app.appLogger.Info().Msg("Event log closed")
	}

	return nil
}
