package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"api-log-analytics/internal/aggregators"
	"api-log-analytics/internal/analyzers"
	"api-log-analytics/internal/events"
	internalhttp "api-log-analytics/internal/http"
	"api-log-analytics/internal/ingestors"
	"api-log-analytics/internal/shared/configs"
	"api-log-analytics/internal/shared/filestorages"
	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/stores"
	"api-log-analytics/internal/streams"
)

const appName = "api-log-analytics"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	partialAccumulationQueue    *streams.PartitionedQueue[events.PartialAccumulationEvent]
	partialAccumulationConsumer streams.PartialAccumulationConsumer
	backgroundCtx               context.Context
	backgroundCancel            context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stream queue
	partialAccumulationQueue := streams.NewPartitionedQueue[events.PartialAccumulationEvent](config.Queue.Partitions, config.Queue.Buffer)

	// Initialize aggregation service
	accumulationStore := stores.NewAccumulationStore(fileStorage)
	accumulationRolluper := aggregators.NewAccumulationRolluper()
	aggregationService := aggregators.NewAggregationService(accumulationRolluper, accumulationStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	partialAccumulationConsumer := streams.NewPartialAccumulationConsumer(partialAccumulationQueue, aggregationService, consumerLogger)

	// Initialize ingestionService
	batchDecoder := ingestors.NewBatchDecoder(config.Ingestion.MaxBatchBytes)
	batchSummarizer := ingestors.NewBatchSummarizer(ingestors.NewRecordNormalizer(), ingestors.BatchSummarizerOptions{
		WindowSize: config.Analysis.WindowSize,
		SizeTiers:  config.Analysis.SizeTiers,
		ShardSize:  config.Ingestion.ShardSize,
		MaxWorkers: config.Ingestion.MaxWorkers,
	})
	batchStore := stores.NewLogBatchStore(fileStorage)
	partialAccumulationProducer := streams.NewPartialAccumulationProducer(partialAccumulationQueue)
	ingestionService := ingestors.NewIngestionService(batchDecoder, batchSummarizer, batchStore, partialAccumulationProducer)

	// Initialize reportService
	reportAssembler := analyzers.NewReportAssemblerFromConfig(config.Analysis)
	reportService := analyzers.NewReportService(batchDecoder, batchSummarizer, accumulationStore, reportAssembler, config.Analysis)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, reportService, httpLogger)

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
		config:                      config,
		appLogger:                   appLogger,
		server:                      server,
		partialAccumulationQueue:    partialAccumulationQueue,
		partialAccumulationConsumer: partialAccumulationConsumer,
	}, nil
}

// Handler exposes the HTTP handler, for tests that drive the app without a listener.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// StartBackground starts the rollup consumers without the HTTP listener.
func (app *App) StartBackground() {
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.partialAccumulationConsumer.Start(app.backgroundCtx)
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s service on port %d (log_level=%s, file_storage_root_dir=%s, window_size=%s, queue_partitions=%d)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Analysis.WindowSize,
			app.partialAccumulationQueue.PartitionCount())

	// start background consumers
	app.StartBackground()

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

	app.StopBackground()
	return nil
}

// StopBackground lets consumers roll up what was already published, then stops them.
func (app *App) StopBackground() {
	app.partialAccumulationConsumer.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background consumers stopped")
}
