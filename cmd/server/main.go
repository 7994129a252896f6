package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lk2023060901/repack-search-backend/internal/conf"
	"github.com/lk2023060901/repack-search-backend/internal/data"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/repack/provider"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"
	"github.com/lk2023060901/repack-search-backend/internal/search/biz"
	searchdata "github.com/lk2023060901/repack-search-backend/internal/search/data"
	"github.com/lk2023060901/repack-search-backend/internal/search/service"
	"github.com/lk2023060901/repack-search-backend/internal/server"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	logConfig := &logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize global logger
	if err := logger.InitGlobal(logConfig); err != nil {
		log.Fatal("failed to initialize global logger", zap.Error(err))
	}

	log.Info("config loaded successfully")

	// Initialize data layer
	d, cleanup, err := data.NewData(config, log)
	if err != nil {
		log.Fatal("failed to initialize data layer", zap.Error(err))
	}
	defer cleanup()

	// Initialize repositories
	searchRepo := searchdata.NewMeiliSearchRepo(d.Meili, log)
	liveRepo, err := searchdata.NewGoogleLiveSearchRepo(context.Background(), &config.LiveSearch, log)
	if err != nil {
		log.Fatal("failed to initialize live search", zap.Error(err))
	}

	// Initialize provider fetchers
	fetchers, err := buildFetchers(config, log)
	if err != nil {
		log.Fatal("failed to initialize providers", zap.Error(err))
	}

	// Initialize use cases
	searchUseCase := biz.NewSearchUseCase(searchRepo, liveRepo, log)
	syncUseCase := biz.NewSyncUseCase(searchRepo, fetchers, log)

	// Initialize services
	searchService := service.NewSearchService(searchUseCase, log)
	syncService := service.NewSyncService(syncUseCase, log)

	// Initialize server
	httpServer := server.NewHTTPServer(config, log, searchService, syncService, d)

	// Start server in goroutine
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	log.Info("server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func buildFetchers(config *conf.Config, log *logger.Logger) ([]provider.Fetcher, error) {
	factory := provider.NewFactory(log.Logger)

	configs := make([]*types.ProviderConfig, 0, len(config.Providers))
	for _, pc := range config.Providers {
		configs = append(configs, &types.ProviderConfig{
			ID:         types.ProviderID(pc.ID),
			Name:       pc.Name,
			FeedURL:    pc.SourceURL,
			SearchURL:  pc.SearchURL,
			Timeout:    pc.Timeout,
			MaxRetries: pc.MaxRetries,
		})
	}
	if len(configs) == 0 {
		configs = provider.DefaultConfigs()
	}

	fetchers := make([]provider.Fetcher, 0, len(configs))
	for _, cfg := range configs {
		f, err := factory.Create(cfg)
		if err != nil {
			return nil, err
		}
		fetchers = append(fetchers, f)
	}

	return fetchers, nil
}
