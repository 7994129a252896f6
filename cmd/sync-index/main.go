package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/lk2023060901/repack-search-backend/internal/conf"
	"github.com/lk2023060901/repack-search-backend/internal/data"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/repack/provider"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"
	"github.com/lk2023060901/repack-search-backend/internal/search/biz"
	searchdata "github.com/lk2023060901/repack-search-backend/internal/search/data"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	fmt.Println("🚀 Repack index sync starting...")
	fmt.Println()

	// Load config
	cfg, err := conf.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("❌ failed to load config: %v", err)
	}

	// Initialize logger
	zlog, err := logger.Development()
	if err != nil {
		log.Fatalf("❌ failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize data layer
	d, cleanup, err := data.NewData(cfg, zlog)
	if err != nil {
		log.Fatalf("❌ failed to initialize data layer: %v", err)
	}
	defer cleanup()

	// Create repository and fetchers
	searchRepo := searchdata.NewMeiliSearchRepo(d.Meili, zlog)

	factory := provider.NewFactory(zlog.Logger)
	configs := make([]*types.ProviderConfig, 0, len(cfg.Providers))
	for _, pc := range cfg.Providers {
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
	for _, c := range configs {
		f, err := factory.Create(c)
		if err != nil {
			log.Fatalf("❌ failed to create provider %s: %v", c.ID, err)
		}
		fetchers = append(fetchers, f)
	}

	fmt.Printf("📋 %d providers registered\n\n", len(fetchers))

	// Run the refresh
	syncUseCase := biz.NewSyncUseCase(searchRepo, fetchers, zlog)

	startTime := time.Now()
	result, err := syncUseCase.Refresh(context.Background())
	if err != nil {
		log.Fatalf("❌ refresh failed: %v", err)
	}

	duration := time.Since(startTime)

	// Print results
	fmt.Printf("✅ refresh finished (%.2fs)\n", duration.Seconds())
	fmt.Printf("\n📊 Synced records:\n")
	for _, f := range fetchers {
		fmt.Printf("   • %s: %d\n", f.GetName(), result.PerProvider[f.GetID()])
	}
	fmt.Printf("   • total: %d\n", result.Total)
	fmt.Printf("   • finished at: %s\n", time.Now().Format("2006-01-02 15:04:05"))
}
