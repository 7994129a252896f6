package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/lk2023060901/repack-search-backend/internal/conf"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/meili"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("Clear the repack search index")
	fmt.Println("==========================================")
	fmt.Println()

	// 1. Load config
	fmt.Println("1. Loading config...")
	cfg, err := conf.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	fmt.Println("   ✓ config loaded")

	// 2. Connect to Meilisearch
	fmt.Println("\n2. Connecting to Meilisearch...")
	client, err := meili.New(&meili.Config{
		Host:    cfg.Meili.Host,
		APIKey:  cfg.Meili.APIKey,
		Index:   cfg.Meili.Index,
		Timeout: cfg.Meili.Timeout,
	}, nil)
	if err != nil {
		log.Fatalf("failed to create meilisearch client: %v", err)
	}
	if err := client.Health(); err != nil {
		log.Fatalf("meilisearch health check failed: %v", err)
	}
	fmt.Println("   ✓ connected")

	// 3. Count documents before clearing
	fmt.Println("\n3. Counting indexed documents...")
	if stats, err := client.Index().GetStats(); err == nil {
		fmt.Printf("   ✓ %d documents in index %q\n", stats.NumberOfDocuments, client.GetConfig().Index)
	} else {
		fmt.Printf("   - stats unavailable: %v\n", err)
	}

	// 4. Delete everything
	fmt.Println("\n4. Deleting all documents...")
	task, err := client.Index().DeleteAllDocuments()
	if err != nil {
		log.Fatalf("failed to delete documents: %v", err)
	}
	fmt.Printf("   ✓ deletion queued (task %d)\n", task.TaskUID)

	fmt.Println("\n==========================================")
	fmt.Println("Done. The engine applies the deletion asynchronously.")
	fmt.Println("==========================================")
}
