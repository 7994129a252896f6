package data

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/meili"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"
	"github.com/lk2023060901/repack-search-backend/internal/search/biz"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
)

// MeiliSearchRepo implements biz.SearchRepo on a Meilisearch index.
type MeiliSearchRepo struct {
	client *meili.Client
	log    *logger.Logger
}

// NewMeiliSearchRepo creates the indexed-store repository.
func NewMeiliSearchRepo(client *meili.Client, log *logger.Logger) biz.SearchRepo {
	if log == nil {
		log = logger.L()
	}
	return &MeiliSearchRepo{
		client: client,
		log:    log,
	}
}

// Query runs a full-text search against the index. Typo tolerance and
// ranking come from the engine settings; limit caps the result page.
func (r *MeiliSearchRepo) Query(ctx context.Context, text string, limit int64) ([]*types.IndexedListing, error) {
	res, err := r.client.Index().Search(text, &meilisearch.SearchRequest{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	// Hits come back as loosely typed documents; round-trip through
	// JSON to recover the listing shape.
	raw, err := json.Marshal(res.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode hits: %w", err)
	}

	var listings []*types.IndexedListing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode hits: %w", err)
	}

	return listings, nil
}

// UpsertBatch adds or replaces documents keyed by identifier. The
// engine queues the write as an async task; enqueueing is the only
// failure we can observe here.
func (r *MeiliSearchRepo) UpsertBatch(ctx context.Context, listings []*types.IndexedListing) error {
	if len(listings) == 0 {
		return nil
	}

	task, err := r.client.Index().AddDocuments(listings, "identifier")
	if err != nil {
		return fmt.Errorf("failed to upsert documents: %w", err)
	}

	r.log.WithContext(ctx).Info("queued index upsert",
		zap.Int("count", len(listings)),
		zap.Int64("task_uid", task.TaskUID))

	return nil
}
