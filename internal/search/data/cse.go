package data

import (
	"context"
	"fmt"

	"github.com/lk2023060901/repack-search-backend/internal/conf"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/repack/normalize"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"
	"github.com/lk2023060901/repack-search-backend/internal/search/biz"

	"go.uber.org/zap"
	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const defaultLiveMaxResults = 10

// GoogleLiveSearchRepo implements biz.LiveSearchRepo on the Google
// Custom Search JSON API.
type GoogleLiveSearchRepo struct {
	svc      *customsearch.Service
	engineID string
	maxHits  int64
	log      *logger.Logger
}

// NewGoogleLiveSearchRepo creates the live-search repository. Extra
// client options are appended after the API key so tests can point the
// service at a local endpoint.
func NewGoogleLiveSearchRepo(ctx context.Context, cfg *conf.LiveSearchConfig, log *logger.Logger, opts ...option.ClientOption) (biz.LiveSearchRepo, error) {
	if log == nil {
		log = logger.L()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("live search api key is required")
	}
	if cfg.EngineID == "" {
		return nil, fmt.Errorf("live search engine id is required")
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	svc, err := customsearch.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}

	maxHits := cfg.MaxResults
	if maxHits <= 0 {
		maxHits = defaultLiveMaxResults
	}

	return &GoogleLiveSearchRepo{
		svc:      svc,
		engineID: cfg.EngineID,
		maxHits:  maxHits,
		log:      log,
	}, nil
}

// Search issues a single query to the web index. Live search is best
// effort: an upstream failure degrades to an empty collection so the
// caller can report no results instead of an outage.
func (r *GoogleLiveSearchRepo) Search(ctx context.Context, query string) ([]*types.LiveListing, error) {
	resp, err := r.svc.Cse.List().Q(query).Cx(r.engineID).Num(r.maxHits).Context(ctx).Do()
	if err != nil {
		r.log.WithContext(ctx).Warn("live search request failed, degrading to empty",
			zap.String("query", query),
			zap.Error(err))
		return []*types.LiveListing{}, nil
	}

	listings := make([]*types.LiveListing, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		listings = append(listings, normalize.LiveHit(item.Title, item.Link, item.DisplayLink, item.Snippet))
	}

	return listings, nil
}
