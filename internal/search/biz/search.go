package biz

import (
	"context"
	"strings"

	apperrors "github.com/lk2023060901/repack-search-backend/internal/pkg/errors"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"go.uber.org/zap"
)

// MaxIndexedResults caps how many hits one indexed search returns.
const MaxIndexedResults = 50

// SearchRepo defines the interface for the persistent title index
type SearchRepo interface {
	// Query runs a typo-tolerant title search, capped at limit hits,
	// ordered by the index's own relevance ranking.
	Query(ctx context.Context, text string, limit int64) ([]*types.IndexedListing, error)

	// UpsertBatch writes listings keyed by identifier. Documents with a
	// known identifier are replaced, so batches converge.
	UpsertBatch(ctx context.Context, listings []*types.IndexedListing) error
}

// LiveSearchRepo defines the interface for the pay-per-call web search API
type LiveSearchRepo interface {
	Search(ctx context.Context, query string) ([]*types.LiveListing, error)
}

// SearchUseCase contains business logic for both search paths
type SearchUseCase struct {
	repo SearchRepo
	live LiveSearchRepo
	log  *logger.Logger
}

func NewSearchUseCase(repo SearchRepo, live LiveSearchRepo, log *logger.Logger) *SearchUseCase {
	if log == nil {
		log = logger.L()
	}
	return &SearchUseCase{
		repo: repo,
		live: live,
		log:  log,
	}
}

// SearchIndexed queries the title index. An empty query is rejected
// before the index is touched; an unreachable index is fatal for the
// request.
func (uc *SearchUseCase) SearchIndexed(ctx context.Context, query string) ([]*types.IndexedListing, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.New(apperrors.ErrSearchEmptyQuery)
	}

	listings, err := uc.repo.Query(ctx, query, MaxIndexedResults)
	if err != nil {
		uc.log.WithContext(ctx).Error("indexed search failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, apperrors.Wrap(err, apperrors.ErrSearchIndexUnavailable)
	}

	return listings, nil
}

// SearchLive queries the web-search API. Zero hits is a business
// outcome, not a transport failure: callers get a not-found error they
// can map to 404 while an upstream failure stays a 500.
func (uc *SearchUseCase) SearchLive(ctx context.Context, query string) ([]*types.LiveListing, error) {
	listings, err := uc.live.Search(ctx, query)
	if err != nil {
		uc.log.WithContext(ctx).Error("live search failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, apperrors.Wrap(err, apperrors.ErrLiveSearchFailed)
	}

	if len(listings) == 0 {
		return nil, apperrors.New(apperrors.ErrLiveSearchNoResults, query)
	}

	return listings, nil
}
