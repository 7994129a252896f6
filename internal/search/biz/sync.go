package biz

import (
	"context"
	"sync"

	apperrors "github.com/lk2023060901/repack-search-backend/internal/pkg/errors"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/repack/provider"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"go.uber.org/zap"
)

// SyncResult reports a finished refresh
type SyncResult struct {
	Total       int
	PerProvider map[types.ProviderID]int
}

// SyncUseCase owns the refresh workflow: fetch every provider feed,
// join the results and upsert the combined batch into the index.
type SyncUseCase struct {
	repo     SearchRepo
	fetchers []provider.Fetcher
	log      *logger.Logger
}

func NewSyncUseCase(repo SearchRepo, fetchers []provider.Fetcher, log *logger.Logger) *SyncUseCase {
	if log == nil {
		log = logger.L()
	}
	return &SyncUseCase{
		repo:     repo,
		fetchers: fetchers,
		log:      log,
	}
}

// Refresh fans out to all provider feeds concurrently and waits for
// every fetcher before aggregating. A failing fetcher contributes
// nothing; the join still completes with the other providers' results.
// Only when every provider comes back empty is the refresh itself a
// failure, since nothing would be written.
func (uc *SyncUseCase) Refresh(ctx context.Context) (*SyncResult, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		combined []*types.IndexedListing
	)
	perProvider := make(map[types.ProviderID]int, len(uc.fetchers))

	for _, f := range uc.fetchers {
		wg.Add(1)
		go func(f provider.Fetcher) {
			defer wg.Done()

			listings, err := f.Fetch(ctx)
			if err != nil {
				uc.log.WithContext(ctx).Warn("provider fetch failed",
					zap.String("provider", string(f.GetID())),
					zap.Error(err))
				return
			}

			mu.Lock()
			combined = append(combined, listings...)
			perProvider[f.GetID()] = len(listings)
			mu.Unlock()
		}(f)
	}
	wg.Wait()

	if len(combined) == 0 {
		return nil, apperrors.New(apperrors.ErrSyncNoProviderData)
	}

	if err := uc.repo.UpsertBatch(ctx, combined); err != nil {
		uc.log.WithContext(ctx).Error("index upsert failed",
			zap.Int("count", len(combined)),
			zap.Error(err))
		return nil, apperrors.Wrap(err, apperrors.ErrSyncPersistFailed)
	}

	uc.log.WithContext(ctx).Info("refresh complete",
		zap.Int("total", len(combined)),
		zap.Any("per_provider", perProvider))

	return &SyncResult{
		Total:       len(combined),
		PerProvider: perProvider,
	}, nil
}
