package biz

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "github.com/lk2023060901/repack-search-backend/internal/pkg/errors"
	"github.com/lk2023060901/repack-search-backend/internal/repack/provider"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"github.com/stretchr/testify/assert"
)

// fakeFetcher is a fake provider feed for testing
type fakeFetcher struct {
	id       types.ProviderID
	name     string
	listings []*types.IndexedListing
	err      error
	delay    time.Duration
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]*types.IndexedListing, error) {
	f.calls++
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

func (f *fakeFetcher) GetID() types.ProviderID { return f.id }
func (f *fakeFetcher) GetName() string         { return f.name }
func (f *fakeFetcher) Validate() error         { return nil }

func makeListings(providerName string, n int) []*types.IndexedListing {
	listings := make([]*types.IndexedListing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, &types.IndexedListing{
			Identifier:  fmt.Sprintf("%s-%d", providerName, i),
			Title:       fmt.Sprintf("Game %d", i),
			SourceLabel: providerName,
			AccessURL:   fmt.Sprintf("https://%s.example/game-%d", providerName, i),
		})
	}
	return listings
}

func fetchers(ff ...*fakeFetcher) []provider.Fetcher {
	out := make([]provider.Fetcher, 0, len(ff))
	for _, f := range ff {
		out = append(out, f)
	}
	return out
}

func TestRefresh_Success(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := NewSyncUseCase(repo, fetchers(
		&fakeFetcher{id: types.ProviderFitGirl, name: "FitGirl", listings: makeListings("FitGirl", 2)},
		&fakeFetcher{id: types.ProviderDODI, name: "DODI", listings: makeListings("DODI", 3)},
	), nil)

	result, err := uc.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 2, result.PerProvider[types.ProviderFitGirl])
	assert.Equal(t, 3, result.PerProvider[types.ProviderDODI])

	// Everything lands in the index in a single batch
	assert.Equal(t, 1, repo.upsertCalls)
	assert.Len(t, repo.lastBatch, 5)
}

func TestRefresh_AllProvidersEmpty(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := NewSyncUseCase(repo, fetchers(
		&fakeFetcher{id: types.ProviderFitGirl, name: "FitGirl"},
		&fakeFetcher{id: types.ProviderDODI, name: "DODI"},
	), nil)

	result, err := uc.Refresh(context.Background())
	assert.Nil(t, result)
	assert.True(t, apperrors.Is(err, apperrors.ErrSyncNoProviderData))

	// Nothing to write means the index is never touched
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestRefresh_PartialEmpty(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := NewSyncUseCase(repo, fetchers(
		&fakeFetcher{id: types.ProviderFitGirl, name: "FitGirl"},
		&fakeFetcher{id: types.ProviderDODI, name: "DODI", listings: makeListings("DODI", 2)},
	), nil)

	result, err := uc.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 0, result.PerProvider[types.ProviderFitGirl])
	assert.Equal(t, 2, result.PerProvider[types.ProviderDODI])
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestRefresh_FetcherErrorSkipped(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := NewSyncUseCase(repo, fetchers(
		&fakeFetcher{id: types.ProviderFitGirl, name: "FitGirl", err: errors.New("feed down")},
		&fakeFetcher{id: types.ProviderDODI, name: "DODI", listings: makeListings("DODI", 1)},
	), nil)

	result, err := uc.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.NotContains(t, result.PerProvider, types.ProviderFitGirl)
	assert.Equal(t, 1, result.PerProvider[types.ProviderDODI])
}

func TestRefresh_AllFetchersFail(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := NewSyncUseCase(repo, fetchers(
		&fakeFetcher{id: types.ProviderFitGirl, name: "FitGirl", err: errors.New("feed down")},
		&fakeFetcher{id: types.ProviderDODI, name: "DODI", err: errors.New("feed down")},
	), nil)

	result, err := uc.Refresh(context.Background())
	assert.Nil(t, result)
	assert.True(t, apperrors.Is(err, apperrors.ErrSyncNoProviderData))
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestRefresh_UpsertFails(t *testing.T) {
	repo := &fakeSearchRepo{upsertErr: errors.New("index write rejected")}
	uc := NewSyncUseCase(repo, fetchers(
		&fakeFetcher{id: types.ProviderFitGirl, name: "FitGirl", listings: makeListings("FitGirl", 2)},
	), nil)

	result, err := uc.Refresh(context.Background())
	assert.Nil(t, result)
	assert.True(t, apperrors.Is(err, apperrors.ErrSyncPersistFailed))
}

func TestRefresh_RunsProvidersConcurrently(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := NewSyncUseCase(repo, fetchers(
		&fakeFetcher{id: types.ProviderFitGirl, name: "FitGirl", delay: 150 * time.Millisecond, listings: makeListings("FitGirl", 1)},
		&fakeFetcher{id: types.ProviderDODI, name: "DODI", delay: 150 * time.Millisecond, listings: makeListings("DODI", 1)},
	), nil)

	start := time.Now()
	result, err := uc.Refresh(context.Background())
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	// Sequential fetches would take at least 300ms
	assert.Less(t, elapsed, 250*time.Millisecond)
}
