package provider

import (
	"context"

	"github.com/lk2023060901/repack-search-backend/internal/repack/normalize"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"go.uber.org/zap"
)

// FitGirlFetcher pulls the FitGirl repacks feed
type FitGirlFetcher struct {
	*BaseFetcher
}

// NewFitGirlFetcher creates a new FitGirl fetcher
func NewFitGirlFetcher(config *types.ProviderConfig, log *zap.Logger) (Fetcher, error) {
	return &FitGirlFetcher{BaseFetcher: NewBaseFetcher(config, log)}, nil
}

// Fetch downloads the feed and normalizes every entry. Network and shape
// failures degrade to an empty result so that one dead source does not
// abort a refresh the other sources can still serve.
func (p *FitGirlFetcher) Fetch(ctx context.Context) ([]*types.IndexedListing, error) {
	records, err := p.FetchDownloads(ctx)
	if err != nil {
		p.log.Warn("feed fetch failed, degrading to empty",
			zap.String("provider", string(p.GetID())),
			zap.Error(err))
		return []*types.IndexedListing{}, nil
	}
	return normalize.Records(p.GetConfig(), records), nil
}
