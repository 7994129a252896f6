package provider

import "github.com/lk2023060901/repack-search-backend/internal/repack/types"

// DefaultConfigs returns the built-in provider configurations, used
// when the config file does not list any providers.
func DefaultConfigs() []*types.ProviderConfig {
	return []*types.ProviderConfig{
		{
			ID:        types.ProviderFitGirl,
			Name:      "FitGirl",
			FeedURL:   "https://hydralinks.cloud/sources/fitgirl.json",
			SearchURL: "https://fitgirl-repacks.site/?s=",
		},
		{
			ID:        types.ProviderDODI,
			Name:      "DODI",
			FeedURL:   "https://hydralinks.cloud/sources/dodi.json",
			SearchURL: "https://dodi-repacks.site/?s=",
		},
	}
}
