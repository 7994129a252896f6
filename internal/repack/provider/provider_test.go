package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"github.com/stretchr/testify/assert"
)

func TestNewBaseFetcher(t *testing.T) {
	config := &types.ProviderConfig{
		ID:        types.ProviderFitGirl,
		Name:      "FitGirl",
		FeedURL:   "https://hydralinks.cloud/sources/fitgirl.json",
		SearchURL: "https://fitgirl-repacks.site/?s=",
		Timeout:   30,
	}

	base := NewBaseFetcher(config, nil)
	assert.NotNil(t, base)
	assert.Equal(t, types.ProviderFitGirl, base.GetID())
	assert.Equal(t, "FitGirl", base.GetName())
	assert.NotNil(t, base.GetHTTPClient())
}

func TestProviderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *types.ProviderConfig
		wantErr error
	}{
		{
			name: "valid fitgirl config",
			config: &types.ProviderConfig{
				ID:        types.ProviderFitGirl,
				Name:      "FitGirl",
				FeedURL:   "https://hydralinks.cloud/sources/fitgirl.json",
				SearchURL: "https://fitgirl-repacks.site/?s=",
			},
			wantErr: nil,
		},
		{
			name: "valid dodi config",
			config: &types.ProviderConfig{
				ID:        types.ProviderDODI,
				Name:      "DODI",
				FeedURL:   "https://hydralinks.cloud/sources/dodi.json",
				SearchURL: "https://dodi-repacks.site/?s=",
			},
			wantErr: nil,
		},
		{
			name: "missing provider ID",
			config: &types.ProviderConfig{
				Name:      "FitGirl",
				FeedURL:   "https://hydralinks.cloud/sources/fitgirl.json",
				SearchURL: "https://fitgirl-repacks.site/?s=",
			},
			wantErr: types.ErrInvalidProviderID,
		},
		{
			name: "missing feed URL",
			config: &types.ProviderConfig{
				ID:        types.ProviderFitGirl,
				Name:      "FitGirl",
				SearchURL: "https://fitgirl-repacks.site/?s=",
			},
			wantErr: types.ErrInvalidFeedURL,
		},
		{
			name: "missing search URL",
			config: &types.ProviderConfig{
				ID:      types.ProviderFitGirl,
				Name:    "FitGirl",
				FeedURL: "https://hydralinks.cloud/sources/fitgirl.json",
			},
			wantErr: types.ErrInvalidSearchURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDownloads(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCount int
		wantErr   error
	}{
		{
			name: "valid feed",
			body: `{"name":"FitGirl","downloads":[
				{"title":"Elden Ring","uris":["magnet:?xt=urn:btih:abc123"],"fileSize":"44.9 GB","uploadDate":"2024-06-21"},
				{"title":"Game With Bad Link","link":"ftp://x.com/f","uris":[]}
			]}`,
			wantCount: 2,
		},
		{
			name:      "empty downloads",
			body:      `{"name":"FitGirl","downloads":[]}`,
			wantCount: 0,
		},
		{
			name:    "not JSON",
			body:    `<html>502 Bad Gateway</html>`,
			wantErr: types.ErrInvalidFeed,
		},
		{
			name:    "missing downloads key",
			body:    `{"name":"FitGirl"}`,
			wantErr: types.ErrInvalidFeed,
		},
		{
			name:    "downloads is not an array",
			body:    `{"name":"FitGirl","downloads":"nope"}`,
			wantErr: types.ErrInvalidFeed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := parseDownloads(types.ProviderFitGirl, []byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, records, tt.wantCount)
		})
	}
}

func TestParseDownloads_Fields(t *testing.T) {
	body := `{"downloads":[{"title":"Elden Ring","link":"https://x.com/er","uris":["magnet:?xt=urn:btih:abc123","https://other.com/f.zip"],"fileSize":"44.9 GB","uploadDate":"2024-06-21"}]}`

	records, err := parseDownloads(types.ProviderFitGirl, []byte(body))
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Elden Ring", rec.Title)
	assert.Equal(t, "https://x.com/er", rec.Link)
	assert.Equal(t, []string{"magnet:?xt=urn:btih:abc123", "https://other.com/f.zip"}, rec.URIs)
	assert.Equal(t, "44.9 GB", rec.FileSize)
	assert.Equal(t, "2024-06-21", rec.UploadDate)
}

func feedConfig(id types.ProviderID, name, feedURL, searchURL string) *types.ProviderConfig {
	return &types.ProviderConfig{
		ID:         id,
		Name:       name,
		FeedURL:    feedURL,
		SearchURL:  searchURL,
		Timeout:    5,
		MaxRetries: 1,
	}
}

func TestFitGirlFetcher_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"FitGirl","downloads":[
			{"title":"Elden Ring","uris":["magnet:?xt=urn:btih:abc123"],"fileSize":"44.9 GB","uploadDate":"2024-06-21"},
			{"title":"Game With Bad Link","link":"ftp://x.com/f","uris":[]},
			{"uris":["magnet:?xt=urn:btih:untitled"]}
		]}`))
	}))
	defer ts.Close()

	fetcher, err := NewFitGirlFetcher(feedConfig(types.ProviderFitGirl, "FitGirl", ts.URL, "https://fitgirl-repacks.site/?s="), nil)
	assert.NoError(t, err)

	listings, err := fetcher.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Len(t, listings, 2)

	assert.Equal(t, "Elden Ring", listings[0].Title)
	assert.Equal(t, "FitGirl", listings[0].SourceLabel)
	assert.Equal(t, "magnet:?xt=urn:btih:abc123", listings[0].AccessURL)
	assert.Equal(t, "44.9 GB", listings[0].SizeDescriptor)
	assert.Equal(t, "2024-06-21", listings[0].PublishedAt)
	assert.NotEmpty(t, listings[0].Identifier)

	assert.Equal(t, "Game With Bad Link", listings[1].Title)
	assert.Equal(t, "https://fitgirl-repacks.site/?s=Game%20With%20Bad%20Link", listings[1].AccessURL)
}

func TestFetch_DegradesOnHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer ts.Close()

	fetcher, err := NewDODIFetcher(feedConfig(types.ProviderDODI, "DODI", ts.URL, "https://dodi-repacks.site/?s="), nil)
	assert.NoError(t, err)

	listings, err := fetcher.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, listings)
}

func TestFetch_DegradesOnBadPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer ts.Close()

	fetcher, err := NewFitGirlFetcher(feedConfig(types.ProviderFitGirl, "FitGirl", ts.URL, "https://fitgirl-repacks.site/?s="), nil)
	assert.NoError(t, err)

	listings, err := fetcher.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, listings)
}

func TestFetch_DegradesOnUnreachableFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	fetcher, err := NewFitGirlFetcher(feedConfig(types.ProviderFitGirl, "FitGirl", ts.URL, "https://fitgirl-repacks.site/?s="), nil)
	assert.NoError(t, err)

	listings, err := fetcher.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, listings)
}
