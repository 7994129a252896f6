package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"go.uber.org/zap"
)

// Fetcher defines the interface for repack feed providers
type Fetcher interface {
	// Fetch downloads the provider's feed and returns normalized listings
	Fetch(ctx context.Context) ([]*types.IndexedListing, error)

	// GetID returns the provider ID
	GetID() types.ProviderID

	// GetName returns the provider name
	GetName() string

	// Validate validates the provider configuration
	Validate() error
}

// BaseFetcher provides common functionality for all feed providers
type BaseFetcher struct {
	config     *types.ProviderConfig
	httpClient *http.Client
	log        *zap.Logger
}

// NewBaseFetcher creates a new base fetcher
func NewBaseFetcher(config *types.ProviderConfig, log *zap.Logger) *BaseFetcher {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &BaseFetcher{
		config:     config,
		httpClient: httpClient,
		log:        log,
	}
}

// GetID returns the provider ID
func (b *BaseFetcher) GetID() types.ProviderID {
	return b.config.ID
}

// GetName returns the provider name
func (b *BaseFetcher) GetName() string {
	return b.config.Name
}

// GetConfig returns the provider configuration
func (b *BaseFetcher) GetConfig() *types.ProviderConfig {
	return b.config
}

// GetHTTPClient returns the HTTP client
func (b *BaseFetcher) GetHTTPClient() *http.Client {
	return b.httpClient
}

// BuildDefaultHeaders builds default HTTP headers
func (b *BaseFetcher) BuildDefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": "Repack-Search-Backend/1.0",
	}
}

// DoRequest executes an HTTP request with retry logic
func (b *BaseFetcher) DoRequest(ctx context.Context, req *http.Request) (*http.Response, error) {
	maxRetries := b.config.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		resp, err := b.httpClient.Do(req.WithContext(ctx))
		if err == nil {
			return resp, nil
		}

		lastErr = err

		// Exponential backoff
		if i < maxRetries-1 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			time.Sleep(backoff)
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries, lastErr)
}

// Validate validates the provider configuration
func (b *BaseFetcher) Validate() error {
	return b.config.Validate()
}
