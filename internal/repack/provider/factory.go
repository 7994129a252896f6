package provider

import (
	"fmt"
	"sync"

	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"go.uber.org/zap"
)

// Constructor builds a fetcher from its configuration
type Constructor func(*types.ProviderConfig, *zap.Logger) (Fetcher, error)

// Factory creates fetcher instances
type Factory struct {
	mu           sync.RWMutex
	log          *zap.Logger
	constructors map[types.ProviderID]Constructor
}

// NewFactory creates a new fetcher factory
func NewFactory(log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}

	f := &Factory{
		log:          log,
		constructors: make(map[types.ProviderID]Constructor),
	}

	// Register built-in providers
	f.Register(types.ProviderFitGirl, NewFitGirlFetcher)
	f.Register(types.ProviderDODI, NewDODIFetcher)

	return f
}

// Register registers a fetcher constructor
func (f *Factory) Register(id types.ProviderID, constructor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[id] = constructor
}

// Create creates a fetcher instance from configuration
func (f *Factory) Create(config *types.ProviderConfig) (Fetcher, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	f.mu.RLock()
	constructor, exists := f.constructors[config.ID]
	f.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", types.ErrProviderNotFound, config.ID)
	}

	return constructor(config, f.log)
}

// ListProviders returns a list of all registered provider IDs
func (f *Factory) ListProviders() []types.ProviderID {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ids := make([]types.ProviderID, 0, len(f.constructors))
	for id := range f.constructors {
		ids = append(ids, id)
	}
	return ids
}
