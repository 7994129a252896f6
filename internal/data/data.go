package data

import (
	"fmt"

	"github.com/lk2023060901/repack-search-backend/internal/conf"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/meili"
	"go.uber.org/zap"
)

// Data holds the shared backing clients for the data layer.
type Data struct {
	Meili  *meili.Client
	Logger *logger.Logger
}

// NewData wires the backing services from config.
func NewData(config *conf.Config, log *logger.Logger) (*Data, func(), error) {
	meiliClient, err := meili.New(&meili.Config{
		Host:    config.Meili.Host,
		APIKey:  config.Meili.APIKey,
		Index:   config.Meili.Index,
		Timeout: config.Meili.Timeout,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init meilisearch: %w", err)
	}

	// Searchable attributes and ranking are index settings; apply them
	// up front so the first refresh writes into a configured index. The
	// engine may be unreachable at startup, search then reports it per
	// request.
	if err := meiliClient.EnsureSettings(); err != nil {
		log.Warn("failed to apply index settings", zap.Error(err))
	}

	d := &Data{
		Meili:  meiliClient,
		Logger: log,
	}

	cleanup := func() {
		log.Info("closing data resources")
	}

	return d, cleanup, nil
}
