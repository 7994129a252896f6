package meili

import (
	"fmt"
	"time"

	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
)

// Client wraps the Meilisearch SDK together with the single index this
// service reads and writes.
type Client struct {
	cfg    *Config
	client *meilisearch.Client
	index  *meilisearch.Index
	logger *logger.Logger
}

// New creates a new Meilisearch client
func New(cfg *Config, log *logger.Logger) (*Client, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.L()
	}

	cfg.SetDefaults()

	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:    cfg.Host,
		APIKey:  cfg.APIKey,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})

	log.Info("meilisearch client created",
		zap.String("host", cfg.Host),
		zap.String("index", cfg.Index))

	return &Client{
		cfg:    cfg,
		client: client,
		index:  client.Index(cfg.Index),
		logger: log,
	}, nil
}

// Index returns the handle of the configured index
func (c *Client) Index() *meilisearch.Index {
	return c.index
}

// Health checks whether the Meilisearch instance is reachable
func (c *Client) Health() error {
	if _, err := c.client.Health(); err != nil {
		return fmt.Errorf("meilisearch unreachable: %w", err)
	}
	return nil
}

// IsHealthy reports reachability without an error value
func (c *Client) IsHealthy() bool {
	return c.client.IsHealthy()
}

// EnsureSettings pushes the searchable attributes and ranking rules the
// title search relies on. Title is the only searchable field; ranking
// falls back from word matches through typo distance, proximity and
// attribute to exactness. Meilisearch applies settings asynchronously
// and the returned task is not awaited.
func (c *Client) EnsureSettings() error {
	settings := &meilisearch.Settings{
		SearchableAttributes: []string{"title"},
		RankingRules: []string{
			"words",
			"typo",
			"proximity",
			"attribute",
			"exactness",
		},
	}

	task, err := c.index.UpdateSettings(settings)
	if err != nil {
		return fmt.Errorf("failed to update index settings: %w", err)
	}

	c.logger.Info("queued index settings update",
		zap.String("index", c.cfg.Index),
		zap.Int64("task_uid", task.TaskUID))
	return nil
}

// GetConfig returns the client configuration
func (c *Client) GetConfig() *Config {
	return c.cfg
}
