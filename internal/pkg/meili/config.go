package meili

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid meilisearch config")
	ErrMissingHost   = errors.New("meilisearch host is required")
	ErrMissingIndex  = errors.New("meilisearch index is required")
)

// Config defines the Meilisearch connection settings
type Config struct {
	Host    string `mapstructure:"host"`    // e.g. http://localhost:7700
	APIKey  string `mapstructure:"api_key"` // master or search+documents key
	Index   string `mapstructure:"index"`   // index uid
	Timeout int    `mapstructure:"timeout"` // seconds
}

// SetDefaults fills in defaults for optional fields
func (c *Config) SetDefaults() {
	if c.Index == "" {
		c.Index = "repacks"
	}
	if c.Timeout <= 0 {
		c.Timeout = 10
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		return ErrMissingHost
	}
	return nil
}
