package types

type ProviderID string

const (
	ProviderFitGirl ProviderID = "fitgirl"
	ProviderDODI    ProviderID = "dodi"
)

// ProviderConfig represents one repack source feed
type ProviderConfig struct {
	ID   ProviderID `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`

	// Feed settings
	FeedURL   string `json:"feed_url" yaml:"feed_url"`
	SearchURL string `json:"search_url" yaml:"search_url"` // provider search page, query term is appended

	// Optional settings
	Timeout    int `json:"timeout,omitempty" yaml:"timeout,omitempty"`         // seconds
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty"` // default: 3
}

// Validate validates the provider configuration
func (c *ProviderConfig) Validate() error {
	if c.ID == "" {
		return ErrInvalidProviderID
	}
	if c.Name == "" {
		return ErrInvalidProviderName
	}
	if c.FeedURL == "" {
		return ErrInvalidFeedURL
	}
	if c.SearchURL == "" {
		return ErrInvalidSearchURL
	}
	return nil
}
