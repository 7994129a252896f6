package meili

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg: &Config{
				Host: "http://localhost:7700",
			},
			wantErr: nil,
		},
		{
			name:    "empty host",
			cfg:     &Config{},
			wantErr: ErrMissingHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := &Config{Host: "http://localhost:7700"}
	cfg.SetDefaults()

	assert.Equal(t, "repacks", cfg.Index)
	assert.Equal(t, 10, cfg.Timeout)

	// Explicit values are kept
	cfg = &Config{Host: "http://localhost:7700", Index: "games", Timeout: 5}
	cfg.SetDefaults()

	assert.Equal(t, "games", cfg.Index)
	assert.Equal(t, 5, cfg.Timeout)
}

func TestNew(t *testing.T) {
	client, err := New(&Config{Host: "http://localhost:7700"}, nil)
	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.Index())
	assert.Equal(t, "repacks", client.GetConfig().Index)
}

func TestNew_InvalidConfig(t *testing.T) {
	client, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, client)

	client, err = New(&Config{}, nil)
	assert.ErrorIs(t, err, ErrMissingHost)
	assert.Nil(t, client)
}
