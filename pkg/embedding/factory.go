package embedding

import (
	"fmt"
	"time"

	"healthcare-assistant/pkg/openai"
	"healthcare-assistant/pkg/voyage"
)

// Config describes a single embedding provider.
// Mirrors the embedding section of config.yaml.
type Config struct {
	Provider string // "voyage" or "openai"
	APIKey   string
	BaseURL  string // optional override
	Model    string // optional override
	Timeout  time.Duration
}

// New creates a Provider instance from config.
// An unknown provider name is a configuration error and must be startup-fatal
// in the caller: misrouting every chat message is worse than refusing to boot.
func New(cfg Config) (Provider, error) {
	if cfg.Provider == "" {
		return nil, ErrNoProviderConfigured
	}

	switch cfg.Provider {
	case "voyage":
		client, err := voyage.New(cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("voyage provider: %w", err)
		}
		if cfg.Model != "" {
			client.WithModel(cfg.Model)
		}
		if cfg.BaseURL != "" {
			client.WithBaseURL(cfg.BaseURL)
		}
		if cfg.Timeout > 0 {
			client.WithTimeout(cfg.Timeout)
		}
		return client, nil

	case "openai":
		client, err := openai.New(cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("openai provider: %w", err)
		}
		if cfg.Model != "" {
			client.WithModel(cfg.Model)
		}
		if cfg.BaseURL != "" {
			client.WithBaseURL(cfg.BaseURL)
		}
		if cfg.Timeout > 0 {
			client.WithTimeout(cfg.Timeout)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
