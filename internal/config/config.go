package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingToken is returned when GITHUB_TOKEN is unset or blank
var ErrMissingToken = errors.New("the GITHUB_TOKEN environment variable must be set to a token with permission to manage org members")

// Config carries everything the tools read from the environment
type Config struct {
	// Token authenticates every API request. It is held in memory for the
	// lifetime of the process and never logged or persisted.
	Token string `env:"GITHUB_TOKEN, required"`
}

// Load resolves the configuration from the process environment
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// load resolves the configuration through the given lookuper so tests can
// supply a credential without touching the real environment
func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		if errors.Is(err, envconfig.ErrMissingRequired) {
			return nil, ErrMissingToken
		}
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrMissingToken
	}
	return &cfg, nil
}
