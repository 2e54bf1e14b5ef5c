package client

import (
	"context"
	"os"

	"github.com/halap/go-sdk/pkg/core"
)

// Config carries the resolved connection settings for the halap API.
type Config struct {
	// APIURL is the base URL of the halap service
	APIURL string

	// APIToken is the bearer token attached to every request
	APIToken string
}

// Validate checks that the configuration is usable. A missing token fails
// before any network call.
func (c Config) Validate() error {
	if c.APIToken == "" {
		return &core.ConfigError{
			Field: "APIToken",
			Value: "",
			Err:   core.ErrMissingToken,
		}
	}
	return nil
}

// ConfigProvider resolves configuration on demand. Providers may defer the
// lookup (secret stores, files, environment); the client calls Resolve before
// each operation.
type ConfigProvider interface {
	Resolve(ctx context.Context) (Config, error)
}

// StaticProvider returns a fixed configuration.
type StaticProvider struct {
	Cfg Config
}

// Resolve returns the fixed configuration
func (p StaticProvider) Resolve(context.Context) (Config, error) {
	return p.Cfg, nil
}

// Environment variables read by EnvProvider.
const (
	EnvAPIURL   = "HALAP_API_URL"
	EnvAPIToken = "HALAP_API_TOKEN"
)

// EnvProvider reads configuration from the process environment.
type EnvProvider struct{}

// Resolve reads HALAP_API_URL and HALAP_API_TOKEN
func (EnvProvider) Resolve(context.Context) (Config, error) {
	return Config{
		APIURL:   os.Getenv(EnvAPIURL),
		APIToken: os.Getenv(EnvAPIToken),
	}, nil
}
