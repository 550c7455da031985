package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` struct tags on [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

// parseClientEnv populates cfg from environment variables. All client
// variables share the CLIENT_ prefix so one shell can configure both
// binaries without collisions.
func parseClientEnv(cfg *ClientConfig) error {
	opts := env.Options{Prefix: "CLIENT_"}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting client env configs: %w", err)
	}
	return nil
}
