package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Durations such as
// WORKERS_REFRESH_INTERVAL use time.ParseDuration syntax; unset variables
// leave the field zero so the layer below wins during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
