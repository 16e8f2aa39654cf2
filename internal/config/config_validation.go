// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: server URL is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: refresh interval must not be negative", ErrInvalidWorkerConfigs)
	}

	return validateApp(cfg.App.AccessKey, cfg.App.LogLevel)
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: DSN is required", ErrInvalidStorageConfigs)
	}

	return validateApp(cfg.App.AccessKey, cfg.App.LogLevel)
}

func validateApp(accessKey, logLevel string) error {
	if accessKey == "" {
		return fmt.Errorf("%w: access key is required", ErrInvalidAppConfigs)
	}

	if logLevel != "" {
		if _, err := zerolog.ParseLevel(logLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
