package config

import (
	"fmt"
	"time"
)

// DefaultServerAddress is the listen address of the reference server when
// nothing else is configured.
const DefaultServerAddress = "localhost:3000"

// ServerApp holds server-side application settings.
type ServerApp struct {
	AccessKey    string
	LogLevel     string
	OTelEndpoint string
}

// ServerHTTP holds the listener settings.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerConfig is the reference server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage Storage
}

// DefaultServerConfig returns the lowest-priority layer for the server.
func DefaultServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{LogLevel: "debug"},
		Server:  Server{HTTPAddress: DefaultServerAddress},
		Storage: Storage{DB: DB{DSN: "memory"}},
	}
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(DefaultServerConfig(), flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			AccessKey:    cfg.App.AccessKey,
			LogLevel:     cfg.App.LogLevel,
			OTelEndpoint: cfg.App.OTelEndpoint,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
