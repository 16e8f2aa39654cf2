package config

import (
	"fmt"
	"time"
)

// DefaultServerURL is the collection API base URL used when nothing else is
// configured.
const DefaultServerURL = "http://localhost:3000"

// ClientApp holds client-side application settings.
type ClientApp struct {
	// AccessKey is sent in the X-API-Key header of every request.
	AccessKey string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the client log destination; empty means next to the binary.
	LogFile string
	// OTelEndpoint enables tracing when set.
	OTelEndpoint string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the collection API.
	HTTPAddress string
	// RequestTimeout bounds one outbound request; zero means none.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the collection is re-read in the
	// background; zero disables the job.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// DefaultClientConfig returns the lowest-priority layer for the client.
func DefaultClientConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{LogLevel: "debug"},
		Adapter: Adapter{HTTPAddress: DefaultServerURL},
	}
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(DefaultClientConfig(), flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AccessKey:    cfg.App.AccessKey,
			LogLevel:     cfg.App.LogLevel,
			LogFile:      cfg.App.LogFile,
			OTelEndpoint: cfg.App.OTelEndpoint,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
