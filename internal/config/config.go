// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// student registry client and the reference server. It is populated by
// merging defaults, an optional config file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix for nested env lookups (caarlos0/env).
//   - env: variable name of a scalar field.
type StructuredConfig struct {
	// App holds settings shared by every binary: credentials, logging and
	// tracing.
	App App `envPrefix:"APP_"`

	// Storage holds the reference server persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the reference server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client transport settings: where the collection
	// endpoint lives and how long a single request may take.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON, JSONC or YAML config file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AccessKey is the static credential sent by the client in the
	// X-API-Key header and checked by the server.
	// Env: APP_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the interactive client writes its logs.
	// Empty means a file named "logs" next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// OTelEndpoint is the OTLP/HTTP collector URL. Tracing is disabled
	// when it is empty.
	// Env: APP_OTEL_ENDPOINT
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Storage groups the configuration for the server persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN selects and configures the backend:
	//   - "memory" keeps records in process memory;
	//   - "postgres://..." or "postgresql://..." opens PostgreSQL;
	//   - anything else is treated as an SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the client's outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the collection API
	// (e.g. "http://localhost:3000" or an ngrok URL).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero means no limit
	// beyond what the network layer imposes.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// RefreshInterval is how often the client re-reads the collection in the
	// background. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (later sources win for non-zero fields):
//  1. defaults
//  2. config file (path resolved from env and flags)
//  3. environment variables
//  4. command-line flags
//
// flags may be nil when the caller exposes no command line.
func GetStructuredConfig(defaults *StructuredConfig, flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults(defaults).
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
