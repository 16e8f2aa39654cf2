package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":3000",
			expectedAddr: NetAddress{Host: "", Port: 3000},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

// ── BindClientFlags ───────────────────────────────────────────────────────────

func TestBindClientFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-s", "https://demo.ngrok-free.app",
				"-c", "/path/to/config.yaml",
				"--access-key", "secret",
				"--request-timeout", "10s",
				"--refresh-interval", "1m",
				"--log-level", "warn",
				"--log-file", "/tmp/client.log",
				"--otel-endpoint", "http://localhost:4318",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://demo.ngrok-free.app", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
				assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)
				assert.Equal(t, "secret", cfg.App.AccessKey)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
				assert.Equal(t, "http://localhost:4318", cfg.App.OTelEndpoint)
				assert.Equal(t, Server{}, cfg.Server)
			},
		},
		{
			name: "long config flag",
			args: []string{"--config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.FilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
			flags := BindClientFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			tt.validate(t, flags.config())
		})
	}
}

// ── BindServerFlags ───────────────────────────────────────────────────────────

func TestBindServerFlags(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flags := BindServerFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-a", "127.0.0.1:3000",
		"-d", "students.db",
		"--access-key", "secret",
		"--request-timeout", "30s",
	}))

	cfg := flags.config()
	assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "students.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.AccessKey)
	assert.Equal(t, Adapter{}, cfg.Adapter)
}

// TestBindServerFlags_InvalidAddress verifies that pflag surfaces the
// NetAddress validation error instead of exiting.
func TestBindServerFlags_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid port in server address", args: []string{"-a", "localhost:abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
			BindServerFlags(fs)
			assert.Error(t, fs.Parse(tt.args))
		})
	}
}

// TestNetAddress_SetAndString tests the round-trip of Set and String
func TestNetAddress_SetAndString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"localhost:8080", "localhost:8080"},
		{"127.0.0.1:9090", "127.0.0.1:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}
