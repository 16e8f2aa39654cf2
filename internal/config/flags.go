package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values of configuration flags bound to a pflag.FlagSet.
// Values are read only after the flag set has been parsed, so a *Flags can
// be created while building a cobra command and consumed in its RunE.
type Flags struct {
	configPath      string
	accessKey       string
	logLevel        string
	logFile         string
	otelEndpoint    string
	serverURL       string
	refreshInterval time.Duration
	requestTimeout  time.Duration
	serverAddress   NetAddress
	databaseDSN     string
	server          bool
}

// BindClientFlags registers client configuration flags on fs.
//
// Flags:
//
//	-c/--config         config file path (JSON, JSONC or YAML)
//	-s/--server-url     base URL of the collection API
//	--access-key        static API key
//	--request-timeout   per-request timeout (e.g. "10s"), 0 for none
//	--refresh-interval  background refresh period (e.g. "1m"), 0 disables it
//	--log-level         zerolog level name
//	--log-file          log file path
//	--otel-endpoint     OTLP/HTTP collector URL
func BindClientFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	f.bindCommon(fs)
	fs.StringVarP(&f.serverURL, "server-url", "s", "", "Base URL of the collection API")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s), 0 for none")
	fs.DurationVar(&f.refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 1m), 0 disables it")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	return f
}

// BindServerFlags registers reference server configuration flags on fs.
//
// Flags:
//
//	-a                  listen address in format [host]:[port]
//	-d/--dsn            database DSN ("memory", sqlite path or postgres URL)
//	-c/--config         config file path (JSON, JSONC or YAML)
//	--access-key        static API key
//	--request-timeout   per-request timeout (e.g. "30s"), 0 for none
//	--log-level         zerolog level name
//	--otel-endpoint     OTLP/HTTP collector URL
func BindServerFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{server: true}
	f.bindCommon(fs)
	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Database DSN")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s), 0 for none")
	return f
}

func (f *Flags) bindCommon(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file path (JSON, JSONC or YAML)")
	fs.StringVar(&f.accessKey, "access-key", "", "Static API access key")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.otelEndpoint, "otel-endpoint", "", "OTLP/HTTP collector URL, empty disables tracing")
}

func (f *Flags) config() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			AccessKey:    f.accessKey,
			LogLevel:     f.logLevel,
			LogFile:      f.logFile,
			OTelEndpoint: f.otelEndpoint,
		},
		FilePath: f.configPath,
	}

	if f.server {
		cfg.Server = Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		}
		cfg.Storage = Storage{DB: DB{DSN: f.databaseDSN}}
		return cfg
	}

	cfg.Adapter = Adapter{
		HTTPAddress:    f.serverURL,
		RequestTimeout: f.requestTimeout,
	}
	cfg.Workers = Workers{RefreshInterval: f.refreshInterval}
	return cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
