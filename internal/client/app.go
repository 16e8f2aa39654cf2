package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/internal/telemetry"
	"github.com/MKhiriev/go-student-registry/internal/tui"
	"github.com/MKhiriev/go-student-registry/models"
)

const serviceName = "student-sync"

// App is the configured client. One App serves either the terminal UI or
// any number of console commands.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	adapter   adapter.CollectionAdapter
	shutdown  telemetry.ShutdownFunc
	logger    *logger.Logger
}

// NewApp builds the transport and tracing for cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.App.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("setup telemetry: %w", err)
	}

	collectionAdapter, err := adapter.NewHTTPCollectionAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("create collection adapter: %w", err)
	}

	logger.Debug().
		Str("server_url", cfg.Adapter.HTTPAddress).
		Dur("request_timeout", cfg.Adapter.RequestTimeout).
		Dur("refresh_interval", cfg.Workers.RefreshInterval).
		Msg("client app configured")

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		adapter:   collectionAdapter,
		shutdown:  shutdown,
		logger:    logger,
	}, nil
}

// Services builds a sync engine that reports to sink.
func (a *App) Services(sink service.PresentationSink) *service.ClientServices {
	return service.NewClientServices(a.adapter, sink, a.logger)
}

// Run starts the terminal UI and the optional refresh job and blocks until
// the UI exits.
func (a *App) Run(ctx context.Context) error {
	return a.RunUI(ctx, tui.New(a.buildInfo, a.logger))
}

// RunUI is Run with a prepared UI.
func (a *App) RunUI(ctx context.Context, ui *tui.TUI) error {
	services := a.Services(ui.Sink())

	services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer services.RefreshJob.Stop()

	if err := ui.Run(ctx, services.SyncService); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}

// Close flushes pending spans.
func (a *App) Close(ctx context.Context) error {
	return a.shutdown(ctx)
}
