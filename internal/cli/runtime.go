package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-registry/internal/client"
	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/spf13/cobra"
)

const logRole = "student-sync"

func loadApp(ctx context.Context, opts *RootOptions) (*client.App, error) {
	cfg, err := config.GetClientConfig(opts.flags)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewClientLogger(logRole, cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, fmt.Errorf("set log level: %w", err)
	}

	return client.NewApp(ctx, cfg, opts.buildInfo, log)
}

// withApp builds the client for the duration of fn.
func withApp(opts *RootOptions, cmd *cobra.Command, fn func(a *client.App) error) error {
	a, err := loadApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close(context.WithoutCancel(cmd.Context())) }()

	return fn(a)
}

// withConsole is withApp for one-shot commands reporting to the console.
func withConsole(opts *RootOptions, cmd *cobra.Command, fn func(syncService service.StudentSyncService) error) error {
	return withApp(opts, cmd, func(a *client.App) error {
		return fn(a.Services(newConsoleSink(opts.Format, cmd.OutOrStdout(), cmd.ErrOrStderr())).SyncService)
	})
}
