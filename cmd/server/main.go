package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/handler"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/server"
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/internal/store"
	"github.com/MKhiriev/go-student-registry/internal/telemetry"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const serviceName = "student-server"

func main() {
	printBuildInfo()

	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags := config.BindServerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger(serviceName)
	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx, serviceName, cfg.App.OTelEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}
	defer func() { _ = shutdownTelemetry(ctx) }()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
