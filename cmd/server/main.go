// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/handler"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/server"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("dev-connector-server").Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("dev-connector-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
