// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/client"
	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("dev-connector-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("dev-connector-client", os.Stderr, cfg.App.LogLevel)
	if len(cfg.Args) > 0 && cfg.Args[0] == "build" {
		printBuildInfo()
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background(), cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
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
