// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dev-connector application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, log level and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the database backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the command-line client to reach
	// the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing. Only the client uses them.
	Args []string `env:"-"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle, logging and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "100h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5010").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN selects both the driver and the connection. "postgres://" and
	// "postgresql://" URIs open PostgreSQL; "sqlite://<path>", "file:<path>"
	// and ":memory:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client-side settings for talking to the server.
type Adapter struct {
	// HTTPAddress is the base address of the server (e.g. "localhost:5010").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a previously issued credential token sent as x-auth-token.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// defaults are applied after all sources are merged and only fill fields
// that are still zero.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "dev-connector",
			TokenDuration: 100 * time.Hour,
			LogLevel:      "debug",
			Version:       "N/A",
		},
		Server: Server{
			HTTPAddress:     ":5010",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:5010",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Fields left empty are filled from built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
