// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields that remain zero afterwards are taken from built-in defaults.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
