// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// GetClientConfig loads configuration for the command-line client from the
// same sources as [GetStructuredConfig]. Server-only settings such as the
// token sign key are not required. Positional arguments are returned in
// [StructuredConfig.Args].
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}
