// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dev-connector command-line client.
//
// An [App] maps a command name and its positional arguments onto one
// [adapter.ServerAdapter] call and prints the server's reply as indented JSON.
package client
