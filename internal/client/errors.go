// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgs      = errors.New("wrong number of arguments")
	ErrNoToken        = errors.New("no token configured, run login first or pass -token")

	errNilAdapter = errors.New("server adapter is nil")
)
