// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// apiRunning is the liveness probe.
func (h *Handler) apiRunning(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("API running..."))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
