// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// checkedMethods are the methods reported in the Allow header.
var checkedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// CheckHTTPMethod returns the handler registered with
// [chi.Mux.MethodNotAllowed]. It answers 405 with a JSON body and lists the
// methods the requested path does support in the Allow header.
//
// The lookup asks router to match the path for each method, so parameterised
// routes are resolved the same way as for normal requests.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, len(checkedMethods))
		for _, method := range checkedMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, r, errMethodNotAllowed)
	}
}

// routeNotFound is registered with [chi.Mux.NotFound].
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}
