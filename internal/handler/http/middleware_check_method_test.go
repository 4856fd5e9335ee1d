// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/dev-connector/models"
)

func TestCheckHTTPMethod_WrongMethodReturns405(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	tests := []struct {
		name      string
		method    string
		target    string
		wantAllow string
	}{
		{name: "patch on posts", method: http.MethodPatch, target: "/api/posts", wantAllow: "GET, POST"},
		{name: "put on single post", method: http.MethodPut, target: "/api/posts/abc", wantAllow: "GET, DELETE"},
		{name: "get on like", method: http.MethodGet, target: "/api/posts/like/abc", wantAllow: "PUT"},
		{name: "delete on users", method: http.MethodDelete, target: "/api/users", wantAllow: "POST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.target, "", "")

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			assert.Equal(t, "method not allowed", decodeBody[models.ErrorResponse](t, rr).Message)
		})
	}
}

func TestRouteNotFound_ReturnsJSON404(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	for _, target := range []string{"/nope", "/api", "/api/posts/a/b/c/d"} {
		rr := doRequest(t, router, http.MethodGet, target, "", "")

		assert.Equal(t, http.StatusNotFound, rr.Code, target)
		assert.Equal(t, "route not found", decodeBody[models.ErrorResponse](t, rr).Message)
	}
}
