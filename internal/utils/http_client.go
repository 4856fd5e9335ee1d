// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// AuthTokenHeader is the request header that carries the credential token.
const AuthTokenHeader = "x-auth-token"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client rooted at baseURL. A zero timeout
// leaves resty's default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5010", 10*time.Second)
//	resp, err := client.R().Get("/api/posts")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}

// SetAuthToken makes every following request carry token in the
// x-auth-token header. An empty token removes the header.
func (c *HTTPClient) SetAuthToken(token string) {
	if token == "" {
		c.Header.Del(AuthTokenHeader)
		return
	}
	c.SetHeader(AuthTokenHeader, token)
}
