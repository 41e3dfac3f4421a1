// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(*HTTPClient)

// WithTimeout sets the per-request timeout. Zero keeps resty's default of no
// timeout.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(name, value string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.SetHeader(name, value)
	}
}

// WithBaseURL sets the URL relative request paths are resolved against.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.SetBaseURL(url)
	}
}

// NewHTTPClient creates an independent resty-backed client with opts
// applied in order.
//
//	client := utils.NewHTTPClient(utils.WithTimeout(10 * time.Second))
//	resp, err := client.R().Get("https://www.cbioportal.org/api/studies")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{Client: resty.New()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
