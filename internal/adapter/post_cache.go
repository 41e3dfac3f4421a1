// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// PostCache stores successful POST responses for the lifetime of the process,
// keyed by request URL and a SHA-256 digest of the request body.
type PostCache struct {
	mu      sync.Mutex
	entries map[string]cachedResponse
}

type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

// NewPostCache returns an empty cache.
func NewPostCache() *PostCache {
	return &PostCache{entries: make(map[string]cachedResponse)}
}

// Len reports the number of cached responses.
func (c *PostCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *PostCache) load(key string) (cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[key]
	return r, ok
}

func (c *PostCache) store(key string, r cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = r
}

func postCacheKey(url string, body []byte) string {
	sum := sha256.Sum256(body)
	return url + "#" + hex.EncodeToString(sum[:])
}

// cachingTransport serves repeated POST requests from a [PostCache]. Other
// methods pass through untouched.
type cachingTransport struct {
	next  http.RoundTripper
	cache *PostCache
}

func newCachingTransport(next http.RoundTripper, cache *PostCache) *cachingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &cachingTransport{next: next, cache: cache}
}

func (t *cachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPost {
		return t.next.RoundTrip(req)
	}

	body, err := readRequestBody(req)
	if err != nil {
		return nil, err
	}
	key := postCacheKey(req.URL.String(), body)

	if cached, ok := t.cache.load(key); ok {
		return cached.response(req), nil
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	t.cache.store(key, cachedResponse{
		status: resp.StatusCode,
		header: resp.Header.Clone(),
		body:   respBody,
	})
	resp.Body = io.NopCloser(bytes.NewReader(respBody))
	return resp, nil
}

// readRequestBody returns the request body and leaves req readable again.
func readRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func (r cachedResponse) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", r.status, http.StatusText(r.status)),
		StatusCode:    r.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        r.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(r.body)),
		ContentLength: int64(len(r.body)),
		Request:       req,
	}
}
