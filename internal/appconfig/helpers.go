// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// PriorityStudies maps a category name to an ordered list of study
// identifiers.
type PriorityStudies map[string][]string

// memo caches the results of a parser keyed by its exact input string. The
// cache is never evicted.
type memo[T any] struct {
	mu      sync.Mutex
	entries map[string]T
}

func newMemo[T any]() *memo[T] {
	return &memo[T]{entries: make(map[string]T)}
}

// get returns the cached result for key, computing and storing it on a miss.
// Failed computations are not cached.
func (m *memo[T]) get(key string, compute func(string) (T, error)) (T, error) {
	m.mu.Lock()
	if v, ok := m.entries[key]; ok {
		m.mu.Unlock()
		return v, nil
	}
	m.mu.Unlock()

	v, err := compute(key)
	if err != nil {
		return v, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// a concurrent caller may have stored first; keep a single result per key
	if existing, ok := m.entries[key]; ok {
		return existing, nil
	}
	m.entries[key] = v
	return v, nil
}

func (m *memo[T]) must(key string, compute func(string) T) T {
	v, _ := m.get(key, func(s string) (T, error) {
		return compute(s), nil
	})
	return v
}

// Helpers parses delimited server configuration strings. Every parser is
// memoized: calling it again with the same input returns the identical
// slice or map, which callers must treat as read-only.
type Helpers struct {
	exampleQueries   *memo[[]string]
	priorityStudies  *memo[PriorityStudies]
	querySetsOfGenes *memo[any]
	disabledTabs     *memo[[]string]
}

// NewHelpers returns a set of helpers with empty caches.
func NewHelpers() *Helpers {
	return &Helpers{
		exampleQueries:   newMemo[[]string](),
		priorityStudies:  newMemo[PriorityStudies](),
		querySetsOfGenes: newMemo[any](),
		disabledTabs:     newMemo[[]string](),
	}
}

var defaultHelpers = NewHelpers()

// SkinExampleStudyQueries splits text into lines, trims them and drops the
// empty ones.
func (h *Helpers) SkinExampleStudyQueries(text string) []string {
	return h.exampleQueries.must(text, parseExampleStudyQueries)
}

// PriorityStudies parses "Category#study1,study2;Other#study3". Empty input
// yields an empty map; on duplicate categories the last one wins.
func (h *Helpers) PriorityStudies(text string) PriorityStudies {
	return h.priorityStudies.must(text, parsePriorityStudies)
}

// ParseQuerySetsOfGenes decodes the JSON value of query_sets_of_genes. The
// error wraps [ErrParse] when text is not valid JSON.
func (h *Helpers) ParseQuerySetsOfGenes(text string) (any, error) {
	return h.querySetsOfGenes.get(text, parseQuerySetsOfGenes)
}

// ParseDisabledTabs splits text on commas and trims every entry.
func (h *Helpers) ParseDisabledTabs(text string) []string {
	return h.disabledTabs.must(text, parseDisabledTabs)
}

// SkinExampleStudyQueries uses the package-wide helpers.
func SkinExampleStudyQueries(text string) []string {
	return defaultHelpers.SkinExampleStudyQueries(text)
}

// ParsePriorityStudies uses the package-wide helpers.
func ParsePriorityStudies(text string) PriorityStudies {
	return defaultHelpers.PriorityStudies(text)
}

// ParseQuerySetsOfGenes uses the package-wide helpers.
func ParseQuerySetsOfGenes(text string) (any, error) {
	return defaultHelpers.ParseQuerySetsOfGenes(text)
}

// ParseDisabledTabs uses the package-wide helpers.
func ParseDisabledTabs(text string) []string {
	return defaultHelpers.ParseDisabledTabs(text)
}

func parseExampleStudyQueries(text string) []string {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
	})

	queries := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			queries = append(queries, line)
		}
	}
	return queries
}

func parsePriorityStudies(text string) PriorityStudies {
	studies := make(PriorityStudies)
	if text == "" {
		return studies
	}

	for _, entry := range strings.Split(text, ";") {
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "#")
		if len(parts) < 2 {
			studies[parts[0]] = []string{}
			continue
		}
		studies[parts[0]] = strings.Split(parts[1], ",")
	}
	return studies
}

func parseQuerySetsOfGenes(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, SettingQuerySetsOfGenes, err)
	}
	return v, nil
}

func parseDisabledTabs(text string) []string {
	tabs := strings.Split(text, ",")
	for i, tab := range tabs {
		tabs[i] = strings.TrimSpace(tab)
	}
	return tabs
}
