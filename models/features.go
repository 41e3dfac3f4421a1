// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Features is the set of values the front-end derives from the resolved
// server configuration.
type Features struct {
	// SessionServiceEnabled reports whether session_service_url is set.
	SessionServiceEnabled bool `json:"sessionServiceEnabled"`

	// UserEmailAddress is empty for anonymous sessions.
	UserEmailAddress string `json:"userEmailAddress,omitempty"`

	// PriorityStudies maps a category to its ordered study identifiers.
	PriorityStudies map[string][]string `json:"priorityStudies"`

	ExampleStudyQueries []string `json:"exampleStudyQueries"`
	DisabledTabs        []string `json:"disabledTabs"`

	// QuerySetsOfGenes is the decoded query_sets_of_genes JSON value, or nil.
	QuerySetsOfGenes any `json:"querySetsOfGenes"`
}
