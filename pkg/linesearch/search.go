// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package linesearch

const (
	SearchTypeExact     = "exact"
	SearchTypeExactCase = "exactcase"
)

// Searcher defines the interface for line matching strategies
type Searcher interface {
	// Match checks if a line matches the search criteria
	Match(line string) bool

	// GetType returns the search type identifier
	GetType() string
}

// MakeSearcher returns the searcher for a query, ignoreCase selects case folding
func MakeSearcher(query string, ignoreCase bool) Searcher {
	return MakeExactSearcher(query, !ignoreCase)
}
