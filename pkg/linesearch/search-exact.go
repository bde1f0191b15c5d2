// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package linesearch

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExactSearcher reports lines containing a literal query. When folding is on
// both sides go through context-aware Unicode lower-casing (a word-final Σ
// becomes ς). The line printed afterwards is always the caller's original text.
type ExactSearcher struct {
	query         string
	caseSensitive bool
	lower         cases.Caser
}

// MakeExactSearcher lower-cases the query once, lines are folded per Match
func MakeExactSearcher(query string, caseSensitive bool) *ExactSearcher {
	s := &ExactSearcher{
		query:         query,
		caseSensitive: caseSensitive,
	}
	if !caseSensitive {
		s.lower = cases.Lower(language.Und)
		s.query = s.lower.String(query)
	}
	return s
}

// Match is plain substring containment, so an empty query matches every line.
// Not safe for concurrent use when folding (the Caser keeps state).
func (s *ExactSearcher) Match(line string) bool {
	if !s.caseSensitive {
		line = s.lower.String(line)
	}
	return strings.Contains(line, s.query)
}

func (s *ExactSearcher) GetType() string {
	if s.caseSensitive {
		return SearchTypeExactCase
	}
	return SearchTypeExact
}
