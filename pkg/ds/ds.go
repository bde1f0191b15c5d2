// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package ds

import (
	"strconv"
)

// Config is resolved once at startup and handed to the scanner
type Config struct {
	Query      string `json:"query"`
	Path       string `json:"path"`
	IgnoreCase bool   `json:"ignorecase"`
}

// MatchedLine is a single line that satisfied the search, LineNum is 1-based
type MatchedLine struct {
	LineNum int64  `json:"linenum"`
	Line    string `json:"line"`
}

func (ml MatchedLine) String() string {
	return strconv.FormatInt(ml.LineNum, 10) + ": " + ml.Line
}

type ScanStats struct {
	LinesRead    int64 `json:"linesread"`
	LinesMatched int64 `json:"linesmatched"`
}
