// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package linescan

import (
	"fmt"
	"io"
	"os"

	"github.com/outrigdev/minigrep/pkg/ds"
	"github.com/outrigdev/minigrep/pkg/linesearch"
	"github.com/outrigdev/minigrep/pkg/logutil"
	"github.com/sirupsen/logrus"
)

// Scanner streams one file and writes the lines matching its config
type Scanner struct {
	config   ds.Config
	searcher linesearch.Searcher
	log      *logrus.Entry
}

// MakeScanner copies cfg, a nil log discards all diagnostics
func MakeScanner(cfg *ds.Config, log *logrus.Entry) *Scanner {
	if log == nil {
		log = logutil.DiscardEntry()
	}
	return &Scanner{
		config:   *cfg,
		searcher: linesearch.MakeSearcher(cfg.Query, cfg.IgnoreCase),
		log:      log,
	}
}

// Run opens the configured file and scans it. Matches are written to out as
// they are found, so on error everything matched before the failure is already out.
func (s *Scanner) Run(out io.Writer) (ds.ScanStats, error) {
	fd, err := os.Open(s.config.Path)
	if err != nil {
		s.log.WithError(err).WithField("path", s.config.Path).Debug("open failed")
		return ds.ScanStats{}, &IoError{Op: "open", Path: s.config.Path, Err: err}
	}
	defer fd.Close()

	s.log.WithFields(logrus.Fields{
		"path":       s.config.Path,
		"searchtype": s.searcher.GetType(),
	}).Debug("scanning file")
	return s.ScanReader(fd, out)
}

// ScanReader runs the match loop over r
func (s *Scanner) ScanReader(r io.Reader, out io.Writer) (ds.ScanStats, error) {
	var stats ds.ScanStats
	lr := MakeLineReader(r)
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.WithError(err).WithField("linenum", lr.LineNum()+1).Debug("read failed")
			return stats, &IoError{Op: "read", Path: s.config.Path, Err: err}
		}
		stats.LinesRead++
		if !s.searcher.Match(line) {
			continue
		}
		stats.LinesMatched++
		ml := ds.MatchedLine{LineNum: lr.LineNum(), Line: line}
		if _, err := fmt.Fprintln(out, ml.String()); err != nil {
			return stats, &IoError{Op: "write", Path: s.config.Path, Err: err}
		}
	}
	s.log.WithFields(logrus.Fields{
		"linesread":    stats.LinesRead,
		"linesmatched": stats.LinesMatched,
	}).Debug("scan complete")
	return stats, nil
}
