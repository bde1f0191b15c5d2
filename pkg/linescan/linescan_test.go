// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package linescan

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/outrigdev/minigrep/pkg/ds"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\n"

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestScannerRun(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		query      string
		ignoreCase bool
		want       string
	}{
		{
			name:    "Case sensitive match",
			content: poem,
			query:   "duct",
			want:    "2: safe, fast, productive.\n",
		},
		{
			name:       "Case insensitive keeps original text",
			content:    poem,
			query:      "rUsT",
			ignoreCase: true,
			want:       "1: Rust:\n",
		},
		{
			name:    "Case sensitive misses other case",
			content: poem,
			query:   "rUsT",
			want:    "",
		},
		{
			name:    "Empty query reports every line",
			content: poem,
			query:   "",
			want:    "1: Rust:\n2: safe, fast, productive.\n3: Pick three.\n",
		},
		{
			name:    "Empty file",
			content: "",
			query:   "anything",
			want:    "",
		},
		{
			name:    "Blank lines count toward the line number",
			content: "alpha\n\n\nalpha beta\n",
			query:   "alpha",
			want:    "1: alpha\n4: alpha beta\n",
		},
		{
			name:    "Empty query reports blank lines",
			content: "a\n\nb",
			query:   "",
			want:    "1: a\n2: \n3: b\n",
		},
		{
			name:    "CRLF file",
			content: "one\r\ntwo\r\n",
			query:   "two",
			want:    "2: two\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.content)
			scanner := MakeScanner(&ds.Config{Query: tt.query, Path: path, IgnoreCase: tt.ignoreCase}, nil)
			var out bytes.Buffer
			if _, err := scanner.Run(&out); err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Run() output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestScannerRunStats(t *testing.T) {
	path := writeTempFile(t, poem)
	scanner := MakeScanner(&ds.Config{Query: "e", Path: path}, nil)
	var out bytes.Buffer
	stats, err := scanner.Run(&out)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	want := ds.ScanStats{LinesRead: 3, LinesMatched: 2}
	if stats != want {
		t.Errorf("Run() stats = %+v, want %+v", stats, want)
	}
}

func TestScannerRunIsRepeatable(t *testing.T) {
	path := writeTempFile(t, poem+"\nproductive again\n")
	cfg := &ds.Config{Query: "PRODUCTIVE", Path: path, IgnoreCase: true}

	var first, second bytes.Buffer
	if _, err := MakeScanner(cfg, nil).Run(&first); err != nil {
		t.Fatalf("first Run() unexpected error: %v", err)
	}
	if _, err := MakeScanner(cfg, nil).Run(&second); err != nil {
		t.Fatalf("second Run() unexpected error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("outputs differ: %q vs %q", first.String(), second.String())
	}
	if first.String() != "2: safe, fast, productive.\n5: productive again\n" {
		t.Errorf("unexpected output %q", first.String())
	}
}

func TestScannerRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	var out bytes.Buffer
	_, err := MakeScanner(&ds.Config{Query: "x", Path: path}, nil).Run(&out)

	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Run() error = %v, want *IoError", err)
	}
	if ioErr.Op != "open" {
		t.Errorf("IoError.Op = %q, want %q", ioErr.Op, "open")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Run() error does not wrap fs.ErrNotExist: %v", err)
	}
	if !strings.Contains(err.Error(), "does-not-exist.txt") {
		t.Errorf("error message %q lost the underlying cause", err.Error())
	}
	if out.Len() != 0 {
		t.Errorf("Run() wrote output on open failure: %q", out.String())
	}
}

func TestScannerStopsAtInvalidUTF8(t *testing.T) {
	path := writeTempFile(t, "match one\nno\nmatch \xff\nmatch three\n")
	var out bytes.Buffer
	stats, err := MakeScanner(&ds.Config{Query: "match", Path: path}, nil).Run(&out)

	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Run() error = %v, want *IoError", err)
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Run() error = %v, want ErrInvalidUTF8", err)
	}
	if out.String() != "1: match one\n" {
		t.Errorf("Run() output = %q, want only the lines before the bad one", out.String())
	}
	if stats.LinesRead != 2 {
		t.Errorf("LinesRead = %d, want 2", stats.LinesRead)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestScannerWriteError(t *testing.T) {
	scanner := MakeScanner(&ds.Config{Query: "Rust"}, nil)
	_, err := scanner.ScanReader(strings.NewReader(poem), failingWriter{})
	var ioErr *IoError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("ScanReader() error = %v, want write IoError", err)
	}
}
