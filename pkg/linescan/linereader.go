// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package linescan

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

const readBufSize = 64 * 1024

// LineReader produces the lines of a stream one at a time (single forward pass).
// Line terminators ("\n" or "\r\n") are stripped and there is no length limit.
type LineReader struct {
	rd      *bufio.Reader
	lineNum int64
	done    bool
}

func MakeLineReader(r io.Reader) *LineReader {
	return &LineReader{
		rd: bufio.NewReaderSize(r, readBufSize),
	}
}

// ReadLine returns the next line, or io.EOF once the stream is exhausted.
// After any error the reader stays finished.
func (lr *LineReader) ReadLine() (string, error) {
	if lr.done {
		return "", io.EOF
	}
	line, err := lr.rd.ReadString('\n')
	if err != nil {
		lr.done = true
		if err != io.EOF {
			return "", err
		}
		if len(line) == 0 {
			return "", io.EOF
		}
		// unterminated final line, still a line
	}
	if strings.HasSuffix(line, "\n") {
		line = line[:len(line)-1]
		line = strings.TrimSuffix(line, "\r")
	}
	if !utf8.ValidString(line) {
		lr.done = true
		return "", ErrInvalidUTF8
	}
	lr.lineNum++
	return line, nil
}

// LineNum is the 1-based number of the line last returned by ReadLine
func (lr *LineReader) LineNum() int64 {
	return lr.lineNum
}
