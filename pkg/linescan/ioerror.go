// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package linescan

// IoError wraps a failure to open, read or write during a scan.
// The message is the underlying cause's message.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return e.Err.Error()
}

func (e *IoError) Unwrap() error {
	return e.Err
}
