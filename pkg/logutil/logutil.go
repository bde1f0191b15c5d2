// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logutil sets up the diagnostic logger.
package logutil

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultLogLevel = logrus.WarnLevel

// MakeLogger returns a logger writing to w. levelStr is a logrus level name,
// empty or unknown names fall back to DefaultLogLevel.
func MakeLogger(w io.Writer, levelStr string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	level := DefaultLogLevel
	if levelStr != "" {
		if parsed, err := logrus.ParseLevel(levelStr); err == nil {
			level = parsed
		}
	}
	logger.SetLevel(level)
	return logger
}

// MakeScanEntry tags every entry of one run with a fresh scan id
func MakeScanEntry(logger *logrus.Logger) *logrus.Entry {
	return logger.WithField("scanid", uuid.New().String())
}

func DiscardEntry() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
