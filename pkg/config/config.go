// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package config

const (
	MissingQueryMsg = "Didn't get a query string"
	MissingPathMsg  = "Didn't get a file name"
)

// LookupEnvFunc has the same contract as os.LookupEnv
type LookupEnvFunc func(key string) (string, bool)

// MissingArgumentError is returned when a required positional argument is absent
type MissingArgumentError struct {
	Msg string
}

func (e *MissingArgumentError) Error() string {
	return e.Msg
}
