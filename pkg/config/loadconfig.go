// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"

	"github.com/outrigdev/minigrep/pkg/base"
	"github.com/outrigdev/minigrep/pkg/ds"
)

// Build resolves a Config from process-style args (args[0] is the invocation
// name and is skipped). Arguments past the path are ignored.
// A nil lookupEnv reads the process environment.
func Build(args []string, lookupEnv LookupEnvFunc) (*ds.Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) < 1 {
		return nil, &MissingArgumentError{Msg: MissingQueryMsg}
	}
	query := args[0]
	if len(args) < 2 {
		return nil, &MissingArgumentError{Msg: MissingPathMsg}
	}
	path := args[1]

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	// only presence matters, an empty value still enables it
	_, ignoreCase := lookupEnv(base.IgnoreCaseEnvName)

	return &ds.Config{
		Query:      query,
		Path:       path,
		IgnoreCase: ignoreCase,
	}, nil
}
