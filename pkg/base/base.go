// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package base

const ProgramName = "minigrep"

// Environment variables
const IgnoreCaseEnvName = "INVERT"
const LogLevelEnvName = "MINIGREP_LOGLEVEL"
