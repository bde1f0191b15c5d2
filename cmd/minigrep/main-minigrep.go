// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/outrigdev/minigrep/pkg/base"
	"github.com/outrigdev/minigrep/pkg/config"
	"github.com/outrigdev/minigrep/pkg/linescan"
	"github.com/outrigdev/minigrep/pkg/logutil"
	"github.com/outrigdev/minigrep/pkg/panichandler"
	"github.com/spf13/cobra"
)

func makeRootCmd(lookupEnv config.LookupEnvFunc, stdout io.Writer, stderr io.Writer) *cobra.Command {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	logLevel, _ := lookupEnv(base.LogLevelEnvName)
	log := logutil.MakeScanEntry(logutil.MakeLogger(stderr, logLevel))

	rootCmd := &cobra.Command{
		Use:   base.ProgramName + " <query> <path>",
		Short: "Print the lines of a file that contain a query",
		Long: `Print every line of <path> that contains <query>, prefixed with its line number.
Set INVERT (to any value) for case-insensitive matching.`,
		Args: cobra.ArbitraryArgs,
		// every argument is positional, including ones that look like flags
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) (rtnErr error) {
			defer func() {
				if panicErr := panichandler.PanicHandler("minigrep", recover(), log); panicErr != nil {
					rtnErr = panicErr
				}
			}()
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			cfg, err := config.Build(append([]string{base.ProgramName}, args...), lookupEnv)
			if err != nil {
				return err
			}
			log.WithField("ignorecase", cfg.IgnoreCase).Debug("resolved config")
			scanner := linescan.MakeScanner(cfg, log)
			_, err = scanner.Run(stdout)
			return err
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd
}

// runMain returns the process exit code
func runMain(args []string, lookupEnv config.LookupEnvFunc, stdout io.Writer, stderr io.Writer) int {
	bufOut := bufio.NewWriter(stdout)
	rootCmd := makeRootCmd(lookupEnv, bufOut, stderr)
	// the leading "--" keeps cobra from resolving a query such as
	// "__complete" or "help" as a subcommand
	rootCmd.SetArgs(append([]string{"--"}, args...))
	err := rootCmd.Execute()
	// matches found before a failure must reach stdout
	flushErr := bufOut.Flush()
	if err == nil && flushErr != nil {
		err = &linescan.IoError{Op: "write", Err: flushErr}
	}
	if err == nil {
		return 0
	}
	var argErr *config.MissingArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", argErr)
		return 1
	}
	fmt.Fprintf(stderr, "Application error: %v\n", err)
	return 1
}

func main() {
	os.Exit(runMain(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}
