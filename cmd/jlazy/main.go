// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jlazy inspects JSON documents using a lazy index.
package main

import (
	"os"

	"github.com/creachadair/jlazy/internal/cli"
	"github.com/creachadair/jlazy/internal/logging"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}
