// Package main is the entry point for the tfview CLI.
//
// tfview renders raw infrastructure-provisioning output for display:
// it strips terminal escape codes, pretty-prints embedded JSON, and
// extracts readable error messages from arbitrary failure payloads.
//
// Commands: render, logs, errmsg.
//
// For detailed usage information, run:
//
//	tfview --help
package main

import (
	"fmt"
	"os"

	"github.com/opsviewer/tfview/cmd/tfview/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
