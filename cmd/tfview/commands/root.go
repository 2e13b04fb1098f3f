// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
)

// globalFlags are bound on the root command and shared by every
// subcommand.
type globalFlags struct {
	configPath string
	debug      bool
}

// logger returns a funcr-backed logr.Logger writing pipeline decisions to
// stderr, or a discard logger when --debug is off.
func (g *globalFlags) logger() logr.Logger {
	if !g.debug {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: 1})
}

// Root returns the root command for the tfview CLI.
func Root() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "tfview",
		Short: "Render provisioning output and error payloads for display",
		Long: `tfview turns raw infrastructure-provisioning output into readable text.

It normalizes terminal escape codes and line endings, pretty-prints
embedded JSON, and extracts the single most useful error message from
arbitrary failure payloads. Payloads are read from a file argument or
from stdin.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to configuration file (default: .tfview.yaml when present)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Log pipeline decisions to stderr")

	cmd.AddCommand(Render(g))
	cmd.AddCommand(Logs(g))
	cmd.AddCommand(ErrMsg(g))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// pathArg returns the optional positional payload path.
func pathArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}
