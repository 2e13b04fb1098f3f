package commands

import (
	"github.com/spf13/cobra"

	"github.com/opsviewer/tfview/cmd/tfview/handlers"
)

// Logs returns the command that normalizes raw console log text.
func Logs(g *globalFlags) *cobra.Command {
	var lastError bool

	cmd := &cobra.Command{
		Use:   "logs [file]",
		Short: "Normalize raw console log text",
		Long: `Strip terminal escape sequences and canonicalize line endings in raw
console log text.

With --last-error, print only the single most likely error line, picked
by a prioritized set of failure patterns (provider error codes first,
then error/failure keywords); the command fails if the log has no
non-empty lines.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Logs(cmd.InOrStdin(), cmd.OutOrStdout(), handlers.LogsRequest{
				Path:      pathArg(args),
				LastError: lastError,
				Log:       g.logger(),
			})
		},
	}

	cmd.Flags().BoolVar(&lastError, "last-error", false, "Print only the most likely error line")

	return cmd
}
