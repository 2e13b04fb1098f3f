package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsviewer/tfview/cmd/tfview/handlers"
	"github.com/opsviewer/tfview/internal/config"
	"github.com/opsviewer/tfview/internal/ui"
)

// ErrMsg returns the command that summarizes a failure payload.
func ErrMsg(g *globalFlags) *cobra.Command {
	var fallback string
	var colorMode string

	cmd := &cobra.Command{
		Use:   "errmsg [file]",
		Short: "Extract the best human-readable error message from a failure payload",
		Long: `Reduce an arbitrary failure payload to a single readable message.

The payload may be plain text, a JSON list of {"msg": ...} validation
errors, or a JSON object carrying detail/error/message/reason fields or
raw log text under "logs". The command always prints some message: when
the payload yields nothing, the fallback is printed instead.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(g.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("fallback") {
				fallback = cfg.Fallback
			}
			mode := colorMode
			if mode == "" {
				mode = cfg.Color
			}

			return handlers.ErrMsg(cmd.InOrStdin(), cmd.OutOrStdout(), handlers.ErrMsgRequest{
				Path:     pathArg(args),
				Fallback: fallback,
				Styled:   ui.ColorEnabled(mode, os.Stdout),
				Log:      g.logger(),
			})
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "Message to print when the payload yields nothing")
	cmd.Flags().StringVar(&colorMode, "color", "", "Color mode: auto, always, or never (default from config)")

	return cmd
}
