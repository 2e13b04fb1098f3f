package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsviewer/tfview/cmd/tfview/handlers"
	"github.com/opsviewer/tfview/internal/config"
	"github.com/opsviewer/tfview/internal/ui"
)

// Render returns the command that formats provisioning output for display.
func Render(g *globalFlags) *cobra.Command {
	var omitLogs bool
	var colorMode string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render provisioning output as display-ready text or JSON",
		Long: `Render arbitrary provisioning output for display.

Strings that contain an embedded JSON document are parsed, cleaned of
terminal escape codes, and pretty-printed; plain text is normalized and
trimmed. Missing or empty input renders a placeholder instead of failing.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(g.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("omit-logs") {
				omitLogs = cfg.OmitLogs
			}
			mode := colorMode
			if mode == "" {
				mode = cfg.Color
			}

			return handlers.Render(cmd.InOrStdin(), cmd.OutOrStdout(), handlers.RenderRequest{
				Path:     pathArg(args),
				OmitLogs: omitLogs,
				Styled:   ui.ColorEnabled(mode, os.Stdout),
				Log:      g.logger(),
			})
		},
	}

	cmd.Flags().BoolVar(&omitLogs, "omit-logs", false, "Drop the \"logs\" field at every level of structured output")
	cmd.Flags().StringVar(&colorMode, "color", "", "Color mode: auto, always, or never (default from config)")

	return cmd
}
