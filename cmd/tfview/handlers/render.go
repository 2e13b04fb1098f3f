package handlers

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/opsviewer/tfview/internal/ui"
	"github.com/opsviewer/tfview/pkg/tfout"
)

// RenderRequest carries the resolved inputs for the render command.
type RenderRequest struct {
	// Path of the payload file; empty or "-" reads stdin.
	Path string
	// OmitLogs drops the "logs" field from structured output.
	OmitLogs bool
	// Styled wraps the output in a lipgloss header when writing to a
	// terminal.
	Styled bool
	// Log receives pipeline decisions at V(1).
	Log logr.Logger
}

// Render formats a raw provisioning payload for display and writes it to
// out.
func Render(stdin io.Reader, out io.Writer, req RenderRequest) error {
	raw, err := readPayload(req.Path, stdin)
	if err != nil {
		return err
	}

	req.Log.V(1).Info("rendering provisioning output",
		"bytes", len(raw), "omitLogs", req.OmitLogs, "styled", req.Styled)

	rendered := tfout.FormatOutput(raw, tfout.Options{OmitLogs: req.OmitLogs})

	if req.Styled {
		fmt.Fprintln(out, ui.RenderHeader("Terraform output"))
	}
	fmt.Fprintln(out, rendered)
	return nil
}
