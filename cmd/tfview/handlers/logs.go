package handlers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"

	"github.com/opsviewer/tfview/pkg/tfout"
)

// LogsRequest carries the resolved inputs for the logs command.
type LogsRequest struct {
	// Path of the log file; empty or "-" reads stdin.
	Path string
	// LastError prints only the most likely error line instead of the
	// whole normalized log.
	LastError bool
	// Log receives pipeline decisions at V(1).
	Log logr.Logger
}

// Logs normalizes raw console log text and writes it to out. With
// LastError set it writes the single best error line; a log with no
// non-empty lines is an error in that mode.
func Logs(stdin io.Reader, out io.Writer, req LogsRequest) error {
	raw, err := readPayload(req.Path, stdin)
	if err != nil {
		return err
	}

	req.Log.V(1).Info("normalizing console log",
		"bytes", len(raw), "lastError", req.LastError)

	if req.LastError {
		line, ok := tfout.LogErrorLine(raw)
		if !ok {
			return errors.New("log contains no non-empty lines")
		}
		fmt.Fprintln(out, line)
		return nil
	}

	normalized := tfout.NormalizeLogText(raw)
	fmt.Fprint(out, normalized)
	if normalized != "" && !strings.HasSuffix(normalized, "\n") {
		fmt.Fprintln(out)
	}
	return nil
}
