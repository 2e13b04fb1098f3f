package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"

	"github.com/opsviewer/tfview/internal/ui"
	"github.com/opsviewer/tfview/pkg/tfout"
)

// ErrMsgRequest carries the resolved inputs for the errmsg command.
type ErrMsgRequest struct {
	// Path of the failure payload; empty or "-" reads stdin.
	Path string
	// Fallback is returned when the payload yields no message.
	Fallback string
	// Styled renders the message in the error style when writing to a
	// terminal.
	Styled bool
	// Log receives pipeline decisions at V(1).
	Log logr.Logger
}

// ErrMsg extracts the single best human-readable error message from a
// failure payload and writes it to out. JSON payloads are decoded first so
// the extractor sees their structure; anything else is treated as raw
// text.
func ErrMsg(stdin io.Reader, out io.Writer, req ErrMsgRequest) error {
	raw, err := readPayload(req.Path, stdin)
	if err != nil {
		return err
	}

	var payload any = raw
	if v, err := tfout.ParseJSON(strings.TrimSpace(raw)); err == nil {
		payload = v
		req.Log.V(1).Info("payload decoded as JSON", "kind", v.Kind())
	} else {
		req.Log.V(1).Info("payload treated as raw text", "bytes", len(raw))
	}

	msg := tfout.ExtractErrorMessage(payload, req.Fallback)
	if req.Styled {
		msg = ui.RenderErrorLine(msg)
	}
	fmt.Fprintln(out, msg)
	return nil
}
