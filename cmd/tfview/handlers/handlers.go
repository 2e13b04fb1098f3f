// Package handlers implements the execution logic behind the tfview
// commands. Commands parse flags and delegate here; handlers read the
// payload, run it through pkg/tfout, and write the result.
package handlers

import (
	"fmt"
	"io"
	"os"
)

// readPayload reads the raw payload from path, or from stdin when path is
// empty or "-".
func readPayload(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return string(data), nil
	}
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read payload file: %w", err)
	}
	return string(data), nil
}
