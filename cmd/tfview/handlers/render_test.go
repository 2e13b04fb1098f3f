package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFromStdin(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Render(strings.NewReader(`{"b": 1, "a": 2}`), &out, RenderRequest{Log: logr.Discard()})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}\n", out.String())
}

func TestRenderFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"logs": "raw", "ip": "10.0.0.1"}`), 0o600))

	var out bytes.Buffer
	err := Render(strings.NewReader(""), &out, RenderRequest{
		Path:     path,
		OmitLogs: true,
		Log:      logr.Discard(),
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "10.0.0.1")
	assert.NotContains(t, out.String(), "logs")
}

func TestRenderEmptyInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Render(strings.NewReader("   "), &out, RenderRequest{Log: logr.Discard()})
	require.NoError(t, err)

	assert.Equal(t, "No Terraform output available yet.\n", out.String())
}

func TestRenderStyledHeader(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Render(strings.NewReader("done"), &out, RenderRequest{Styled: true, Log: logr.Discard()})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Terraform output")
	assert.Contains(t, out.String(), "done")
}

func TestRenderMissingFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Render(strings.NewReader(""), &out, RenderRequest{
		Path: filepath.Join(t.TempDir(), "nope.json"),
		Log:  logr.Discard(),
	})
	assert.Error(t, err)
}
