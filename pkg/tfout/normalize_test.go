package tfout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLogText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"crlf becomes lf", "a\r\nb", "a\nb"},
		{"lone cr becomes lf", "a\rb", "a\nb"},
		{"mixed line endings", "a\r\nb\rc", "a\nb\nc"},
		{"color codes stripped", "\x1b[31mError\x1b[0m", "Error"},
		{"multi parameter sgr stripped", "\x1b[1;31;40mbold red\x1b[0m", "bold red"},
		{"cursor movement stripped", "\x1b[2Jcleared", "cleared"},
		{"c1 csi introducer stripped", "\u009b31mred", "red"},
		{"all occurrences stripped", "\x1b[32mok\x1b[0m and \x1b[31mbad\x1b[0m", "ok and bad"},
		{"no trimming", "  padded  ", "  padded  "},
		{"empty string", "", ""},
		{"nil input", nil, ""},
		{"number input", 42, ""},
		{"map input", map[string]any{"a": 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeLogText(tt.input))
		})
	}
}

func TestNormalizeLogTextIdempotent(t *testing.T) {
	t.Parallel()

	samples := []string{
		"plain",
		"a\r\nb\rc",
		"\x1b[31mError\x1b[0m",
		"\x1b[1;31;40mnested \x1b[0m\r\nand more\r",
		"",
		"  spaced  \n",
	}
	for _, s := range samples {
		once := NormalizeLogText(s)
		assert.Equal(t, once, NormalizeLogText(once), "normalize must be idempotent for %q", s)
	}
}
