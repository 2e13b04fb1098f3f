package tfout

import (
	"regexp"
	"strings"
)

// ansiEscapePattern matches ANSI/terminal escape sequences: an introducer
// (ESC or the single-byte C1 CSI), optional intermediate bytes, an optional
// numeric parameter run (1-4 digits, repeatable with ';'), and one final
// byte from the set used by cursor, color, and mode-setting sequences.
// Kept as a single named pattern so the exact shape stays auditable.
var ansiEscapePattern = regexp.MustCompile(`[\x1b\x9b][\[\]()#;?]*(?:[0-9]{1,4}(?:;[0-9]{0,4})*)?[0-9A-ORZcf-nqry=><]`)

// NormalizeLogText strips terminal escape sequences from v and
// canonicalizes line endings to "\n". Non-string input yields "": callers
// feed arbitrary dynamic values and expect a safe text result, not an
// error. The function does not trim; trimming is the caller's call.
//
// Normalizing already-normalized text returns it unchanged.
func NormalizeLogText(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = ansiEscapePattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
