package tfout

import (
	"regexp"
	"strings"
)

// requestFailedFallback is returned when neither the payload nor the
// caller-supplied fallback contains a usable message.
const requestFailedFallback = "Request failed."

// errorCandidateKeys are the map keys conventionally carrying a
// human-readable error string, scanned in exactly this order. The first
// key present with non-empty text wins; later keys are ignored.
var errorCandidateKeys = []string{"detail", "error", "message", "reason"}

// logErrorPatterns ranks failure indicators found in raw log text, most
// specific first. The table order is the priority order; within one
// pattern the last (most recent) matching line wins. Case-insensitive.
var logErrorPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"invalid-parameter-combination", regexp.MustCompile(`(?i)invalidparametercombination`)},
	{"vpc-id-not-specified", regexp.MustCompile(`(?i)vpcidnotspecified`)},
	{"error-prefix", regexp.MustCompile(`(?i)\berror:`)},
	{"api-error", regexp.MustCompile(`(?i)\bapi error\b`)},
	{"failed", regexp.MustCompile(`(?i)\bfailed\b`)},
	{"exception", regexp.MustCompile(`(?i)\bexception\b`)},
	{"forbidden", regexp.MustCompile(`(?i)\bforbidden\b`)},
	{"unauthorized", regexp.MustCompile(`(?i)\bunauthorized\b`)},
	{"not-found", regexp.MustCompile(`(?i)\bnot found\b`)},
}

// ExtractErrorMessage reduces an arbitrary failure payload to the single
// best human-readable message. Resolution order, first applicable rule
// wins:
//
//  1. non-empty text payloads win as-is (normalized, trimmed)
//  2. lists join their items' "msg" fields or string items with ", "
//  3. maps are scanned for detail/error/message/reason, in that order
//  4. a text "logs" field is mined for its most likely error line
//  5. anything else renders through FormatOutput with logs omitted
//
// When nothing yields a message the normalized fallback is returned, and
// when the fallback itself is empty, "Request failed.". The function never
// returns an empty string and never panics.
func ExtractErrorMessage(v any, fallback string) string {
	fb := strings.TrimSpace(NormalizeLogText(fallback))
	if fb == "" {
		fb = requestFailedFallback
	}

	val := FromAny(v)
	switch val.Kind() {
	case KindText:
		if msg := strings.TrimSpace(NormalizeLogText(val.TextValue())); msg != "" {
			return msg
		}
		return fb
	case KindList:
		if msg := joinListMessages(val); msg != "" {
			return msg
		}
		return fb
	case KindMap:
		if val.Len() == 0 {
			return fb
		}
		for _, key := range errorCandidateKeys {
			candidate, ok := val.Lookup(key)
			if !ok || candidate.Kind() != KindText {
				continue
			}
			if msg := strings.TrimSpace(NormalizeLogText(candidate.TextValue())); msg != "" {
				return msg
			}
		}
		if logs, ok := val.Lookup(logsKey); ok && logs.Kind() == KindText {
			if line, ok := LogErrorLine(logs.TextValue()); ok {
				return line
			}
		}
		if out := strings.TrimSpace(FormatOutput(val, Options{OmitLogs: true})); out != "" && out != noOutputPlaceholder {
			return out
		}
		return fb
	default:
		// Null, bool, and number payloads carry no message.
		return fb
	}
}

// joinListMessages derives a message from each list item: the text of a
// "msg" field for map items, the item itself for text items, nothing
// otherwise. Non-empty messages are joined with ", " in original order.
func joinListMessages(list Value) string {
	var msgs []string
	for _, item := range list.Items() {
		var raw string
		switch item.Kind() {
		case KindMap:
			m, ok := item.Lookup("msg")
			if !ok || m.Kind() != KindText {
				continue
			}
			raw = m.TextValue()
		case KindText:
			raw = item.TextValue()
		default:
			continue
		}
		if msg := strings.TrimSpace(NormalizeLogText(raw)); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, ", ")
}

// LogErrorLine scans raw log text for the single most likely error line.
// Lines are normalized, trimmed, and filtered of blanks; the first pattern
// in logErrorPatterns that matches any line selects the last matching line
// in the log. When no pattern matches, the last non-empty line is
// returned. ok is false only when the log has no non-empty lines.
func LogErrorLine(logs string) (line string, ok bool) {
	var lines []string
	for _, l := range strings.Split(NormalizeLogText(logs), "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return "", false
	}
	for _, pattern := range logErrorPatterns {
		for i := len(lines) - 1; i >= 0; i-- {
			if pattern.re.MatchString(lines[i]) {
				return lines[i], true
			}
		}
	}
	return lines[len(lines)-1], true
}
