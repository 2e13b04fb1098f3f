package tfout

import "strings"

// Placeholder strings returned when no renderable content exists. Display
// surfaces show these verbatim, so they are part of the contract.
const (
	noOutputPlaceholder     = "No Terraform output available yet."
	noStructuredPlaceholder = "No structured Terraform output (logs shown below)."
	formatFailedPlaceholder = "Unable to format Terraform output."
)

// FormatOutput renders an arbitrary provisioning output value as a
// display-ready string. Strings that look like embedded JSON documents are
// parsed, sanitized, and pretty-printed; other strings are returned
// normalized and trimmed; structured values are sanitized and
// pretty-printed with 2-space indentation. Missing or empty input yields a
// placeholder. The result is byte-identical for equal input and options.
//
// At most one Options may be passed; none means DefaultOptions. The
// function never returns an error and never panics: parse and
// serialization failures degrade to the original text or a placeholder.
func FormatOutput(v any, opts ...Options) string {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return formatValue(FromAny(v), o)
}

func formatValue(v Value, o Options) string {
	switch v.kind {
	case KindNull:
		return noOutputPlaceholder
	case KindText:
		trimmed := strings.TrimSpace(NormalizeLogText(v.text))
		if trimmed == "" {
			return noOutputPlaceholder
		}
		if !looksLikeJSON(trimmed) {
			return trimmed
		}
		parsed, err := ParseJSON(trimmed)
		if err != nil {
			// Bracket-delimited but not actually JSON; show it as text.
			return trimmed
		}
		out, err := Sanitize(parsed, o).PrettyJSON()
		if err != nil {
			return trimmed
		}
		return out
	default:
		out, err := Sanitize(v, o).PrettyJSON()
		if err != nil {
			return formatFailedPlaceholder
		}
		if out == "{}" && o.OmitLogs {
			// The only content was the omitted logs field.
			return noStructuredPlaceholder
		}
		return out
	}
}

// looksLikeJSON is a deliberately coarse check: bracket delimiters only.
// Minified non-JSON text that happens to be bracket-delimited is
// misclassified, and callers depend on exactly that behavior; ParseJSON
// failing afterwards restores the text path.
func looksLikeJSON(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}
