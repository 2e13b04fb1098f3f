package tfout

// logsKey carries bulk raw console text in provisioning payloads. It is
// rendered separately from the structured output, so display surfaces ask
// for it to be dropped.
const logsKey = "logs"

// Options controls sanitization and formatting.
type Options struct {
	// OmitLogs drops the "logs" key from every map level.
	OmitLogs bool
}

// DefaultOptions returns the options used when a caller passes none:
// logs are kept.
func DefaultOptions() Options { return Options{} }

// Sanitize returns a copy of v with every string normalized via
// NormalizeLogText and, when opts.OmitLogs is set, the "logs" key removed
// at every depth. The input is never mutated; list order and map key order
// are preserved.
func Sanitize(v Value, opts Options) Value {
	return sanitizeDepth(v, opts, 0)
}

func sanitizeDepth(v Value, opts Options, depth int) Value {
	if depth > maxDepth {
		return v
	}
	switch v.kind {
	case KindText:
		return Text(NormalizeLogText(v.text))
	case KindList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = sanitizeDepth(item, opts, depth+1)
		}
		return Value{kind: KindList, list: items}
	case KindMap:
		entries := make([]Entry, 0, len(v.entries))
		for _, e := range v.entries {
			if opts.OmitLogs && e.Key == logsKey {
				continue
			}
			entries = append(entries, Entry{Key: e.Key, Val: sanitizeDepth(e.Val, opts, depth+1)})
		}
		return Value{kind: KindMap, entries: entries}
	default:
		// Null, bool, and number scalars pass through untouched.
		return v
	}
}
