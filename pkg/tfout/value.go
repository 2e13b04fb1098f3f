package tfout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// maxDepth bounds recursive walks over value trees. Payloads from real
// provisioning tools are a handful of levels deep; the guard only exists so
// a hostile or broken payload cannot exhaust the stack.
const maxDepth = 1000

var errTooDeep = errors.New("value tree exceeds maximum depth")

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is the absence of a value (JSON null or missing data).
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is a numeric scalar, stored as its JSON literal.
	KindNumber
	// KindText is a string.
	KindText
	// KindList is an ordered sequence of values.
	KindList
	// KindMap is an ordered mapping of unique string keys to values.
	KindMap
)

// Entry is one key/value pair of a map Value. Entries keep the order in
// which they were decoded or constructed.
type Entry struct {
	Key string
	Val Value
}

// Value is a JSON-like tree: null, bool, number, text, list, or map.
// Unlike map[string]any it preserves map key order, which keeps serialized
// output byte-stable across a decode/sanitize/encode round trip.
//
// The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	number  string
	text    string
	list    []Value
	entries []Entry
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number returns a numeric Value holding the given JSON number literal.
func Number(lit string) Value { return Value{kind: KindNumber, number: lit} }

// Text returns a string Value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// ListOf returns a list Value over the given items.
func ListOf(items ...Value) Value { return Value{kind: KindList, list: items} }

// MapOf returns a map Value over the given entries, keeping their order.
// A repeated key replaces the value at the key's first position.
func MapOf(entries ...Entry) Value {
	v := Value{kind: KindMap}
	for _, e := range entries {
		v.set(e.Key, e.Val)
	}
	return v
}

func (v *Value) set(key string, val Value) {
	for i := range v.entries {
		if v.entries[i].Key == key {
			v.entries[i].Val = val
			return
		}
	}
	v.entries = append(v.entries, Entry{Key: key, Val: val})
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// TextValue returns the string payload of a text Value, or "" for any
// other kind.
func (v Value) TextValue() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// Items returns the elements of a list Value, nil for any other kind.
// The returned slice is shared; callers must not modify it.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Entries returns the ordered entries of a map Value, nil for any other
// kind. The returned slice is shared; callers must not modify it.
func (v Value) Entries() []Entry {
	if v.kind != KindMap {
		return nil
	}
	return v.entries
}

// Lookup returns the value stored under key in a map Value.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Val, true
		}
	}
	return Value{}, false
}

// Len returns the number of entries of a map, the number of items of a
// list, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.entries)
	default:
		return 0
	}
}

// FromAny converts a decoded-JSON dynamic value (the shapes produced by
// encoding/json into any: nil, bool, float64, json.Number, string, []any,
// map[string]any) into a Value. A Value passes through unchanged.
//
// Go maps carry no order, so map[string]any keys are sorted to keep the
// result deterministic. Use ParseJSON when the original document order
// matters. Types outside the JSON shapes convert to Null rather than
// failing; callers of this package feed arbitrary dynamic values and
// expect a safe result, not an error.
func FromAny(v any) Value {
	return fromAnyDepth(v, 0)
}

func fromAnyDepth(v any, depth int) Value {
	if depth > maxDepth {
		return Null()
	}
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return Text(t)
	case json.Number:
		return Number(t.String())
	case float64:
		return Number(formatFloat(t))
	case float32:
		return Number(formatFloat(float64(t)))
	case int:
		return Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case uint64:
		return Number(strconv.FormatUint(t, 10))
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = fromAnyDepth(item, depth+1)
		}
		return Value{kind: KindList, list: items}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, 0, len(t))
		for _, k := range keys {
			entries = append(entries, Entry{Key: k, Val: fromAnyDepth(t[k], depth+1)})
		}
		return Value{kind: KindMap, entries: entries}
	default:
		return Null()
	}
}

// formatFloat renders a float the way encoding/json does, so a value that
// travelled through map[string]any serializes identically to one decoded
// by ParseJSON.
func formatFloat(f float64) string {
	b, err := json.Marshal(f)
	if err != nil {
		// NaN/Inf are not representable in JSON; null is the closest shape.
		return "null"
	}
	return string(b)
}

// ParseJSON decodes a JSON document into a Value, preserving the document's
// object key order. Numbers keep their literal text. Trailing non-space
// content after the document is an error.
func ParseJSON(s string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	v, err := decodeValue(dec, 0)
	if err != nil {
		return Null(), err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Null(), errors.New("trailing content after JSON document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, errTooDeep
	}
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := Value{kind: KindMap}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := decodeValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				v.set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return v, nil
		case '[':
			v := Value{kind: KindList}
			for dec.More() {
				item, err := decodeValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				v.list = append(v.list, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return v, nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return Text(t), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// MarshalJSON renders v as compact JSON with map entries in stored order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer, depth int) error {
	if depth > maxDepth {
		return errTooDeep
	}
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		if v.number == "" {
			buf.WriteByte('0')
			break
		}
		buf.WriteString(v.number)
	case KindText:
		b, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := e.Val.encode(buf, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// PrettyJSON renders v as 2-space-indented JSON with map entries in stored
// order. The output is byte-identical for equal inputs.
func (v Value) PrettyJSON() (string, error) {
	// json.Marshal validates the MarshalJSON output, catching any bad
	// number literal smuggled in through Number().
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}
