// Package jsonbridge converts values to and from JSON text and re-attaches
// behavior to freshly parsed data.
//
// What
//
//   - Serialize(v): the standard encoding/json text form of any value.
//   - Deserialize(caps, text): parse text into a plain data record and pair
//     it with a capability set — a value whose methods supply the behavior
//     the raw JSON data lacks.
//
// The pairing is an explicit wrapper, Bound: the parsed fields live in
// Bound.Data, the behavior lives in Bound.Caps, and the capability set's
// own fields are never merged into the data record.
//
// Errors
//
//	Malformed JSON surfaces the underlying encoding/json error, wrapped
//	with %w so errors.As still reaches *json.SyntaxError and friends.
package jsonbridge

import (
	"encoding/json"
	"fmt"
)

// Serialize returns the standard JSON encoding of v.
// Object key order follows encoding/json's own rules (struct field order,
// sorted map keys); callers comparing object output should compare parsed
// structure rather than raw text.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("jsonbridge: serialize: %w", err)
	}

	return string(data), nil
}

// Bound pairs a parsed JSON data record with a capability set of type C.
// Data holds the object's fields exactly as encoding/json decoded them
// (numbers as float64); Caps holds the behavior and nothing of Caps leaks
// into Data.
type Bound[C any] struct {
	Caps C
	Data map[string]any
}

// Field returns the named data field and whether it is present.
func (b Bound[C]) Field(name string) (any, bool) {
	v, ok := b.Data[name]

	return v, ok
}

// Deserialize parses text as a JSON object and binds caps to the result.
// The parse error, if any, is the encoding/json one, wrapped.
func Deserialize[C any](caps C, text string) (Bound[C], error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return Bound[C]{}, fmt.Errorf("jsonbridge: deserialize: %w", err)
	}

	return Bound[C]{Caps: caps, Data: data}, nil
}
