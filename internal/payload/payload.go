// Package payload reads values out of decoded upstream JSON without committing to a schema.
package payload

import (
	"encoding/json"
	"strconv"
)

// Object returns v as a JSON object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// List returns v as a JSON array.
func List(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// Lookup walks nested objects by key and returns the value at the end of the path.
func Lookup(m map[string]any, keys ...string) (any, bool) {
	var cur any = m
	for _, k := range keys {
		obj, ok := Object(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[k]
		if !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// ObjectAt returns the object at the given path.
func ObjectAt(m map[string]any, keys ...string) (map[string]any, bool) {
	v, ok := Lookup(m, keys...)
	if !ok {
		return nil, false
	}
	return Object(v)
}

// ListAt returns the array at the given path.
func ListAt(m map[string]any, keys ...string) ([]any, bool) {
	v, ok := Lookup(m, keys...)
	if !ok {
		return nil, false
	}
	return List(v)
}

// String returns the string at the given path when it is a non-empty string.
func String(m map[string]any, keys ...string) (string, bool) {
	v, ok := Lookup(m, keys...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// StringPtr renders a scalar at the given path as a string pointer, or nil when absent.
func StringPtr(m map[string]any, keys ...string) *string {
	v, ok := Lookup(m, keys...)
	if !ok {
		return nil
	}
	s, ok := Stringify(v)
	if !ok {
		return nil
	}
	return &s
}

// Number returns the numeric value at the given path.
func Number(m map[string]any, keys ...string) (float64, bool) {
	v, ok := Lookup(m, keys...)
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Stringify renders a JSON scalar the way it appears on the wire: 10 not 10.0.
func Stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return FormatNumber(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// FormatNumber prints integral values without a fractional part.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
