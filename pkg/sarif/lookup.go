package sarif

import (
	"encoding/json"
	"math"
)

// Lookup walks path through a decoded JSON tree. String steps index objects,
// int steps index arrays. It stops at the first missing or mistyped link and
// reports false.
func Lookup(node interface{}, path ...interface{}) (interface{}, bool) {
	cur := node
	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := asObject(cur)
			if !ok {
				return nil, false
			}
			next, ok := m[key]
			if !ok {
				return nil, false
			}
			cur = next
		case int:
			s, ok := cur.([]interface{})
			if !ok || key < 0 || key >= len(s) {
				return nil, false
			}
			cur = s[key]
		default:
			return nil, false
		}
	}
	return cur, true
}

// LookupString returns the string at path, or fallback.
func LookupString(node interface{}, fallback string, path ...interface{}) string {
	v, ok := Lookup(node, path...)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// LookupInt returns the integer at path, or fallback. Fractional numbers are
// truncated toward zero.
func LookupInt(node interface{}, fallback int, path ...interface{}) int {
	v, ok := Lookup(node, path...)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fallback
		}
		return int(n)
	case int:
		return n
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return fallback
		}
		return int(i)
	default:
		return fallback
	}
}

// LookupSlice returns the array at path, or nil.
func LookupSlice(node interface{}, path ...interface{}) []interface{} {
	v, ok := Lookup(node, path...)
	if !ok {
		return nil
	}
	s, _ := v.([]interface{})
	return s
}

func asObject(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Document:
		return m, true
	default:
		return nil, false
	}
}
