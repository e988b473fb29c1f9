package validator

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// absent reports whether a field holds no usable value: missing key, nil, or
// an empty / whitespace-only string.
func absent(v any, ok bool) bool {
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// stringify returns the user-facing string representation of a value for
// character-count comparisons. The second result is false for absent values.
func stringify(v any, ok bool) (string, bool) {
	if !ok || v == nil {
		return "", false
	}

	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}

// charLen counts characters, not bytes, matching user-facing length semantics.
func charLen(s string) int {
	return utf8.RuneCountInString(s)
}

// toNumber coerces a value into a float64. Numeric strings are accepted since
// HTML form values arrive as strings.
func toNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8, int16, int32, int64:
		return float64(reflect.ValueOf(val).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(val).Uint()), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// equalValues compares a field value against an expected value. Numbers
// compare after normalization to float64 so a decoded 3.0 matches a literal 3;
// everything else requires deep equality.
func equalValues(a, b any) bool {
	if an, aok := toNumberStrict(a); aok {
		if bn, bok := toNumberStrict(b); bok {
			return an == bn
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// toNumberStrict is toNumber without the string coercion, so "1" does not
// match 1 in condition comparisons.
func toNumberStrict(v any) (float64, bool) {
	if _, isStr := v.(string); isStr {
		return 0, false
	}
	return toNumber(v)
}

// isList reports whether a value is a slice or array, with its length.
func isList(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	default:
		return 0, false
	}
}
