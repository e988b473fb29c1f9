package sanitizer

// CleanParams returns a pruned copy of a nested parameter map, the shape form
// and query values arrive in. Strings are trimmed; nil values, empty strings,
// and maps or slices that become empty after pruning are dropped. The input
// map is never mutated.
func CleanParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}

	out := make(map[string]any, len(params))
	for key, val := range params {
		if cleaned, keep := cleanValue(val); keep {
			out[key] = cleaned
		}
	}
	return out
}

func cleanValue(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		s := Trim(val)
		return s, s != ""
	case map[string]any:
		m := CleanParams(val)
		return m, len(m) > 0
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if cleaned, keep := cleanValue(item); keep {
				out = append(out, cleaned)
			}
		}
		return out, len(out) > 0
	case []string:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := Trim(item); s != "" {
				out = append(out, s)
			}
		}
		return out, len(out) > 0
	default:
		// Numbers, booleans, and unknown types pass through untouched.
		return val, true
	}
}
