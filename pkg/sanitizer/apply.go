package sanitizer

// Transform is a single pure normalization step for a field value.
type Transform func(string) string

// Apply runs a field value through transforms in order.
func Apply(value string, transforms ...Transform) string {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable normalization pipeline out of transforms.
// Preferred over repeated Apply calls when the same chain covers many fields.
func Compose(transforms ...Transform) Transform {
	return func(value string) string {
		return Apply(value, transforms...)
	}
}

// NormalizeFields returns a copy of params with per-field pipelines applied
// to the named string values. Fields that are missing or hold non-string
// values are left as they are; the input map is never mutated.
func NormalizeFields(params map[string]any, fields map[string]Transform) map[string]any {
	if params == nil {
		return nil
	}

	out := make(map[string]any, len(params))
	for key, val := range params {
		if transform, ok := fields[key]; ok {
			if s, isStr := val.(string); isStr {
				out[key] = transform(s)
				continue
			}
		}
		out[key] = val
	}
	return out
}
