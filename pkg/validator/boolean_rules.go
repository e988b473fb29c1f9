package validator

// MustBeTrue validates that the value is the boolean true. Strict identity:
// truthy strings, non-zero numbers, and pointer-to-bool all fail.
func MustBeTrue(field string, kind Kind) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		v, ok := vals.Get(field)
		if !ok {
			return false
		}
		b, isBool := v.(bool)
		return isBool && b
	}, ValidationError{
		Field:          field,
		Message:        "must be accepted",
		TranslationKey: "validation.accepted",
		TranslationValues: map[string]any{
			"field": field,
		},
	})
}
