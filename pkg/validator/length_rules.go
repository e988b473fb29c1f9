package validator

import "fmt"

// MinLen validates that the character count of the value's string
// representation is at least min. An absent value fails the rule.
func MinLen(field string, kind Kind, min int) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		s, ok := stringify(vals.Get(field))
		if !ok {
			return false
		}
		return charLen(s) >= min
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be at least %d characters long", min),
		TranslationKey: "validation.min_length",
		TranslationValues: map[string]any{
			"field": field,
			"min":   min,
		},
	})
}

// MaxLen validates that the character count of the value's string
// representation is at most max. An absent value fails the rule.
func MaxLen(field string, kind Kind, max int) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		s, ok := stringify(vals.Get(field))
		if !ok {
			return false
		}
		return charLen(s) <= max
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be at most %d characters long", max),
		TranslationKey: "validation.max_length",
		TranslationValues: map[string]any{
			"field": field,
			"max":   max,
		},
	})
}

// LenBetween validates that the character count of the value's string
// representation is within [min, max] inclusive. An absent value fails
// the rule.
func LenBetween(field string, kind Kind, min, max int) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		s, ok := stringify(vals.Get(field))
		if !ok {
			return false
		}
		n := charLen(s)
		return n >= min && n <= max
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
		TranslationKey: "validation.length_between",
		TranslationValues: map[string]any{
			"field": field,
			"min":   min,
			"max":   max,
		},
	})
}
