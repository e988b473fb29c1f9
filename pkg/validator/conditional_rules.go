package validator

import "fmt"

// RequiredIf validates that the value passes the base presence-and-type check
// when every condition holds. While any condition is unmet the rule is
// trivially valid, which silently makes the field optional; callers rely on
// that behavior.
func RequiredIf(field string, kind Kind, conds ...Condition) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		if !conditionsMet(vals, conds) {
			return true
		}
		v, ok := vals.Get(field)
		return baseCheck(kind, v, ok)
	}, baseFailure(field, kind))
}

// RangeIf validates that the numeric value is within [min, max] inclusive
// while every condition holds. A non-numeric or absent value fails when the
// conditions are met.
func RangeIf(field string, kind Kind, min, max float64, conds ...Condition) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		if !conditionsMet(vals, conds) {
			return true
		}
		v, _ := vals.Get(field)
		n, ok := toNumber(v)
		return ok && n >= min && n <= max
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be between %v and %v", min, max),
		TranslationKey: "validation.range",
		TranslationValues: map[string]any{
			"field": field,
			"min":   min,
			"max":   max,
		},
	})
}

// MinIf validates that the numeric value is at least min while every
// condition holds.
func MinIf(field string, kind Kind, min float64, conds ...Condition) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		if !conditionsMet(vals, conds) {
			return true
		}
		v, _ := vals.Get(field)
		n, ok := toNumber(v)
		return ok && n >= min
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be at least %v", min),
		TranslationKey: "validation.min",
		TranslationValues: map[string]any{
			"field": field,
			"min":   min,
		},
	})
}
