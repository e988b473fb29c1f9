package validator

import "fmt"

// MatchesField validates that the value equals the sibling value at ref.
// Used for confirm-password and repeat-email style fields.
func MatchesField(field string, kind Kind, ref string) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		v, ok := vals.Get(field)
		refVal, refOK := vals.Get(ref)
		if !ok || !refOK {
			return false
		}
		return equalValues(v, refVal)
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must match the %s field", ref),
		TranslationKey: "validation.match_field",
		TranslationValues: map[string]any{
			"field":     field,
			"reference": ref,
		},
	})
}

// MinLenMatchingField combines a minimum length check with a sibling equality
// check. The length check is evaluated first.
func MinLenMatchingField(field string, kind Kind, min int, ref string) Rule {
	mustKind(kind)
	return Chain(field,
		MinLen(field, kind, min),
		MatchesField(field, kind, ref),
	)
}

// GreaterThanFieldIf validates that the numeric value is strictly greater
// than the sibling value at ref while every condition holds. A non-numeric
// value or reference fails the comparison.
func GreaterThanFieldIf(field string, kind Kind, ref string, conds ...Condition) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		if !conditionsMet(vals, conds) {
			return true
		}
		v, _ := vals.Get(field)
		refVal, _ := vals.Get(ref)
		n, ok := toNumber(v)
		refN, refOK := toNumber(refVal)
		return ok && refOK && n > refN
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be greater than %s", ref),
		TranslationKey: "validation.greater_than_field",
		TranslationValues: map[string]any{
			"field":     field,
			"reference": ref,
		},
	})
}

// GreaterThanFieldWithinLimitIf is GreaterThanFieldIf with a ceiling: while
// the conditions hold the value must also be at most limit. The reference
// comparison is evaluated first, so when a value violates both only the
// reference failure is reported. The ordering is part of the contract.
func GreaterThanFieldWithinLimitIf(field string, kind Kind, ref string, limit float64, conds ...Condition) Rule {
	mustKind(kind)
	ceiling := rule(field, func(vals Values) bool {
		if !conditionsMet(vals, conds) {
			return true
		}
		v, _ := vals.Get(field)
		n, ok := toNumber(v)
		return ok && n <= limit
	}, ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be at most %v", limit),
		TranslationKey: "validation.max",
		TranslationValues: map[string]any{
			"field": field,
			"max":   limit,
		},
	})

	return Chain(field,
		GreaterThanFieldIf(field, kind, ref, conds...),
		ceiling,
	)
}
