package validator

import (
	"net/mail"
	"strings"
)

// Base returns the type-and-required rule for a field: the value must be
// present, non-empty, and well formed for the declared kind.
// Panics on an unsupported kind.
func Base(field string, kind Kind) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		v, ok := vals.Get(field)
		return baseCheck(kind, v, ok)
	}, baseFailure(field, kind))
}

// baseCheck is the shared presence + type predicate behind Base and the
// conditional required rules.
func baseCheck(kind Kind, v any, ok bool) bool {
	if absent(v, ok) {
		return false
	}

	switch kind {
	case KindText:
		_, isStr := v.(string)
		return isStr
	case KindNumber:
		_, numOK := toNumber(v)
		return numOK
	case KindEmail:
		s, isStr := v.(string)
		return isStr && validEmail(s)
	case KindList:
		n, listOK := isList(v)
		return listOK && n > 0
	case KindDate:
		s, isStr := v.(string)
		return isStr && validDate(s)
	case KindBool:
		_, isBool := v.(bool)
		return isBool
	case kindCount:
	}
	return false
}

func baseFailure(field string, kind Kind) ValidationError {
	message := "field is required"
	key := "validation.required"

	switch kind {
	case KindNumber:
		message = "must be a number"
		key = "validation.number"
	case KindEmail:
		message = "must be a valid email address"
		key = "validation.email"
	case KindList:
		message = "must contain at least one item"
		key = "validation.required_list"
	case KindDate:
		message = "must be a valid date in YYYY-MM-DD format"
		key = "validation.date"
	case KindBool:
		message = "must be a boolean value"
		key = "validation.boolean"
	case KindText, kindCount:
	}

	return ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// validEmail accepts addresses that parse under RFC 5322 and look like typical
// web-form input: a single local@domain pair with a dotted domain.
func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart, domain := parts[0], parts[1]
	if localPart == "" {
		return false
	}

	// Display names ("John <a@b.c>") parse fine but are not form input.
	if addr.Address != value {
		return false
	}

	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}
