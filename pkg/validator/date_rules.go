package validator

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

// Structural check: zero-padded YYYY-MM-DD with month 01-12 and day 01-31.
// Calendar validity (February lengths, 30-day months) is checked by parsing.
var dateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// RequiredDate validates that the value is a calendar date in canonical
// YYYY-MM-DD form. The check runs in two stages: a structural regex match,
// then a parse and re-serialize whose output must equal the input exactly.
// The round trip rejects dates that match the pattern but do not exist,
// such as 2023-02-29.
func RequiredDate(field string, kind Kind) Rule {
	mustKind(kind)
	return rule(field, func(vals Values) bool {
		v, ok := vals.Get(field)
		if !ok {
			return false
		}
		s, isStr := v.(string)
		return isStr && validDate(s)
	}, ValidationError{
		Field:          field,
		Message:        "must be a valid date in YYYY-MM-DD format",
		TranslationKey: "validation.date",
		TranslationValues: map[string]any{
			"field":  field,
			"format": "YYYY-MM-DD",
		},
	})
}

func validDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}

	return t.Format(dateLayout) == s
}
