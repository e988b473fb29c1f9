package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects the base comparison and coercion semantics for a field value.
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
	KindEmail
	KindList
	KindDate
	KindBool

	kindCount // sentinel, keep last
)

var kindNames = [kindCount]string{
	KindText:   "text",
	KindNumber: "number",
	KindEmail:  "email",
	KindList:   "list",
	KindDate:   "date",
	KindBool:   "boolean",
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// mustKind panics on an out-of-range kind so a broken schema definition fails
// at construction time, not on the first validation pass. Schema builders that
// prefer an error over a panic should check Kind.Valid first.
func mustKind(k Kind) {
	if !k.Valid() {
		panic(fmt.Sprintf("validator: unsupported kind %d", uint8(k)))
	}
}

// Values is a snapshot of all form field values at validation time. Rules read
// from it (including sibling fields) but never write to it.
type Values map[string]any

// Get returns the value for a field and whether the field is present.
func (v Values) Get(field string) (any, bool) {
	val, ok := v[field]
	return val, ok
}

// Condition gates whether a conditional rule applies: the rule is enforced only
// when the sibling field holds the expected value.
type Condition struct {
	Field  string
	Equals any
}

// When is shorthand for building a Condition.
func When(field string, equals any) Condition {
	return Condition{Field: field, Equals: equals}
}

// conditionsMet reports whether every condition matches its sibling value.
// An empty condition set is always met; evaluation stops at the first miss.
func conditionsMet(vals Values, conds []Condition) bool {
	for _, c := range conds {
		got, ok := vals[c.Field]
		if !ok || !equalValues(got, c.Equals) {
			return false
		}
	}
	return true
}

// ValidationError describes a single field failure with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Localize returns a copy of ve with every message resolved through tf.
// Errors without a translation key keep their default message.
func (ve ValidationErrors) Localize(tf TranslateFunc) ValidationErrors {
	if tf == nil || len(ve) == 0 {
		return ve
	}

	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		out[i] = err
		if err.TranslationKey == "" {
			continue
		}
		if msg := tf(err.TranslationKey, err.TranslationValues); msg != "" {
			out[i].Message = msg
		}
	}
	return out
}

// TranslateFunc resolves a message key with interpolation values into a
// localized string. Returning "" keeps the rule's default message.
type TranslateFunc func(key string, values map[string]any) string

// Rule is an immutable validation predicate bound to a single field. A Rule is
// evaluated against the full Values snapshot so cross-field rules can read
// sibling values. Evaluation is pure: same snapshot, same outcome.
type Rule struct {
	field string
	eval  func(vals Values) *ValidationError
}

// Field returns the name of the field the rule is bound to.
func (r Rule) Field() string {
	return r.field
}

// Eval runs the rule against one snapshot. A nil result means the value is
// valid; a failure is returned as data, never panicked.
func (r Rule) Eval(vals Values) *ValidationError {
	if r.eval == nil {
		return nil
	}
	return r.eval(vals)
}

// Localized returns a rule with identical logic whose failure message is
// resolved through tf. A nil tf returns the rule unchanged, so both
// construction paths share the same predicate.
func (r Rule) Localized(tf TranslateFunc) Rule {
	if tf == nil || r.eval == nil {
		return r
	}

	inner := r.eval
	return Rule{field: r.field, eval: func(vals Values) *ValidationError {
		verr := inner(vals)
		if verr == nil || verr.TranslationKey == "" {
			return verr
		}
		if msg := tf(verr.TranslationKey, verr.TranslationValues); msg != "" {
			e := *verr
			e.Message = msg
			return &e
		}
		return verr
	}}
}

// rule builds a Rule from a predicate and its failure metadata.
func rule(field string, check func(vals Values) bool, failure ValidationError) Rule {
	return Rule{field: field, eval: func(vals Values) *ValidationError {
		if check(vals) {
			return nil
		}
		e := failure
		return &e
	}}
}

// Chain combines rules into a single rule bound to field. Evaluation stops at
// the first failure, which becomes the chain's failure. Chains are themselves
// rules, so composition is associative.
func Chain(field string, rules ...Rule) Rule {
	return Rule{field: field, eval: func(vals Values) *ValidationError {
		for _, r := range rules {
			if verr := r.Eval(vals); verr != nil {
				return verr
			}
		}
		return nil
	}}
}

// Apply evaluates all rules against one snapshot and aggregates failures into
// a ValidationErrors value. Returns nil when every rule passes.
func Apply(vals Values, rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if verr := r.Eval(vals); verr != nil {
			errs = append(errs, *verr)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
