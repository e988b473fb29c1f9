// Package validator builds condition-aware, cross-field validation rules for
// form input.
//
// A field is described by a Kind (text, number, email, list, date, boolean)
// selecting its base coercion and comparison semantics. Rule constructors
// translate a declarative description into an immutable Rule value; rules are
// evaluated against a Values snapshot holding every sibling field, so rules
// can compare against other fields (confirm-password, greater-than) and gate
// themselves on sibling values (required-if, range-if).
//
// # Architecture
//
// Each source file groups a family of rules (`length_rules.go`,
// `reference_rules.go`, `conditional_rules.go`, ...). Every constructor
// returns a Rule; Chain combines rules into a rule whose first failure wins.
// There is no hidden state: evaluating the same Rule against the same
// snapshot always yields the same outcome, and rules never mutate the
// snapshot, so callers may evaluate rules for different fields concurrently.
//
// Conditional rules are trivially valid while any of their conditions is
// unmet. A field whose conditions stop matching silently becomes optional;
// this is a documented contract, not an oversight.
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.Base("email", validator.KindEmail),
//	    validator.MinLenMatchingField("confirm", validator.KindText, 8, "password"),
//	    validator.RequiredIf("company", validator.KindText,
//	        validator.When("accountType", "business")),
//	}
//
//	err := validator.Apply(values, rules...)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // map field -> messages for UI display
//	}
//
// # Error Handling
//
// Evaluation never panics: failures are returned as ValidationError data and
// aggregated by Apply into a ValidationErrors slice implementing the error
// interface. The only fatal condition is constructing a rule with an
// out-of-range Kind, which panics at schema-definition time.
//
// # Localization
//
// Every failure carries a translation key and interpolation values alongside
// its fixed English default message. Supply a TranslateFunc via
// Rule.Localized or ValidationErrors.Localize to resolve messages through an
// external localization provider; both paths share the same rule logic.
package validator
