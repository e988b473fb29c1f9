package formschema

import (
	"fmt"

	"github.com/formkit-go/formkit/pkg/validator"
)

// Field binds a named form field to its kind and validation rules.
type Field struct {
	Name  string
	Kind  validator.Kind
	Rules []validator.Rule
}

// NewField builds a Field, surfacing configuration misuse as an error rather
// than a panic for callers that assemble schemas from external definitions.
func NewField(name string, kind validator.Kind, rules ...validator.Rule) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("formschema: field name is empty")
	}
	if !kind.Valid() {
		return Field{}, fmt.Errorf("formschema: field %q: %w", name, validator.ErrUnsupportedKind)
	}
	return Field{Name: name, Kind: kind, Rules: rules}, nil
}

// Schema is an immutable ordered set of fields, built once per form
// definition and evaluated against a fresh Values snapshot on every pass.
type Schema struct {
	fields []Field
}

// New builds a Schema, rejecting duplicate or invalid field definitions.
func New(fields ...Field) (*Schema, error) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("formschema: field name is empty")
		}
		if !f.Kind.Valid() {
			return nil, fmt.Errorf("formschema: field %q: %w", f.Name, validator.ErrUnsupportedKind)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("formschema: duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}

	return &Schema{fields: append([]Field(nil), fields...)}, nil
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Localized returns a schema whose failure messages resolve through tf.
// The underlying rule logic is shared with the default-message schema.
func (s *Schema) Localized(tf validator.TranslateFunc) *Schema {
	if tf == nil {
		return s
	}

	fields := make([]Field, len(s.fields))
	for i, f := range s.fields {
		rules := make([]validator.Rule, len(f.Rules))
		for j, r := range f.Rules {
			rules[j] = r.Localized(tf)
		}
		fields[i] = Field{Name: f.Name, Kind: f.Kind, Rules: rules}
	}
	return &Schema{fields: fields}
}

// Validate evaluates every field's rules against one snapshot and returns all
// failures. Fields fail independently; a nil result means the form is valid.
func (s *Schema) Validate(vals validator.Values) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range s.fields {
		for _, r := range f.Rules {
			if verr := r.Eval(vals); verr != nil {
				errs = append(errs, *verr)
			}
		}
	}
	return errs
}

// Messages evaluates the schema and returns the first failure message per
// field, the mapping a form layer feeds to UI error display. Valid fields are
// absent from the result.
func (s *Schema) Messages(vals validator.Values) map[string]string {
	errs := s.Validate(vals)
	if errs.IsEmpty() {
		return nil
	}

	out := make(map[string]string)
	for _, err := range errs {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}
