// Package formschema assembles validator rules into declarative form
// definitions. A Schema is built once per form, stays immutable, and is
// evaluated against a fresh snapshot of field values on every validation
// pass; Messages produces the field-to-error mapping a UI layer displays.
package formschema
