package ruleset

import (
	"reflect"
)

// RuleSet is an ordered, immutable collection of FieldRules and RecordRules
// bound to one record shape. It is safe for concurrent use.
type RuleSet[T Record] struct {
	fields  []FieldRule
	records []RecordRule[T]
	order   []string
	types   map[string]shapeField
}

type shapeField struct {
	typ      reflect.Type
	nullable bool
}

// New builds a RuleSet for records shaped like shape, which is usually the zero
// value of the record type. Every rule is checked against the shape so that
// declaration mistakes fail at startup with a *ConfigurationError: unknown
// fields, parameters that do not fit the kind, kinds that do not fit the
// field's type, and RecordRule names that are empty, duplicated, or shared with
// a field.
func New[T Record](shape T, fields []*FieldRules, records ...RecordRule[T]) (*RuleSet[T], error) {
	if isNilRecord(shape) {
		return nil, &ConfigurationError{Reason: "nil record shape"}
	}

	rs := &RuleSet[T]{
		fields:  flatten(fields),
		records: append([]RecordRule[T](nil), records...),
		types:   map[string]shapeField{},
	}

	for _, fr := range rs.fields {
		if fr.Field == "" {
			return nil, &ConfigurationError{Reason: "field rule with empty field name"}
		}
		if fr.Rule == nil {
			return nil, &ConfigurationError{Field: fr.Field, Reason: "nil rule"}
		}
		t, nullable, ok := fieldType(shape, fr.Field)
		if !ok {
			return nil, &ConfigurationError{Field: fr.Field, Kind: fr.Rule.Kind(), Reason: "field not found on record shape"}
		}
		if fr.Rule.Message() == "" {
			return nil, &ConfigurationError{Field: fr.Field, Kind: fr.Rule.Kind(), Reason: "empty message"}
		}
		if err := fr.Rule.configure(t); err != nil {
			return nil, &ConfigurationError{Field: fr.Field, Kind: fr.Rule.Kind(), Reason: err.Error()}
		}
		if _, seen := rs.types[fr.Field]; !seen {
			rs.order = append(rs.order, fr.Field)
			rs.types[fr.Field] = shapeField{typ: t, nullable: nullable}
		}
	}

	names := map[string]bool{}
	for _, rr := range rs.records {
		switch {
		case rr.Name == "":
			return nil, &ConfigurationError{Reason: "record rule with empty name"}
		case rr.Predicate == nil:
			return nil, &ConfigurationError{Field: rr.Name, Reason: "nil predicate"}
		case rr.Message == "":
			return nil, &ConfigurationError{Field: rr.Name, Reason: "empty message"}
		case names[rr.Name]:
			return nil, &ConfigurationError{Field: rr.Name, Reason: "duplicate record rule name"}
		}
		if _, clash := rs.types[rr.Name]; clash {
			return nil, &ConfigurationError{Field: rr.Name, Reason: "record rule name is also a field name"}
		}
		names[rr.Name] = true
	}

	return rs, nil
}

// MustNew is like New but panics on error. Use it for rule sets declared as
// package variables.
func MustNew[T Record](shape T, fields []*FieldRules, records ...RecordRule[T]) *RuleSet[T] {
	rs, err := New(shape, fields, records...)
	if err != nil {
		panic(err)
	}
	return rs
}

// FieldRules returns the flattened field rules in evaluation order.
func (rs *RuleSet[T]) FieldRules() []FieldRule {
	return append([]FieldRule(nil), rs.fields...)
}

// RecordRules returns the record rules in evaluation order.
func (rs *RuleSet[T]) RecordRules() []RecordRule[T] {
	return append([]RecordRule[T](nil), rs.records...)
}
