package ruleset

import (
	"reflect"
)

// Field binds rules to the named record field. Rules run in the given order.
func Field(name string, rules ...Rule) *FieldRules {
	return &FieldRules{
		field: name,
		rules: rules,
	}
}

// Name returns the field the rules are bound to.
func (f *FieldRules) Name() string {
	return f.field
}

// Rules returns the rules bound to the field.
func (f *FieldRules) Rules() []Rule {
	return append([]Rule(nil), f.rules...)
}

// flatten turns grouped field rules into one FieldRule per constraint, keeping
// declaration order.
func flatten(groups []*FieldRules) []FieldRule {
	var out []FieldRule
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, r := range g.rules {
			out = append(out, FieldRule{Field: g.field, Rule: r})
		}
	}
	return out
}

// fieldType resolves the declared type of field on shape, dereferencing
// pointers. It returns nil when the shape holds an untyped nil for the field.
func fieldType(shape Record, field string) (t reflect.Type, nullable, ok bool) {
	v, ok := shape.Lookup(field)
	if !ok {
		return nil, false, false
	}
	t = reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		nullable = true
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Interface {
		return nil, true, true
	}
	return t, nullable, true
}
