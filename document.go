package ruleset

import (
	"context"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind enumerates the constraint kinds a FieldRule can carry.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindNotBlank
	KindLength
	KindRange
	KindPattern
	KindUnique
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindNotBlank:
		return "non-blank"
	case KindLength:
		return "length-range"
	case KindRange:
		return "numeric-range"
	case KindPattern:
		return "pattern-match"
	case KindUnique:
		return "external-uniqueness-check"
	}
	return "unknown"
}

type (
	// Record is implemented by values that can be validated against a RuleSet.
	// Lookup returns the value of the named field and false when the record shape
	// has no such field. A nil value, or a typed nil pointer, is null.
	Record interface {
		Lookup(field string) (value any, ok bool)
	}

	// Fields is a Record backed by a map. Useful for dynamic input such as query
	// parameters.
	Fields map[string]any

	// ExistsFunc reports whether value is already claimed in an external store.
	// An error means the store could not answer.
	ExistsFunc func(ctx context.Context, value string) (bool, error)

	// Rule is one kind-specific constraint with its parameters and the static
	// message reported when it fails. Rules also satisfy ozzo-validation's Rule
	// and RuleWithContext, and describe themselves into OpenAPI schemas.
	Rule interface {
		Validate(value any) error
		ValidateWithContext(ctx context.Context, value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
		Kind() Kind
		Message() string

		// configure checks the rule's parameters against the declared field type.
		// t is nil when the type cannot be known from the record shape.
		configure(t reflect.Type) error
	}

	// FieldRule is one declared constraint on one named field.
	FieldRule struct {
		Field string
		Rule  Rule
	}

	// FieldRules groups the rules of a single field in declaration order.
	FieldRules struct {
		field string
		rules []Rule
	}
)

// Lookup implements Record.
func (f Fields) Lookup(field string) (any, bool) {
	v, ok := f[field]
	return v, ok
}

var (
	_ validation.Rule            = Rule(nil)
	_ validation.RuleWithContext = Rule(nil)
)
