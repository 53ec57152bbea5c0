package ruleset

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type presenceRule struct {
	kind    Kind
	message string
}

// Required returns a rule that fails on null values and on text that is empty
// after trimming. Zero numbers are values, not absences.
func Required(message string) Rule {
	return presenceRule{kind: KindRequired, message: message}
}

// NotBlank is like Required but may only be declared on text fields.
func NotBlank(message string) Rule {
	return presenceRule{kind: KindNotBlank, message: message}
}

func (r presenceRule) Kind() Kind      { return r.kind }
func (r presenceRule) Message() string { return r.message }

func (r presenceRule) configure(t reflect.Type) error {
	if r.kind == KindNotBlank && t != nil && t.Kind() != reflect.String {
		return fmt.Errorf("needs a text field, got %s", t)
	}
	return nil
}

func (r presenceRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return r.fail()
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		if r.kind == KindNotBlank {
			return &typeMismatch{kind: r.kind, got: rv.Type().String()}
		}
		return nil
	}
	if strings.TrimSpace(rv.String()) == "" {
		return r.fail()
	}
	return nil
}

func (r presenceRule) ValidateWithContext(_ context.Context, value any) error {
	return r.Validate(value)
}

func (r presenceRule) fail() error {
	code := "validation_required"
	if r.kind == KindNotBlank {
		code = "validation_not_blank"
	}
	return validation.NewError(code, r.message)
}

func (r presenceRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if !slices.Contains(schema.Required, name) {
		schema.Required = append(schema.Required, name)
	}
	if ref.Value.Type.Is(openapi3.TypeString) && ref.Value.MinLength == 0 {
		ref.Value.MinLength = 1
	}
	return nil
}
