package ruleset

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type uniqueRule struct {
	exists  ExistsFunc
	message string
}

// Unique returns a rule that asks exists whether the field's text value is
// already claimed, and fails when it is. A lookup error is reported by Validate
// as a CollaboratorFailure, never as a pass or a fail. Null values pass without
// a lookup.
func Unique(exists ExistsFunc, message string) Rule {
	return uniqueRule{exists: exists, message: message}
}

func (r uniqueRule) Kind() Kind      { return KindUnique }
func (r uniqueRule) Message() string { return r.message }

func (r uniqueRule) configure(t reflect.Type) error {
	if r.exists == nil {
		return errors.New("lookup capability is nil")
	}
	if t != nil && t.Kind() != reflect.String {
		return fmt.Errorf("needs a text field, got %s", t)
	}
	return nil
}

// Validate checks the value using a background context.
func (r uniqueRule) Validate(value any) error {
	return r.ValidateWithContext(context.Background(), value)
}

func (r uniqueRule) ValidateWithContext(ctx context.Context, value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return &typeMismatch{kind: KindUnique, got: rv.Type().String()}
	}
	if err := ctx.Err(); err != nil {
		return validation.NewInternalError(err)
	}
	claimed, err := r.exists(ctx, rv.String())
	if err != nil {
		return validation.NewInternalError(err)
	}
	if claimed {
		return validation.NewError("validation_not_unique", r.message)
	}
	return nil
}

func (r uniqueRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += "must be unique"
	return nil
}
