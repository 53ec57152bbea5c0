package ruleset

import (
	"context"
	"fmt"
	"reflect"
	"regexp"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type matchRule struct {
	pattern string
	format  string
	re      *regexp.Regexp
	err     error
	message string
}

// Match returns a rule that checks a text field matches pattern in full.
// The pattern is anchored, so "a+" rejects "baa". Null values pass.
func Match(pattern, message string) Rule {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	return matchRule{pattern: pattern, re: re, err: err, message: message}
}

// Email is Match with the e-mail address pattern used by govalidator.
func Email(message string) Rule {
	r := Match(govalidator.Email, message).(matchRule)
	r.format = "email"
	return r
}

func (r matchRule) Kind() Kind      { return KindPattern }
func (r matchRule) Message() string { return r.message }

func (r matchRule) configure(t reflect.Type) error {
	if r.err != nil {
		return fmt.Errorf("invalid pattern: %w", r.err)
	}
	if t != nil && t.Kind() != reflect.String {
		return fmt.Errorf("needs a text field, got %s", t)
	}
	return nil
}

func (r matchRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return &typeMismatch{kind: KindPattern, got: rv.Type().String()}
	}
	if !r.re.MatchString(rv.String()) {
		return validation.NewError("validation_match_invalid", r.message)
	}
	return nil
}

func (r matchRule) ValidateWithContext(_ context.Context, value any) error {
	return r.Validate(value)
}

// Describe sets the schema format for well-known patterns and the raw pattern
// otherwise.
func (r matchRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.format != "" {
		ref.Value.Format = r.format
		return nil
	}
	ref.Value.Pattern = r.pattern
	return nil
}
