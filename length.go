package ruleset

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Unbounded disables the upper bound of Length.
const Unbounded = -1

type lengthRule struct {
	lo, hi  int
	message string
}

// Length returns a rule that checks a text field's rune length is within
// [lo, hi] inclusive. Pass Unbounded as hi for no upper bound. Null values pass.
func Length(lo, hi int, message string) Rule {
	return lengthRule{lo: lo, hi: hi, message: message}
}

// MinLength is Length with no upper bound.
func MinLength(lo int, message string) Rule {
	return Length(lo, Unbounded, message)
}

func (r lengthRule) Kind() Kind      { return KindLength }
func (r lengthRule) Message() string { return r.message }

func (r lengthRule) configure(t reflect.Type) error {
	if r.lo < 0 {
		return errors.New("minimum length must not be negative")
	}
	if r.hi != Unbounded && r.hi < r.lo {
		return fmt.Errorf("maximum length %d is below minimum %d", r.hi, r.lo)
	}
	if t != nil && t.Kind() != reflect.String {
		return fmt.Errorf("needs a text field, got %s", t)
	}
	return nil
}

func (r lengthRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return &typeMismatch{kind: KindLength, got: rv.Type().String()}
	}
	n := utf8.RuneCountInString(rv.String())
	if n < r.lo || (r.hi != Unbounded && n > r.hi) {
		return validation.NewError("validation_length_out_of_range", r.message).
			SetParams(map[string]any{"min": r.lo, "max": r.hi})
	}
	return nil
}

func (r lengthRule) ValidateWithContext(_ context.Context, value any) error {
	return r.Validate(value)
}

func (r lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.MinLength = uint64(r.lo)
	if r.hi != Unbounded {
		hi := uint64(r.hi)
		ref.Value.MaxLength = &hi
	}
	return nil
}
