package ruleset

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type rangeRule struct {
	lo, hi  float64
	message string
}

// Range returns a rule that checks a numeric field is within [lo, hi] inclusive.
// Any integer or float kind is accepted. Null values pass.
func Range(lo, hi float64, message string) Rule {
	return rangeRule{lo: lo, hi: hi, message: message}
}

// AtLeast checks a numeric field is greater than or equal to lo.
func AtLeast(lo float64, message string) Rule {
	return Range(lo, math.Inf(1), message)
}

// AtMost checks a numeric field is less than or equal to hi.
func AtMost(hi float64, message string) Rule {
	return Range(math.Inf(-1), hi, message)
}

func (r rangeRule) Kind() Kind      { return KindRange }
func (r rangeRule) Message() string { return r.message }

func (r rangeRule) configure(t reflect.Type) error {
	if math.IsNaN(r.lo) || math.IsNaN(r.hi) {
		return fmt.Errorf("bounds must be numbers")
	}
	if r.hi < r.lo {
		return fmt.Errorf("maximum %g is below minimum %g", r.hi, r.lo)
	}
	if t != nil && !isNumeric(t.Kind()) {
		return fmt.Errorf("needs a numeric field, got %s", t)
	}
	return nil
}

func (r rangeRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	f, err := getFloat(value)
	if err != nil {
		return &typeMismatch{kind: KindRange, got: reflect.TypeOf(value).String()}
	}
	if f < r.lo || f > r.hi {
		return validation.NewError("validation_out_of_range", r.message).
			SetParams(map[string]any{"min": r.lo, "max": r.hi})
	}
	return nil
}

func (r rangeRule) ValidateWithContext(_ context.Context, value any) error {
	return r.Validate(value)
}

func (r rangeRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if !math.IsInf(r.lo, 0) {
		lo := r.lo
		ref.Value.Min = &lo
	}
	if !math.IsInf(r.hi, 0) {
		hi := r.hi
		ref.Value.Max = &hi
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !isNumeric(v.Kind()) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	return v.Convert(floatType).Float(), nil
}
