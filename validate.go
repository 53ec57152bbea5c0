package ruleset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const recordRuleCode = "validation_record_rule"

// Validate is the single entry point for validation. It evaluates every
// FieldRule in declaration order, then every RecordRule, and returns all
// failures in one Result. Every rule runs, even on a key that already failed;
// a later failure on the same key replaces the earlier message.
//
// The error return is a *ConfigurationError when record or rs is nil or the
// record does not match the rule set, and a *CollaboratorFailure when a
// uniqueness lookup fails. A validation failure is never an error.
func Validate[T Record](ctx context.Context, record T, rs *RuleSet[T]) (*Result, error) {
	if rs == nil {
		return nil, &ConfigurationError{Reason: "nil rule set"}
	}
	return rs.Validate(ctx, record)
}

// Validate checks record against the rule set. See the package-level Validate.
func (rs *RuleSet[T]) Validate(ctx context.Context, record T) (*Result, error) {
	if isNilRecord(record) {
		return nil, &ConfigurationError{Reason: "nil record"}
	}

	res := &Result{}
	for _, fr := range rs.fields {
		value, ok := record.Lookup(fr.Field)
		if !ok {
			return nil, &ConfigurationError{Field: fr.Field, Kind: fr.Rule.Kind(), Reason: "field not found on record"}
		}
		if err := validation.ValidateWithContext(ctx, value, fr.Rule); err != nil {
			if ferr := collect(res, fr, err); ferr != nil {
				return nil, ferr
			}
		}
	}

	for _, rr := range rs.records {
		if !rr.Predicate(record) {
			res.add(rr.Name, recordRuleCode, rr.Message)
		}
	}
	return res, nil
}

// collect records a rule failure in res, or returns the error that must abort
// the validation call.
func collect(res *Result, fr FieldRule, err error) error {
	var (
		internal validation.InternalError
		mismatch *typeMismatch
		verr     validation.Error
	)
	switch {
	case errors.As(err, &internal):
		return &CollaboratorFailure{Field: fr.Field, Err: internal.InternalError()}
	case errors.As(err, &mismatch):
		return &ConfigurationError{Field: fr.Field, Kind: fr.Rule.Kind(), Reason: mismatch.Error()}
	case errors.As(err, &verr):
		res.add(fr.Field, verr.Code(), verr.Message())
		return nil
	}
	return &ConfigurationError{Field: fr.Field, Kind: fr.Rule.Kind(), Reason: err.Error()}
}

func isNilRecord(record any) bool {
	if record == nil {
		return true
	}
	_, isNil := validation.Indirect(record)
	return isNil
}

// UnmarshalAndValidate decodes JSON from b into a new T, normalizes it when *T
// implements Normalizer, then validates. Malformed JSON is returned as a
// *DecodeError.
func UnmarshalAndValidate[T Record](ctx context.Context, b []byte, rs *RuleSet[T]) (T, *Result, error) {
	return DecodeAndValidate(ctx, bytes.NewReader(b), rs)
}

// DecodeAndValidate reads JSON from r using a streaming decoder, then
// normalizes and validates. Use this when reading directly from an
// [io.Reader] such as an HTTP request body.
func DecodeAndValidate[T Record](ctx context.Context, r io.Reader, rs *RuleSet[T]) (T, *Result, error) {
	var dst T
	if err := json.NewDecoder(r).Decode(&dst); err != nil {
		return dst, nil, &DecodeError{Err: err}
	}
	normalize(ctx, &dst)
	res, err := Validate(ctx, dst, rs)
	return dst, res, err
}
