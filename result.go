package ruleset

import (
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// Violation is one failed rule: the field or record rule name it is reported
// under, the rule's static message and a machine-readable code.
type Violation struct {
	Key     string `json:"key"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Result is the outcome of one validation call. Keys are unique and keep the
// order in which they first failed.
type Result struct {
	violations []Violation
}

// Valid reports whether no rule failed.
func (r *Result) Valid() bool {
	return r == nil || len(r.violations) == 0
}

// Len returns the number of violations.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.violations)
}

// Has reports whether key holds a violation.
func (r *Result) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Get returns the message reported under key.
func (r *Result) Get(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, v := range r.violations {
		if v.Key == key {
			return v.Message, true
		}
	}
	return "", false
}

// Violations returns the violations in the order their keys first failed.
func (r *Result) Violations() []Violation {
	if r == nil {
		return nil
	}
	return slices.Clone(r.violations)
}

// Keys returns the violated keys in the order they first failed.
func (r *Result) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, len(r.violations))
	for i, v := range r.violations {
		keys[i] = v.Key
	}
	return keys
}

// Map returns the violations as key → message.
func (r *Result) Map() map[string]string {
	m := make(map[string]string, r.Len())
	if r == nil {
		return m
	}
	for _, v := range r.violations {
		m[v.Key] = v.Message
	}
	return m
}

// Errors returns the violations as ozzo-validation errors.
func (r *Result) Errors() ValidationErrors {
	errs := ValidationErrors{}
	if r == nil {
		return errs
	}
	for _, v := range r.violations {
		errs[v.Key] = validation.NewError(v.Code, v.Message)
	}
	return errs
}

// Err returns nil when the result is valid and the violations as
// ValidationErrors otherwise.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.Errors()
}

// add records a violation. A key that already holds one is overwritten in
// place.
func (r *Result) add(key, code, message string) {
	v := Violation{Key: key, Message: message, Code: code}
	if i := slices.IndexFunc(r.violations, func(v Violation) bool { return v.Key == key }); i >= 0 {
		r.violations[i] = v
		return
	}
	r.violations = append(r.violations, v)
}
