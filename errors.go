package ruleset

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError with errors.Is.
	ErrConfiguration = errors.New("ruleset: configuration error")

	// ErrCollaborator matches every *CollaboratorFailure with errors.Is.
	ErrCollaborator = errors.New("ruleset: collaborator failure")
)

// ConfigurationError reports a malformed rule set or a record that does not
// match it. It is a programmer error and must not be shown to end users.
type ConfigurationError struct {
	Field  string
	Kind   Kind
	Reason string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Field == "":
		return "ruleset: configuration error: " + e.Reason
	case e.Kind == 0:
		return fmt.Sprintf("ruleset: configuration error on %q: %s", e.Field, e.Reason)
	default:
		return fmt.Sprintf("ruleset: configuration error on %q (%s): %s", e.Field, e.Kind, e.Reason)
	}
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// CollaboratorFailure reports that an injected uniqueness lookup failed to
// answer. The affected rule is neither passed nor failed.
type CollaboratorFailure struct {
	Field string
	Err   error
}

func (e *CollaboratorFailure) Error() string {
	return fmt.Sprintf("ruleset: uniqueness lookup for %q failed: %v", e.Field, e.Err)
}

func (e *CollaboratorFailure) Unwrap() error {
	return e.Err
}

func (e *CollaboratorFailure) Is(target error) bool {
	return target == ErrCollaborator
}

// DecodeError wraps a request body that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "ruleset: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// typeMismatch is returned by a rule that received a value its kind cannot
// evaluate. Validate turns it into a ConfigurationError.
type typeMismatch struct {
	kind Kind
	got  string
}

func (e *typeMismatch) Error() string {
	return fmt.Sprintf("%s cannot evaluate a value of type %s", e.kind, e.got)
}
