package ruleset

// RecordRule is a whole-record constraint. Predicate receives the full record
// and returns false when the constraint is violated. Predicates must return true
// when a field they depend on is null, leaving absence to a Required rule.
type RecordRule[T Record] struct {
	Name      string
	Predicate func(T) bool
	Message   string
}

// Check returns a RecordRule reported under name when predicate returns false.
func Check[T Record](name string, predicate func(T) bool, message string) RecordRule[T] {
	return RecordRule[T]{
		Name:      name,
		Predicate: predicate,
		Message:   message,
	}
}
