package pertype

import "strings"

// Violation describes one failed constraint or one decode/encode failure.
// It is pure data; violations are reported in slices and never thrown on
// their own (see ViolationError for the hard-failure wrapper).
type Violation struct {
	Type    string         // namespaced identifier, e.g. "number.min", "invalid_type"
	Message string         // human-readable, already interpolated
	Args    map[string]any // bound parameters (min/max/got/...) for inspection
	Path    string         // dotted location inside a nested structure, "" at root
}

// Constraint is a named predicate attached to a schema via Rule. Constraints
// accumulate in insertion order and are all evaluated during Check; there is
// no short-circuit across the list.
type Constraint[T any] struct {
	Type    string
	Message string
	Args    map[string]any
	Test    func(T) bool
}

// Violation renders the constraint as a violation record.
func (c Constraint[T]) Violation() Violation {
	return Violation{Type: c.Type, Message: c.Message, Args: c.Args}
}

// ValidationResult is the structured outcome of Validate.
type ValidationResult[T any] struct {
	Valid      bool
	Value      T
	Violations []Violation
}

// ParseResult is the structured outcome of TryDecode/TryEncode.
type ParseResult[T any] struct {
	Success    bool
	Value      T
	Violations []Violation
}

// ResultOf wraps a checked value and its violations into a ValidationResult.
func ResultOf[T any](v T, violations []Violation) ValidationResult[T] {
	if len(violations) > 0 {
		return ValidationResult[T]{Valid: false, Violations: violations}
	}
	return ValidationResult[T]{Valid: true, Value: v}
}

// JoinPath joins path segments with dots, filtering empty segments.
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// PrefixViolations returns a copy of the violations with segment prefixed
// onto each path. The input slice is never mutated.
func PrefixViolations(violations []Violation, segment string) []Violation {
	if len(violations) == 0 {
		return nil
	}
	out := make([]Violation, len(violations))
	for i, v := range violations {
		v.Path = JoinPath(segment, v.Path)
		out[i] = v
	}
	return out
}

// AppendViolations appends to the destination, initializing it when needed.
func AppendViolations(dst []Violation, more ...Violation) []Violation {
	if dst == nil && len(more) == 0 {
		return nil
	}
	return append(dst, more...)
}
