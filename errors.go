package pertype

import (
	"errors"
	"fmt"
)

// Violation type identifiers shared by the error model.
const (
	CodeInvalidType  = "invalid_type"
	CodeInvalidValue = "invalid_value"
	CodeDecode       = "decode"
	CodeEncode       = "encode"
)

// ViolationError is the hard-failure carrier thrown (returned) by decode and
// encode paths that cannot recover locally. It holds one or more violations;
// the message derives from the first one, prefixed by its path when present.
type ViolationError struct {
	Violations []Violation
}

// NewViolationError wraps the given violations.
func NewViolationError(violations ...Violation) *ViolationError {
	return &ViolationError{Violations: violations}
}

func (e *ViolationError) Error() string {
	if len(e.Violations) == 0 {
		return "schema violation"
	}
	v := e.Violations[0]
	msg := v.Message
	if msg == "" {
		msg = v.Type
	}
	if v.Path != "" {
		return v.Path + ": " + msg
	}
	return msg
}

// UnsupportedTypeError reports a decode/encode input whose runtime type is
// not handled by any coercion branch of the schema.
type UnsupportedTypeError struct {
	ViolationError
}

// NewUnsupportedType builds an UnsupportedTypeError identifying the
// unexpected runtime type of v.
func NewUnsupportedType(v any) *UnsupportedTypeError {
	return &UnsupportedTypeError{ViolationError{Violations: []Violation{{
		Type:    CodeInvalidType,
		Message: fmt.Sprintf("unsupported type: %T", v),
		Args:    map[string]any{"value": v},
	}}}}
}

func (e *UnsupportedTypeError) Unwrap() error { return &e.ViolationError }

// UnsupportedValueError reports a decode/encode input whose runtime type is
// acceptable but whose specific value fails a required narrowing (unparsable
// date string, non-matching literal, ...).
type UnsupportedValueError struct {
	ViolationError
}

// NewUnsupportedValue builds an UnsupportedValueError identifying the value.
func NewUnsupportedValue(v any) *UnsupportedValueError {
	return &UnsupportedValueError{ViolationError{Violations: []Violation{{
		Type:    CodeInvalidValue,
		Message: fmt.Sprintf("unsupported value: %v", v),
		Args:    map[string]any{"value": v},
	}}}}
}

func (e *UnsupportedValueError) Unwrap() error { return &e.ViolationError }

// AsViolations extracts the violation list from an error using errors.As.
// The Unsupported* subtypes unwrap to ViolationError, so any of the three
// matches.
func AsViolations(err error) ([]Violation, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ViolationError
	if errors.As(err, &ve) {
		return ve.Violations, true
	}
	return nil, false
}

// PrefixPath re-qualifies a child error with the enclosing key or index. The
// concrete error type is preserved so Unsupported* classification survives
// the re-throw; the prefix is joined onto each violation's existing path,
// never replacing it. Non-violation errors pass through unchanged.
func PrefixPath(err error, segment string) error {
	if err == nil || segment == "" {
		return err
	}
	switch e := err.(type) {
	case *UnsupportedTypeError:
		return &UnsupportedTypeError{ViolationError{Violations: PrefixViolations(e.Violations, segment)}}
	case *UnsupportedValueError:
		return &UnsupportedValueError{ViolationError{Violations: PrefixViolations(e.Violations, segment)}}
	case *ViolationError:
		return &ViolationError{Violations: PrefixViolations(e.Violations, segment)}
	default:
		return err
	}
}
