package pertype

import "context"

// AnySchema is the type-erased face of a schema. Heterogeneous combinators
// (object, tuple, union, intersect) hold their children through this
// interface so members of different represented types can be composed.
type AnySchema interface {
	// Signature identifies the schema's shape for diagnostics,
	// e.g. "array<string>" or "union<number|string>".
	Signature() string
	// Is reports whether v already conforms to the represented type. It is
	// a pure function: no coercion, no side effects.
	Is(v any) bool
	// CheckAny runs the constraint engine over v. A value of the wrong
	// runtime type yields a single invalid_type violation; CheckAny never
	// returns through the error channel.
	CheckAny(v any) []Violation
	// CreateAny produces the schema's neutral default value.
	CreateAny() any
	// DecodeAny coerces v into the represented type.
	DecodeAny(ctx context.Context, v any) (any, error)
	// EncodeAny transforms a represented value into its output form.
	EncodeAny(ctx context.Context, v any) (any, error)
}

// Schema is the typed contract implemented by every schema kind. T is the
// represented type; the encode output type is erased to any (a date schema
// encodes to a string, most kinds encode to themselves).
//
// Check, Test, and Validate are synchronous and never suspend. Decode and
// Encode take a context because the future wrapper, the one asynchronous
// kind, waits for its pending value under it; every other kind ignores ctx.
type Schema[T any] interface {
	AnySchema

	Create() T
	Check(v T) []Violation
	Test(v T) bool
	Validate(v T) ValidationResult[T]
	Decode(ctx context.Context, v any) (T, error)
	Encode(ctx context.Context, v T) (any, error)
}

// Codec performs bidirectional transformation between a wire representation
// A and a domain representation B, independent of any schema instance. This
// is the standalone variant of the schema-embedded decode/encode pair.
type Codec[A, B any] interface {
	In() Schema[A]
	Out() Schema[B]
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// Decode is a thin generic wrapper over Schema.Decode for call sites that
// prefer the package-level form.
func Decode[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Decode(ctx, v)
}

// Encode is the package-level counterpart of Schema.Encode.
func Encode[T any](ctx context.Context, s Schema[T], v T) (any, error) {
	return s.Encode(ctx, v)
}

// TryDecode decodes without surfacing an error: a violation-carrying failure
// yields its violations, any other error is wrapped into a single generic
// "decode" violation with the original error preserved in Args.
func TryDecode[T any](ctx context.Context, s Schema[T], v any) ParseResult[T] {
	out, err := s.Decode(ctx, v)
	if err == nil {
		return ParseResult[T]{Success: true, Value: out}
	}
	if violations, ok := AsViolations(err); ok {
		return ParseResult[T]{Violations: violations}
	}
	return ParseResult[T]{Violations: []Violation{{
		Type:    CodeDecode,
		Message: err.Error(),
		Args:    map[string]any{"error": err},
	}}}
}

// TryEncode is the encode-side counterpart of TryDecode.
func TryEncode[T any](ctx context.Context, s Schema[T], v T) ParseResult[any] {
	out, err := s.Encode(ctx, v)
	if err == nil {
		return ParseResult[any]{Success: true, Value: out}
	}
	if violations, ok := AsViolations(err); ok {
		return ParseResult[any]{Violations: violations}
	}
	return ParseResult[any]{Violations: []Violation{{
		Type:    CodeEncode,
		Message: err.Error(),
		Args:    map[string]any{"error": err},
	}}}
}

// Accept reports whether v decodes cleanly and passes every constraint.
func Accept[T any](ctx context.Context, s Schema[T], v any) bool {
	out, err := s.Decode(ctx, v)
	if err != nil {
		return false
	}
	return s.Test(out)
}
