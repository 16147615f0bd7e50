package dsl

import (
	"context"
	"fmt"

	pertype "github.com/hernantas/pertype"
)

// Literal returns a schema recognizing exactly one value.
func Literal[T comparable](value T) LiteralSchema[T] {
	return LiteralSchema[T]{value: value}
}

// LiteralSchema passes its configured value through and reports an
// unsupported value for anything else, matching or not by strict equality.
type LiteralSchema[T comparable] struct {
	value T
	def   definition[T]
}

func (s LiteralSchema[T]) Signature() string { return fmt.Sprintf("literal<%v>", s.value) }

// Value returns the configured literal.
func (s LiteralSchema[T]) Value() T { return s.value }

func (s LiteralSchema[T]) Label(label string) LiteralSchema[T] {
	s.def = s.def.withLabel(label)
	return s
}

func (s LiteralSchema[T]) Is(v any) bool {
	tv, ok := v.(T)
	return ok && tv == s.value
}

func (s LiteralSchema[T]) Create() T      { return s.value }
func (s LiteralSchema[T]) CreateAny() any { return s.value }

func (s LiteralSchema[T]) Check(v T) []pertype.Violation { return s.def.check(v) }
func (s LiteralSchema[T]) Test(v T) bool                 { return len(s.Check(v)) == 0 }
func (s LiteralSchema[T]) Validate(v T) pertype.ValidationResult[T] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s LiteralSchema[T]) CheckAny(v any) []pertype.Violation { return checkAny[T](s, v) }

func (s LiteralSchema[T]) Decode(ctx context.Context, v any) (T, error) {
	if tv, ok := v.(T); ok && tv == s.value {
		return tv, nil
	}
	var zero T
	return zero, pertype.NewUnsupportedValue(v)
}

func (s LiteralSchema[T]) Encode(ctx context.Context, v T) (any, error) {
	if v != s.value {
		return nil, pertype.NewUnsupportedValue(v)
	}
	return v, nil
}

func (s LiteralSchema[T]) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}
func (s LiteralSchema[T]) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[T](ctx, s, v)
}

func (s LiteralSchema[T]) Rule(c pertype.Constraint[T]) LiteralSchema[T] {
	s.def = s.def.rule(c)
	return s
}

func (s LiteralSchema[T]) Optional() OptionalSchema[T] { return Optional[T](s) }
func (s LiteralSchema[T]) Nullable() NullableSchema[T] { return Nullable[T](s) }

// Instance returns a schema narrowing to a concrete Go type by assertion.
// It has no coercion semantics: decode and encode are unsupported because
// constructing arbitrary instances from untyped input is out of scope.
func Instance[T any]() InstanceSchema[T] { return InstanceSchema[T]{} }

// InstanceSchema narrows by type assertion only.
type InstanceSchema[T any] struct {
	def definition[T]
}

func (s InstanceSchema[T]) Signature() string {
	var zero T
	return fmt.Sprintf("instance<%T>", zero)
}

func (s InstanceSchema[T]) Label(label string) InstanceSchema[T] {
	s.def = s.def.withLabel(label)
	return s
}

func (s InstanceSchema[T]) Is(v any) bool {
	_, ok := v.(T)
	return ok
}

func (s InstanceSchema[T]) Create() T {
	var zero T
	return zero
}
func (s InstanceSchema[T]) CreateAny() any { return s.Create() }

func (s InstanceSchema[T]) Check(v T) []pertype.Violation { return s.def.check(v) }
func (s InstanceSchema[T]) Test(v T) bool                 { return len(s.Check(v)) == 0 }
func (s InstanceSchema[T]) Validate(v T) pertype.ValidationResult[T] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s InstanceSchema[T]) CheckAny(v any) []pertype.Violation { return checkAny[T](s, v) }

func (s InstanceSchema[T]) Decode(ctx context.Context, v any) (T, error) {
	var zero T
	return zero, pertype.NewUnsupportedType(v)
}

func (s InstanceSchema[T]) Encode(ctx context.Context, v T) (any, error) {
	return nil, pertype.NewUnsupportedType(v)
}

func (s InstanceSchema[T]) DecodeAny(ctx context.Context, v any) (any, error) {
	return nil, pertype.NewUnsupportedType(v)
}
func (s InstanceSchema[T]) EncodeAny(ctx context.Context, v any) (any, error) {
	return nil, pertype.NewUnsupportedType(v)
}

func (s InstanceSchema[T]) Rule(c pertype.Constraint[T]) InstanceSchema[T] {
	s.def = s.def.rule(c)
	return s
}
