package dsl

import (
	"context"

	gojson "github.com/goccy/go-json"
	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/internal/coerce"
)

// Optional returns a schema accepting the inner type or an absent value.
// Absence is represented as a nil pointer.
func Optional[T any](inner pertype.Schema[T]) OptionalSchema[T] {
	return OptionalSchema[T]{inner: inner}
}

// OptionalSchema passes nil through untouched and delegates everything else
// to the inner schema, boxing the decoded value behind a pointer.
type OptionalSchema[T any] struct {
	inner pertype.Schema[T]
	def   definition[*T]
}

func (s OptionalSchema[T]) Signature() string { return "optional<" + s.inner.Signature() + ">" }

// Unwrap returns the inner schema.
func (s OptionalSchema[T]) Unwrap() pertype.Schema[T] { return s.inner }

func (s OptionalSchema[T]) Label(label string) OptionalSchema[T] {
	s.def = s.def.withLabel(label)
	return s
}

func (s OptionalSchema[T]) Is(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *T:
		if t == nil {
			return true
		}
		return s.inner.Is(*t)
	}
	return s.inner.Is(v)
}

func (s OptionalSchema[T]) Create() *T     { return nil }
func (s OptionalSchema[T]) CreateAny() any { return s.Create() }

func (s OptionalSchema[T]) Check(v *T) []pertype.Violation {
	out := s.def.check(v)
	if v == nil {
		return out
	}
	return pertype.AppendViolations(out, s.inner.Check(*v)...)
}

func (s OptionalSchema[T]) Test(v *T) bool { return len(s.Check(v)) == 0 }
func (s OptionalSchema[T]) Validate(v *T) pertype.ValidationResult[*T] {
	return pertype.ResultOf(v, s.Check(v))
}

// CheckAny accepts nil, *T, and bare T values.
func (s OptionalSchema[T]) CheckAny(v any) []pertype.Violation {
	switch t := v.(type) {
	case nil:
		return s.Check(nil)
	case *T:
		return s.Check(t)
	}
	return s.inner.CheckAny(v)
}

func (s OptionalSchema[T]) Decode(ctx context.Context, v any) (*T, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *T:
		return t, nil
	}
	dv, err := s.inner.Decode(ctx, v)
	if err != nil {
		return nil, err
	}
	return &dv, nil
}

func (s OptionalSchema[T]) Encode(ctx context.Context, v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	return s.inner.Encode(ctx, *v)
}

func (s OptionalSchema[T]) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}

func (s OptionalSchema[T]) EncodeAny(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *T:
		return s.Encode(ctx, t)
	}
	return s.inner.EncodeAny(ctx, v)
}

func (s OptionalSchema[T]) Rule(c pertype.Constraint[*T]) OptionalSchema[T] {
	s.def = s.def.rule(c)
	return s
}

// Nullable returns a schema accepting the inner type or an explicit null.
// Null is represented as a nil pointer.
func Nullable[T any](inner pertype.Schema[T]) NullableSchema[T] {
	return NullableSchema[T]{inner: inner}
}

// NullableSchema is the explicit-null counterpart of OptionalSchema; the two
// differ only in signature because absent and null inputs both arrive as nil.
type NullableSchema[T any] struct {
	inner pertype.Schema[T]
	def   definition[*T]
}

func (s NullableSchema[T]) Signature() string { return "nullable<" + s.inner.Signature() + ">" }

// Unwrap returns the inner schema.
func (s NullableSchema[T]) Unwrap() pertype.Schema[T] { return s.inner }

func (s NullableSchema[T]) Label(label string) NullableSchema[T] {
	s.def = s.def.withLabel(label)
	return s
}

func (s NullableSchema[T]) Is(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *T:
		if t == nil {
			return true
		}
		return s.inner.Is(*t)
	}
	return s.inner.Is(v)
}

func (s NullableSchema[T]) Create() *T     { return nil }
func (s NullableSchema[T]) CreateAny() any { return s.Create() }

func (s NullableSchema[T]) Check(v *T) []pertype.Violation {
	out := s.def.check(v)
	if v == nil {
		return out
	}
	return pertype.AppendViolations(out, s.inner.Check(*v)...)
}

func (s NullableSchema[T]) Test(v *T) bool { return len(s.Check(v)) == 0 }
func (s NullableSchema[T]) Validate(v *T) pertype.ValidationResult[*T] {
	return pertype.ResultOf(v, s.Check(v))
}

func (s NullableSchema[T]) CheckAny(v any) []pertype.Violation {
	switch t := v.(type) {
	case nil:
		return s.Check(nil)
	case *T:
		return s.Check(t)
	}
	return s.inner.CheckAny(v)
}

func (s NullableSchema[T]) Decode(ctx context.Context, v any) (*T, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *T:
		return t, nil
	}
	dv, err := s.inner.Decode(ctx, v)
	if err != nil {
		return nil, err
	}
	return &dv, nil
}

func (s NullableSchema[T]) Encode(ctx context.Context, v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	return s.inner.Encode(ctx, *v)
}

func (s NullableSchema[T]) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}

func (s NullableSchema[T]) EncodeAny(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *T:
		return s.Encode(ctx, t)
	}
	return s.inner.EncodeAny(ctx, v)
}

func (s NullableSchema[T]) Rule(c pertype.Constraint[*T]) NullableSchema[T] {
	s.def = s.def.rule(c)
	return s
}

// JSON returns a schema decoding the inner type out of a JSON document
// string; encode renders the inner encode back to a compact document.
func JSON[T any](inner pertype.Schema[T]) JSONSchema[T] {
	return JSONSchema[T]{inner: inner}
}

// JSONSchema stringifies its input, parses it as a JSON document, and feeds
// the parsed value to the inner schema. Every input goes through the parse,
// even one that already has the represented type.
type JSONSchema[T any] struct {
	inner pertype.Schema[T]
	def   definition[T]
}

func (s JSONSchema[T]) Signature() string { return "json<" + s.inner.Signature() + ">" }

// Unwrap returns the inner schema.
func (s JSONSchema[T]) Unwrap() pertype.Schema[T] { return s.inner }

func (s JSONSchema[T]) Label(label string) JSONSchema[T] {
	s.def = s.def.withLabel(label)
	return s
}

func (s JSONSchema[T]) Is(v any) bool { return s.inner.Is(v) }

func (s JSONSchema[T]) Create() T      { return s.inner.Create() }
func (s JSONSchema[T]) CreateAny() any { return s.Create() }

func (s JSONSchema[T]) Check(v T) []pertype.Violation {
	return pertype.AppendViolations(s.def.check(v), s.inner.Check(v)...)
}

func (s JSONSchema[T]) Test(v T) bool { return len(s.Check(v)) == 0 }
func (s JSONSchema[T]) Validate(v T) pertype.ValidationResult[T] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s JSONSchema[T]) CheckAny(v any) []pertype.Violation { return checkAny[T](s, v) }

func (s JSONSchema[T]) Decode(ctx context.Context, v any) (T, error) {
	var zero T
	var doc []byte
	switch t := v.(type) {
	case []byte:
		doc = t
	case string:
		doc = []byte(t)
	default:
		doc = []byte(coerce.Stringify(v))
	}
	var parsed any
	if err := gojson.Unmarshal(doc, &parsed); err != nil {
		return zero, pertype.NewUnsupportedValue(v)
	}
	return s.inner.Decode(ctx, parsed)
}

func (s JSONSchema[T]) Encode(ctx context.Context, v T) (any, error) {
	ev, err := s.inner.Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	doc, err := gojson.Marshal(ev)
	if err != nil {
		return nil, pertype.NewUnsupportedValue(v)
	}
	return string(doc), nil
}

func (s JSONSchema[T]) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}
func (s JSONSchema[T]) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[T](ctx, s, v)
}

func (s JSONSchema[T]) Rule(c pertype.Constraint[T]) JSONSchema[T] {
	s.def = s.def.rule(c)
	return s
}

// Future returns a schema resolving deferred inputs before decoding with the
// inner schema. Channels and thunks are awaited under the decode context.
func Future[T any](inner pertype.Schema[T]) FutureSchema[T] {
	return FutureSchema[T]{inner: inner}
}

// FutureSchema resolves <-chan any, chan any, and
// func(context.Context) (any, error) inputs, then delegates to the inner
// schema. Resolution is the only point where decoding can block, so context
// cancellation is honored here.
type FutureSchema[T any] struct {
	inner pertype.Schema[T]
	def   definition[T]
}

func (s FutureSchema[T]) Signature() string { return "future<" + s.inner.Signature() + ">" }

// Unwrap returns the inner schema.
func (s FutureSchema[T]) Unwrap() pertype.Schema[T] { return s.inner }

func (s FutureSchema[T]) Label(label string) FutureSchema[T] {
	s.def = s.def.withLabel(label)
	return s
}

// Is reports only settled values; an unresolved deferred input never
// satisfies the schema without decoding.
func (s FutureSchema[T]) Is(v any) bool {
	switch v.(type) {
	case <-chan any, chan any, func(context.Context) (any, error):
		return false
	}
	return s.inner.Is(v)
}

func (s FutureSchema[T]) Create() T      { return s.inner.Create() }
func (s FutureSchema[T]) CreateAny() any { return s.Create() }

func (s FutureSchema[T]) Check(v T) []pertype.Violation {
	return pertype.AppendViolations(s.def.check(v), s.inner.Check(v)...)
}

func (s FutureSchema[T]) Test(v T) bool { return len(s.Check(v)) == 0 }
func (s FutureSchema[T]) Validate(v T) pertype.ValidationResult[T] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s FutureSchema[T]) CheckAny(v any) []pertype.Violation { return checkAny[T](s, v) }

func (s FutureSchema[T]) Decode(ctx context.Context, v any) (T, error) {
	var zero T
	resolved, err := s.resolve(ctx, v)
	if err != nil {
		return zero, err
	}
	return s.inner.Decode(ctx, resolved)
}

func (s FutureSchema[T]) resolve(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case <-chan any:
		return awaitChan(ctx, t)
	case chan any:
		return awaitChan(ctx, t)
	case func(context.Context) (any, error):
		return t(ctx)
	}
	return v, nil
}

func awaitChan(ctx context.Context, ch <-chan any) (any, error) {
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s FutureSchema[T]) Encode(ctx context.Context, v T) (any, error) {
	return s.inner.Encode(ctx, v)
}

func (s FutureSchema[T]) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}
func (s FutureSchema[T]) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[T](ctx, s, v)
}

func (s FutureSchema[T]) Rule(c pertype.Constraint[T]) FutureSchema[T] {
	s.def = s.def.rule(c)
	return s
}
