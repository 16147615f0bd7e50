package dsl

import (
	"context"
	"regexp"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/internal/coerce"
	"github.com/hernantas/pertype/rules"
)

// String returns the string leaf schema.
func String() StringSchema { return StringSchema{} }

// StringSchema recognizes strings and coerces anything else by
// stringification; nil decodes to the empty string. Decode never fails.
type StringSchema struct {
	def definition[string]
}

func (s StringSchema) Signature() string { return "string" }

func (s StringSchema) Label(label string) StringSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s StringSchema) Is(v any) bool {
	_, ok := v.(string)
	return ok
}

func (s StringSchema) Create() string { return "" }
func (s StringSchema) CreateAny() any { return s.Create() }

func (s StringSchema) Check(v string) []pertype.Violation { return s.def.check(v) }
func (s StringSchema) Test(v string) bool                 { return len(s.Check(v)) == 0 }
func (s StringSchema) Validate(v string) pertype.ValidationResult[string] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s StringSchema) CheckAny(v any) []pertype.Violation { return checkAny[string](s, v) }

func (s StringSchema) Decode(ctx context.Context, v any) (string, error) {
	if sv, ok := v.(string); ok {
		return sv, nil
	}
	return coerce.Stringify(v), nil
}

func (s StringSchema) Encode(ctx context.Context, v string) (any, error) { return v, nil }

func (s StringSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s StringSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[string](ctx, s, v)
}

// Rule attaches a constraint, returning a new schema.
func (s StringSchema) Rule(c pertype.Constraint[string]) StringSchema {
	s.def = s.def.rule(c)
	return s
}

func (s StringSchema) Min(n int) StringSchema    { return s.Rule(rules.MinLength(n)) }
func (s StringSchema) Max(n int) StringSchema    { return s.Rule(rules.MaxLength(n)) }
func (s StringSchema) Length(n int) StringSchema { return s.Rule(rules.Length(n)) }
func (s StringSchema) Pattern(re *regexp.Regexp) StringSchema {
	return s.Rule(rules.Pattern(re))
}
func (s StringSchema) NotEmpty() StringSchema { return s.Rule(rules.NotEmpty()) }

func (s StringSchema) Array() ArraySchema[string]       { return Array[string](s) }
func (s StringSchema) Optional() OptionalSchema[string] { return Optional[string](s) }
func (s StringSchema) Nullable() NullableSchema[string] { return Nullable[string](s) }
func (s StringSchema) JSON() JSONSchema[string]         { return JSON[string](s) }
func (s StringSchema) Future() FutureSchema[string]     { return Future[string](s) }

// Number returns the number leaf schema (float64 representation).
func Number() NumberSchema { return NumberSchema{} }

// NumberSchema recognizes float64 values; decode additionally passes Go
// integer kinds through, maps nil to 0, keeps the sign of "NaN"/"-NaN", and
// yields NaN for anything unparsable. Decode never fails.
type NumberSchema struct {
	def definition[float64]
}

func (s NumberSchema) Signature() string { return "number" }

func (s NumberSchema) Label(label string) NumberSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s NumberSchema) Is(v any) bool {
	_, ok := v.(float64)
	return ok
}

func (s NumberSchema) Create() float64 { return 0 }
func (s NumberSchema) CreateAny() any  { return s.Create() }

func (s NumberSchema) Check(v float64) []pertype.Violation { return s.def.check(v) }
func (s NumberSchema) Test(v float64) bool                 { return len(s.Check(v)) == 0 }
func (s NumberSchema) Validate(v float64) pertype.ValidationResult[float64] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s NumberSchema) CheckAny(v any) []pertype.Violation { return checkAny[float64](s, v) }

func (s NumberSchema) Decode(ctx context.Context, v any) (float64, error) {
	if f, ok := v.(float64); ok {
		return f, nil
	}
	return coerce.ToFloat(v), nil
}

func (s NumberSchema) Encode(ctx context.Context, v float64) (any, error) { return v, nil }

func (s NumberSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s NumberSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[float64](ctx, s, v)
}

func (s NumberSchema) Rule(c pertype.Constraint[float64]) NumberSchema {
	s.def = s.def.rule(c)
	return s
}

func (s NumberSchema) Min(n float64) NumberSchema { return s.Rule(rules.Min(n)) }
func (s NumberSchema) Max(n float64) NumberSchema { return s.Rule(rules.Max(n)) }

func (s NumberSchema) Array() ArraySchema[float64]       { return Array[float64](s) }
func (s NumberSchema) Optional() OptionalSchema[float64] { return Optional[float64](s) }
func (s NumberSchema) Nullable() NullableSchema[float64] { return Nullable[float64](s) }
func (s NumberSchema) JSON() JSONSchema[float64]         { return JSON[float64](s) }
func (s NumberSchema) Future() FutureSchema[float64]     { return Future[float64](s) }

// Bool returns the boolean leaf schema.
func Bool() BoolSchema { return BoolSchema{} }

// BoolSchema recognizes booleans; decode maps any other value to its
// truthiness equivalent and never fails.
type BoolSchema struct {
	def definition[bool]
}

func (s BoolSchema) Signature() string { return "boolean" }

func (s BoolSchema) Label(label string) BoolSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s BoolSchema) Is(v any) bool {
	_, ok := v.(bool)
	return ok
}

func (s BoolSchema) Create() bool   { return false }
func (s BoolSchema) CreateAny() any { return s.Create() }

func (s BoolSchema) Check(v bool) []pertype.Violation { return s.def.check(v) }
func (s BoolSchema) Test(v bool) bool                 { return len(s.Check(v)) == 0 }
func (s BoolSchema) Validate(v bool) pertype.ValidationResult[bool] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s BoolSchema) CheckAny(v any) []pertype.Violation { return checkAny[bool](s, v) }

func (s BoolSchema) Decode(ctx context.Context, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return coerce.Truthy(v), nil
}

func (s BoolSchema) Encode(ctx context.Context, v bool) (any, error) { return v, nil }

func (s BoolSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s BoolSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[bool](ctx, s, v)
}

func (s BoolSchema) Rule(c pertype.Constraint[bool]) BoolSchema {
	s.def = s.def.rule(c)
	return s
}

func (s BoolSchema) Array() ArraySchema[bool]       { return Array[bool](s) }
func (s BoolSchema) Optional() OptionalSchema[bool] { return Optional[bool](s) }
func (s BoolSchema) Nullable() NullableSchema[bool] { return Nullable[bool](s) }
func (s BoolSchema) JSON() JSONSchema[bool]         { return JSON[bool](s) }
func (s BoolSchema) Future() FutureSchema[bool]     { return Future[bool](s) }

// Nil returns the schema recognizing exactly the nil value. It stands in for
// both the null and undefined leaves of the source model, which collapse to
// a single nil in Go.
func Nil() NilSchema { return NilSchema{} }

// NilSchema passes nil through and rejects everything else.
type NilSchema struct {
	def definition[any]
}

func (s NilSchema) Signature() string { return "nil" }

func (s NilSchema) Label(label string) NilSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s NilSchema) Is(v any) bool  { return v == nil }
func (s NilSchema) Create() any    { return nil }
func (s NilSchema) CreateAny() any { return nil }

func (s NilSchema) Check(v any) []pertype.Violation { return s.def.check(v) }
func (s NilSchema) Test(v any) bool                 { return len(s.Check(v)) == 0 }
func (s NilSchema) Validate(v any) pertype.ValidationResult[any] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s NilSchema) CheckAny(v any) []pertype.Violation { return s.Check(v) }

func (s NilSchema) Decode(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return nil, pertype.NewUnsupportedType(v)
}

func (s NilSchema) Encode(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return nil, pertype.NewUnsupportedType(v)
}

func (s NilSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s NilSchema) EncodeAny(ctx context.Context, v any) (any, error) { return s.Encode(ctx, v) }

// Any returns the schema that accepts every value unchanged.
func Any() AnyValueSchema { return AnyValueSchema{sig: "any"} }

// Unknown is Any under the "unknown" signature; callers narrow the decoded
// value themselves.
func Unknown() AnyValueSchema { return AnyValueSchema{sig: "unknown"} }

// AnyValueSchema passes every value through untouched; is/decode/encode
// never fail.
type AnyValueSchema struct {
	sig string
	def definition[any]
}

func (s AnyValueSchema) Signature() string { return s.sig }

func (s AnyValueSchema) Label(label string) AnyValueSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s AnyValueSchema) Is(v any) bool  { return true }
func (s AnyValueSchema) Create() any    { return nil }
func (s AnyValueSchema) CreateAny() any { return nil }

func (s AnyValueSchema) Check(v any) []pertype.Violation { return s.def.check(v) }
func (s AnyValueSchema) Test(v any) bool                 { return len(s.Check(v)) == 0 }
func (s AnyValueSchema) Validate(v any) pertype.ValidationResult[any] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s AnyValueSchema) CheckAny(v any) []pertype.Violation { return s.Check(v) }

func (s AnyValueSchema) Decode(ctx context.Context, v any) (any, error) { return v, nil }
func (s AnyValueSchema) Encode(ctx context.Context, v any) (any, error) { return v, nil }

func (s AnyValueSchema) DecodeAny(ctx context.Context, v any) (any, error) { return v, nil }
func (s AnyValueSchema) EncodeAny(ctx context.Context, v any) (any, error) { return v, nil }

func (s AnyValueSchema) Rule(c pertype.Constraint[any]) AnyValueSchema {
	s.def = s.def.rule(c)
	return s
}
