package dsl

import (
	"context"
	"time"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/rules"
)

// dateLayouts are tried in order when decoding a string into a time.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date returns the date leaf schema (time.Time representation).
func Date() DateSchema { return DateSchema{} }

// DateSchema passes time.Time through, parses strings against a fixed set of
// layouts, and rejects every other runtime type. Encode emits the canonical
// UTC RFC3339Nano string.
type DateSchema struct {
	def definition[time.Time]
}

func (s DateSchema) Signature() string { return "date" }

func (s DateSchema) Label(label string) DateSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s DateSchema) Is(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

func (s DateSchema) Create() time.Time { return time.Now() }
func (s DateSchema) CreateAny() any    { return s.Create() }

func (s DateSchema) Check(v time.Time) []pertype.Violation { return s.def.check(v) }
func (s DateSchema) Test(v time.Time) bool                 { return len(s.Check(v)) == 0 }
func (s DateSchema) Validate(v time.Time) pertype.ValidationResult[time.Time] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s DateSchema) CheckAny(v any) []pertype.Violation { return checkAny[time.Time](s, v) }

func (s DateSchema) Decode(ctx context.Context, v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, pertype.NewUnsupportedValue(t)
	default:
		return time.Time{}, pertype.NewUnsupportedType(v)
	}
}

func (s DateSchema) Encode(ctx context.Context, v time.Time) (any, error) {
	return v.UTC().Format(time.RFC3339Nano), nil
}

func (s DateSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s DateSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[time.Time](ctx, s, v)
}

func (s DateSchema) Rule(c pertype.Constraint[time.Time]) DateSchema {
	s.def = s.def.rule(c)
	return s
}

// Min rejects times before the bound.
func (s DateSchema) Min(bound time.Time) DateSchema { return s.Rule(rules.After(bound)) }

// Max rejects times after the bound.
func (s DateSchema) Max(bound time.Time) DateSchema { return s.Rule(rules.Before(bound)) }

func (s DateSchema) Array() ArraySchema[time.Time]       { return Array[time.Time](s) }
func (s DateSchema) Optional() OptionalSchema[time.Time] { return Optional[time.Time](s) }
func (s DateSchema) Nullable() NullableSchema[time.Time] { return Nullable[time.Time](s) }
func (s DateSchema) Future() FutureSchema[time.Time]     { return Future[time.Time](s) }
