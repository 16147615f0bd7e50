package dsl

import (
	"context"
	"strings"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/i18n"
)

// Union returns a schema matching any of the ordered member schemas.
// Declaration order is significant: it is the decode tie-break order.
// A union is meant to hold two or more members; with fewer it degenerates
// (the empty union matches nothing and rejects every decode).
func Union(members ...pertype.AnySchema) UnionSchema {
	return UnionSchema{members: members}
}

// UnionSchema decodes in two passes. The first pass picks the first member
// whose Is already matches the raw input, so coercion cannot steal a value
// that is already well-typed for another member. Only when no member matches
// does the second pass attempt each member's decode in order, returning the
// first success; exhausting all members is an unsupported type.
type UnionSchema struct {
	members []pertype.AnySchema
	def     definition[any]
}

func (s UnionSchema) Signature() string {
	sigs := make([]string, len(s.members))
	for i, m := range s.members {
		sigs[i] = m.Signature()
	}
	return "union<" + strings.Join(sigs, "|") + ">"
}

// Members returns the ordered member schemas.
func (s UnionSchema) Members() []pertype.AnySchema { return s.members }

func (s UnionSchema) Label(label string) UnionSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s UnionSchema) Is(v any) bool {
	for _, m := range s.members {
		if m.Is(v) {
			return true
		}
	}
	return false
}

func (s UnionSchema) Create() any {
	if len(s.members) == 0 {
		return nil
	}
	return s.members[0].CreateAny()
}
func (s UnionSchema) CreateAny() any { return s.Create() }

// Check delegates to the first member whose Is matches; when none does, a
// single union violation is reported.
func (s UnionSchema) Check(v any) []pertype.Violation {
	out := s.def.check(v)
	for _, m := range s.members {
		if m.Is(v) {
			return pertype.AppendViolations(out, m.CheckAny(v)...)
		}
	}
	return pertype.AppendViolations(out, pertype.Violation{
		Type:    "union",
		Message: i18n.T("union", nil),
		Args:    map[string]any{"value": v, "signature": s.Signature()},
	})
}

func (s UnionSchema) Test(v any) bool { return len(s.Check(v)) == 0 }
func (s UnionSchema) Validate(v any) pertype.ValidationResult[any] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s UnionSchema) CheckAny(v any) []pertype.Violation { return s.Check(v) }

func (s UnionSchema) Decode(ctx context.Context, v any) (any, error) {
	for _, m := range s.members {
		if m.Is(v) {
			return m.DecodeAny(ctx, v)
		}
	}
	for _, m := range s.members {
		if out, err := m.DecodeAny(ctx, v); err == nil {
			return out, nil
		}
	}
	return nil, pertype.NewUnsupportedType(v)
}

func (s UnionSchema) Encode(ctx context.Context, v any) (any, error) {
	for _, m := range s.members {
		if m.Is(v) {
			return m.EncodeAny(ctx, v)
		}
	}
	return nil, pertype.NewUnsupportedType(v)
}

func (s UnionSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s UnionSchema) EncodeAny(ctx context.Context, v any) (any, error) { return s.Encode(ctx, v) }

func (s UnionSchema) Rule(c pertype.Constraint[any]) UnionSchema {
	s.def = s.def.rule(c)
	return s
}

func (s UnionSchema) Optional() OptionalSchema[any] { return Optional[any](s) }
func (s UnionSchema) Nullable() NullableSchema[any] { return Nullable[any](s) }

// Intersect returns a schema narrowing to values satisfying every member
// simultaneously, merging object-typed results into one record.
// An intersection is meant to hold two or more members; with fewer it
// degenerates (the empty intersection matches everything and decodes to the
// empty record).
func Intersect(members ...pertype.AnySchema) IntersectSchema {
	return IntersectSchema{members: members}
}

// IntersectSchema decodes against every member independently, keeps the
// object-typed results, and merges them so that on key collision the
// earlier member's property wins.
type IntersectSchema struct {
	members []pertype.AnySchema
	def     definition[map[string]any]
}

func (s IntersectSchema) Signature() string {
	sigs := make([]string, len(s.members))
	for i, m := range s.members {
		sigs[i] = m.Signature()
	}
	return "intersect<" + strings.Join(sigs, "&") + ">"
}

// Members returns the ordered member schemas.
func (s IntersectSchema) Members() []pertype.AnySchema { return s.members }

func (s IntersectSchema) Label(label string) IntersectSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s IntersectSchema) Is(v any) bool {
	for _, m := range s.members {
		if !m.Is(v) {
			return false
		}
	}
	return true
}

func (s IntersectSchema) Create() map[string]any {
	out := map[string]any{}
	for _, m := range s.members {
		if mo, ok := m.CreateAny().(map[string]any); ok {
			mergeFirstWins(out, mo)
		}
	}
	return out
}
func (s IntersectSchema) CreateAny() any { return s.Create() }

func (s IntersectSchema) Check(v map[string]any) []pertype.Violation {
	out := s.def.check(v)
	for _, m := range s.members {
		out = pertype.AppendViolations(out, m.CheckAny(v)...)
	}
	return out
}

func (s IntersectSchema) Test(v map[string]any) bool { return len(s.Check(v)) == 0 }
func (s IntersectSchema) Validate(v map[string]any) pertype.ValidationResult[map[string]any] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s IntersectSchema) CheckAny(v any) []pertype.Violation {
	return checkAny[map[string]any](s, v)
}

func (s IntersectSchema) Decode(ctx context.Context, v any) (map[string]any, error) {
	acc := map[string]any{}
	for _, m := range s.members {
		out, err := m.DecodeAny(ctx, v)
		if err != nil {
			return nil, err
		}
		if mo, ok := out.(map[string]any); ok {
			mergeFirstWins(acc, mo)
		}
	}
	return acc, nil
}

func (s IntersectSchema) Encode(ctx context.Context, v map[string]any) (any, error) {
	acc := map[string]any{}
	for _, m := range s.members {
		out, err := m.EncodeAny(ctx, v)
		if err != nil {
			return nil, err
		}
		if mo, ok := out.(map[string]any); ok {
			mergeFirstWins(acc, mo)
		}
	}
	return acc, nil
}

func (s IntersectSchema) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}
func (s IntersectSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[map[string]any](ctx, s, v)
}

func (s IntersectSchema) Rule(c pertype.Constraint[map[string]any]) IntersectSchema {
	s.def = s.def.rule(c)
	return s
}

func (s IntersectSchema) Optional() OptionalSchema[map[string]any] {
	return Optional[map[string]any](s)
}
func (s IntersectSchema) Nullable() NullableSchema[map[string]any] {
	return Nullable[map[string]any](s)
}

// mergeFirstWins copies entries of src into dst, keeping dst's value on
// collision. Accumulator-first precedence, not last-write-wins.
func mergeFirstWins(dst, src map[string]any) {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
}
