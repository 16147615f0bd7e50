package dsl

import (
	"context"
	"strconv"
	"strings"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/rules"
)

// Array returns an array schema over the given element schema.
func Array[E any](elem pertype.Schema[E]) ArraySchema[E] {
	return ArraySchema[E]{elem: elem}
}

// ArraySchema recognizes slices whose every element satisfies the inner
// schema. Decode passes valid slices through, element-decodes other slices,
// wraps a non-nil scalar as a single-element slice, and maps nil to the
// empty slice. Element failures carry the index on their path.
type ArraySchema[E any] struct {
	elem pertype.Schema[E]
	def  definition[[]E]
}

func (s ArraySchema[E]) Signature() string {
	return "array<" + s.elem.Signature() + ">"
}

// Unwrap returns the element schema.
func (s ArraySchema[E]) Unwrap() pertype.Schema[E] { return s.elem }

func (s ArraySchema[E]) Label(label string) ArraySchema[E] {
	s.def = s.def.withLabel(label)
	return s
}

func (s ArraySchema[E]) Is(v any) bool {
	if typed, ok := v.([]E); ok {
		for _, e := range typed {
			if !s.elem.Is(e) {
				return false
			}
		}
		return true
	}
	items, ok := toAnySlice(v)
	if !ok {
		return false
	}
	for _, item := range items {
		if !s.elem.Is(item) {
			return false
		}
	}
	return true
}

func (s ArraySchema[E]) Create() []E    { return []E{} }
func (s ArraySchema[E]) CreateAny() any { return s.Create() }

// Check runs the schema's own constraints first, then every element's check
// with the index prefixed onto each violation path.
func (s ArraySchema[E]) Check(v []E) []pertype.Violation {
	out := s.def.check(v)
	for i, e := range v {
		out = pertype.AppendViolations(out, pertype.PrefixViolations(s.elem.Check(e), strconv.Itoa(i))...)
	}
	return out
}

func (s ArraySchema[E]) Test(v []E) bool { return len(s.Check(v)) == 0 }
func (s ArraySchema[E]) Validate(v []E) pertype.ValidationResult[[]E] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s ArraySchema[E]) CheckAny(v any) []pertype.Violation { return checkAny[[]E](s, v) }

func (s ArraySchema[E]) Decode(ctx context.Context, v any) ([]E, error) {
	// passthrough only when every element already conforms; a []any may
	// still need element coercion
	if typed, ok := v.([]E); ok && s.Is(v) {
		return typed, nil
	}
	if items, ok := toAnySlice(v); ok {
		out := make([]E, 0, len(items))
		for i, item := range items {
			e, err := s.elem.Decode(ctx, item)
			if err != nil {
				return nil, pertype.PrefixPath(err, strconv.Itoa(i))
			}
			out = append(out, e)
		}
		return out, nil
	}
	if v == nil {
		return []E{}, nil
	}
	// non-nil scalar wraps as a single-element array
	e, err := s.elem.Decode(ctx, v)
	if err != nil {
		return nil, pertype.PrefixPath(err, "0")
	}
	return []E{e}, nil
}

func (s ArraySchema[E]) Encode(ctx context.Context, v []E) (any, error) {
	out := make([]any, 0, len(v))
	for i, e := range v {
		ev, err := s.elem.Encode(ctx, e)
		if err != nil {
			return nil, pertype.PrefixPath(err, strconv.Itoa(i))
		}
		out = append(out, ev)
	}
	return out, nil
}

func (s ArraySchema[E]) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}
func (s ArraySchema[E]) EncodeAny(ctx context.Context, v any) (any, error) {
	if typed, ok := v.([]E); ok {
		return s.Encode(ctx, typed)
	}
	return nil, pertype.NewUnsupportedType(v)
}

func (s ArraySchema[E]) Rule(c pertype.Constraint[[]E]) ArraySchema[E] {
	s.def = s.def.rule(c)
	return s
}

// Length requires exactly n elements.
func (s ArraySchema[E]) Length(n int) ArraySchema[E] { return s.Rule(rules.Items[E](n)) }

// Min requires at least n elements.
func (s ArraySchema[E]) Min(n int) ArraySchema[E] { return s.Rule(rules.MinItems[E](n)) }

// Max requires at most n elements.
func (s ArraySchema[E]) Max(n int) ArraySchema[E] { return s.Rule(rules.MaxItems[E](n)) }

func (s ArraySchema[E]) Optional() OptionalSchema[[]E] { return Optional[[]E](s) }
func (s ArraySchema[E]) Nullable() NullableSchema[[]E] { return Nullable[[]E](s) }
func (s ArraySchema[E]) JSON() JSONSchema[[]E]         { return JSON[[]E](s) }
func (s ArraySchema[E]) Future() FutureSchema[[]E]     { return Future[[]E](s) }

// Tuple returns a fixed-arity schema over the ordered member schemas.
func Tuple(members ...pertype.AnySchema) TupleSchema {
	return TupleSchema{members: members}
}

// TupleSchema decodes arrays positionally; excess input items beyond the
// declared arity are dropped, missing positions decode from nil.
type TupleSchema struct {
	members []pertype.AnySchema
	def     definition[[]any]
}

func (s TupleSchema) Signature() string {
	sigs := make([]string, len(s.members))
	for i, m := range s.members {
		sigs[i] = m.Signature()
	}
	return "tuple<" + strings.Join(sigs, ",") + ">"
}

// Members returns the ordered member schemas.
func (s TupleSchema) Members() []pertype.AnySchema { return s.members }

func (s TupleSchema) Label(label string) TupleSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s TupleSchema) at(items []any, i int) any {
	if i < len(items) {
		return items[i]
	}
	return nil
}

func (s TupleSchema) Is(v any) bool {
	items, ok := toAnySlice(v)
	if !ok {
		return false
	}
	for i, m := range s.members {
		if !m.Is(s.at(items, i)) {
			return false
		}
	}
	return true
}

func (s TupleSchema) Create() []any {
	out := make([]any, len(s.members))
	for i, m := range s.members {
		out[i] = m.CreateAny()
	}
	return out
}
func (s TupleSchema) CreateAny() any { return s.Create() }

func (s TupleSchema) Check(v []any) []pertype.Violation {
	out := s.def.check(v)
	for i, m := range s.members {
		out = pertype.AppendViolations(out, pertype.PrefixViolations(m.CheckAny(s.at(v, i)), strconv.Itoa(i))...)
	}
	return out
}

func (s TupleSchema) Test(v []any) bool { return len(s.Check(v)) == 0 }
func (s TupleSchema) Validate(v []any) pertype.ValidationResult[[]any] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s TupleSchema) CheckAny(v any) []pertype.Violation { return checkAny[[]any](s, v) }

func (s TupleSchema) Decode(ctx context.Context, v any) ([]any, error) {
	items, ok := toAnySlice(v)
	if !ok {
		return nil, pertype.NewUnsupportedType(v)
	}
	out := make([]any, len(s.members))
	for i, m := range s.members {
		dv, err := m.DecodeAny(ctx, s.at(items, i))
		if err != nil {
			return nil, pertype.PrefixPath(err, strconv.Itoa(i))
		}
		out[i] = dv
	}
	return out, nil
}

func (s TupleSchema) Encode(ctx context.Context, v []any) (any, error) {
	out := make([]any, len(s.members))
	for i, m := range s.members {
		ev, err := m.EncodeAny(ctx, s.at(v, i))
		if err != nil {
			return nil, pertype.PrefixPath(err, strconv.Itoa(i))
		}
		out[i] = ev
	}
	return out, nil
}

func (s TupleSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s TupleSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[[]any](ctx, s, v)
}

func (s TupleSchema) Rule(c pertype.Constraint[[]any]) TupleSchema {
	s.def = s.def.rule(c)
	return s
}

func (s TupleSchema) Optional() OptionalSchema[[]any] { return Optional[[]any](s) }
func (s TupleSchema) Nullable() NullableSchema[[]any] { return Nullable[[]any](s) }

// Set returns a schema over unique elements, represented as a slice in
// first-seen order.
func Set[E comparable](elem pertype.Schema[E]) SetSchema[E] {
	return SetSchema[E]{elem: elem}
}

// SetSchema decodes arrays only, deduplicating after element decode; encode
// emits the ordered element encodes.
type SetSchema[E comparable] struct {
	elem pertype.Schema[E]
	def  definition[[]E]
}

func (s SetSchema[E]) Signature() string { return "set<" + s.elem.Signature() + ">" }

// Unwrap returns the element schema.
func (s SetSchema[E]) Unwrap() pertype.Schema[E] { return s.elem }

func (s SetSchema[E]) Label(label string) SetSchema[E] {
	s.def = s.def.withLabel(label)
	return s
}

func (s SetSchema[E]) Is(v any) bool {
	items, ok := toAnySlice(v)
	if !ok {
		return false
	}
	seen := make(map[E]struct{}, len(items))
	for _, item := range items {
		if !s.elem.Is(item) {
			return false
		}
		if e, ok := item.(E); ok {
			if _, dup := seen[e]; dup {
				return false
			}
			seen[e] = struct{}{}
		}
	}
	return true
}

func (s SetSchema[E]) Create() []E    { return []E{} }
func (s SetSchema[E]) CreateAny() any { return s.Create() }

func (s SetSchema[E]) Check(v []E) []pertype.Violation {
	out := s.def.check(v)
	for i, e := range v {
		out = pertype.AppendViolations(out, pertype.PrefixViolations(s.elem.Check(e), strconv.Itoa(i))...)
	}
	return out
}

func (s SetSchema[E]) Test(v []E) bool { return len(s.Check(v)) == 0 }
func (s SetSchema[E]) Validate(v []E) pertype.ValidationResult[[]E] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s SetSchema[E]) CheckAny(v any) []pertype.Violation { return checkAny[[]E](s, v) }

func (s SetSchema[E]) Decode(ctx context.Context, v any) ([]E, error) {
	items, ok := toAnySlice(v)
	if !ok {
		return nil, pertype.NewUnsupportedType(v)
	}
	out := make([]E, 0, len(items))
	seen := make(map[E]struct{}, len(items))
	for i, item := range items {
		e, err := s.elem.Decode(ctx, item)
		if err != nil {
			return nil, pertype.PrefixPath(err, strconv.Itoa(i))
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}

func (s SetSchema[E]) Encode(ctx context.Context, v []E) (any, error) {
	out := make([]any, 0, len(v))
	for i, e := range v {
		ev, err := s.elem.Encode(ctx, e)
		if err != nil {
			return nil, pertype.PrefixPath(err, strconv.Itoa(i))
		}
		out = append(out, ev)
	}
	return out, nil
}

func (s SetSchema[E]) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s SetSchema[E]) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[[]E](ctx, s, v)
}

func (s SetSchema[E]) Rule(c pertype.Constraint[[]E]) SetSchema[E] {
	s.def = s.def.rule(c)
	return s
}

func (s SetSchema[E]) Optional() OptionalSchema[[]E] { return Optional[[]E](s) }
func (s SetSchema[E]) Nullable() NullableSchema[[]E] { return Nullable[[]E](s) }
