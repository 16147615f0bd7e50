package dsl

import (
	"context"
	"strconv"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/internal/coerce"
)

// MapOf returns a keyed-record schema. The key schema is meant to be a
// scalar leaf: string, number, or symbol. The comparable bound admits wider
// key types, but encode always stringifies keys into a plain string-keyed
// record, so composite keys have no faithful round trip.
func MapOf[K comparable, V any](key pertype.Schema[K], value pertype.Schema[V]) MapSchema[K, V] {
	return MapSchema[K, V]{key: key, value: value}
}

// MapSchema decodes from entry pairs, plain objects, typed maps, or arrays
// of scalar keys (which map to the value type's zero); anything else is an
// unsupported type. Encode produces a string-keyed record with keys and
// values passed through their respective codecs.
type MapSchema[K comparable, V any] struct {
	key   pertype.Schema[K]
	value pertype.Schema[V]
	def   definition[map[K]V]
}

func (s MapSchema[K, V]) Signature() string {
	return "map<" + s.key.Signature() + "," + s.value.Signature() + ">"
}

// Key returns the key schema.
func (s MapSchema[K, V]) Key() pertype.Schema[K] { return s.key }

// Value returns the value schema.
func (s MapSchema[K, V]) Value() pertype.Schema[V] { return s.value }

func (s MapSchema[K, V]) Label(label string) MapSchema[K, V] {
	s.def = s.def.withLabel(label)
	return s
}

func (s MapSchema[K, V]) Is(v any) bool {
	m, ok := v.(map[K]V)
	if !ok {
		return false
	}
	for k, mv := range m {
		if !s.key.Is(k) || !s.value.Is(mv) {
			return false
		}
	}
	return true
}

func (s MapSchema[K, V]) Create() map[K]V { return map[K]V{} }
func (s MapSchema[K, V]) CreateAny() any  { return s.Create() }

func (s MapSchema[K, V]) Check(v map[K]V) []pertype.Violation {
	out := s.def.check(v)
	for k, mv := range v {
		seg := coerce.Stringify(k)
		out = pertype.AppendViolations(out, pertype.PrefixViolations(s.key.Check(k), seg)...)
		out = pertype.AppendViolations(out, pertype.PrefixViolations(s.value.Check(mv), seg)...)
	}
	return out
}

func (s MapSchema[K, V]) Test(v map[K]V) bool { return len(s.Check(v)) == 0 }
func (s MapSchema[K, V]) Validate(v map[K]V) pertype.ValidationResult[map[K]V] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s MapSchema[K, V]) CheckAny(v any) []pertype.Violation { return checkAny[map[K]V](s, v) }

func (s MapSchema[K, V]) Decode(ctx context.Context, v any) (map[K]V, error) {
	if typed, ok := v.(map[K]V); ok && s.Is(v) {
		return typed, nil
	}
	if items, ok := toAnySlice(v); ok {
		out := make(map[K]V, len(items))
		for i, item := range items {
			seg := strconv.Itoa(i)
			if pair, ok := toAnySlice(item); ok && len(pair) == 2 {
				k, err := s.key.Decode(ctx, pair[0])
				if err != nil {
					return nil, pertype.PrefixPath(err, seg)
				}
				mv, err := s.value.Decode(ctx, pair[1])
				if err != nil {
					return nil, pertype.PrefixPath(err, seg)
				}
				out[k] = mv
				continue
			}
			// scalar element becomes a key with the zero value
			k, err := s.key.Decode(ctx, item)
			if err != nil {
				return nil, pertype.PrefixPath(err, seg)
			}
			var zero V
			out[k] = zero
		}
		return out, nil
	}
	if entries, ok := mapEntries(v); ok {
		out := make(map[K]V, len(entries))
		for _, entry := range entries {
			seg := coerce.Stringify(entry.key)
			k, err := s.key.Decode(ctx, entry.key)
			if err != nil {
				return nil, pertype.PrefixPath(err, seg)
			}
			mv, err := s.value.Decode(ctx, entry.value)
			if err != nil {
				return nil, pertype.PrefixPath(err, seg)
			}
			out[k] = mv
		}
		return out, nil
	}
	return nil, pertype.NewUnsupportedType(v)
}

func (s MapSchema[K, V]) Encode(ctx context.Context, v map[K]V) (any, error) {
	out := make(map[string]any, len(v))
	for k, mv := range v {
		seg := coerce.Stringify(k)
		ek, err := s.key.Encode(ctx, k)
		if err != nil {
			return nil, pertype.PrefixPath(err, seg)
		}
		ev, err := s.value.Encode(ctx, mv)
		if err != nil {
			return nil, pertype.PrefixPath(err, seg)
		}
		out[coerce.Stringify(ek)] = ev
	}
	return out, nil
}

func (s MapSchema[K, V]) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.Decode(ctx, v)
}
func (s MapSchema[K, V]) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[map[K]V](ctx, s, v)
}

func (s MapSchema[K, V]) Rule(c pertype.Constraint[map[K]V]) MapSchema[K, V] {
	s.def = s.def.rule(c)
	return s
}

func (s MapSchema[K, V]) Optional() OptionalSchema[map[K]V] { return Optional[map[K]V](s) }
func (s MapSchema[K, V]) Nullable() NullableSchema[map[K]V] { return Nullable[map[K]V](s) }
