package dsl

import (
	"context"
	"sort"
	"strings"

	pertype "github.com/hernantas/pertype"
)

// Props declares the named properties of an object schema.
type Props map[string]pertype.AnySchema

// Object returns an object schema over the given property map. Properties
// are evaluated in sorted key order so violation lists are deterministic.
func Object(props Props) ObjectSchema {
	return ObjectSchema{fields: sortedFields(props)}
}

type objectField struct {
	key    string
	schema pertype.AnySchema
}

func sortedFields(props Props) []objectField {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]objectField, len(keys))
	for i, k := range keys {
		fields[i] = objectField{key: k, schema: props[k]}
	}
	return fields
}

// ObjectSchema recognizes string-keyed records whose declared properties all
// satisfy their schemas. Unknown input keys are dropped on decode; property
// failures carry the key on their path.
type ObjectSchema struct {
	fields []objectField
	def    definition[map[string]any]
}

func (s ObjectSchema) Signature() string {
	sigs := make([]string, len(s.fields))
	for i, f := range s.fields {
		sigs[i] = f.key + ":" + f.schema.Signature()
	}
	return "object<" + strings.Join(sigs, ",") + ">"
}

// Keys returns the declared property names in evaluation order.
func (s ObjectSchema) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.key
	}
	return keys
}

// Prop returns the schema declared for key, if any.
func (s ObjectSchema) Prop(key string) (pertype.AnySchema, bool) {
	for _, f := range s.fields {
		if f.key == key {
			return f.schema, true
		}
	}
	return nil, false
}

// Extend merges additional properties into a new object schema. Extending
// with an already-declared key replaces that property; attached constraints
// are preserved.
func (s ObjectSchema) Extend(props Props) ObjectSchema {
	merged := make(Props, len(s.fields)+len(props))
	for _, f := range s.fields {
		merged[f.key] = f.schema
	}
	for k, p := range props {
		merged[k] = p
	}
	s.fields = sortedFields(merged)
	return s
}

// Pick keeps only the named properties; attached constraints are preserved.
func (s ObjectSchema) Pick(keys ...string) ObjectSchema {
	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}
	fields := make([]objectField, 0, len(keys))
	for _, f := range s.fields {
		if _, ok := keep[f.key]; ok {
			fields = append(fields, f)
		}
	}
	s.fields = fields
	return s
}

// Omit drops the named properties; attached constraints are preserved.
func (s ObjectSchema) Omit(keys ...string) ObjectSchema {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	fields := make([]objectField, 0, len(s.fields))
	for _, f := range s.fields {
		if _, ok := drop[f.key]; !ok {
			fields = append(fields, f)
		}
	}
	s.fields = fields
	return s
}

func (s ObjectSchema) Label(label string) ObjectSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s ObjectSchema) Is(v any) bool {
	m, ok := toStringMap(v)
	if !ok {
		return false
	}
	for _, f := range s.fields {
		if !f.schema.Is(m[f.key]) {
			return false
		}
	}
	return true
}

func (s ObjectSchema) Create() map[string]any {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		out[f.key] = f.schema.CreateAny()
	}
	return out
}
func (s ObjectSchema) CreateAny() any { return s.Create() }

// Check runs the schema's own constraints first, then every declared
// property's check with the key prefixed onto each violation path.
func (s ObjectSchema) Check(v map[string]any) []pertype.Violation {
	out := s.def.check(v)
	for _, f := range s.fields {
		out = pertype.AppendViolations(out, pertype.PrefixViolations(f.schema.CheckAny(v[f.key]), f.key)...)
	}
	return out
}

func (s ObjectSchema) Test(v map[string]any) bool { return len(s.Check(v)) == 0 }
func (s ObjectSchema) Validate(v map[string]any) pertype.ValidationResult[map[string]any] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s ObjectSchema) CheckAny(v any) []pertype.Violation { return checkAny[map[string]any](s, v) }

func (s ObjectSchema) Decode(ctx context.Context, v any) (map[string]any, error) {
	m, ok := toStringMap(v)
	if !ok {
		return nil, pertype.NewUnsupportedType(v)
	}
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		dv, err := f.schema.DecodeAny(ctx, m[f.key])
		if err != nil {
			return nil, pertype.PrefixPath(err, f.key)
		}
		out[f.key] = dv
	}
	return out, nil
}

func (s ObjectSchema) Encode(ctx context.Context, v map[string]any) (any, error) {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		ev, err := f.schema.EncodeAny(ctx, v[f.key])
		if err != nil {
			return nil, pertype.PrefixPath(err, f.key)
		}
		out[f.key] = ev
	}
	return out, nil
}

func (s ObjectSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s ObjectSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[map[string]any](ctx, s, v)
}

func (s ObjectSchema) Rule(c pertype.Constraint[map[string]any]) ObjectSchema {
	s.def = s.def.rule(c)
	return s
}

func (s ObjectSchema) Optional() OptionalSchema[map[string]any] {
	return Optional[map[string]any](s)
}
func (s ObjectSchema) Nullable() NullableSchema[map[string]any] {
	return Nullable[map[string]any](s)
}
func (s ObjectSchema) JSON() JSONSchema[map[string]any] { return JSON[map[string]any](s) }
func (s ObjectSchema) Future() FutureSchema[map[string]any] {
	return Future[map[string]any](s)
}
