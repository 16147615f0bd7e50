// Package descriptor builds schemas from declarative documents. A descriptor
// is a plain map, typically loaded from JSON or YAML, naming a schema kind
// and its configuration.
package descriptor

import (
	"fmt"
	"regexp"
	"sort"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/dsl"
)

// Import interprets a descriptor map into a schema. Unknown keys are
// ignored; an unknown or missing "type" is an error.
func Import(doc map[string]any) (pertype.AnySchema, error) {
	if doc == nil {
		return nil, fmt.Errorf("descriptor: empty document")
	}
	base, err := importBase(doc)
	if err != nil {
		return nil, err
	}
	return wrap(base, doc), nil
}

func importBase(doc map[string]any) (pertype.AnySchema, error) {
	if members, ok := doc["oneOf"].([]any); ok {
		return importUnion(members)
	}
	if members, ok := doc["allOf"].([]any); ok {
		return importIntersect(members)
	}
	if c, ok := doc["const"]; ok {
		return importConst(c)
	}
	if allowed, ok := doc["enum"].([]any); ok {
		return dsl.Any().Rule(oneOfAny(allowed)), nil
	}

	t, _ := doc["type"].(string)
	switch t {
	case "string":
		return importString(doc)
	case "number", "integer":
		return importNumber(doc)
	case "boolean":
		return dsl.Bool(), nil
	case "date":
		return dsl.Date(), nil
	case "bigint":
		return dsl.BigInt(), nil
	case "null":
		return dsl.Nil(), nil
	case "any", "unknown":
		return dsl.Any(), nil
	case "array":
		return importArray(doc)
	case "object":
		return importObject(doc)
	case "map":
		return importMap(doc)
	}
	return nil, fmt.Errorf("descriptor: unsupported type %q", t)
}

// wrap applies the optional/nullable modifiers common to every kind.
func wrap(s pertype.AnySchema, doc map[string]any) pertype.AnySchema {
	if b, ok := doc["nullable"].(bool); ok && b {
		s = dsl.Nullable[any](anyView{inner: s})
	}
	if b, ok := doc["optional"].(bool); ok && b {
		s = dsl.Optional[any](anyView{inner: s})
	}
	return s
}

func importString(doc map[string]any) (pertype.AnySchema, error) {
	s := dsl.String()
	if n, ok := intOf(doc["minLength"]); ok {
		s = s.Min(n)
	}
	if n, ok := intOf(doc["maxLength"]); ok {
		s = s.Max(n)
	}
	if n, ok := intOf(doc["length"]); ok {
		s = s.Length(n)
	}
	if p, ok := doc["pattern"].(string); ok {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("descriptor: bad pattern %q: %w", p, err)
		}
		s = s.Pattern(re)
	}
	return s, nil
}

func importNumber(doc map[string]any) (pertype.AnySchema, error) {
	s := dsl.Number()
	if n, ok := floatOf(doc["minimum"]); ok {
		s = s.Min(n)
	}
	if n, ok := floatOf(doc["maximum"]); ok {
		s = s.Max(n)
	}
	return s, nil
}

func importArray(doc map[string]any) (pertype.AnySchema, error) {
	elem := pertype.AnySchema(dsl.Any())
	if items, ok := doc["items"].(map[string]any); ok {
		imported, err := Import(items)
		if err != nil {
			return nil, err
		}
		elem = imported
	}
	s := dsl.Array[any](anyView{inner: elem})
	if n, ok := intOf(doc["minItems"]); ok {
		s = s.Min(n)
	}
	if n, ok := intOf(doc["maxItems"]); ok {
		s = s.Max(n)
	}
	return s, nil
}

func importObject(doc map[string]any) (pertype.AnySchema, error) {
	props := dsl.Props{}
	if pm, ok := doc["properties"].(map[string]any); ok {
		keys := make([]string, 0, len(pm))
		for k := range pm {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pd, ok := pm[k].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("descriptor: property %q is not a document", k)
			}
			p, err := Import(pd)
			if err != nil {
				return nil, fmt.Errorf("descriptor: property %q: %w", k, err)
			}
			props[k] = p
		}
	}
	return dsl.Object(props), nil
}

func importMap(doc map[string]any) (pertype.AnySchema, error) {
	value := pertype.AnySchema(dsl.Any())
	if vd, ok := doc["values"].(map[string]any); ok {
		imported, err := Import(vd)
		if err != nil {
			return nil, err
		}
		value = imported
	}
	return dsl.MapOf[string, any](dsl.String(), anyView{inner: value}), nil
}

func importUnion(members []any) (pertype.AnySchema, error) {
	out := make([]pertype.AnySchema, 0, len(members))
	for i, m := range members {
		md, ok := m.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("descriptor: oneOf member %d is not a document", i)
		}
		s, err := Import(md)
		if err != nil {
			return nil, fmt.Errorf("descriptor: oneOf member %d: %w", i, err)
		}
		out = append(out, s)
	}
	return dsl.Union(out...), nil
}

func importIntersect(members []any) (pertype.AnySchema, error) {
	out := make([]pertype.AnySchema, 0, len(members))
	for i, m := range members {
		md, ok := m.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("descriptor: allOf member %d is not a document", i)
		}
		s, err := Import(md)
		if err != nil {
			return nil, fmt.Errorf("descriptor: allOf member %d: %w", i, err)
		}
		out = append(out, s)
	}
	return dsl.Intersect(out...), nil
}

func importConst(c any) (pertype.AnySchema, error) {
	switch t := c.(type) {
	case string:
		return dsl.Literal(t), nil
	case bool:
		return dsl.Literal(t), nil
	case float64:
		return dsl.Literal(t), nil
	case int:
		return dsl.Literal(float64(t)), nil
	}
	return nil, fmt.Errorf("descriptor: unsupported const %v", c)
}

func intOf(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	}
	return 0, false
}

func floatOf(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}
