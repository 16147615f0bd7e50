package descriptor_test

import (
	"context"
	"testing"

	"github.com/hernantas/pertype/descriptor"
)

func TestImportObject(t *testing.T) {
	ctx := context.Background()
	s, err := descriptor.Import(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"age":  map[string]any{"type": "number", "minimum": 0},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := s.DecodeAny(ctx, map[string]any{"name": "alice", "age": "30"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rec := got.(map[string]any)
	if rec["name"] != "alice" || rec["age"] != float64(30) {
		t.Fatalf("unexpected value: %#v", rec)
	}

	violations := s.CheckAny(map[string]any{"name": "", "age": float64(-1)})
	if len(violations) != 2 {
		t.Fatalf("unexpected violations: %#v", violations)
	}
}

func TestImportArray(t *testing.T) {
	ctx := context.Background()
	s, err := descriptor.Import(map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string"},
		"minItems": 1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := s.DecodeAny(ctx, []any{"a", 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	items := got.([]any)
	if len(items) != 2 || items[1] != "1" {
		t.Fatalf("unexpected value: %#v", items)
	}
	if len(s.CheckAny([]any{})) == 0 {
		t.Fatalf("empty array must fail minItems")
	}
}

func TestImportOneOf(t *testing.T) {
	ctx := context.Background()
	s, err := descriptor.Import(map[string]any{
		"oneOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := s.DecodeAny(ctx, "x")
	if err != nil || got != "x" {
		t.Fatalf("unexpected: %#v, %v", got, err)
	}
}

func TestImportEnumAndConst(t *testing.T) {
	s, err := descriptor.Import(map[string]any{
		"enum": []any{"red", "green"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.CheckAny("blue")) == 0 {
		t.Fatalf("blue must fail the enum")
	}
	if len(s.CheckAny("red")) != 0 {
		t.Fatalf("red must pass the enum")
	}

	c, err := descriptor.Import(map[string]any{"const": "fixed"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !c.Is("fixed") || c.Is("other") {
		t.Fatalf("const must narrow to the single value")
	}
}

func TestImportErrors(t *testing.T) {
	if _, err := descriptor.Import(nil); err == nil {
		t.Fatalf("nil document must fail")
	}
	if _, err := descriptor.Import(map[string]any{"type": "mystery"}); err == nil {
		t.Fatalf("unknown type must fail")
	}
	if _, err := descriptor.Import(map[string]any{
		"type":    "string",
		"pattern": "([",
	}); err == nil {
		t.Fatalf("bad pattern must fail")
	}
}

func TestImportYAML(t *testing.T) {
	ctx := context.Background()
	doc := []byte(`
type: object
properties:
  host:
    type: string
    minLength: 1
  port:
    type: number
    minimum: 1
    maximum: 65535
`)
	s, err := descriptor.ImportYAML(doc)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := s.DecodeAny(ctx, map[string]any{"host": "localhost", "port": 8080})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rec := got.(map[string]any)
	if rec["host"] != "localhost" || rec["port"] != float64(8080) {
		t.Fatalf("unexpected value: %#v", rec)
	}
}

func TestImportJSON(t *testing.T) {
	s, err := descriptor.ImportJSON([]byte(`{"type":"string","maxLength":3}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.CheckAny("toolong")) == 0 {
		t.Fatalf("long string must fail maxLength")
	}

	if _, err := descriptor.ImportJSON([]byte("{broken")); err == nil {
		t.Fatalf("malformed json must fail")
	}
}

func TestImportOptionalNullable(t *testing.T) {
	ctx := context.Background()
	s, err := descriptor.Import(map[string]any{
		"type":     "string",
		"optional": true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, err := s.DecodeAny(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != nil {
		// decode of nil yields a nil *any pointer
		if p, ok := got.(*any); !ok || p != nil {
			t.Fatalf("absent must decode to nil: %#v", got)
		}
	}
}
