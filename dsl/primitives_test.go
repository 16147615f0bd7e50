package dsl_test

import (
	"context"
	"math"
	"regexp"
	"testing"

	pertype "github.com/hernantas/pertype"
	g "github.com/hernantas/pertype/dsl"
)

func TestStringDecode_Coercions(t *testing.T) {
	ctx := context.Background()
	s := g.String()

	cases := []struct {
		in   any
		want string
	}{
		{"hello", "hello"},
		{nil, ""},
		{true, "true"},
		{42, "42"},
		{1.5, "1.5"},
		{float64(10), "10"},
	}
	for _, c := range cases {
		got, err := s.Decode(ctx, c.in)
		if err != nil {
			t.Fatalf("decode %#v: unexpected err: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("decode %#v: want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestStringConstraints(t *testing.T) {
	s := g.String().Min(2).Max(4)

	if !s.Test("abc") {
		t.Fatalf("abc must pass")
	}
	res := s.Validate("a")
	if res.Valid {
		t.Fatalf("a must fail")
	}
	if res.Violations[0].Type != "string.min" {
		t.Fatalf("unexpected violation: %#v", res.Violations[0])
	}

	pat := g.String().Pattern(regexp.MustCompile(`^[a-z]+$`))
	if pat.Test("ABC") {
		t.Fatalf("ABC must fail the pattern")
	}
}

func TestNumberDecode_Coercions(t *testing.T) {
	ctx := context.Background()
	s := g.Number()

	got, err := s.Decode(ctx, "5")
	if err != nil || got != 5 {
		t.Fatalf("unexpected: %v, %v", got, err)
	}
	got, _ = s.Decode(ctx, true)
	if got != 1 {
		t.Fatalf("true must decode to 1, got %v", got)
	}
	got, _ = s.Decode(ctx, nil)
	if got != 0 {
		t.Fatalf("nil must decode to 0, got %v", got)
	}
	got, _ = s.Decode(ctx, "not a number")
	if !math.IsNaN(got) {
		t.Fatalf("unparsable string must decode to NaN, got %v", got)
	}
	got, _ = s.Decode(ctx, "-NaN")
	if !math.IsNaN(got) || !math.Signbit(got) {
		t.Fatalf("-NaN must keep its sign, got %v", got)
	}
}

func TestNumberConstraints(t *testing.T) {
	s := g.Number().Min(0).Max(10)

	if !s.Test(5) {
		t.Fatalf("5 must pass")
	}
	res := s.Validate(-1)
	if res.Valid {
		t.Fatalf("-1 must fail")
	}
	if res.Violations[0].Type != "number.min" {
		t.Fatalf("unexpected violation type: %q", res.Violations[0].Type)
	}
}

func TestBoolDecode_Truthiness(t *testing.T) {
	ctx := context.Background()
	s := g.Bool()

	falsy := []any{nil, false, 0, float64(0), "", math.NaN()}
	for _, in := range falsy {
		got, err := s.Decode(ctx, in)
		if err != nil || got {
			t.Fatalf("%#v must decode to false (err=%v)", in, err)
		}
	}
	truthy := []any{true, 1, "no", "false", []any{}, map[string]any{}}
	for _, in := range truthy {
		got, err := s.Decode(ctx, in)
		if err != nil || !got {
			t.Fatalf("%#v must decode to true (err=%v)", in, err)
		}
	}
}

func TestNilSchema(t *testing.T) {
	ctx := context.Background()
	s := g.Nil()

	if got, err := s.Decode(ctx, nil); err != nil || got != nil {
		t.Fatalf("nil must pass: %v, %v", got, err)
	}
	if _, err := s.Decode(ctx, "x"); err == nil {
		t.Fatalf("non-nil must be rejected")
	}
	if s.Is("x") || !s.Is(nil) {
		t.Fatalf("is must accept exactly nil")
	}
}

func TestAnyAndUnknown(t *testing.T) {
	ctx := context.Background()

	v := map[string]any{"k": 1}
	got, err := g.Any().Decode(ctx, v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.(map[string]any)["k"] != 1 {
		t.Fatalf("value must pass through untouched: %#v", got)
	}
	if g.Unknown().Signature() != "unknown" || g.Any().Signature() != "any" {
		t.Fatalf("signatures differ from expectation")
	}
}

// Fluent builders must return new schemas and leave the receiver unchanged.
func TestBuilderImmutability(t *testing.T) {
	base := g.Number()
	bounded := base.Min(0)

	if !base.Test(-5) {
		t.Fatalf("base schema must be unconstrained")
	}
	if bounded.Test(-5) {
		t.Fatalf("derived schema must reject -5")
	}

	first := base.Min(0)
	second := first.Max(10)
	if first.Test(11) != true {
		t.Fatalf("first must not see the max constraint")
	}
	if second.Test(11) {
		t.Fatalf("second must reject 11")
	}
}

func TestRuleCustomConstraint(t *testing.T) {
	even := g.Number().Rule(pertype.Constraint[float64]{
		Type:    "number.even",
		Message: "must be even",
		Test:    func(v float64) bool { return math.Mod(v, 2) == 0 },
	})
	if even.Test(3) {
		t.Fatalf("3 must fail")
	}
	if !even.Test(4) {
		t.Fatalf("4 must pass")
	}
}
