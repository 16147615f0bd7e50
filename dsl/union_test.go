package dsl_test

import (
	"context"
	"testing"

	pertype "github.com/hernantas/pertype"
	g "github.com/hernantas/pertype/dsl"
)

func TestUnionDecode_PrefersMatchingMember(t *testing.T) {
	ctx := context.Background()
	u := g.Union(g.Number(), g.String())

	// "5" already satisfies the string member, so number coercion must not
	// run even though the number member is declared first.
	got, err := u.Decode(ctx, "5")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "5" {
		t.Fatalf("expected string passthrough, got: %#v", got)
	}

	got, err = u.Decode(ctx, float64(7))
	if err != nil || got != float64(7) {
		t.Fatalf("unexpected: %#v, %v", got, err)
	}
}

func TestUnionDecode_FallsBackInDeclarationOrder(t *testing.T) {
	ctx := context.Background()

	// true matches no member; the first decode pass wins.
	got, err := g.Union(g.String(), g.Number()).Decode(ctx, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "true" {
		t.Fatalf("string member declared first must win: %#v", got)
	}

	got, err = g.Union(g.Number(), g.String()).Decode(ctx, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != float64(1) {
		t.Fatalf("number member declared first must win: %#v", got)
	}
}

func TestUnionDecode_NoMemberMatches(t *testing.T) {
	ctx := context.Background()
	u := g.Union(g.Date(), g.Nil())

	_, err := u.Decode(ctx, 42)
	if err == nil {
		t.Fatalf("expected failure")
	}
	violations, ok := pertype.AsViolations(err)
	if !ok || violations[0].Type != pertype.CodeInvalidType {
		t.Fatalf("unexpected violations: %#v", violations)
	}
}

func TestUnionCheck(t *testing.T) {
	u := g.Union(g.Number(), g.String())

	if len(u.Check("ok")) != 0 {
		t.Fatalf("string must satisfy the union")
	}
	violations := u.Check(true)
	if len(violations) != 1 || violations[0].Type != "union" {
		t.Fatalf("unexpected violations: %#v", violations)
	}
}

// Degenerate arities are documented behavior: the empty union matches
// nothing, the empty intersection matches everything.
func TestUnionIntersect_DegenerateArity(t *testing.T) {
	ctx := context.Background()

	if _, err := g.Union().Decode(ctx, "x"); err == nil {
		t.Fatalf("empty union must reject every decode")
	}
	if g.Union().Is("x") {
		t.Fatalf("empty union must match nothing")
	}

	got, err := g.Intersect().Decode(ctx, "anything")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty intersection must decode to the empty record: %#v", got)
	}
	if !g.Intersect().Is("anything") {
		t.Fatalf("empty intersection must match everything")
	}
}

func TestIntersectDecode_MergesObjects(t *testing.T) {
	ctx := context.Background()
	i := g.Intersect(
		g.Object(g.Props{"a": g.String()}),
		g.Object(g.Props{"b": g.Number()}),
	)

	got, err := i.Decode(ctx, map[string]any{"a": "x", "b": "5"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["a"] != "x" || got["b"] != float64(5) {
		t.Fatalf("unexpected value: %#v", got)
	}
}

// On key collision the earlier member's property must win.
func TestIntersectDecode_EarlierMemberWins(t *testing.T) {
	ctx := context.Background()
	i := g.Intersect(
		g.Object(g.Props{"v": g.String()}),
		g.Object(g.Props{"v": g.Number()}),
	)

	got, err := i.Decode(ctx, map[string]any{"v": "5"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["v"] != "5" {
		t.Fatalf("first member's property must take precedence, got: %#v", got["v"])
	}
}

func TestIntersectDecode_PropagatesMemberFailure(t *testing.T) {
	ctx := context.Background()
	i := g.Intersect(
		g.Object(g.Props{"a": g.String()}),
		g.Object(g.Props{"b": g.Date()}),
	)

	_, err := i.Decode(ctx, map[string]any{"a": "x", "b": 42})
	if err == nil {
		t.Fatalf("expected failure from the date member")
	}
	violations, _ := pertype.AsViolations(err)
	if violations[0].Path != "b" {
		t.Fatalf("unexpected path: %q", violations[0].Path)
	}
}

func TestIntersectCheck_AggregatesAllMembers(t *testing.T) {
	i := g.Intersect(
		g.Object(g.Props{"a": g.String().NotEmpty()}),
		g.Object(g.Props{"b": g.Number().Min(0)}),
	)

	violations := i.Check(map[string]any{"a": "", "b": float64(-1)})
	if len(violations) != 2 {
		t.Fatalf("both members must report: %#v", violations)
	}
}
