package pertype_test

import (
	"context"
	"testing"
	"time"

	pertype "github.com/hernantas/pertype"
	g "github.com/hernantas/pertype/dsl"
)

func TestTryDecode(t *testing.T) {
	ctx := context.Background()

	ok := pertype.TryDecode[float64](ctx, g.Number(), "5")
	if !ok.Success || ok.Value != 5 {
		t.Fatalf("unexpected result: %#v", ok)
	}

	bad := pertype.TryDecode[time.Time](ctx, g.Date(), 42)
	if bad.Success {
		t.Fatalf("expected failure")
	}
	if len(bad.Violations) != 1 || bad.Violations[0].Type != pertype.CodeInvalidType {
		t.Fatalf("unexpected violations: %#v", bad.Violations)
	}
}

func TestTryDecodeWrapsForeignError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pending := make(chan any)
	res := pertype.TryDecode[string](ctx, g.String().Future(), pending)
	if res.Success {
		t.Fatalf("expected failure")
	}
	if len(res.Violations) != 1 || res.Violations[0].Type != pertype.CodeDecode {
		t.Fatalf("unexpected violations: %#v", res.Violations)
	}
	if res.Violations[0].Args["error"] == nil {
		t.Fatalf("original error not preserved: %#v", res.Violations[0])
	}
}

func TestTryEncode(t *testing.T) {
	ctx := context.Background()

	ok := pertype.TryEncode[string](ctx, g.String(), "hi")
	if !ok.Success || ok.Value != "hi" {
		t.Fatalf("unexpected result: %#v", ok)
	}
}

func TestAccept(t *testing.T) {
	ctx := context.Background()

	s := g.Number().Min(0).Max(10)
	if !pertype.Accept[float64](ctx, s, 5) {
		t.Fatalf("5 must be accepted")
	}
	if pertype.Accept[float64](ctx, s, 11) {
		t.Fatalf("11 must be rejected")
	}
}
