package codec_test

import (
	"context"
	"testing"
	"time"

	"github.com/hernantas/pertype/codec"
	g "github.com/hernantas/pertype/dsl"
)

func TestIdentity(t *testing.T) {
	ctx := context.Background()
	c := codec.Identity[float64](g.Number())

	got, err := c.Decode(ctx, 5)
	if err != nil || got != 5 {
		t.Fatalf("unexpected: %v, %v", got, err)
	}
	back, err := c.Encode(ctx, got)
	if err != nil || back != 5 {
		t.Fatalf("unexpected: %v, %v", back, err)
	}
	if c.In().Signature() != "number" || c.Out().Signature() != "number" {
		t.Fatalf("both sides must be the schema")
	}
}

func TestTimeRFC3339(t *testing.T) {
	ctx := context.Background()
	c := codec.TimeRFC3339()

	got, err := c.Decode(ctx, "2020-01-02T03:04:05Z")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Year() != 2020 || got.Hour() != 3 {
		t.Fatalf("unexpected value: %v", got)
	}

	if _, err := c.Decode(ctx, "not a timestamp"); err == nil {
		t.Fatalf("bad input must fail")
	}

	loc := time.FixedZone("JST", 9*3600)
	enc, err := c.Encode(ctx, time.Date(2020, 1, 2, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if enc != "2020-01-02T03:00:00Z" {
		t.Fatalf("encoding must be canonical UTC: %q", enc)
	}
}

func TestJSONString(t *testing.T) {
	ctx := context.Background()
	c := codec.JSONString[map[string]any](g.Object(g.Props{
		"id": g.Number(),
	}))

	got, err := c.Decode(ctx, `{"id":"7"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["id"] != float64(7) {
		t.Fatalf("unexpected value: %#v", got)
	}

	doc, err := c.Encode(ctx, map[string]any{"id": float64(7)})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if doc != `{"id":7}` {
		t.Fatalf("unexpected document: %q", doc)
	}

	if _, err := c.Decode(ctx, "{broken"); err == nil {
		t.Fatalf("malformed document must fail")
	}
}

func TestCompose(t *testing.T) {
	ctx := context.Background()

	// string -> time.Time via the RFC 3339 codec, then identity over dates.
	c := codec.Compose[string, time.Time, time.Time](
		codec.TimeRFC3339(),
		codec.Identity[time.Time](g.Date()),
	)

	got, err := c.Decode(ctx, "2021-06-01T00:00:00Z")
	if err != nil || got.Year() != 2021 {
		t.Fatalf("unexpected: %v, %v", got, err)
	}
	back, err := c.Encode(ctx, got)
	if err != nil || back != "2021-06-01T00:00:00Z" {
		t.Fatalf("unexpected: %q, %v", back, err)
	}
}
