package codec

import (
	"context"

	gojson "github.com/goccy/go-json"
	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/dsl"
)

// JSONString returns a codec between compact JSON document strings and
// values of the inner schema's type.
func JSONString[T any](inner pertype.Schema[T]) pertype.Codec[string, T] {
	return jsonString[T]{inner: inner}
}

type jsonString[T any] struct {
	inner pertype.Schema[T]
}

func (c jsonString[T]) In() pertype.Schema[string] { return dsl.String() }
func (c jsonString[T]) Out() pertype.Schema[T]     { return c.inner }

func (c jsonString[T]) Decode(ctx context.Context, v string) (T, error) {
	var zero T
	var parsed any
	if err := gojson.Unmarshal([]byte(v), &parsed); err != nil {
		return zero, pertype.NewUnsupportedValue(v)
	}
	return c.inner.Decode(ctx, parsed)
}

func (c jsonString[T]) Encode(ctx context.Context, v T) (string, error) {
	ev, err := c.inner.Encode(ctx, v)
	if err != nil {
		return "", err
	}
	doc, err := gojson.Marshal(ev)
	if err != nil {
		return "", pertype.NewUnsupportedValue(v)
	}
	return string(doc), nil
}
