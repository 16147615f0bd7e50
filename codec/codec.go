// Package codec provides bidirectional value transformations built on top
// of schemas. A codec pairs an input schema with an output schema and moves
// values between the two representations.
package codec

import (
	"context"

	pertype "github.com/hernantas/pertype"
)

// Identity returns a codec whose both sides are the given schema. Decode
// runs the schema's own decode, so the identity codec still applies the
// schema's coercions; Encode passes the value through.
func Identity[T any](s pertype.Schema[T]) pertype.Codec[T, T] {
	return identity[T]{schema: s}
}

type identity[T any] struct {
	schema pertype.Schema[T]
}

func (c identity[T]) In() pertype.Schema[T]  { return c.schema }
func (c identity[T]) Out() pertype.Schema[T] { return c.schema }

func (c identity[T]) Decode(ctx context.Context, v T) (T, error) {
	return c.schema.Decode(ctx, v)
}

func (c identity[T]) Encode(ctx context.Context, v T) (T, error) {
	return v, nil
}

// Compose chains two codecs sharing a middle representation.
func Compose[A, B, C any](first pertype.Codec[A, B], second pertype.Codec[B, C]) pertype.Codec[A, C] {
	return composed[A, B, C]{first: first, second: second}
}

type composed[A, B, C any] struct {
	first  pertype.Codec[A, B]
	second pertype.Codec[B, C]
}

func (c composed[A, B, C]) In() pertype.Schema[A]  { return c.first.In() }
func (c composed[A, B, C]) Out() pertype.Schema[C] { return c.second.Out() }

func (c composed[A, B, C]) Decode(ctx context.Context, v A) (C, error) {
	var zero C
	mid, err := c.first.Decode(ctx, v)
	if err != nil {
		return zero, err
	}
	return c.second.Decode(ctx, mid)
}

func (c composed[A, B, C]) Encode(ctx context.Context, v C) (A, error) {
	var zero A
	mid, err := c.second.Encode(ctx, v)
	if err != nil {
		return zero, err
	}
	return c.first.Encode(ctx, mid)
}
