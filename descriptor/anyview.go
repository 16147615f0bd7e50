package descriptor

import (
	"context"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/i18n"
)

// anyView presents a type-erased schema through the typed Schema[any]
// surface so imported schemas can parameterize the generic combinators.
type anyView struct {
	inner pertype.AnySchema
}

func (s anyView) Signature() string { return s.inner.Signature() }
func (s anyView) Is(v any) bool     { return s.inner.Is(v) }
func (s anyView) Create() any       { return s.inner.CreateAny() }
func (s anyView) CreateAny() any    { return s.inner.CreateAny() }

func (s anyView) Check(v any) []pertype.Violation { return s.inner.CheckAny(v) }
func (s anyView) Test(v any) bool                 { return len(s.Check(v)) == 0 }
func (s anyView) Validate(v any) pertype.ValidationResult[any] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s anyView) CheckAny(v any) []pertype.Violation { return s.inner.CheckAny(v) }

func (s anyView) Decode(ctx context.Context, v any) (any, error) {
	return s.inner.DecodeAny(ctx, v)
}
func (s anyView) Encode(ctx context.Context, v any) (any, error) {
	return s.inner.EncodeAny(ctx, v)
}
func (s anyView) DecodeAny(ctx context.Context, v any) (any, error) {
	return s.inner.DecodeAny(ctx, v)
}
func (s anyView) EncodeAny(ctx context.Context, v any) (any, error) {
	return s.inner.EncodeAny(ctx, v)
}

// oneOfAny builds an enum membership constraint over untyped values.
func oneOfAny(allowed []any) pertype.Constraint[any] {
	return pertype.Constraint[any]{
		Type:    "one_of",
		Message: i18n.T("one_of", nil),
		Args:    map[string]any{"allowed": allowed},
		Test: func(v any) bool {
			for _, a := range allowed {
				if v == a {
					return true
				}
			}
			return false
		},
	}
}
