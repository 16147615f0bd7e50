package dsl

import (
	"context"
	"math/big"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/i18n"
	"github.com/hernantas/pertype/internal/coerce"
)

// BigInt returns the arbitrary-precision integer leaf schema.
func BigInt() BigIntSchema { return BigIntSchema{} }

// BigIntSchema represents values as *big.Int. Decode collapses nil, false,
// zero, NaN, and the empty string to zero, converts strings/numbers/booleans
// when possible, and rejects every other runtime type. Encode emits the
// decimal string.
type BigIntSchema struct {
	def definition[*big.Int]
}

func (s BigIntSchema) Signature() string { return "bigint" }

func (s BigIntSchema) Label(label string) BigIntSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s BigIntSchema) Is(v any) bool {
	_, ok := v.(*big.Int)
	return ok
}

func (s BigIntSchema) Create() *big.Int { return big.NewInt(0) }
func (s BigIntSchema) CreateAny() any   { return s.Create() }

func (s BigIntSchema) Check(v *big.Int) []pertype.Violation { return s.def.check(v) }
func (s BigIntSchema) Test(v *big.Int) bool                 { return len(s.Check(v)) == 0 }
func (s BigIntSchema) Validate(v *big.Int) pertype.ValidationResult[*big.Int] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s BigIntSchema) CheckAny(v any) []pertype.Violation { return checkAny[*big.Int](s, v) }

func (s BigIntSchema) Decode(ctx context.Context, v any) (*big.Int, error) {
	return coerce.ToBigInt(v)
}

func (s BigIntSchema) Encode(ctx context.Context, v *big.Int) (any, error) {
	if v == nil {
		v = big.NewInt(0)
	}
	return v.String(), nil
}

func (s BigIntSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s BigIntSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[*big.Int](ctx, s, v)
}

func (s BigIntSchema) Rule(c pertype.Constraint[*big.Int]) BigIntSchema {
	s.def = s.def.rule(c)
	return s
}

// Min rejects values below the bound.
func (s BigIntSchema) Min(bound *big.Int) BigIntSchema {
	return s.Rule(pertype.Constraint[*big.Int]{
		Type:    "bigint.min",
		Message: i18n.T("bigint.min", map[string]string{"min": bound.String()}),
		Args:    map[string]any{"min": bound},
		Test:    func(v *big.Int) bool { return v != nil && v.Cmp(bound) >= 0 },
	})
}

// Max rejects values above the bound.
func (s BigIntSchema) Max(bound *big.Int) BigIntSchema {
	return s.Rule(pertype.Constraint[*big.Int]{
		Type:    "bigint.max",
		Message: i18n.T("bigint.max", map[string]string{"max": bound.String()}),
		Args:    map[string]any{"max": bound},
		Test:    func(v *big.Int) bool { return v != nil && v.Cmp(bound) <= 0 },
	})
}

func (s BigIntSchema) Array() ArraySchema[*big.Int]       { return Array[*big.Int](s) }
func (s BigIntSchema) Optional() OptionalSchema[*big.Int] { return Optional[*big.Int](s) }
func (s BigIntSchema) Nullable() NullableSchema[*big.Int] { return Nullable[*big.Int](s) }
func (s BigIntSchema) Future() FutureSchema[*big.Int]     { return Future[*big.Int](s) }
