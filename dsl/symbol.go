package dsl

import (
	"context"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/internal/coerce"
)

// SymbolOf returns the symbol leaf schema.
func SymbolOf() SymbolSchema { return SymbolSchema{} }

// SymbolSchema represents values as pertype.Symbol. Strings, numbers, and
// nil construct a symbol from their stringified form; every other runtime
// type is rejected. Encode emits the description string.
type SymbolSchema struct {
	def definition[pertype.Symbol]
}

func (s SymbolSchema) Signature() string { return "symbol" }

func (s SymbolSchema) Label(label string) SymbolSchema {
	s.def = s.def.withLabel(label)
	return s
}

func (s SymbolSchema) Is(v any) bool {
	_, ok := v.(pertype.Symbol)
	return ok
}

func (s SymbolSchema) Create() pertype.Symbol { return pertype.Symbol{} }
func (s SymbolSchema) CreateAny() any         { return s.Create() }

func (s SymbolSchema) Check(v pertype.Symbol) []pertype.Violation { return s.def.check(v) }
func (s SymbolSchema) Test(v pertype.Symbol) bool                 { return len(s.Check(v)) == 0 }
func (s SymbolSchema) Validate(v pertype.Symbol) pertype.ValidationResult[pertype.Symbol] {
	return pertype.ResultOf(v, s.Check(v))
}
func (s SymbolSchema) CheckAny(v any) []pertype.Violation {
	return checkAny[pertype.Symbol](s, v)
}

func (s SymbolSchema) Decode(ctx context.Context, v any) (pertype.Symbol, error) {
	switch t := v.(type) {
	case pertype.Symbol:
		return t, nil
	case nil:
		return pertype.Symbol{}, nil
	case string:
		return pertype.NewSymbol(t), nil
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return pertype.NewSymbol(coerce.Stringify(t)), nil
	default:
		return pertype.Symbol{}, pertype.NewUnsupportedType(v)
	}
}

func (s SymbolSchema) Encode(ctx context.Context, v pertype.Symbol) (any, error) {
	return v.Description, nil
}

func (s SymbolSchema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s SymbolSchema) EncodeAny(ctx context.Context, v any) (any, error) {
	return encodeAny[pertype.Symbol](ctx, s, v)
}

func (s SymbolSchema) Rule(c pertype.Constraint[pertype.Symbol]) SymbolSchema {
	s.def = s.def.rule(c)
	return s
}

func (s SymbolSchema) Optional() OptionalSchema[pertype.Symbol] {
	return Optional[pertype.Symbol](s)
}
func (s SymbolSchema) Nullable() NullableSchema[pertype.Symbol] {
	return Nullable[pertype.Symbol](s)
}
