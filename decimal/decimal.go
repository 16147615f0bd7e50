// Package decimal provides an arbitrary-precision decimal schema backed by
// github.com/ericlagergren/decimal.
package decimal

import (
	"context"

	"github.com/ericlagergren/decimal"
	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/i18n"
)

// New returns a schema over *decimal.Big values. Strings decode through the
// decimal parser; integer and float inputs convert exactly.
func New() Schema {
	return Schema{}
}

// Schema recognizes *decimal.Big values and coerces numeric and string input
// into them.
type Schema struct {
	constraints []pertype.Constraint[*decimal.Big]
	label       string
}

func (s Schema) Signature() string { return "decimal" }

func (s Schema) Label(label string) Schema {
	s.label = label
	return s
}

func (s Schema) Is(v any) bool {
	_, ok := v.(*decimal.Big)
	return ok
}

func (s Schema) Create() *decimal.Big { return new(decimal.Big) }
func (s Schema) CreateAny() any       { return s.Create() }

func (s Schema) Check(v *decimal.Big) []pertype.Violation {
	var out []pertype.Violation
	for _, c := range s.constraints {
		if c.Test != nil && !c.Test(v) {
			out = pertype.AppendViolations(out, c.Violation())
		}
	}
	return out
}

func (s Schema) Test(v *decimal.Big) bool { return len(s.Check(v)) == 0 }
func (s Schema) Validate(v *decimal.Big) pertype.ValidationResult[*decimal.Big] {
	return pertype.ResultOf(v, s.Check(v))
}

func (s Schema) CheckAny(v any) []pertype.Violation {
	if tv, ok := v.(*decimal.Big); ok {
		return s.Check(tv)
	}
	return []pertype.Violation{{
		Type:    pertype.CodeInvalidType,
		Message: i18n.T(pertype.CodeInvalidType, nil),
		Args:    map[string]any{"value": v},
	}}
}

func (s Schema) Decode(_ context.Context, v any) (*decimal.Big, error) {
	switch t := v.(type) {
	case nil:
		return new(decimal.Big), nil
	case *decimal.Big:
		return t, nil
	case string:
		d, ok := new(decimal.Big).SetString(t)
		if !ok {
			return nil, pertype.NewUnsupportedValue(v)
		}
		return d, nil
	case float64:
		return new(decimal.Big).SetFloat64(t), nil
	case float32:
		return new(decimal.Big).SetFloat64(float64(t)), nil
	case int:
		return new(decimal.Big).SetMantScale(int64(t), 0), nil
	case int8:
		return new(decimal.Big).SetMantScale(int64(t), 0), nil
	case int16:
		return new(decimal.Big).SetMantScale(int64(t), 0), nil
	case int32:
		return new(decimal.Big).SetMantScale(int64(t), 0), nil
	case int64:
		return new(decimal.Big).SetMantScale(t, 0), nil
	case uint:
		return new(decimal.Big).SetUint64(uint64(t)), nil
	case uint8:
		return new(decimal.Big).SetUint64(uint64(t)), nil
	case uint16:
		return new(decimal.Big).SetUint64(uint64(t)), nil
	case uint32:
		return new(decimal.Big).SetUint64(uint64(t)), nil
	case uint64:
		return new(decimal.Big).SetUint64(t), nil
	}
	return nil, pertype.NewUnsupportedType(v)
}

func (s Schema) Encode(_ context.Context, v *decimal.Big) (any, error) {
	if v == nil {
		return "0", nil
	}
	return v.String(), nil
}

func (s Schema) DecodeAny(ctx context.Context, v any) (any, error) { return s.Decode(ctx, v) }
func (s Schema) EncodeAny(ctx context.Context, v any) (any, error) {
	tv, ok := v.(*decimal.Big)
	if !ok {
		return nil, pertype.NewUnsupportedType(v)
	}
	return s.Encode(ctx, tv)
}

func (s Schema) Rule(c pertype.Constraint[*decimal.Big]) Schema {
	next := make([]pertype.Constraint[*decimal.Big], len(s.constraints), len(s.constraints)+1)
	copy(next, s.constraints)
	s.constraints = append(next, c)
	return s
}

// Min requires the value to be greater than or equal to limit.
func (s Schema) Min(limit *decimal.Big) Schema {
	return s.Rule(pertype.Constraint[*decimal.Big]{
		Type:    "decimal.min",
		Message: i18n.T("decimal.min", map[string]string{"min": limit.String()}),
		Args:    map[string]any{"min": limit},
		Test: func(v *decimal.Big) bool {
			return v != nil && v.Cmp(limit) >= 0
		},
	})
}

// Max requires the value to be less than or equal to limit.
func (s Schema) Max(limit *decimal.Big) Schema {
	return s.Rule(pertype.Constraint[*decimal.Big]{
		Type:    "decimal.max",
		Message: i18n.T("decimal.max", map[string]string{"max": limit.String()}),
		Args:    map[string]any{"max": limit},
		Test: func(v *decimal.Big) bool {
			return v != nil && v.Cmp(limit) <= 0
		},
	})
}
