// Package coerce holds the shared loose-typing conversion rules used by the
// dsl leaf schemas. The tables here are the observable coercion policy of the
// library; changing them changes decode semantics everywhere.
package coerce

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	pertype "github.com/hernantas/pertype"
)

// Truthy maps a value to its truthiness-equivalent boolean: nil, false,
// numeric zero, NaN, and the empty string are false, everything else
// (including empty slices and maps) is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	default:
		return true
	}
}

// Stringify renders a value the way the string leaf decodes it: nil becomes
// the empty string, floats use the shortest round-trip form, everything else
// falls back to strconv/Stringer formatting.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return FormatFloat(t)
	case float32:
		return FormatFloat(float64(t))
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case interface{ String() string }:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// FormatFloat renders a float64 using the shortest representation that
// round-trips.
func FormatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// ToFloat maps a value to float64 and never fails: nil is 0, booleans are
// 0/1, the strings "NaN"/"-NaN" keep their sign, any other unparsable input
// yields NaN.
func ToFloat(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		switch t {
		case "NaN":
			return math.NaN()
		case "-NaN":
			return math.Copysign(math.NaN(), -1)
		case "":
			return 0
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// ToBigInt converts a value to *big.Int following the bigint leaf's table:
// nil, false, zero, NaN, and "" collapse to zero; strings, numbers, and
// booleans attempt conversion and report an unsupported value on failure;
// every other runtime type is an unsupported type.
func ToBigInt(v any) (*big.Int, error) {
	switch t := v.(type) {
	case nil:
		return big.NewInt(0), nil
	case *big.Int:
		return t, nil
	case bool:
		if t {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case string:
		if t == "" {
			return big.NewInt(0), nil
		}
		n, ok := new(big.Int).SetString(t, 10)
		if !ok {
			return nil, pertype.NewUnsupportedValue(t)
		}
		return n, nil
	case float64:
		if math.IsNaN(t) {
			return big.NewInt(0), nil
		}
		if math.Trunc(t) != t || math.IsInf(t, 0) {
			return nil, pertype.NewUnsupportedValue(t)
		}
		n, _ := big.NewFloat(t).Int(nil)
		return n, nil
	case float32:
		return ToBigInt(float64(t))
	case int:
		return big.NewInt(int64(t)), nil
	case int8:
		return big.NewInt(int64(t)), nil
	case int16:
		return big.NewInt(int64(t)), nil
	case int32:
		return big.NewInt(int64(t)), nil
	case int64:
		return big.NewInt(t), nil
	case uint:
		return new(big.Int).SetUint64(uint64(t)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(t)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(t)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(t)), nil
	case uint64:
		return new(big.Int).SetUint64(t), nil
	default:
		return nil, pertype.NewUnsupportedType(v)
	}
}
