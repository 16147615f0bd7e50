package dsl

import (
	"context"
	"reflect"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/i18n"
)

// definition is the immutable configuration shared by every schema kind:
// the ordered constraint list plus an optional label. Mutating operations
// copy the receiver, so handing the same definition to two schema values is
// always safe.
type definition[T any] struct {
	constraints []pertype.Constraint[T]
	label       string
}

// rule appends a constraint to a fresh copy of the list. The backing array
// is re-allocated so the original definition never observes the append.
func (d definition[T]) rule(c pertype.Constraint[T]) definition[T] {
	next := make([]pertype.Constraint[T], len(d.constraints), len(d.constraints)+1)
	copy(next, d.constraints)
	d.constraints = append(next, c)
	return d
}

func (d definition[T]) withLabel(label string) definition[T] {
	d.label = label
	return d
}

// check evaluates every constraint in insertion order; all constraints run,
// there is no short-circuit across the list.
func (d definition[T]) check(v T) []pertype.Violation {
	var out []pertype.Violation
	for _, c := range d.constraints {
		if c.Test != nil && !c.Test(v) {
			out = pertype.AppendViolations(out, c.Violation())
		}
	}
	return out
}

// checkAny adapts a typed Check to the type-erased surface. A value of the
// wrong runtime type is reported as a single invalid_type violation rather
// than an error so CheckAny stays total.
func checkAny[T any](s pertype.Schema[T], v any) []pertype.Violation {
	if tv, ok := v.(T); ok {
		return s.Check(tv)
	}
	return []pertype.Violation{{
		Type:    pertype.CodeInvalidType,
		Message: i18n.T(pertype.CodeInvalidType, nil),
		Args:    map[string]any{"value": v},
	}}
}

// encodeAny adapts a typed Encode to the type-erased surface.
func encodeAny[T any](ctx context.Context, s pertype.Schema[T], v any) (any, error) {
	tv, ok := v.(T)
	if !ok {
		return nil, pertype.NewUnsupportedType(v)
	}
	return s.Encode(ctx, tv)
}

// toAnySlice views v as a generic element slice. Typed slices go through
// reflection so a []int decodes against an array-of-string schema the same
// way a []any would.
func toAnySlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

type mapEntry struct {
	key   any
	value any
}

// mapEntries views any map-kinded value as a list of key/value entries.
func mapEntries(v any) ([]mapEntry, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	out := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out = append(out, mapEntry{key: iter.Key().Interface(), value: iter.Value().Interface()})
	}
	return out, true
}

// toStringMap views v as a string-keyed entry map. Non-string keys are
// stringified through their reflect value only when the map is keyed by a
// string kind; other key kinds do not qualify as object input.
func toStringMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
