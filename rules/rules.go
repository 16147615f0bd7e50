// Package rules provides reusable Constraint constructors for attaching to
// schemas via Rule. The fluent builders on the dsl types delegate here so
// the same constraint carries the same type code and message everywhere.
package rules

import (
	"regexp"
	"strconv"
	"time"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/i18n"
)

// MinLength requires a string of at least n characters.
func MinLength(n int) pertype.Constraint[string] {
	return pertype.Constraint[string]{
		Type:    "string.min",
		Message: i18n.T("string.min", map[string]string{"min": strconv.Itoa(n)}),
		Args:    map[string]any{"min": n},
		Test:    func(v string) bool { return len(v) >= n },
	}
}

// MaxLength requires a string of at most n characters.
func MaxLength(n int) pertype.Constraint[string] {
	return pertype.Constraint[string]{
		Type:    "string.max",
		Message: i18n.T("string.max", map[string]string{"max": strconv.Itoa(n)}),
		Args:    map[string]any{"max": n},
		Test:    func(v string) bool { return len(v) <= n },
	}
}

// Length requires a string of exactly n characters.
func Length(n int) pertype.Constraint[string] {
	return pertype.Constraint[string]{
		Type:    "string.length",
		Message: i18n.T("string.length", map[string]string{"length": strconv.Itoa(n)}),
		Args:    map[string]any{"length": n},
		Test:    func(v string) bool { return len(v) == n },
	}
}

// Pattern requires a string matching the regular expression.
func Pattern(re *regexp.Regexp) pertype.Constraint[string] {
	return pertype.Constraint[string]{
		Type:    "string.pattern",
		Message: i18n.T("string.pattern", map[string]string{"pattern": re.String()}),
		Args:    map[string]any{"pattern": re.String()},
		Test:    re.MatchString,
	}
}

// NotEmpty rejects the empty string.
func NotEmpty() pertype.Constraint[string] {
	return pertype.Constraint[string]{
		Type:    "string.not_empty",
		Message: i18n.T("string.not_empty", nil),
		Test:    func(v string) bool { return v != "" },
	}
}

// Min requires a number greater than or equal to n.
func Min(n float64) pertype.Constraint[float64] {
	return pertype.Constraint[float64]{
		Type:    "number.min",
		Message: i18n.T("number.min", map[string]string{"min": strconv.FormatFloat(n, 'g', -1, 64)}),
		Args:    map[string]any{"min": n},
		Test:    func(v float64) bool { return v >= n },
	}
}

// Max requires a number less than or equal to n.
func Max(n float64) pertype.Constraint[float64] {
	return pertype.Constraint[float64]{
		Type:    "number.max",
		Message: i18n.T("number.max", map[string]string{"max": strconv.FormatFloat(n, 'g', -1, 64)}),
		Args:    map[string]any{"max": n},
		Test:    func(v float64) bool { return v <= n },
	}
}

// After requires a time not before the bound.
func After(bound time.Time) pertype.Constraint[time.Time] {
	return pertype.Constraint[time.Time]{
		Type:    "date.min",
		Message: i18n.T("date.min", map[string]string{"min": bound.Format(time.RFC3339)}),
		Args:    map[string]any{"min": bound},
		Test:    func(v time.Time) bool { return !v.Before(bound) },
	}
}

// Before requires a time not after the bound.
func Before(bound time.Time) pertype.Constraint[time.Time] {
	return pertype.Constraint[time.Time]{
		Type:    "date.max",
		Message: i18n.T("date.max", map[string]string{"max": bound.Format(time.RFC3339)}),
		Args:    map[string]any{"max": bound},
		Test:    func(v time.Time) bool { return !v.After(bound) },
	}
}

// OneOf requires the value to equal one of the allowed values.
func OneOf[T comparable](allowed ...T) pertype.Constraint[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return pertype.Constraint[T]{
		Type:    "one_of",
		Message: i18n.T("one_of", nil),
		Args:    map[string]any{"allowed": allowed},
		Test: func(v T) bool {
			_, ok := set[v]
			return ok
		},
	}
}

// Items requires a slice of exactly n elements.
func Items[E any](n int) pertype.Constraint[[]E] {
	return pertype.Constraint[[]E]{
		Type:    "array.length",
		Message: i18n.T("array.length", map[string]string{"length": strconv.Itoa(n)}),
		Args:    map[string]any{"length": n},
		Test:    func(v []E) bool { return len(v) == n },
	}
}

// MinItems requires a slice of at least n elements.
func MinItems[E any](n int) pertype.Constraint[[]E] {
	return pertype.Constraint[[]E]{
		Type:    "array.min",
		Message: i18n.T("array.min", map[string]string{"min": strconv.Itoa(n)}),
		Args:    map[string]any{"min": n},
		Test:    func(v []E) bool { return len(v) >= n },
	}
}

// MaxItems requires a slice of at most n elements.
func MaxItems[E any](n int) pertype.Constraint[[]E] {
	return pertype.Constraint[[]E]{
		Type:    "array.max",
		Message: i18n.T("array.max", map[string]string{"max": strconv.Itoa(n)}),
		Args:    map[string]any{"max": n},
		Test:    func(v []E) bool { return len(v) <= n },
	}
}
