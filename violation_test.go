package pertype_test

import (
	"testing"

	pertype "github.com/hernantas/pertype"
)

func TestJoinPath(t *testing.T) {
	if got := pertype.JoinPath("items", "2", "name"); got != "items.2.name" {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := pertype.JoinPath("", "a", "", "b"); got != "a.b" {
		t.Fatalf("empty segments must be dropped, got: %q", got)
	}
	if got := pertype.JoinPath(); got != "" {
		t.Fatalf("no segments must yield empty path, got: %q", got)
	}
}

func TestPrefixViolations(t *testing.T) {
	src := []pertype.Violation{
		{Type: "number.min", Message: "too small"},
		{Type: "number.max", Message: "too big", Path: "inner"},
	}
	got := pertype.PrefixViolations(src, "field")
	if got[0].Path != "field" {
		t.Fatalf("unexpected path: %q", got[0].Path)
	}
	if got[1].Path != "field.inner" {
		t.Fatalf("unexpected nested path: %q", got[1].Path)
	}
	// originals must not be touched
	if src[0].Path != "" || src[1].Path != "inner" {
		t.Fatalf("source violations mutated: %#v", src)
	}
}

func TestConstraintViolation(t *testing.T) {
	c := pertype.Constraint[int]{
		Type:    "number.min",
		Message: "must be at least 1",
		Args:    map[string]any{"min": 1},
		Test:    func(v int) bool { return v >= 1 },
	}
	v := c.Violation()
	if v.Type != "number.min" || v.Message != "must be at least 1" {
		t.Fatalf("unexpected violation: %#v", v)
	}
	if v.Args["min"] != 1 {
		t.Fatalf("args not carried: %#v", v.Args)
	}
}

func TestResultOf(t *testing.T) {
	ok := pertype.ResultOf(42, nil)
	if !ok.Valid || ok.Value != 42 {
		t.Fatalf("unexpected result: %#v", ok)
	}
	bad := pertype.ResultOf(0, []pertype.Violation{{Type: "number.min"}})
	if bad.Valid || len(bad.Violations) != 1 {
		t.Fatalf("unexpected result: %#v", bad)
	}
}
