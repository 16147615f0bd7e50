package pertype_test

import (
	"errors"
	"testing"

	pertype "github.com/hernantas/pertype"
)

func TestAsViolations(t *testing.T) {
	err := pertype.NewUnsupportedType(42)
	violations, ok := pertype.AsViolations(err)
	if !ok || len(violations) != 1 {
		t.Fatalf("expected one violation, got: %#v", violations)
	}
	if violations[0].Type != pertype.CodeInvalidType {
		t.Fatalf("unexpected type: %q", violations[0].Type)
	}
	if _, ok := pertype.AsViolations(errors.New("plain")); ok {
		t.Fatalf("plain error must not match")
	}
	if _, ok := pertype.AsViolations(nil); ok {
		t.Fatalf("nil must not match")
	}
}

func TestPrefixPathKeepsConcreteType(t *testing.T) {
	err := pertype.PrefixPath(pertype.NewUnsupportedValue("x"), "items")
	err = pertype.PrefixPath(err, "payload")

	var uve *pertype.UnsupportedValueError
	if !errors.As(err, &uve) {
		t.Fatalf("concrete type lost: %T", err)
	}
	if uve.Violations[0].Path != "payload.items" {
		t.Fatalf("unexpected path: %q", uve.Violations[0].Path)
	}

	var ute *pertype.UnsupportedTypeError
	if errors.As(err, &ute) {
		t.Fatalf("value error must not match type error")
	}
}

func TestPrefixPathPassesThroughForeignErrors(t *testing.T) {
	plain := errors.New("boom")
	if got := pertype.PrefixPath(plain, "k"); got != plain {
		t.Fatalf("foreign error must pass through, got: %v", got)
	}
	if got := pertype.PrefixPath(nil, "k"); got != nil {
		t.Fatalf("nil must stay nil, got: %v", got)
	}
}

func TestViolationErrorMessage(t *testing.T) {
	err := pertype.NewViolationError(pertype.Violation{
		Type:    "number.min",
		Message: "must be at least 1",
		Path:    "count",
	})
	if err.Error() != "count: must be at least 1" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
