package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}

func TestValidateCommand(t *testing.T) {
	schema := writeSchema(t, "user.json", `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1}
		}
	}`)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"validate", "-s", schema, `{"name":"alice"}`})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out.String(), "valid") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestValidateCommand_ReportsViolations(t *testing.T) {
	schema := writeSchema(t, "user.yaml", `
type: object
properties:
  name:
    type: string
    minLength: 1
`)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"validate", "-s", schema, `{"name":""}`})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected violation error")
	}
	if !strings.Contains(out.String(), "name") {
		t.Fatalf("violation path missing from output: %q", out.String())
	}
}

func TestDecodeCommand(t *testing.T) {
	schema := writeSchema(t, "nums.json", `{
		"type": "array",
		"items": {"type": "number"}
	}`)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"decode", "-s", schema, `["1", 2]`})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out.String(), "1") || !strings.Contains(out.String(), "2") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestDecodeCommand_ReadsStdin(t *testing.T) {
	schema := writeSchema(t, "s.json", `{"type":"string"}`)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(`"hello"`))
	root.SetArgs([]string{"decode", "-s", schema})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out.String(), "hello") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
