package descriptor

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	pertype "github.com/hernantas/pertype"
)

// ImportJSON parses a JSON descriptor document and imports it.
func ImportJSON(doc []byte) (pertype.AnySchema, error) {
	var m map[string]any
	if err := gojson.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("descriptor: parse json: %w", err)
	}
	return Import(m)
}

// ImportYAML parses a YAML descriptor document and imports it.
func ImportYAML(doc []byte) (pertype.AnySchema, error) {
	var m map[string]any
	if err := yaml.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("descriptor: parse yaml: %w", err)
	}
	return Import(m)
}
