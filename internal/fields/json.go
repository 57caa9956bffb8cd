package fields

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/muurk/pktfmt/internal/diagram"
)

// jsonDocument is the structured input format.
type jsonDocument struct {
	Fields []jsonField `json:"fields"`
}

// jsonField carries bits as a raw value because it is either a positive
// integer or the string "*".
type jsonField struct {
	Name string          `json:"name"`
	Bits json.RawMessage `json:"bits"`
}

// ParseJSON parses a JSON document with a "fields" array of {name, bits}
// objects.
func ParseJSON(data []byte) ([]diagram.Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var doc jsonDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	if doc.Fields == nil {
		return nil, fmt.Errorf("JSON document must contain a 'fields' array")
	}

	var parsed []diagram.Field
	for i, f := range doc.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: missing or empty 'name'", i)
		}
		if len(f.Bits) == 0 {
			return nil, fmt.Errorf("field %q: missing 'bits'", f.Name)
		}

		width, err := parseJSONWidth(f.Bits)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		parsed = append(parsed, diagram.Field{Name: f.Name, Width: width})
	}

	if len(parsed) == 0 {
		return nil, ErrNoFields
	}

	return parsed, nil
}

// parseJSONWidth accepts a JSON integer or the string "*".
func parseJSONWidth(raw json.RawMessage) (diagram.Width, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == VariableMarker {
			return diagram.Variable(), nil
		}
		return diagram.Width{}, fmt.Errorf("bits must be an integer or %q, got %q", VariableMarker, s)
	}

	var bits int
	if err := json.Unmarshal(raw, &bits); err != nil {
		return diagram.Width{}, fmt.Errorf("bits must be an integer or %q, got %s", VariableMarker, raw)
	}
	if bits <= 0 {
		return diagram.Width{}, fmt.Errorf("bit width must be positive, got %d", bits)
	}
	return diagram.Bits(bits), nil
}

// ParseFile reads and parses a JSON definition file.
func ParseFile(path string) ([]diagram.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	fieldList, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fieldList, nil
}
