package fields

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/pktfmt/internal/diagram"
)

// ErrNoFields is returned when an otherwise well-formed input defines no
// fields.
var ErrNoFields = errors.New("no fields defined")

// VariableMarker is the width token meaning "rest of the data".
const VariableMarker = "*"

// ParseInline parses a comma-separated "Name:bits" definition. Empty tokens
// between commas are skipped; the name is everything before the last colon,
// so names may themselves contain colons.
func ParseInline(definition string) ([]diagram.Field, error) {
	var parsed []diagram.Field

	for _, part := range strings.Split(definition, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, ":")
		if idx < 0 {
			return nil, fmt.Errorf("invalid field %q: expected 'Name:bits'", part)
		}

		name := strings.TrimSpace(part[:idx])
		bitsStr := strings.TrimSpace(part[idx+1:])

		if name == "" {
			return nil, fmt.Errorf("invalid field %q: name cannot be empty", part)
		}

		width, err := parseWidth(bitsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid field %q: %w", part, err)
		}

		parsed = append(parsed, diagram.Field{Name: name, Width: width})
	}

	if len(parsed) == 0 {
		return nil, ErrNoFields
	}

	return parsed, nil
}

// parseWidth parses a width token: "*" or a positive integer.
func parseWidth(s string) (diagram.Width, error) {
	if s == VariableMarker {
		return diagram.Variable(), nil
	}

	bits, err := strconv.Atoi(s)
	if err != nil {
		return diagram.Width{}, fmt.Errorf("bit width %q is not an integer or %q", s, VariableMarker)
	}
	if bits <= 0 {
		return diagram.Width{}, fmt.Errorf("bit width must be positive, got %d", bits)
	}
	return diagram.Bits(bits), nil
}
