package fields

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/muurk/pktfmt/internal/diagram"
)

// ParseInput auto-detects the input format. An argument naming an existing
// file with a .json extension is parsed as a JSON document; everything else
// is treated as an inline definition.
func ParseInput(input string) ([]diagram.Field, error) {
	if isJSONFile(input) {
		return ParseFile(input)
	}
	return ParseInline(input)
}

func isJSONFile(input string) bool {
	if !strings.EqualFold(filepath.Ext(input), ".json") {
		return false
	}
	info, err := os.Stat(input)
	return err == nil && !info.IsDir()
}
