package tui

import "testing"

func TestNextStyle(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"ascii", "unicode"},
		{"unicode", "bold"},
		{"bold", "ascii"},
		{"unknown", "ascii"},
	}

	for _, tt := range tests {
		if got := nextStyle(tt.current); got != tt.want {
			t.Errorf("nextStyle(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestProtocolItem(t *testing.T) {
	item := protocolItem{entry: Entry{
		Name:        "tcp",
		Description: "Transmission Control Protocol",
		Definition:  "Source Port:16,Destination Port:16",
	}}

	if item.Title() != "tcp" {
		t.Errorf("Title() = %q, want tcp", item.Title())
	}
	if item.Description() != "Transmission Control Protocol" {
		t.Errorf("Description() = %q", item.Description())
	}
	// Filtering should match on both name and description.
	if item.FilterValue() != "tcp Transmission Control Protocol" {
		t.Errorf("FilterValue() = %q", item.FilterValue())
	}
}
