package protocols

import (
	"errors"
	"sort"
	"testing"

	"github.com/muurk/pktfmt/internal/fields"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		lookup  string
		wantErr bool
	}{
		{"exact name", "tcp", false},
		{"case insensitive", "TCP", false},
		{"mixed case", "IPv6", false},
		{"unknown", "carrier-pigeon", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.lookup)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.lookup, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownProtocol) {
					t.Errorf("error should wrap ErrUnknownProtocol, got %v", err)
				}
				return
			}
			if p.Definition == "" {
				t.Errorf("Lookup(%q) returned empty definition", tt.lookup)
			}
			if p.Description == "" {
				t.Errorf("Lookup(%q) returned empty description", tt.lookup)
			}
		})
	}
}

func TestAll_SortedAndComplete(t *testing.T) {
	all := All()

	if len(all) != len(builtins) {
		t.Errorf("All() returned %d protocols, want %d", len(all), len(builtins))
	}

	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("All() not sorted by name: %v", names)
	}
}

func TestAll_DefinitionsParse(t *testing.T) {
	// Every builtin definition must be a valid inline field list.
	for _, p := range All() {
		parsed, err := fields.ParseInline(p.Definition)
		if err != nil {
			t.Errorf("protocol %q definition does not parse: %v", p.Name, err)
			continue
		}
		if len(parsed) == 0 {
			t.Errorf("protocol %q parsed to zero fields", p.Name)
		}
	}
}

func TestGroups_NamesAreKnown(t *testing.T) {
	grouped := make(map[string]bool)
	for _, g := range Groups() {
		for _, name := range g.Names {
			if !Exists(name) {
				t.Errorf("group %q references unknown protocol %q", g.Title, name)
			}
			if grouped[name] {
				t.Errorf("protocol %q appears in more than one group", name)
			}
			grouped[name] = true
		}
	}
}
