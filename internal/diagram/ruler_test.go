package diagram

import (
	"strings"
	"testing"
)

func TestRulerLines_32Bits(t *testing.T) {
	lines := rulerLines(32)

	if len(lines) != 2 {
		t.Fatalf("rulerLines() returned %d lines, want 2", len(lines))
	}

	wantByte := " 0" + strings.Repeat(" ", 18) + "1" + strings.Repeat(" ", 18) +
		"2" + strings.Repeat(" ", 18) + "3"
	if lines[0] != wantByte {
		t.Errorf("byte line = %q, want %q", lines[0], wantByte)
	}

	wantBit := " 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1"
	if lines[1] != wantBit {
		t.Errorf("bit line = %q, want %q", lines[1], wantBit)
	}
}

func TestRulerLines_16Bits(t *testing.T) {
	lines := rulerLines(16)

	wantByte := " 0" + strings.Repeat(" ", 18) + "1"
	if lines[0] != wantByte {
		t.Errorf("byte line = %q, want %q", lines[0], wantByte)
	}

	wantBit := " 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5"
	if lines[1] != wantBit {
		t.Errorf("bit line = %q, want %q", lines[1], wantBit)
	}
}

func TestRulerLines_NarrowerThanByte(t *testing.T) {
	// No full byte group fits, so the byte line is empty after trimming.
	lines := rulerLines(4)

	if lines[0] != "" {
		t.Errorf("byte line = %q, want empty", lines[0])
	}
	if lines[1] != " 0 1 2 3" {
		t.Errorf("bit line = %q, want %q", lines[1], " 0 1 2 3")
	}
}

func TestRulerLines_FitUnderDiagram(t *testing.T) {
	// Both lines must never be wider than the bordered diagram itself,
	// which is 2*bitsPerRow+1 characters.
	for _, bits := range []int{8, 16, 24, 32, 64} {
		lines := rulerLines(bits)
		max := bits*2 + 1
		for i, line := range lines {
			if len(line) > max {
				t.Errorf("bits=%d line %d width %d exceeds diagram width %d", bits, i, len(line), max)
			}
		}
	}
}
