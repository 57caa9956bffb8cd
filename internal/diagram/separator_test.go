package diagram

import (
	"strings"
	"testing"
)

func TestPlanSeparator_FieldBoundariesEverywhere(t *testing.T) {
	// Two full rows of independent fields: every column rules, every
	// junction draws.
	prev := Row{{Name: "Type", Width: 16}, {Name: "Length", Width: 16}}
	curr := Row{{Name: "Checksum", Width: 32}}

	plan := planSeparator(prev, curr, 32)

	for bit, lined := range plan.columns {
		if !lined {
			t.Errorf("column %d blank, want horizontal rule", bit)
		}
	}
	for pos, drawn := range plan.junctions {
		if !drawn {
			t.Errorf("junction %d blank, want glyph", pos)
		}
	}
}

func TestPlanSeparator_AlignedFieldPassesThrough(t *testing.T) {
	// A row-wide field continuing across the boundary: the whole interior
	// is blank, only the outer junctions remain.
	prev := Row{{Name: "Key", Width: 16, ContinuesNext: true}}
	curr := Row{{Name: "Key", Width: 16, IsContinuation: true, ContinuesNext: true}}

	plan := planSeparator(prev, curr, 16)

	for bit, lined := range plan.columns {
		if lined {
			t.Errorf("column %d ruled, want blank pass-through", bit)
		}
	}
	for pos := 1; pos < 16; pos++ {
		if plan.junctions[pos] {
			t.Errorf("interior junction %d drawn, want blank", pos)
		}
	}
	if !plan.junctions[0] || !plan.junctions[16] {
		t.Error("outer junctions must always be drawn")
	}
}

func TestPlanSeparator_MixedRow(t *testing.T) {
	// First half of prev holds a finished field, second half continues into
	// a row fully occupied by the continuing field's remainder.
	prev := Row{
		{Name: "Ver", Width: 8},
		{Name: "Addr", Width: 8, ContinuesNext: true},
	}
	curr := Row{{Name: "Addr", Width: 16, IsContinuation: true}}

	plan := planSeparator(prev, curr, 16)

	for bit := 0; bit < 8; bit++ {
		if !plan.columns[bit] {
			t.Errorf("column %d under finished field blank, want rule", bit)
		}
	}
	for bit := 8; bit < 16; bit++ {
		if plan.columns[bit] {
			t.Errorf("column %d under continuing field ruled, want blank", bit)
		}
	}

	// Position 8 is a field edge in the previous row, so it keeps a glyph
	// even though the column after it is blank.
	if !plan.junctions[8] {
		t.Error("junction at field edge must be drawn")
	}
	for pos := 9; pos < 16; pos++ {
		if plan.junctions[pos] {
			t.Errorf("junction %d inside pass-through span drawn, want blank", pos)
		}
	}
}

func TestPlanSeparator_ShortPreviousRow(t *testing.T) {
	// Bits beyond a short row count as ended, so the rule is drawn across
	// the full row width.
	prev := Row{{Name: "Type", Width: 8}}
	curr := Row{{Name: "Payload", Width: 16, IsVariable: true}}

	plan := planSeparator(prev, curr, 16)

	for bit, lined := range plan.columns {
		if !lined {
			t.Errorf("column %d blank, want rule", bit)
		}
	}
}

func TestRenderSeparator_PassThroughSpan(t *testing.T) {
	prev := Row{
		{Name: "Ver", Width: 8},
		{Name: "Addr", Width: 8, ContinuesNext: true},
	}
	curr := Row{{Name: "Addr", Width: 16, IsContinuation: true}}

	got := renderSeparator(prev, curr, ThemeASCII, 16)
	want := "+-+-+-+-+-+-+-+-+" + strings.Repeat(" ", 15) + "+"

	if got != want {
		t.Errorf("renderSeparator()\n got %q\nwant %q", got, want)
	}
}

func TestRenderSeparator_FullRule(t *testing.T) {
	prev := Row{{Name: "Type", Width: 16}, {Name: "Length", Width: 16}}
	curr := Row{{Name: "Payload", Width: 32, IsVariable: true}}

	got := renderSeparator(prev, curr, ThemeASCII, 32)
	want := "+" + strings.Repeat("-+", 32)

	if got != want {
		t.Errorf("renderSeparator()\n got %q\nwant %q", got, want)
	}
}

func TestBorders(t *testing.T) {
	row := Row{{Name: "A", Width: 8}}

	if got, want := renderTopBorder(row, ThemeASCII), "+"+strings.Repeat("-+", 8); got != want {
		t.Errorf("renderTopBorder() = %q, want %q", got, want)
	}
	if got, want := renderBottomBorder(row, ThemeASCII), "+"+strings.Repeat("-+", 8); got != want {
		t.Errorf("renderBottomBorder() = %q, want %q", got, want)
	}
}

func TestBorders_UnicodeCorners(t *testing.T) {
	row := Row{{Name: "A", Width: 2}}

	if got, want := renderTopBorder(row, ThemeUnicode), "┌─┬─┐"; got != want {
		t.Errorf("renderTopBorder() = %q, want %q", got, want)
	}
	if got, want := renderBottomBorder(row, ThemeUnicode), "└─┴─┘"; got != want {
		t.Errorf("renderBottomBorder() = %q, want %q", got, want)
	}
}
