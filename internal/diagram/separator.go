package diagram

import "strings"

// separatorPlan is the computed shape of one interior separator line: which
// of the bitsPerRow+1 junction positions get a glyph, and which of the
// bitsPerRow column positions get a horizontal rule. False means blank.
type separatorPlan struct {
	junctions []bool
	columns   []bool
}

// planSeparator computes the separator between two adjacent rows.
//
// A column is blank when the segment above continues down and the segment
// below continues up: the same column-aligned field passes straight through
// the boundary. A junction is drawn wherever either row has a field edge;
// a position that is no field edge in either row is blank only when the
// columns on both sides are themselves pass-through blanks. Bits beyond a
// short row count as ended/started, so the rule resumes there.
func planSeparator(prev, curr Row, bitsPerRow int) separatorPlan {
	prevContinues := make([]bool, 0, bitsPerRow)
	for _, seg := range prev {
		for i := 0; i < seg.Width; i++ {
			prevContinues = append(prevContinues, seg.ContinuesNext)
		}
	}
	for len(prevContinues) < bitsPerRow {
		prevContinues = append(prevContinues, false)
	}

	currContinuation := make([]bool, 0, bitsPerRow)
	for _, seg := range curr {
		for i := 0; i < seg.Width; i++ {
			currContinuation = append(currContinuation, seg.IsContinuation)
		}
	}
	for len(currContinuation) < bitsPerRow {
		currContinuation = append(currContinuation, false)
	}

	boundary := make([]bool, bitsPerRow+1)
	boundary[0] = true
	pos := 0
	for _, seg := range prev {
		pos += seg.Width
		boundary[pos] = true
	}
	pos = 0
	for _, seg := range curr {
		pos += seg.Width
		boundary[pos] = true
	}

	plan := separatorPlan{
		junctions: make([]bool, bitsPerRow+1),
		columns:   make([]bool, bitsPerRow),
	}

	for bit := 0; bit < bitsPerRow; bit++ {
		switch {
		case bit == 0 || boundary[bit]:
			plan.junctions[bit] = true
		case prevContinues[bit-1] && currContinuation[bit]:
			// Field passes through on both sides, no glyph.
		default:
			plan.junctions[bit] = true
		}

		plan.columns[bit] = !(prevContinues[bit] && currContinuation[bit])
	}
	plan.junctions[bitsPerRow] = true

	return plan
}

// renderSeparator draws the separator line above curr, given the row before
// it.
func renderSeparator(prev, curr Row, theme Theme, bitsPerRow int) string {
	plan := planSeparator(prev, curr, bitsPerRow)

	var b strings.Builder
	for bit := 0; bit < bitsPerRow; bit++ {
		b.WriteString(junctionGlyph(plan, bit, theme))
		if plan.columns[bit] {
			b.WriteString(theme.H)
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString(theme.RJ)
	return b.String()
}

func junctionGlyph(plan separatorPlan, bit int, theme Theme) string {
	if !plan.junctions[bit] {
		return " "
	}
	if bit == 0 {
		return theme.LJ
	}
	return theme.X
}

// renderTopBorder draws the opening border above the first row. No
// continuation logic applies; the line spans the row's bits with a junction
// between every bit.
func renderTopBorder(row Row, theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.TL)
	total := row.bitWidth()
	for bit := 0; bit < total; bit++ {
		b.WriteString(theme.H)
		if bit == total-1 {
			b.WriteString(theme.TR)
		} else {
			b.WriteString(theme.TJ)
		}
	}
	return b.String()
}

// renderBottomBorder draws the closing border under the last row. It spans
// only the bits the row actually holds, so a short final row gets a short
// border.
func renderBottomBorder(row Row, theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.BL)
	total := row.bitWidth()
	for bit := 0; bit < total; bit++ {
		b.WriteString(theme.H)
		if bit == total-1 {
			b.WriteString(theme.BR)
		} else {
			b.WriteString(theme.BJ)
		}
	}
	return b.String()
}
