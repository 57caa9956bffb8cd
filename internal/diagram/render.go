package diagram

import "strings"

// Render draws the complete diagram for an ordered field list. The result
// has no trailing newline. Render is a pure function: identical inputs
// always produce byte-identical output.
func Render(fields []Field, cfg Config) string {
	var lines []string

	if cfg.ShowRuler {
		lines = append(lines, rulerLines(cfg.BitsPerRow)...)
	}

	rows := PackRows(fields, cfg.BitsPerRow)

	for i, row := range rows {
		if i == 0 {
			lines = append(lines, renderTopBorder(row, cfg.Theme))
		} else {
			lines = append(lines, renderSeparator(rows[i-1], row, cfg.Theme, cfg.BitsPerRow))
		}
		lines = append(lines, renderContentRow(row, cfg.Theme))
	}

	if len(rows) > 0 {
		lines = append(lines, renderBottomBorder(rows[len(rows)-1], cfg.Theme))
	}

	return strings.Join(lines, "\n")
}

// renderContentRow draws the text line for one row. Each segment gets a cell
// of 2*width-1 characters (two ruler characters per bit, minus the shared
// border). The field name appears only in the segment that does not continue
// to the next row, centered and truncated to the cell. A row holding a
// variable segment swaps the vertical border for the theme's variable glyph.
func renderContentRow(row Row, theme Theme) string {
	border := theme.V
	for _, seg := range row {
		if seg.IsVariable {
			border = theme.VVar
			break
		}
	}

	var b strings.Builder
	b.WriteString(border)
	for _, seg := range row {
		cellWidth := seg.Width*2 - 1
		if seg.ContinuesNext {
			b.WriteString(strings.Repeat(" ", cellWidth))
		} else {
			b.WriteString(centerClipped(seg.Name, cellWidth))
		}
		b.WriteString(border)
	}
	return b.String()
}

// centerClipped centers s in a cell of the given width, truncating without
// an ellipsis when the name is too long. Lengths are counted in runes, so
// multibyte names clip per character rather than per byte. When the padding
// is odd in an odd-width cell the extra space goes on the left.
func centerClipped(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	pad := width - len(runes)
	left := pad/2 + (pad & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
