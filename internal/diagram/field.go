package diagram

import "strconv"

// Width is the bit width of a field: either a fixed positive bit count or
// the variable-length marker. The zero value is an invalid zero-bit fixed
// width; construct widths with Bits or Variable.
type Width struct {
	variable bool
	bits     int
}

// Bits returns a fixed width of n bits. Callers must ensure n > 0; the
// input parsers enforce this before a Field ever reaches the renderer.
func Bits(n int) Width {
	return Width{bits: n}
}

// Variable returns the variable-length width marker. A variable field
// consumes the rest of the data and is rendered as its own full-width row.
func Variable() Width {
	return Width{variable: true}
}

// IsVariable reports whether this is the variable-length marker.
func (w Width) IsVariable() bool {
	return w.variable
}

// Bits returns the fixed bit count. It is meaningless for variable widths.
func (w Width) Bits() int {
	return w.bits
}

// String returns the definition syntax for the width: the bit count, or
// "*" for variable length.
func (w Width) String() string {
	if w.variable {
		return "*"
	}
	return strconv.Itoa(w.bits)
}

// Field is one named bit region of a packet. Fields are constructed once by
// the input parsers and are immutable afterwards.
type Field struct {
	Name  string
	Width Width
}

// Segment is the portion of one field that lands in one row.
type Segment struct {
	Name string
	// Width is the number of bits this segment occupies within its row,
	// between 1 and the configured bits per row.
	Width int
	// IsVariable marks the single segment of a variable-length field.
	// Variable segments never split, so both continuation flags are false.
	IsVariable bool
	// IsContinuation is true when the owning field started in an earlier row.
	IsContinuation bool
	// ContinuesNext is true when more bits of the owning field follow in the
	// next row.
	ContinuesNext bool
}

// Row is one horizontal slice of the diagram: an ordered list of segments
// whose widths sum to at most the configured bits per row.
type Row []Segment

// bitWidth returns the total number of bits occupied by the row.
func (r Row) bitWidth() int {
	total := 0
	for _, seg := range r {
		total += seg.Width
	}
	return total
}

// Config is the layout configuration for a single render call.
type Config struct {
	BitsPerRow int
	ShowRuler  bool
	Theme      Theme
}

// DefaultBitsPerRow is the standard RFC diagram width.
const DefaultBitsPerRow = 32

// DefaultConfig returns the standard layout: 32 bits per row, ruler shown,
// ASCII borders.
func DefaultConfig() Config {
	return Config{
		BitsPerRow: DefaultBitsPerRow,
		ShowRuler:  true,
		Theme:      ThemeASCII,
	}
}
