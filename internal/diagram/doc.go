// Package diagram renders RFC-style packet diagrams from field definitions.
//
// The package takes an ordered list of named bit fields and lays them out
// into fixed-width rows, drawing the classic bordered diagram found in
// protocol RFCs:
//
//	 0                   1
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|          Source Port          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|        Destination Port       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// # Layout Model
//
// A Field is either a fixed number of bits or variable length ("rest of the
// packet"). Fields are packed left to right into rows of Config.BitsPerRow
// bits. A fixed field wider than the remaining row space is split into
// Segments that continue on following rows; the separator line between two
// rows omits the horizontal rule wherever the same field passes straight
// through, so a multi-row field reads as one tall box. A variable field is
// always rendered as its own full-width row with a distinct border glyph.
//
// # Purity
//
// Rendering is a pure function of the field list and configuration. The
// package holds no state and is safe for concurrent use.
//
// # Usage
//
//	out := diagram.Render([]diagram.Field{
//	    {Name: "Type", Width: diagram.Bits(16)},
//	    {Name: "Length", Width: diagram.Bits(16)},
//	    {Name: "Payload", Width: diagram.Variable()},
//	}, diagram.DefaultConfig())
//	fmt.Println(out)
package diagram
