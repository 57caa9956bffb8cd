package diagram

import (
	"fmt"
	"strings"
)

// rulerLines builds the two header lines shown above the diagram: a byte
// index per 8-bit group and a repeating 0-9 bit offset line. Both lines use
// two characters per bit, offset by one to line up under the borders, and
// depend only on the row width.
func rulerLines(bitsPerRow int) []string {
	var byteLine strings.Builder
	byteLine.WriteString(" ")
	for byteNum := 0; byteNum < bitsPerRow/8; byteNum++ {
		fmt.Fprintf(&byteLine, "%-19d", byteNum)
	}
	bytes := byteLine.String()
	if len(bytes) > bitsPerRow*2 {
		bytes = bytes[:bitsPerRow*2]
	}
	bytes = strings.TrimRight(bytes, " ")

	var bitLine strings.Builder
	bitLine.WriteString(" ")
	for i := 0; i < bitsPerRow; i++ {
		fmt.Fprintf(&bitLine, "%d ", i%10)
	}

	return []string{bytes, strings.TrimRight(bitLine.String(), " ")}
}
