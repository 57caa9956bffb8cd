package diagram

// PackRows partitions the bits of an ordered field list into rows of at most
// bitsPerRow bits.
//
// A variable field closes any partially filled row and takes a dedicated
// full-width row. A fixed field fills the remaining space of the current row;
// if it does not fit, it is split at the row boundary and continues on the
// following row (a field wider than several rows keeps splitting). A field
// that exactly fills the remaining space closes the row without producing a
// continuation. The final row is emitted even when partially filled.
func PackRows(fields []Field, bitsPerRow int) []Row {
	var rows []Row
	var current Row
	currentBits := 0

	for _, field := range fields {
		if field.Width.IsVariable() {
			if len(current) > 0 {
				rows = append(rows, current)
				current = nil
				currentBits = 0
			}
			rows = append(rows, Row{{
				Name:       field.Name,
				Width:      bitsPerRow,
				IsVariable: true,
			}})
			continue
		}

		remaining := field.Width.Bits()
		firstPart := true

		for remaining > 0 {
			space := bitsPerRow - currentBits

			if remaining <= space {
				current = append(current, Segment{
					Name:           field.Name,
					Width:          remaining,
					IsContinuation: !firstPart,
				})
				currentBits += remaining
				remaining = 0

				if currentBits == bitsPerRow {
					rows = append(rows, current)
					current = nil
					currentBits = 0
				}
			} else {
				current = append(current, Segment{
					Name:           field.Name,
					Width:          space,
					IsContinuation: !firstPart,
					ContinuesNext:  true,
				})
				rows = append(rows, current)
				current = nil
				currentBits = 0
				remaining -= space
				firstPart = false
			}
		}
	}

	if len(current) > 0 {
		rows = append(rows, current)
	}

	return rows
}
