package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the current terminal width in columns, or 0 when
// stdout is not a terminal.
func TerminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// FitNotice returns a warning when a diagram of the given character width
// will wrap in the current terminal, or an empty string when it fits or the
// width is unknown.
func FitNotice(diagramWidth int, color bool) string {
	termWidth := TerminalWidth()
	if termWidth == 0 || diagramWidth <= termWidth {
		return ""
	}
	msg := fmt.Sprintf("Note: diagram is %d columns wide but the terminal has %d; try a smaller --bits-per-row", diagramWidth, termWidth)
	if color {
		return NoticeStyle.Render(msg)
	}
	return msg
}
