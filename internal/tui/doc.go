// Package tui implements the interactive protocol browser for pktfmt.
//
// The browser shows every known protocol (builtin and user-defined) in a
// filterable list with a live diagram preview beside it. Layout options can
// be changed on the fly:
//
//   - s cycles the border style (ascii, unicode, bold)
//   - r toggles the bit-number ruler
//   - +/- widens or narrows the row by 8 bits
//   - / filters the protocol list
//   - q quits
//
// The preview pane scrolls independently for protocols taller than the
// window.
package tui
