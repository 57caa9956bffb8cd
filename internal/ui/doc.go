// Package ui provides styled terminal output helpers for the pktfmt CLI.
//
// This package holds the shared lipgloss color palette and styles, the
// grouped protocol listing used by the list command, and terminal width
// detection for warning when a diagram will wrap. All helpers degrade to
// plain text when color is disabled.
package ui
