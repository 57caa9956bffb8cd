package ui

import (
	"fmt"
	"strings"
)

// ProtocolEntry is one row of the protocol listing.
type ProtocolEntry struct {
	Name        string
	Description string
}

// ListSection is a titled group of protocols.
type ListSection struct {
	Title   string
	Entries []ProtocolEntry
}

// FormatProtocolList renders the grouped protocol listing shown by the list
// command. When color is false every style is skipped, for pipes and
// NO_COLOR environments.
func FormatProtocolList(sections []ListSection, color bool) string {
	var b strings.Builder

	title := "Available protocols:"
	if color {
		title = TitleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, section := range sections {
		if len(section.Entries) == 0 {
			continue
		}

		heading := "  " + section.Title + ":"
		if color {
			// GroupStyle carries the left padding
			heading = GroupStyle.Render(section.Title + ":")
		}
		b.WriteString(heading)
		b.WriteString("\n")

		for _, entry := range section.Entries {
			name := fmt.Sprintf("%-12s", entry.Name)
			desc := entry.Description
			if color {
				name = NameStyle.Render(name)
				desc = DescStyle.Render(desc)
			}
			b.WriteString("    " + name + " " + desc + "\n")
		}
		b.WriteString("\n")
	}

	usage := "Usage: pktfmt <protocol_name>\nExample: pktfmt tcp"
	if color {
		usage = HintStyle.Render(usage)
	}
	b.WriteString(usage)

	return b.String()
}
