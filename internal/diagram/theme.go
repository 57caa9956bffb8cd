package diagram

// Theme is the set of border glyphs used to draw a diagram. All glyphs are
// single-cell strings.
type Theme struct {
	Name string

	H  string // horizontal line
	V  string // vertical line
	TL string // top-left corner
	TR string // top-right corner
	BL string // bottom-left corner
	BR string // bottom-right corner
	TJ string // top junction (tee pointing down)
	BJ string // bottom junction (tee pointing up)
	LJ string // left junction (tee pointing right)
	RJ string // right junction (tee pointing left)
	X  string // cross

	// VVar replaces V on rows holding a variable-length field, flagging
	// that the row's real length is indeterminate.
	VVar string
}

// ThemeASCII draws with plain ASCII, matching the diagrams in RFCs.
var ThemeASCII = Theme{
	Name: "ascii",
	H:    "-", V: "|",
	TL: "+", TR: "+", BL: "+", BR: "+",
	TJ: "+", BJ: "+", LJ: "+", RJ: "+", X: "+",
	VVar: ":",
}

// ThemeUnicode draws with single-line box-drawing characters.
var ThemeUnicode = Theme{
	Name: "unicode",
	H:    "─", V: "│",
	TL: "┌", TR: "┐", BL: "└", BR: "┘",
	TJ: "┬", BJ: "┴", LJ: "├", RJ: "┤", X: "┼",
	VVar: "┊",
}

// ThemeBold draws with heavy box-drawing characters.
var ThemeBold = Theme{
	Name: "bold",
	H:    "━", V: "┃",
	TL: "┏", TR: "┓", BL: "┗", BR: "┛",
	TJ: "┳", BJ: "┻", LJ: "┣", RJ: "┫", X: "╋",
	VVar: "┇",
}

var themes = map[string]Theme{
	"ascii":   ThemeASCII,
	"unicode": ThemeUnicode,
	"bold":    ThemeBold,
}

// ThemeNamed returns the theme with the given name, falling back to ASCII
// for unknown names.
func ThemeNamed(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return ThemeASCII
}

// ThemeNames returns the selectable theme names.
func ThemeNames() []string {
	return []string{"ascii", "unicode", "bold"}
}
