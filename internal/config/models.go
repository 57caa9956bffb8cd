package config

// Registry represents the entire user configuration file.
// This stores user-defined protocol definitions and rendering preferences.
type Registry struct {
	Version     int                  `yaml:"version"`
	Protocols   map[string]*Protocol `yaml:"protocols,omitempty"` // Keyed by lowercase protocol name
	Preferences *Preferences         `yaml:"preferences,omitempty"`
}

// Protocol is a user-defined packet format. It uses the same inline
// definition syntax as the builtin table and shadows a builtin of the same
// name.
type Protocol struct {
	Description string `yaml:"description,omitempty"` // Shown by the list command
	Definition  string `yaml:"definition"`            // Inline "Name:bits,..." field list
}

// Preferences represents rendering defaults applied when the corresponding
// command-line flag is not given. Zero values mean the built-in defaults
// (ASCII style, 32 bits per row, ruler and color on).
type Preferences struct {
	Style      string `yaml:"style,omitempty"`        // Border style: ascii, unicode, bold
	BitsPerRow int    `yaml:"bits_per_row,omitempty"` // Diagram row width in bits
	HideRuler  bool   `yaml:"hide_ruler,omitempty"`   // Omit the bit-number header
	NoColor    bool   `yaml:"no_color,omitempty"`     // Disable styled terminal output
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Protocols:   make(map[string]*Protocol),
		Preferences: &Preferences{},
	}
}
