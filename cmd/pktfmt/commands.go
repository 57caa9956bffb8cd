package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/muurk/pktfmt/internal/config"
	"github.com/muurk/pktfmt/internal/diagram"
	"github.com/muurk/pktfmt/internal/fields"
	"github.com/muurk/pktfmt/internal/logging"
	"github.com/muurk/pktfmt/internal/protocols"
	"github.com/muurk/pktfmt/internal/server"
	"github.com/muurk/pktfmt/internal/tui"
	"github.com/muurk/pktfmt/internal/ui"
)

var (
	flagBitsPerRow int
	flagNoRuler    bool
	flagStyle      string
	flagUnicode    bool
	flagNoColor    bool

	flagListen      string
	flagDescription string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&flagBitsPerRow, "bits-per-row", "b", diagram.DefaultBitsPerRow, "Diagram row width in bits")
	pf.BoolVar(&flagNoRuler, "no-ruler", false, "Omit the bit-number header")
	pf.StringVarP(&flagStyle, "style", "s", "ascii", "Border style: "+strings.Join(diagram.ThemeNames(), ", "))
	pf.BoolVarP(&flagUnicode, "unicode", "u", false, "Shortcut for --style unicode")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable styled terminal output")

	serveCmd.Flags().StringVarP(&flagListen, "listen", "l", "127.0.0.1:8347", "Address to listen on")
	saveCmd.Flags().StringVarP(&flagDescription, "description", "d", "", "Description shown by the list command")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(forgetCmd)
}

// renderOptions is the flag set shared by the render, browse, and serve
// paths, after configuration preferences have been applied.
type renderOptions struct {
	bitsPerRow int
	showRuler  bool
	style      string
	color      bool
}

// resolveOptions merges command-line flags with stored preferences. A flag
// given on the command line always wins; otherwise a non-zero preference
// replaces the built-in default.
func resolveOptions(prefs *config.Preferences) (renderOptions, error) {
	pf := rootCmd.PersistentFlags()

	opts := renderOptions{
		bitsPerRow: flagBitsPerRow,
		showRuler:  !flagNoRuler,
		style:      flagStyle,
		color:      !flagNoColor && !prefs.NoColor,
	}

	if flagUnicode {
		opts.style = "unicode"
	} else if !pf.Changed("style") && prefs.Style != "" {
		opts.style = prefs.Style
	}
	if !pf.Changed("bits-per-row") && prefs.BitsPerRow > 0 {
		opts.bitsPerRow = prefs.BitsPerRow
	}
	if !pf.Changed("no-ruler") && prefs.HideRuler {
		opts.showRuler = false
	}

	if opts.bitsPerRow <= 0 {
		return opts, fmt.Errorf("bits per row must be positive, got %d", opts.bitsPerRow)
	}
	if !themeKnown(opts.style) {
		return opts, fmt.Errorf("unknown style %q (choose from: %s)", opts.style, strings.Join(diagram.ThemeNames(), ", "))
	}
	return opts, nil
}

func themeKnown(name string) bool {
	for _, n := range diagram.ThemeNames() {
		if n == name {
			return true
		}
	}
	return false
}

func runRender(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return errors.New("an input is required: a protocol name, an inline definition, or a JSON file")
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}
	opts, err := resolveOptions(registry.Preferences)
	if err != nil {
		return err
	}

	fieldList, source, err := resolveInput(registry, args[0])
	if err != nil {
		return err
	}

	out := diagram.Render(fieldList, diagram.Config{
		BitsPerRow: opts.bitsPerRow,
		ShowRuler:  opts.showRuler,
		Theme:      diagram.ThemeNamed(opts.style),
	})
	fmt.Println(out)
	logging.LogRender(source, len(fieldList), opts.bitsPerRow, opts.style)

	if notice := ui.FitNotice(diagramWidth(out), opts.color); notice != "" {
		fmt.Fprintln(os.Stderr, notice)
	}
	return nil
}

// resolveInput maps the positional argument to a field list. User-defined
// protocols shadow builtins of the same name; anything else is treated as an
// inline definition or a JSON file path.
func resolveInput(registry *config.Registry, input string) ([]diagram.Field, string, error) {
	if p, ok := registry.Protocol(input); ok {
		fieldList, err := fields.ParseInline(p.Definition)
		if err != nil {
			return nil, "", fmt.Errorf("user protocol %q has an invalid definition: %w", input, err)
		}
		return fieldList, "user", nil
	}

	if protocols.Exists(input) {
		p, err := protocols.Lookup(input)
		if err != nil {
			return nil, "", err
		}
		fieldList, err := fields.ParseInline(p.Definition)
		if err != nil {
			return nil, "", err
		}
		return fieldList, "builtin", nil
	}

	fieldList, err := fields.ParseInput(input)
	if err != nil {
		logging.LogParseError(input, err)
		return nil, "", err
	}
	return fieldList, "inline", nil
}

// diagramWidth returns the widest line of the rendered diagram in columns.
func diagramWidth(out string) int {
	width := 0
	for _, line := range strings.Split(out, "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available protocols",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		color := !flagNoColor && !registry.Preferences.NoColor

		var sections []ui.ListSection

		if len(registry.Protocols) > 0 {
			names := make([]string, 0, len(registry.Protocols))
			for name := range registry.Protocols {
				names = append(names, name)
			}
			sort.Strings(names)

			entries := make([]ui.ProtocolEntry, 0, len(names))
			for _, name := range names {
				entries = append(entries, ui.ProtocolEntry{
					Name:        name,
					Description: registry.Protocols[name].Description,
				})
			}
			sections = append(sections, ui.ListSection{Title: "User Defined", Entries: entries})
		}

		grouped := make(map[string]bool)
		for _, group := range protocols.Groups() {
			entries := make([]ui.ProtocolEntry, 0, len(group.Names))
			for _, name := range group.Names {
				p, err := protocols.Lookup(name)
				if err != nil {
					continue
				}
				grouped[p.Name] = true
				entries = append(entries, ui.ProtocolEntry{Name: p.Name, Description: p.Description})
			}
			sections = append(sections, ui.ListSection{Title: group.Title, Entries: entries})
		}

		var other []ui.ProtocolEntry
		for _, p := range protocols.All() {
			if !grouped[p.Name] {
				other = append(other, ui.ProtocolEntry{Name: p.Name, Description: p.Description})
			}
		}
		sections = append(sections, ui.ListSection{Title: "Other", Entries: other})

		fmt.Println(ui.FormatProtocolList(sections, color))
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse protocols interactively",
	Long: `Open an interactive browser with a protocol list and a live diagram
preview. Press 's' to cycle border styles, 'r' to toggle the ruler,
'+'/'-' to change the row width, and 'q' to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		opts, err := resolveOptions(registry.Preferences)
		if err != nil {
			return err
		}
		return tui.Run(browseEntries(registry), opts.bitsPerRow, opts.showRuler, opts.style)
	},
}

// browseEntries merges user and builtin protocols for the browser, with
// user definitions shadowing builtins of the same name.
func browseEntries(registry *config.Registry) []tui.Entry {
	var entries []tui.Entry
	for name, p := range registry.Protocols {
		entries = append(entries, tui.Entry{
			Name:        name,
			Description: p.Description,
			Definition:  p.Definition,
		})
	}
	for _, p := range protocols.All() {
		if _, shadowed := registry.Protocol(p.Name); shadowed {
			continue
		}
		entries = append(entries, tui.Entry{
			Name:        p.Name,
			Description: p.Description,
			Definition:  p.Definition,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve diagrams over HTTP",
	Long: `Start an HTTP server for editor integrations and scripts. It exposes
a protocol index at /api/protocols, one-shot rendering at /api/render,
and a WebSocket live preview at /ws. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}

		index := make([]server.ProtocolInfo, 0, len(registry.Protocols))
		for _, entry := range browseEntries(registry) {
			index = append(index, server.ProtocolInfo{
				Name:        entry.Name,
				Description: entry.Description,
			})
		}

		resolve := func(name string) (string, error) {
			if p, ok := registry.Protocol(name); ok {
				return p.Definition, nil
			}
			p, err := protocols.Lookup(name)
			if err != nil {
				return "", err
			}
			return p.Definition, nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Serving pktfmt API on http://%s (Ctrl+C to stop)\n", flagListen)
		return server.New(flagListen, index, resolve).Run(ctx)
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <name> <definition>",
	Short: "Save a protocol definition",
	Long: `Store an inline definition under a name for later use, e.g.

  pktfmt save wol -d "Wake-on-LAN" "Sync:48,Target MAC x16:*"
  pktfmt wol

Saved protocols shadow builtins of the same name and appear under
"User Defined" in 'pktfmt list'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, definition := args[0], args[1]

		if _, err := fields.ParseInline(definition); err != nil {
			return fmt.Errorf("invalid definition: %w", err)
		}

		// Fresh read so a concurrent save in another terminal is not lost.
		registry, err := config.ReloadRegistry()
		if err != nil {
			return err
		}
		registry.SetProtocol(name, &config.Protocol{
			Description: flagDescription,
			Definition:  definition,
		})
		if err := registry.Save(); err != nil {
			return err
		}

		fmt.Printf("Saved protocol %q\n", strings.ToLower(name))
		if protocols.Exists(name) {
			fmt.Printf("Note: this shadows the builtin %q definition\n", strings.ToLower(name))
		}
		return nil
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget <name>",
	Short: "Remove a saved protocol definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.ReloadRegistry()
		if err != nil {
			return err
		}
		if !registry.RemoveProtocol(args[0]) {
			return fmt.Errorf("no user-defined protocol %q", strings.ToLower(args[0]))
		}
		if err := registry.Save(); err != nil {
			return err
		}
		fmt.Printf("Removed protocol %q\n", strings.ToLower(args[0]))
		return nil
	},
}
