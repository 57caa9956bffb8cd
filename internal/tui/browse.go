package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pktfmt/internal/diagram"
	"github.com/muurk/pktfmt/internal/fields"
)

// Entry is one browsable protocol.
type Entry struct {
	Name        string
	Description string
	// Definition is the inline field list rendered in the preview pane.
	Definition string
}

// protocolItem adapts an Entry to the bubbles list.
type protocolItem struct {
	entry Entry
}

func (i protocolItem) Title() string       { return i.entry.Name }
func (i protocolItem) Description() string { return i.entry.Description }
func (i protocolItem) FilterValue() string { return i.entry.Name + " " + i.entry.Description }

// browseKeyMap defines key bindings for the browser screen
type browseKeyMap struct {
	Style    key.Binding
	Ruler    key.Binding
	Wider    key.Binding
	Narrower key.Binding
	Quit     key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Style: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "style"),
		),
		Ruler: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "ruler"),
		),
		Wider: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider"),
		),
		Narrower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

const (
	listPaneWidth = 34
	minBitsPerRow = 8
	maxBitsPerRow = 128
)

// BrowseModel is the bubbletea model for the protocol browser.
type BrowseModel struct {
	list    list.Model
	preview viewport.Model
	keys    browseKeyMap

	// Layout options applied to the preview
	bitsPerRow int
	showRuler  bool
	styleName  string

	width  int
	height int
	ready  bool
}

// NewBrowseModel builds the browser over the given entries. The initial
// layout options normally come from the user's saved preferences.
func NewBrowseModel(entries []Entry, bitsPerRow int, showRuler bool, styleName string) BrowseModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = protocolItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), listPaneWidth, 0)
	l.Title = "Protocols"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return BrowseModel{
		list:       l,
		keys:       newBrowseKeyMap(),
		bitsPerRow: bitsPerRow,
		showRuler:  showRuler,
		styleName:  styleName,
	}
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listPaneWidth, msg.Height-2)

		previewWidth := msg.Width - listPaneWidth - 4
		if previewWidth < 20 {
			previewWidth = 20
		}
		if !m.ready {
			m.preview = viewport.New(previewWidth, msg.Height-4)
			m.ready = true
		} else {
			m.preview.Width = previewWidth
			m.preview.Height = msg.Height - 4
		}
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		// While the list filter is open, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Style):
			m.styleName = nextStyle(m.styleName)
			m.refreshPreview()
			return m, nil
		case key.Matches(msg, m.keys.Ruler):
			m.showRuler = !m.showRuler
			m.refreshPreview()
			return m, nil
		case key.Matches(msg, m.keys.Wider):
			if m.bitsPerRow+8 <= maxBitsPerRow {
				m.bitsPerRow += 8
				m.refreshPreview()
			}
			return m, nil
		case key.Matches(msg, m.keys.Narrower):
			if m.bitsPerRow-8 >= minBitsPerRow {
				m.bitsPerRow -= 8
				m.refreshPreview()
			}
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	if m.list.Index() != before {
		m.refreshPreview()
	}

	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := previewTitleStyle.Render(m.selectedName()) + " " +
		previewInfoStyle.Render(fmt.Sprintf("(%s, %d bits/row)", m.styleName, m.bitsPerRow))
	pane := previewBorderStyle.Render(header + "\n\n" + m.preview.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), pane)
	helpBar := helpBarStyle.Render("s style • r ruler • +/- width • / filter • q quit")

	return body + "\n" + helpBar
}

func (m *BrowseModel) selectedName() string {
	item, ok := m.list.SelectedItem().(protocolItem)
	if !ok {
		return ""
	}
	return item.entry.Name
}

// refreshPreview re-renders the selected protocol into the viewport.
func (m *BrowseModel) refreshPreview() {
	if !m.ready {
		return
	}

	item, ok := m.list.SelectedItem().(protocolItem)
	if !ok {
		m.preview.SetContent("")
		return
	}

	fieldList, err := fields.ParseInline(item.entry.Definition)
	if err != nil {
		m.preview.SetContent(previewErrorStyle.Render("Definition error: " + err.Error()))
		return
	}

	out := diagram.Render(fieldList, diagram.Config{
		BitsPerRow: m.bitsPerRow,
		ShowRuler:  m.showRuler,
		Theme:      diagram.ThemeNamed(m.styleName),
	})
	m.preview.SetContent(out)
	m.preview.GotoTop()
}

func nextStyle(current string) string {
	names := diagram.ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Run starts the interactive browser over the given entries.
func Run(entries []Entry, bitsPerRow int, showRuler bool, styleName string) error {
	model := NewBrowseModel(entries, bitsPerRow, showRuler, styleName)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
