// Package tui provides a Bubble Tea terminal user interface for the
// playlist formatter.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/playlist-formatter/internal/config"
	"github.com/handiism/playlist-formatter/internal/format"
	"github.com/handiism/playlist-formatter/internal/model"
	"github.com/handiism/playlist-formatter/internal/playlist"
	"github.com/handiism/playlist-formatter/internal/save"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateViewing
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	viewport  viewport.Model
	settings  *config.Settings

	pl       *playlist.Playlist
	style    model.FormattingStyle
	readTags bool
	force    bool

	status string
	err    error

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/playlist.txt"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		state:     StateInput,
		textInput: ti,
		viewport:  viewport.New(80, 20),
		settings:  settings,
		style:     model.StylePretty,
		readTags:  settings.ReadTags,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Message types
type (
	// LoadDoneMsg is sent when playlist parsing completes.
	LoadDoneMsg struct {
		Playlist *playlist.Playlist
		Err      error
	}

	// SaveDoneMsg is sent when a save attempt finishes.
	SaveDoneMsg struct {
		Target string
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 10
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			m.state = StateInput
			m.status = ""
			m.err = nil
			m.textInput.Focus()
			return m, textinput.Blink

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				return m, m.loadPlaylist()
			}

		case "b":
			if m.state == StateViewing {
				m.setStyle(model.StyleBasic)
			}

		case "n":
			if m.state == StateViewing {
				m.setStyle(model.StyleNumbered)
			}

		case "p":
			if m.state == StateViewing {
				m.setStyle(model.StylePretty)
			}

		case "t":
			if m.state == StateInput {
				m.readTags = !m.readTags
			}

		case "f":
			if m.state == StateViewing {
				m.force = !m.force
			}

		case "s":
			if m.state == StateViewing {
				return m, m.savePlaylist()
			}

		case "q":
			if m.state == StateViewing || m.state == StateError {
				return m, tea.Quit
			}
		}

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.pl = msg.Playlist
			m.state = StateViewing
			m.status = ""
			m.refreshViewport()
		}

	case SaveDoneMsg:
		if msg.Err != nil {
			m.status = errorStyle.Render("✗ " + msg.Err.Error())
		} else {
			m.status = successStyle.Render("✓ Saved to " + msg.Target)
		}
	}

	switch m.state {
	case StateInput:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateViewing:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setStyle(style model.FormattingStyle) {
	m.style = style
	m.status = ""
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if m.pl == nil {
		return
	}
	m.viewport.SetContent(format.Text(m.pl, m.style))
	m.viewport.GotoTop()
}

// loadPlaylist parses the entered file in the background.
func (m *Model) loadPlaylist() tea.Cmd {
	path := strings.TrimSpace(m.textInput.Value())
	readTags := m.readTags

	return func() tea.Msg {
		pl, err := playlist.New(path, playlist.WithTagReading(readTags))
		return LoadDoneMsg{Playlist: pl, Err: err}
	}
}

// savePlaylist writes the rendered playlist with a derived file name.
func (m *Model) savePlaylist() tea.Cmd {
	pl := m.pl
	style := m.style
	force := m.force
	settings := m.settings

	return func() tea.Msg {
		req := save.Request{Save: true, UseDefaultDir: true, Force: force}
		target, ok := save.Resolve(req, pl.Info.Path, settings.DefaultOutputDir, settings.OutputNameSuffix)
		if !ok {
			return SaveDoneMsg{Err: fmt.Errorf("no save target resolved")}
		}
		if err := save.Write(target, format.Text(pl, style), force); err != nil {
			return SaveDoneMsg{Err: err}
		}
		return SaveDoneMsg{Target: target}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Playlist Formatter"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Format raw DJ playlist exports"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateViewing:
		b.WriteString(m.viewViewing())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter playlist file path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	tagsCheck := "[ ]"
	if m.readTags {
		tagsCheck = "[x]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Read ID3 tags from MP3 paths (t)\n", tagsCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Save directory: %s", m.settings.DefaultOutputDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewViewing() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.pl.Info.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d tracks | style: %s", m.pl.Len(), m.style)))
	if m.force {
		b.WriteString(dimStyle.Render(" | overwrite on"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: load • t: tags • esc: quit"
	case StateViewing:
		return "b/n/p: style • s: save • f: overwrite • esc: back • q: quit"
	case StateError:
		return "esc: back • q: quit"
	}
	return ""
}

// Run starts the TUI program.
func Run() error {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
