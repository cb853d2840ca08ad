package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/levels"
)

// PickerModel asks for a maze name until one loads.
type PickerModel struct {
	library  *levels.Library
	names    []string
	input    textinput.Model
	width    int
	problem  string // Message shown after a failed attempt
	listing  bool   // Whether to show the available names
	quitting bool
	selected *levels.Level
}

// NewPickerModel creates a picker over the mazes of a library.
func NewPickerModel(lib *levels.Library, width int) (PickerModel, error) {
	names, err := lib.Names()
	if err != nil {
		return PickerModel{}, err
	}

	in := textinput.New()
	in.Placeholder = "classic"
	in.Prompt = "Maze: "
	in.CharLimit = 64
	in.Width = 32
	in.Focus()

	return PickerModel{
		library: lib,
		names:   names,
		input:   in,
		width:   width,
	}, nil
}

// Init starts the cursor blink.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit loads the typed maze, or re-prompts with the list of names.
func (m PickerModel) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		name = m.input.Placeholder
	}

	lvl, err := m.library.Load(name)
	switch {
	case err == nil:
		m.selected = &lvl
		return m, tea.Quit
	case errors.Is(err, levels.ErrMissingMaze):
		m.problem = fmt.Sprintf("The maze '%s' does not exist!", name)
		m.listing = true
	default:
		m.problem = err.Error()
	}

	m.input.Reset()
	return m, nil
}

// View renders the prompt.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P A C - M A N"), m.width))
	b.WriteString("\n\n")

	if m.problem != "" {
		problemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(problemStyle.Render(m.problem))
		b.WriteString("\n")
	}
	if m.listing {
		b.WriteString("Available mazes:\n")
		for _, name := range m.names {
			b.WriteString("  " + name + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render("enter: play  |  esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the loaded maze, or nil if none was picked.
func (m PickerModel) Selected() *levels.Level {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPicker prompts for a maze. Returns nil if the user gave up.
func RunPicker(lib *levels.Library, width int) (*levels.Level, error) {
	model, err := NewPickerModel(lib, width)
	if err != nil {
		return nil, err
	}

	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
