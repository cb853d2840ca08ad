package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// SummaryKeyMap defines the key bindings for the round summary.
type SummaryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SummaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SummaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultSummaryKeyMap returns default key bindings.
func DefaultSummaryKeyMap() SummaryKeyMap {
	return SummaryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q/enter", "done"),
		),
	}
}

// SummaryModel lists the rounds played during this run.
type SummaryModel struct {
	rounds   []storage.Round
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     SummaryKeyMap
	width    int
	height   int
	quitting bool
}

// NewSummaryModel creates a summary of the given rounds.
func NewSummaryModel(rounds []storage.Round, stats storage.Stats, width, height int) SummaryModel {
	m := SummaryModel{
		rounds: rounds,
		stats:  stats,
		help:   help.New(),
		keys:   DefaultSummaryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the round table.
func (m *SummaryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Maze", Width: 12},
		{Title: "Outcome", Width: 8},
		{Title: "Score", Width: 8},
		{Title: "Bonus", Width: 7},
		{Title: "Lives", Width: 5},
		{Title: "Time", Width: 6},
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Maze,
			string(r.Outcome),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Bonus),
			fmt.Sprintf("%d", r.Lives),
			fmt.Sprintf("%ds", r.Seconds),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, totals and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the summary model.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary.
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the summary.
func (m SummaryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("ROUNDS THIS SESSION"), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%d rounds, %d won, best score %d\n",
		m.stats.Rounds, m.stats.Wins, m.stats.BestScore))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunSummary shows the rounds logged in the store.
// Nothing is shown when the store is nil or empty.
func RunSummary(store *storage.Store, width, height int) error {
	if store == nil {
		return nil
	}

	rounds, err := store.Rounds(0)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return nil
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(NewSummaryModel(rounds, stats, width, height)).Run()
	return err
}
