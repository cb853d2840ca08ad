package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// helpRows is the height of the key help line under the game.
const helpRows = 1

// roundReporter is implemented by games that can describe a round for the log.
type roundReporter interface {
	MazeName() string
	Bonus() int
	ElapsedSeconds() int
}

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	quitting   bool
	roundSaved bool // Whether the current round has been logged
	err        error
}

// NewModel creates a new Bubble Tea model for the given game.
// The store and the logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 0)),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the screen buffer. The round keeps running; the game
// shows a notice while the terminal is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.roundSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Err != nil {
		m.err = result.Err
		m.logger.Error("simulation stopped", "game", m.game.ID(), "err", result.Err)
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver && !m.roundSaved {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.saveRound(outcome)
	}

	if m.quitting {
		if !m.roundSaved {
			m.saveRound(storage.OutcomeQuit)
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound logs the finished round and records it in the store.
func (m *Model) saveRound(outcome storage.Outcome) {
	m.roundSaved = true

	round := storage.Round{
		GameID:  m.game.ID(),
		Outcome: outcome,
		Score:   m.gameState.Score,
		Lives:   m.gameState.Lives,
	}
	if r, ok := m.game.(roundReporter); ok {
		round.Maze = r.MazeName()
		round.Bonus = r.Bonus()
		round.Seconds = r.ElapsedSeconds()
	}

	m.logger.Info("round over",
		"game", round.GameID,
		"maze", round.Maze,
		"outcome", round.Outcome,
		"score", round.Score,
		"lives", round.Lives,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Warn("round not saved", "err", err)
	}
}

// Err returns the simulation fault that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
// Returns the program error or the simulation fault that stopped the game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
