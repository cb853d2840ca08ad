// Package pacman implements the maze chase: grid-bound motion, greedy
// pursuers, collision and scoring, and the adapter that runs a session on
// the arcade platform.
package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Variant selects the pursuer roster.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantDuo     Variant = "duo"
)

// ParseVariant validates a variant name. The empty string means classic.
func ParseVariant(name string) (Variant, error) {
	switch v := Variant(name); v {
	case "":
		return VariantClassic, nil
	case VariantClassic, VariantDuo:
		return v, nil
	default:
		return "", fmt.Errorf("pacman: unknown variant %q (expected classic or duo)", name)
	}
}

// GameID returns the registry ID of a variant.
func (v Variant) GameID() string {
	if v == VariantDuo {
		return "pacman_duo"
	}
	return "pacman"
}

// defaultMaze is played when no level was selected.
const defaultMaze = "classic"

const (
	hudRows    = 1 // Score line above the maze
	footerRows = 1 // Status line below the maze
)

// Package-level selection set by the CLI before the game is created.
var (
	selectedLevel  *levels.Level
	selectedConfig *config.PacmanConfig
)

// SetLevel selects the maze played by games created afterwards.
func SetLevel(lvl levels.Level) {
	selectedLevel = &lvl
}

// SetConfig selects the tuning used by games created afterwards.
func SetConfig(cfg config.PacmanConfig) {
	selectedConfig = &cfg
}

// Game runs a session on the arcade platform.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	level   levels.Level
	cfg     config.PacmanConfig
	session *Session
	sprites *Sprites
	err     error

	paused   bool
	tooSmall bool
}

// New creates a game with the classic four-pursuer roster.
func New() *Game {
	return newGame(VariantClassic)
}

// NewDuo creates a game with only the chaser and the ambusher.
func NewDuo() *Game {
	return newGame(VariantDuo)
}

func newGame(v Variant) *Game {
	g := &Game{variant: v, cfg: config.DefaultPacmanConfig()}
	if selectedConfig != nil {
		g.cfg = *selectedConfig
	}
	if selectedLevel != nil {
		g.level = *selectedLevel
	}
	return g
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_duo", func() registry.Game {
		return NewDuo()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.GameID()
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantDuo {
		return "Pac-Man (Duo)"
	}
	return "Pac-Man"
}

// Variant returns the pursuer roster in play.
func (g *Game) Variant() Variant {
	return g.variant
}

// MazeName returns the name of the maze being played.
func (g *Game) MazeName() string {
	return g.level.Name
}

// Session returns the running session, nil if Reset failed.
func (g *Game) Session() *Session {
	return g.session
}

// Bonus returns the end-of-round bonus, zero until the maze is cleared.
func (g *Game) Bonus() int {
	if g.session == nil {
		return 0
	}
	return g.session.Bonus()
}

// ElapsedSeconds returns the simulated play time of the current round.
func (g *Game) ElapsedSeconds() int {
	if g.session == nil {
		return 0
	}
	return g.session.ElapsedSeconds()
}

func (g *Game) roster() []Recruit {
	if g.variant == VariantDuo {
		return DuoRoster()
	}
	return ClassicRoster()
}

// Reset starts a fresh round on a clean copy of the maze.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.session = nil
	g.err = nil

	if g.level.Grid == nil {
		lvl, err := levels.Embedded().Load(defaultMaze)
		if err != nil {
			g.err = err
			return
		}
		g.level = lvl
	}
	if err := g.cfg.Validate(); err != nil {
		g.err = err
		return
	}

	g.session, g.err = NewSession(g.level.Grid.Clone(), RulesFromConfig(g.cfg, cfg.TickRate), g.roster())
	g.sprites = DefaultSprites()
}

// frameInput exposes a platform input frame as session input.
type frameInput struct {
	frame core.InputFrame
}

// QueuedDirection implements Input.
func (f frameInput) QueuedDirection() (Direction, bool) {
	switch f.frame.LastDirection() {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirNone, false
	}
}

// ExitRequested implements Input.
func (f frameInput) ExitRequested() bool {
	return f.frame.Has(core.ActionQuit)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.session == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionPause) && !g.session.Terminal() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if err := g.session.Step(frameInput{frame: in}); err != nil {
		g.err = fmt.Errorf("pacman: tick %d: %w", g.session.Tick(), err)
	}
	return core.StepResult{State: g.State(), Err: g.err}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		Won:      g.session.Won(),
		GameOver: g.session.Won() || g.session.Dead(),
		Paused:   g.paused,
	}
}

// Render draws the HUD, the maze and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "Loading..."
		if g.err != nil {
			msg = "Error: " + g.err.Error()
		}
		dst.DrawTextColored(0, 0, msg, core.ColorBrightRed)
		return
	}

	grid := g.session.Grid()
	needW, needH := grid.Cols()*2, grid.Rows()+hudRows+footerRows
	g.tooSmall = dst.Width() < needW || dst.Height() < needH
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
		return
	}

	canvas := NewScreenCanvas(dst, g.session.Rules().CellSize, grid.Cols(), hudRows)
	g.session.Render(canvas, g.sprites)
	g.renderHUD(dst, canvas.originX, needW)
	g.renderOverlay(dst, hudRows+grid.Rows()/2)
}

func (g *Game) renderHUD(dst *core.Screen, left, width int) {
	s := g.session
	dst.DrawTextColored(left, 0, fmt.Sprintf("SCORE %d", s.Score()), core.ColorBrightWhite)

	lives := strings.Repeat("ᗧ", s.Lives())
	dst.DrawTextColored(left+width-len([]rune(lives)), 0, lives, core.ColorBrightYellow)

	status := g.level.Name
	if s.Mode() == ModeScatter {
		status += " · scatter"
	}
	dst.DrawTextColored(left+(width-len([]rune(status)))/2, 0, status, core.ColorGray)

	footer := fmt.Sprintf("%d left  %ds", s.Remaining(), s.ElapsedSeconds())
	dst.DrawTextColored(left, hudRows+s.Grid().Rows(), footer, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, row int) {
	s := g.session
	var title, detail string
	color := core.ColorBrightWhite
	switch {
	case s.Won():
		title = " YOU WIN! "
		detail = fmt.Sprintf(" Score %d (bonus %d) - R to play again ", s.Score(), s.Bonus())
		color = core.ColorBrightYellow
	case s.Dead():
		title = " GAME OVER "
		detail = fmt.Sprintf(" Score %d - R to play again ", s.Score())
		color = core.ColorBrightRed
	case g.paused:
		title = " PAUSED "
		detail = " P to resume "
	default:
		return
	}

	// Boxed so the message stays readable over the maze.
	w := max(len([]rune(title)), len([]rune(detail))) + 2
	box := core.NewRect(core.Clamp((dst.Width()-w)/2, 0, dst.Width()-w), row-2, w, 4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	dst.DrawTextColored(cx-len([]rune(title))/2, row-1, title, color)
	dst.DrawTextColored(cx-len([]rune(detail))/2, row, detail, core.ColorWhite)
}
