package pacman

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// ErrInvalidRules is returned by NewSession for rules it cannot run with.
var ErrInvalidRules = errors.New("pacman: invalid rules")

// Input is what the session reads from the host once per tick.
type Input interface {
	// QueuedDirection returns the latest heading requested since the last
	// tick, if any.
	QueuedDirection() (Direction, bool)
	// ExitRequested reports whether the host wants the session to stop.
	ExitRequested() bool
}

// Corner names a corner of the maze.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// Recruit describes a pursuer to place on the board: it spawns near its
// corner and scatters toward it.
type Recruit struct {
	Name   string
	Corner Corner
	Target Targeter
}

// ClassicRoster returns the four classic pursuers.
func ClassicRoster() []Recruit {
	return []Recruit{
		{Name: "blinky", Corner: CornerTopRight, Target: Chaser{}},
		{Name: "pinky", Corner: CornerTopLeft, Target: Ambusher{Lead: 4}},
		{Name: "clyde", Corner: CornerBottomLeft, Target: Shy{Radius: 8}},
		{Name: "inky", Corner: CornerBottomRight, Target: Flanker{Partner: "blinky", Lead: 2}},
	}
}

// DuoRoster returns a lighter roster with only the chaser and the ambusher.
func DuoRoster() []Recruit {
	return ClassicRoster()[:2]
}

// Session is one round on one maze: the grid, the player and the pursuers.
// Once won or dead it is terminal and Step no longer changes anything.
type Session struct {
	grid     *maze.Grid
	rules    Rules
	player   Player
	pursuers []*Pursuer
	modes    *ModePolicy

	tick      int
	remaining int
	bonus     int
	exited    bool
}

// NewSession sets up a round on grid. The session owns grid from now on and
// consumes its collectibles; pass a clone to keep the original intact.
func NewSession(grid *maze.Grid, rules Rules, roster []Recruit) (*Session, error) {
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	cs := rules.CellSize
	center, ok := grid.NearestWalkable(grid.Cols()/2, grid.Rows()/2)
	if !ok {
		return nil, fmt.Errorf("%w: maze has no walkable cell", maze.ErrMalformedGrid)
	}

	s := &Session{
		grid:  grid,
		rules: rules,
		player: Player{
			Pos:   cellOrigin(center, cs),
			Spawn: cellOrigin(center, cs),
			Lives: rules.Lives,
		},
		modes:     NewModePolicy(rules.ScatterTicks, rules.ChaseTicks, rules.PelletScatterTicks),
		remaining: grid.RemainingCollectibles(),
	}

	for _, r := range roster {
		spawnCell, _ := grid.NearestWalkable(s.spawnHint(r.Corner))
		spawn := cellOrigin(spawnCell, cs)
		s.pursuers = append(s.pursuers, &Pursuer{
			Name:   r.Name,
			Pos:    spawn,
			Spawn:  spawn,
			Home:   cellOrigin(s.cornerCell(r.Corner), cs),
			Target: r.Target,
		})
	}

	return s, nil
}

func validateRules(r Rules) error {
	if r.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidRules, r.CellSize)
	}
	for _, speed := range []int{r.PlayerSpeed, r.PursuerSpeed} {
		if speed <= 0 || r.CellSize%speed != 0 {
			return fmt.Errorf("%w: speed %d does not divide cell size %d", ErrInvalidRules, speed, r.CellSize)
		}
	}
	if r.Lives < 1 {
		return fmt.Errorf("%w: %d lives", ErrInvalidRules, r.Lives)
	}
	if r.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidRules, r.TickRate)
	}
	return nil
}

// cornerCell returns the outermost cell of a corner.
func (s *Session) cornerCell(c Corner) maze.Cell {
	right, bottom := s.grid.Cols()-1, s.grid.Rows()-1
	switch c {
	case CornerTopRight:
		return maze.Cell{X: right}
	case CornerBottomLeft:
		return maze.Cell{Y: bottom}
	case CornerBottomRight:
		return maze.Cell{X: right, Y: bottom}
	default:
		return maze.Cell{}
	}
}

// spawnHint returns the cell just inside the border at a corner.
func (s *Session) spawnHint(c Corner) (int, int) {
	cell := s.cornerCell(c)
	x, y := 1, 1
	if cell.X > 0 {
		x = cell.X - 1
	}
	if cell.Y > 0 {
		y = cell.Y - 1
	}
	return x, y
}

// Step advances the round by one tick: the player moves and collects, the
// pursuers decide and move in roster order, then collisions are settled.
// Terminal sessions ignore the call. A non-nil error means the maze let an
// agent walk off the grid and the session cannot continue.
func (s *Session) Step(in Input) error {
	if s.Terminal() {
		return nil
	}
	if in != nil {
		if in.ExitRequested() {
			s.exited = true
			return nil
		}
		if d, ok := in.QueuedDirection(); ok && d.Valid() {
			s.player.Queued = d
		}
	}
	s.tick++

	// Collecting happens on the boundary the player is leaving from, so the
	// last coin ends the round before any further movement.
	if t, ok := collect(s.grid, &s.player, s.rules.CellSize); ok {
		s.award(t)
	}
	if s.remaining <= 0 {
		s.win()
		return nil
	}
	if err := movePlayer(s.grid, &s.player, s.rules.PlayerSpeed, s.rules.CellSize); err != nil {
		return err
	}

	mode := s.modes.Mode()
	for _, p := range s.pursuers {
		p.Mode = mode
		if err := s.movePursuer(p); err != nil {
			return err
		}
	}
	s.modes.Advance()

	s.checkCollisions()
	return nil
}

// Terminal reports whether the round is over.
func (s *Session) Terminal() bool {
	return s.player.Won || s.player.Dead || s.exited
}

// Won reports whether the maze was cleared.
func (s *Session) Won() bool { return s.player.Won }

// Dead reports whether the player ran out of lives.
func (s *Session) Dead() bool { return s.player.Dead }

// Exited reports whether the host asked the session to stop.
func (s *Session) Exited() bool { return s.exited }

// Score returns the current score, including the bonus once won.
func (s *Session) Score() int { return s.player.Score }

// Bonus returns the end-of-round bonus, zero until the maze is cleared.
func (s *Session) Bonus() int { return s.bonus }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.player.Lives }

// Remaining returns the collectibles left on the maze.
func (s *Session) Remaining() int { return s.remaining }

// Tick returns the number of ticks played.
func (s *Session) Tick() int { return s.tick }

// ElapsedSeconds returns the play time in whole seconds.
func (s *Session) ElapsedSeconds() int { return s.tick / s.rules.TickRate }

// Rules returns the rules the session runs with.
func (s *Session) Rules() Rules { return s.rules }

// Grid returns the maze being played.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Pursuers returns copies of the pursuers in roster order.
func (s *Session) Pursuers() []Pursuer {
	out := make([]Pursuer, len(s.pursuers))
	for i, p := range s.pursuers {
		out[i] = *p
	}
	return out
}

// Pursuer returns a copy of the named pursuer.
func (s *Session) Pursuer(name string) (Pursuer, bool) {
	for _, p := range s.pursuers {
		if p.Name == name {
			return *p, true
		}
	}
	return Pursuer{}, false
}

// Mode returns the mode pursuers are in this tick.
func (s *Session) Mode() Mode { return s.modes.Mode() }
