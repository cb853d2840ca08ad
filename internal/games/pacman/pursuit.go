package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Targeter picks the point a pursuer steers toward while chasing.
// Scatter targets are handled by the session: every pursuer heads home.
type Targeter interface {
	Target(s *Session, self *Pursuer) Point
}

// Chaser targets the player directly.
type Chaser struct{}

// Target implements Targeter.
func (Chaser) Target(s *Session, _ *Pursuer) Point {
	return s.player.Pos
}

// Ambusher targets a spot Lead cells ahead of the player's heading.
type Ambusher struct {
	Lead int
}

// Target implements Targeter.
func (a Ambusher) Target(s *Session, _ *Pursuer) Point {
	cs := s.rules.CellSize
	origin := cellOrigin(s.player.Pos.Cell(cs), cs)
	return origin.Step(s.player.Dir, a.Lead*cs)
}

// Shy chases the player until it gets within Radius cells on both axes,
// then retreats to its home corner.
type Shy struct {
	Radius int
}

// Target implements Targeter.
func (c Shy) Target(s *Session, self *Pursuer) Point {
	cs := s.rules.CellSize
	pc := s.player.Pos.Cell(cs)
	sc := self.Pos.Cell(cs)
	if core.Chebyshev(pc.X, pc.Y, sc.X, sc.Y) <= c.Radius {
		return self.Home
	}
	return s.player.Pos
}

// Flanker reflects the point Lead cells ahead of the player through the
// Partner pursuer, so the two close in from opposite sides. Without the
// partner on the board the player's own position stands in for it.
type Flanker struct {
	Partner string
	Lead    int
}

// Target implements Targeter.
func (f Flanker) Target(s *Session, _ *Pursuer) Point {
	ahead := s.player.Pos.Step(s.player.Dir, f.Lead*s.rules.CellSize)
	partner := s.player.Pos
	if p, ok := s.Pursuer(f.Partner); ok {
		partner = p.Pos
	}
	return Point{X: 2*ahead.X - partner.X, Y: 2*ahead.Y - partner.Y}
}

// targetOf returns where the pursuer heads in its current mode.
func (s *Session) targetOf(p *Pursuer) Point {
	if p.Mode == ModeScatter || p.Target == nil {
		return p.Home
	}
	return p.Target.Target(s, p)
}

// chooseDirection returns the greedy heading for a pursuer standing on a
// cell boundary: among open neighbours other than straight back, the one
// whose post-step position is closest to target. Ties keep decisionOrder.
// DirNone is returned at a dead end.
func chooseDirection(g *maze.Grid, p *Pursuer, target Point, speed, cellSize int) (Direction, error) {
	cell := p.Pos.Cell(cellSize)
	back := p.Dir.Inverse()

	best := DirNone
	bestDist := 0
	for _, d := range decisionOrder {
		if d == back {
			continue
		}
		ok, err := canEnter(g, cell, d)
		if err != nil {
			return DirNone, err
		}
		if !ok {
			continue
		}
		next := p.Pos.Step(d, speed)
		dist := core.SquaredDistance(next.X, next.Y, target.X, target.Y)
		if best == DirNone || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best, nil
}

// movePursuer runs one tick of pursuer motion. Headings are only
// reconsidered on cell boundaries; mid-cell the pursuer keeps going.
func (s *Session) movePursuer(p *Pursuer) error {
	cs := s.rules.CellSize
	speed := s.rules.PursuerSpeed
	if p.Pos.Aligned(cs) {
		dir, err := chooseDirection(s.grid, p, s.targetOf(p), speed, cs)
		if err != nil {
			return err
		}
		p.Dir = dir
	}
	p.Pos = p.Pos.Step(p.Dir, speed)
	return nil
}
