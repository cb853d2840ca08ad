package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// canEnter reports whether the neighbour of cell c in direction d is walkable.
// DirNone never moves, so it is never enterable.
func canEnter(g *maze.Grid, c maze.Cell, d Direction) (bool, error) {
	if !d.Valid() {
		return false, nil
	}
	dx, dy := d.Delta()
	return g.Walkable(c.X+dx, c.Y+dy)
}

// resolvePlayerDirection picks the heading the player moves along this tick.
//
// The queued heading takes over at a cell boundary, or immediately when it
// reverses the current heading. Walls are only checked on a cell boundary:
// the queued heading is kept if its neighbour is open, otherwise the player
// carries on straight, and halts if that is blocked too.
func resolvePlayerDirection(g *maze.Grid, p *Player, cellSize int) (Direction, error) {
	if !p.Pos.Aligned(cellSize) {
		if p.Queued.Valid() && p.Queued == p.Dir.Inverse() {
			return p.Queued, nil
		}
		return p.Dir, nil
	}

	cell := p.Pos.Cell(cellSize)
	if p.Queued.Valid() {
		ok, err := canEnter(g, cell, p.Queued)
		if err != nil {
			return DirNone, err
		}
		if ok {
			return p.Queued, nil
		}
	}

	ok, err := canEnter(g, cell, p.Dir)
	if err != nil {
		return DirNone, err
	}
	if ok {
		return p.Dir, nil
	}
	return DirNone, nil
}

// movePlayer runs one tick of player motion: resolve the heading, then step
// speed pixels along it.
func movePlayer(g *maze.Grid, p *Player, speed, cellSize int) error {
	dir, err := resolvePlayerDirection(g, p, cellSize)
	if err != nil {
		return err
	}
	p.Dir = dir
	p.Pos = p.Pos.Step(dir, speed)
	return nil
}

// collect consumes the tile under an aligned player. Mid-cell positions
// never collect.
func collect(g *maze.Grid, p *Player, cellSize int) (maze.Tile, bool) {
	if !p.Pos.Aligned(cellSize) {
		return maze.Blank, false
	}
	c := p.Pos.Cell(cellSize)
	return g.Consume(c.X, c.Y)
}
