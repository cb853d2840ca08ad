package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Point is an integer pixel position on the maze.
type Point struct {
	X, Y int
}

// Add returns p moved by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns p moved n pixels along d.
func (p Point) Step(d Direction, n int) Point {
	dx, dy := d.Delta()
	return p.Add(dx*n, dy*n)
}

// Cell returns the grid cell that contains p.
func (p Point) Cell(cellSize int) maze.Cell {
	return maze.Cell{
		X: core.FloorDiv(p.X, cellSize),
		Y: core.FloorDiv(p.Y, cellSize),
	}
}

// Aligned reports whether p sits exactly on a cell origin.
func (p Point) Aligned(cellSize int) bool {
	return p.X%cellSize == 0 && p.Y%cellSize == 0
}

// cellOrigin returns the pixel origin of a grid cell.
func cellOrigin(c maze.Cell, cellSize int) Point {
	return Point{X: c.X * cellSize, Y: c.Y * cellSize}
}

// Player is the agent steered by input.
type Player struct {
	Pos    Point
	Spawn  Point
	Dir    Direction // Current heading
	Queued Direction // Last requested heading, applied when eligible

	Score int
	Lives int
	Dead  bool
	Won   bool
}

// respawn puts the player back on its spawn, halted.
func (p *Player) respawn() {
	p.Pos = p.Spawn
	p.Dir = DirNone
	p.Queued = DirNone
}

// Mode is the pursuit mode of a pursuer.
type Mode int

const (
	ModeChase Mode = iota
	ModeScatter
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeScatter {
		return "scatter"
	}
	return "chase"
}

// Pursuer is a computer-controlled agent. Variants differ only by their
// Targeter; pursuers never queue input and decide a new heading at every
// cell boundary instead.
type Pursuer struct {
	Name   string
	Pos    Point
	Spawn  Point
	Home   Point // Scatter target
	Dir    Direction
	Mode   Mode
	Target Targeter
}

// respawn puts the pursuer back on its spawn, halted.
func (p *Pursuer) respawn() {
	p.Pos = p.Spawn
	p.Dir = DirNone
	p.Mode = ModeChase
}
