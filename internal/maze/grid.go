package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedGrid is returned when maze text cannot be parsed.
	ErrMalformedGrid = errors.New("maze: malformed grid")

	// ErrOutOfBounds is returned for a cell query outside the grid.
	// Walled borders make it unreachable in a sound maze, so callers treat it
	// as fatal.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
)

// Cell addresses a grid square by column and row.
type Cell struct {
	X, Y int
}

// Grid is a rectangular maze of tiles stored in row-major order:
// index = y*cols + x.
type Grid struct {
	cols  int
	rows  int
	tiles []Tile
}

// Parse builds a grid from maze text, one line per row and one character
// per column. Trailing empty lines and carriage returns are ignored.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, fmt.Errorf("%w: empty maze", ErrMalformedGrid)
	}

	lines := strings.Split(text, "\n")
	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrMalformedGrid)
	}

	g := &Grid{
		cols:  cols,
		rows:  len(lines),
		tiles: make([]Tile, 0, cols*len(lines)),
	}

	for y, line := range lines {
		row := []rune(line)
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrMalformedGrid, y, len(row), cols)
		}
		for x, r := range row {
			t, ok := tileFromChar(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown character %q at row %d, column %d",
					ErrMalformedGrid, r, y, x)
			}
			g.tiles = append(g.tiles, t)
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds returns true if the cell lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// TileAt returns the tile at the given cell.
func (g *Grid) TileAt(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return Blank, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, x, y, g.cols, g.rows)
	}
	return g.tiles[g.index(x, y)], nil
}

// Walkable reports whether the cell can be entered.
func (g *Grid) Walkable(x, y int) (bool, error) {
	t, err := g.TileAt(x, y)
	if err != nil {
		return false, err
	}
	return IsWalkable(t), nil
}

// Consume collects the coin or power pellet at the cell, leaving it blank.
// Returns the consumed tile and true, or false when there was nothing to
// collect. Consuming the same cell twice is a no-op.
func (g *Grid) Consume(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Blank, false
	}
	i := g.index(x, y)
	t := g.tiles[i]
	if !t.IsCollectible() {
		return Blank, false
	}
	g.tiles[i] = Blank
	return t, true
}

// RemainingCollectibles counts the coins and power pellets left.
func (g *Grid) RemainingCollectibles() int {
	n := 0
	for _, t := range g.tiles {
		if t.IsCollectible() {
			n++
		}
	}
	return n
}

// NearestWalkable returns the closest walkable cell to (x, y), searching
// square rings of growing radius in row order. ok is false when the grid
// has no walkable cell at all.
func (g *Grid) NearestWalkable(x, y int) (Cell, bool) {
	radius := max(g.cols, g.rows)
	for r := 0; r <= radius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(dx, -dx, dy, -dy) != r {
					continue
				}
				nx, ny := x+dx, y+dy
				if !g.InBounds(nx, ny) {
					continue
				}
				if IsWalkable(g.tiles[g.index(nx, ny)]) {
					return Cell{X: nx, Y: ny}, true
				}
			}
		}
	}
	return Cell{}, false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		cols:  g.cols,
		rows:  g.rows,
		tiles: tiles,
	}
}

// String serializes the grid back to maze text.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.cols; x++ {
			sb.WriteRune(g.tiles[g.index(x, y)].Char())
		}
	}
	return sb.String()
}
