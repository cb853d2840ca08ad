package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Sprite is a drawable image: a short glyph string and its colour.
type Sprite struct {
	Glyph string
	Color core.Color
}

// Canvas is the surface a session draws on. The session never owns it.
type Canvas interface {
	// Fill clears the whole surface with a background sprite.
	Fill(bg Sprite)
	// Blit draws a sprite at a maze pixel position.
	Blit(sp Sprite, at Point)
}

// Sprites is the set of images a session is drawn with. Build it once and
// pass it to every Render call.
type Sprites struct {
	Background Sprite
	Wall       Sprite
	Coin       Sprite
	Pellet     Sprite

	PlayerOpen   map[Direction]Sprite // Keyed by heading; DirNone uses DirRight
	PlayerClosed Sprite

	Pursuers   map[string]Sprite // Keyed by pursuer name
	Pursuer    Sprite            // Used for names missing from Pursuers
	Scattering Sprite            // Any pursuer in scatter mode
}

// DefaultSprites returns the terminal sprite set.
func DefaultSprites() *Sprites {
	return &Sprites{
		Background: Sprite{Glyph: " ", Color: core.ColorDefault},
		Wall:       Sprite{Glyph: "██", Color: core.ColorBlue},
		Coin:       Sprite{Glyph: "· ", Color: core.ColorWhite},
		Pellet:     Sprite{Glyph: "● ", Color: core.ColorBrightWhite},
		PlayerOpen: map[Direction]Sprite{
			DirRight: {Glyph: "ᗧ", Color: core.ColorBrightYellow},
			DirLeft:  {Glyph: "ᗤ", Color: core.ColorBrightYellow},
			DirUp:    {Glyph: "ᗢ", Color: core.ColorBrightYellow},
			DirDown:  {Glyph: "ᗜ", Color: core.ColorBrightYellow},
		},
		PlayerClosed: Sprite{Glyph: "●", Color: core.ColorBrightYellow},
		Pursuers: map[string]Sprite{
			"blinky": {Glyph: "ᗣ", Color: core.ColorBrightRed},
			"pinky":  {Glyph: "ᗣ", Color: core.ColorPink},
			"clyde":  {Glyph: "ᗣ", Color: core.ColorOrange},
			"inky":   {Glyph: "ᗣ", Color: core.ColorBrightCyan},
		},
		Pursuer:    Sprite{Glyph: "ᗣ", Color: core.ColorMagenta},
		Scattering: Sprite{Glyph: "ᗣ", Color: core.ColorBrightBlue},
	}
}

// mouthClosed reports whether the player is more than half a cell past the
// boundary it last left. A halted player keeps its mouth open.
func mouthClosed(p Player, cellSize int) bool {
	var offset int
	switch p.Dir {
	case DirRight:
		offset = p.Pos.X - core.FloorDiv(p.Pos.X, cellSize)*cellSize
	case DirLeft:
		offset = core.FloorDiv(p.Pos.X+cellSize-1, cellSize)*cellSize - p.Pos.X
	case DirDown:
		offset = p.Pos.Y - core.FloorDiv(p.Pos.Y, cellSize)*cellSize
	case DirUp:
		offset = core.FloorDiv(p.Pos.Y+cellSize-1, cellSize)*cellSize - p.Pos.Y
	default:
		return false
	}
	return offset > cellSize/2
}

func (sp *Sprites) player(p Player, cellSize int) Sprite {
	if mouthClosed(p, cellSize) {
		return sp.PlayerClosed
	}
	dir := p.Dir
	if dir == DirNone {
		dir = DirRight
	}
	return sp.PlayerOpen[dir]
}

func (sp *Sprites) pursuer(p Pursuer) Sprite {
	if p.Mode == ModeScatter {
		return sp.Scattering
	}
	if s, ok := sp.Pursuers[p.Name]; ok {
		return s
	}
	return sp.Pursuer
}

func (sp *Sprites) tile(t maze.Tile) (Sprite, bool) {
	switch t {
	case maze.Wall:
		return sp.Wall, true
	case maze.Coin:
		return sp.Coin, true
	case maze.PowerPellet:
		return sp.Pellet, true
	default:
		return Sprite{}, false
	}
}

// Render draws the maze and every agent: one fill, then tiles, the player
// and the pursuers.
func (s *Session) Render(c Canvas, sp *Sprites) {
	cs := s.rules.CellSize
	c.Fill(sp.Background)

	for y := 0; y < s.grid.Rows(); y++ {
		for x := 0; x < s.grid.Cols(); x++ {
			t, err := s.grid.TileAt(x, y)
			if err != nil {
				continue
			}
			if tileSprite, ok := sp.tile(t); ok {
				c.Blit(tileSprite, cellOrigin(maze.Cell{X: x, Y: y}, cs))
			}
		}
	}

	c.Blit(sp.player(s.player, cs), s.player.Pos)
	for _, p := range s.pursuers {
		c.Blit(sp.pursuer(*p), p.Pos)
	}
}

// ScreenCanvas draws onto a character screen. Every maze cell takes two
// columns and one row, so agents show up at half-cell steps horizontally.
type ScreenCanvas struct {
	screen   *core.Screen
	cellSize int
	originX  int
	originY  int
}

// NewScreenCanvas creates a canvas for a maze cols cells wide, placed top
// rows below the top of dst and centred horizontally.
func NewScreenCanvas(dst *core.Screen, cellSize, cols, top int) *ScreenCanvas {
	originX := max(0, (dst.Width()-cols*2)/2)
	return &ScreenCanvas{
		screen:   dst,
		cellSize: cellSize,
		originX:  originX,
		originY:  top,
	}
}

// Project maps a maze pixel position to a screen column and row, rounding
// to the nearest half cell.
func (c *ScreenCanvas) Project(at Point) (col, row int) {
	col = c.originX + core.FloorDiv(at.X*2+c.cellSize/2, c.cellSize)
	row = c.originY + core.FloorDiv(at.Y+c.cellSize/2, c.cellSize)
	return col, row
}

// Fill implements Canvas.
func (c *ScreenCanvas) Fill(bg Sprite) {
	r := ' '
	for _, first := range bg.Glyph {
		r = first
		break
	}
	c.screen.FillColored(r, bg.Color)
}

// Blit implements Canvas.
func (c *ScreenCanvas) Blit(sp Sprite, at Point) {
	col, row := c.Project(at)
	c.screen.DrawTextColored(col, row, sp.Glyph, sp.Color)
}
