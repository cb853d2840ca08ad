// Package maze implements the tile grid the game is played on: parsing the
// textual maze format, tile queries and collectible consumption.
package maze

// Tile is the content of one maze cell.
type Tile uint8

const (
	Blank Tile = iota
	Wall
	Coin
	PowerPellet
)

// Characters of the maze text format.
const (
	WallChar   = '-'
	CoinChar   = '*'
	BlankChar  = ' '
	PelletChar = 'o'
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Blank:
		return "blank"
	case Wall:
		return "wall"
	case Coin:
		return "coin"
	case PowerPellet:
		return "power_pellet"
	default:
		return "unknown"
	}
}

// Char returns the maze text character for the tile.
func (t Tile) Char() rune {
	switch t {
	case Wall:
		return WallChar
	case Coin:
		return CoinChar
	case PowerPellet:
		return PelletChar
	default:
		return BlankChar
	}
}

// IsCollectible reports whether the player scores by entering the tile.
func (t Tile) IsCollectible() bool {
	return t == Coin || t == PowerPellet
}

// IsWalkable reports whether agents may enter a cell holding this tile.
func IsWalkable(t Tile) bool {
	return t != Wall
}

// tileFromChar maps a maze text character to its tile.
func tileFromChar(r rune) (Tile, bool) {
	switch r {
	case WallChar:
		return Wall, true
	case CoinChar:
		return Coin, true
	case BlankChar:
		return Blank, true
	case PelletChar:
		return PowerPellet, true
	}
	return Blank, false
}
