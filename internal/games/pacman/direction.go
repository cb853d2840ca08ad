package pacman

// Direction is the heading of an agent. DirNone means halted.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// decisionOrder is the fixed enumeration pursuers evaluate candidates in.
// The first candidate wins ties.
var decisionOrder = [...]Direction{DirUp, DirDown, DirRight, DirLeft}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Inverse returns the opposite heading. DirNone is its own inverse.
func (d Direction) Inverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the unit step of the direction on each axis.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}
