// Package core provides fundamental types and utilities shared by the game
// engine and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an axis-aligned box, used for agent hitboxes and screen layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SquaredDistance returns the squared Euclidean distance between two points.
// Squared distances keep the greedy comparisons in integer arithmetic.
func SquaredDistance(ax, ay, bx, by int) int {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Chebyshev returns the chessboard distance between two points.
func Chebyshev(ax, ay, bx, by int) int {
	return max(Abs(ax-bx), Abs(ay-by))
}

// FloorDiv divides rounding toward negative infinity, so that positions
// left of or above the origin map to negative cells.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
