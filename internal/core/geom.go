// Package core provides the geometry and screen primitives shared by the game
// and its frontends. It has no terminal dependencies so that game logic stays
// pure and testable.
package core

import "fmt"

// Direction is one of the four headings a snake can take.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Coordinate is a cell on the board. Valid cells satisfy 0 <= X < width and
// 0 <= Y < height; values outside that range are produced by StepIn and left
// for the caller to reject.
type Coordinate struct {
	X, Y int
}

// StepIn returns the coordinate one cell away in direction d.
// It performs no bounds checking.
func (c Coordinate) StepIn(d Direction) Coordinate {
	switch d {
	case Up:
		c.Y--
	case Down:
		c.Y++
	case Left:
		c.X--
	case Right:
		c.X++
	}
	return c
}

// Distance returns the Manhattan distance between two coordinates.
func (c Coordinate) Distance(other Coordinate) int {
	return Abs(c.X-other.X) + Abs(c.Y-other.Y)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is the board size in cells, fixed for a session.
type Bounds struct {
	Width  int
	Height int
}

// Valid returns true if both dimensions are positive.
func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Contains returns true if c lies on the board.
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Area returns the number of cells on the board.
func (b Bounds) Area() int {
	if !b.Valid() {
		return 0
	}
	return b.Width * b.Height
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
