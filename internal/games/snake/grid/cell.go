// Package grid models the snake board: bounded cells, headings, random
// placement and wall-clamped movement. It has no knowledge of the snake
// itself and no dependency on the terminal platform.
package grid

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell is a board coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is the size of a rectangular board.
type Bounds struct {
	W int
	H int
}

// Area returns the number of cells on the board, which is also the
// maximum snake length.
func (b Bounds) Area() int {
	return b.W * b.H
}

// PlacementAttempts is the sampling budget used for food placement.
func (b Bounds) PlacementAttempts() int {
	return 2 * b.Area()
}

// Contains reports whether the cell lies on the board.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// ClampMove returns the cell one step from c in direction d.
// Steps into a wall are absorbed: the result never leaves the board.
func (b Bounds) ClampMove(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{
		X: core.Clamp(c.X+dx, 0, b.W-1),
		Y: core.Clamp(c.Y+dy, 0, b.H-1),
	}
}

// StartHeading picks the initial heading for a snake spawned at c.
// The board is split into thirds and the snake faces away from the
// nearest wall zone, preferring the horizontal axis.
func (b Bounds) StartHeading(c Cell) Direction {
	zoneX := b.W / 3
	zoneY := b.H / 3

	switch {
	case c.X < zoneX:
		return DirRight
	case c.X >= b.W-zoneX:
		return DirLeft
	case c.Y < zoneY:
		return DirDown
	case c.Y >= b.H-zoneY:
		return DirUp
	default:
		return DirRight
	}
}
