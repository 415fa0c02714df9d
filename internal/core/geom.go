// Package core provides the fundamental types shared by the simulation and
// the renderer: the playfield grid, frame buffers, timers and input actions.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Grid dimensions of the playfield. Every component shares these; changing
// them is a compile-time decision.
const (
	NumCols = 40
	NumRows = 20
)

// Point is a cell coordinate on the playfield.
type Point struct {
	X, Y int
}

// InBounds reports whether the point lies on the playfield.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < NumCols && p.Y >= 0 && p.Y < NumRows
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
