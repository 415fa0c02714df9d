// Package render turns frame buffers into output on a cursor-addressable
// surface. Only cells that changed since the previous frame are written.
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Surface is a cursor-addressable character grid, typically the terminal.
type Surface interface {
	// Clear blanks the whole surface.
	Clear() error
	// MoveTo places the cursor at a zero-based column and row.
	MoveTo(col, row int) error
	// Put writes one cell at the cursor.
	Put(c core.Cell) error
	// Flush pushes buffered output to the device.
	Flush() error
}

// Safe cursor position after each frame, just below the playfield.
const (
	parkCol = 0
	parkRow = core.NumRows
)

// Render paints curr onto s. With force set the surface is cleared and every
// cell is written; otherwise only cells that differ from prev are.
func Render(s Surface, prev, curr *core.Frame, force bool) error {
	if force {
		if err := s.Clear(); err != nil {
			return fmt.Errorf("clear surface: %w", err)
		}
		for x := 0; x < core.NumCols; x++ {
			for y := 0; y < core.NumRows; y++ {
				if err := putCell(s, curr, core.Point{X: x, Y: y}); err != nil {
					return err
				}
			}
		}
	} else {
		for _, p := range curr.Diff(prev) {
			if err := putCell(s, curr, p); err != nil {
				return err
			}
		}
	}

	if err := s.MoveTo(parkCol, parkRow); err != nil {
		return fmt.Errorf("park cursor: %w", err)
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("flush surface: %w", err)
	}
	return nil
}

func putCell(s Surface, f *core.Frame, p core.Point) error {
	if err := s.MoveTo(p.X, p.Y); err != nil {
		return fmt.Errorf("move cursor to %d,%d: %w", p.X, p.Y, err)
	}
	if err := s.Put(f[p.X][p.Y]); err != nil {
		return fmt.Errorf("write cell %d,%d: %w", p.X, p.Y, err)
	}
	return nil
}
