package core

import "strings"

// Cell is a single position of a frame: a glyph and its color.
// The zero Cell is empty and is displayed as a space.
type Cell struct {
	Glyph rune
	Color Color
}

// Empty reports whether nothing was drawn into the cell.
func (c Cell) Empty() bool {
	return c.Glyph == 0
}

// Rune returns the glyph to display, substituting a space for empty cells.
func (c Cell) Rune() rune {
	if c.Glyph == 0 {
		return ' '
	}
	return c.Glyph
}

// Frame is a fixed-size playfield buffer indexed as f[x][y].
// It is a value type: assigning or sending a Frame copies every cell, which
// is how frames change owner between the simulation and the render worker.
// Entities never share a cell; the last one drawn wins.
type Frame [NumCols][NumRows]Cell

// Drawable is implemented by anything that can paint itself into a frame.
type Drawable interface {
	Draw(f *Frame)
}

// NewFrame returns an all-empty frame.
func NewFrame() Frame {
	return Frame{}
}

// Set places a glyph at (x, y). Coordinates outside the grid are a
// programming error and panic.
func (f *Frame) Set(x, y int, glyph rune, color Color) {
	f[x][y] = Cell{Glyph: glyph, Color: color}
}

// Get returns the cell at (x, y).
func (f *Frame) Get(x, y int) Cell {
	return f[x][y]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond the grid are clipped.
func (f *Frame) DrawText(x, y int, text string, color Color) {
	if y < 0 || y >= NumRows {
		return
	}
	i := 0
	for _, r := range text {
		p := Point{X: x + i, Y: y}
		i++
		if !p.InBounds() {
			continue
		}
		f[p.X][p.Y] = Cell{Glyph: r, Color: color}
	}
}

// DrawTextCentered draws text centered horizontally at row y.
func (f *Frame) DrawTextCentered(y int, text string, color Color) {
	x := (NumCols - len([]rune(text))) / 2
	f.DrawText(x, y, text, color)
}

// Diff returns the coordinates whose cells differ between f and other,
// column by column.
func (f *Frame) Diff(other *Frame) []Point {
	var changed []Point
	for x := 0; x < NumCols; x++ {
		for y := 0; y < NumRows; y++ {
			if f[x][y] != other[x][y] {
				changed = append(changed, Point{X: x, Y: y})
			}
		}
	}
	return changed
}

// Row returns the glyphs of row y as a string.
func (f *Frame) Row(y int) string {
	var sb strings.Builder
	sb.Grow(NumCols)
	for x := 0; x < NumCols; x++ {
		sb.WriteRune(f[x][y].Rune())
	}
	return sb.String()
}

// String converts the frame to plain text, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(NumCols*NumRows + NumRows)
	for y := 0; y < NumRows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(f.Row(y))
	}
	return sb.String()
}
