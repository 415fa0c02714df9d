package tui

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// defaultPalette maps core.Color to terminal colors.
var defaultPalette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// Surface writes frame cells to a terminal as ANSI sequences. Output is
// buffered until Flush.
type Surface struct {
	w      *bufio.Writer
	styles map[core.Color]lipgloss.Style
}

// NewSurface creates a surface writing to out. Entries in palette override
// the default color for that core.Color.
func NewSurface(out io.Writer, palette map[core.Color]string) *Surface {
	r := lipgloss.NewRenderer(out)

	styles := make(map[core.Color]lipgloss.Style, len(defaultPalette)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for c, value := range defaultPalette {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(value))
	}
	for c, value := range palette {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(value))
	}

	return &Surface{
		w:      bufio.NewWriterSize(out, 16*1024),
		styles: styles,
	}
}

// Clear blanks the screen and homes the cursor.
func (s *Surface) Clear() error {
	_, err := s.w.WriteString(ansi.EraseEntireScreen + ansi.CursorHomePosition)
	return err
}

// MoveTo places the cursor at a zero-based column and row.
func (s *Surface) MoveTo(col, row int) error {
	_, err := s.w.WriteString(ansi.CursorPosition(col+1, row+1))
	return err
}

// Put writes one styled cell at the cursor.
func (s *Surface) Put(c core.Cell) error {
	if c.Empty() {
		return s.w.WriteByte(' ')
	}
	style, ok := s.styles[c.Color]
	if !ok {
		style = s.styles[core.ColorDefault]
	}
	_, err := s.w.WriteString(style.Render(string(c.Rune())))
	return err
}

// Flush pushes buffered output to the terminal.
func (s *Surface) Flush() error {
	return s.w.Flush()
}
