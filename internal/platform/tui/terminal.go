// Package tui connects the game to a real terminal: raw mode and screen
// setup, key decoding through Bubble Tea, and an ANSI output surface.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sentinel errors
var (
	ErrNotTerminal        = errors.New("not a terminal")
	ErrTerminalTooSmall   = errors.New("terminal too small")
	ErrTerminalNotRunning = errors.New("terminal not in raw mode")
)

// MinWidth and MinHeight are the smallest usable terminal: the playfield
// plus the row the cursor parks on.
const (
	MinWidth  = core.NumCols
	MinHeight = core.NumRows + 1
)

// Terminal owns the terminal modes for a game session.
type Terminal struct {
	in    *os.File
	out   io.Writer
	state *term.State
}

// NewTerminal wraps the given input and output.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// CheckSize verifies the terminal can hold the playfield.
func CheckSize(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTerminalTooSmall, width, height, MinWidth, MinHeight)
	}
	return nil
}

// Enter switches to raw mode and the alternate screen and hides the cursor.
func (t *Terminal) Enter() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("enter raw mode: %w", ErrNotTerminal)
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := CheckSize(width, height); err != nil {
		return err
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state

	if _, err := io.WriteString(t.out, ansi.SetAltScreenSaveCursorMode+ansi.HideCursor+ansi.EraseEntireScreen); err != nil {
		_ = t.Restore()
		return fmt.Errorf("prepare screen: %w", err)
	}
	return nil
}

// Restore leaves the alternate screen, shows the cursor and restores the
// original terminal mode.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return ErrTerminalNotRunning
	}

	_, writeErr := io.WriteString(t.out, ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode)
	restoreErr := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil

	if restoreErr != nil {
		return fmt.Errorf("restore terminal: %w", restoreErr)
	}
	if writeErr != nil {
		return fmt.Errorf("restore screen: %w", writeErr)
	}
	return nil
}
