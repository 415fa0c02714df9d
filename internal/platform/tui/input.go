package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
)

// inputBuffer is how many undelivered actions are held before new ones are
// dropped.
const inputBuffer = 64

// Input decodes key presses with a headless Bubble Tea program and queues
// the mapped actions for the game loop. The program never renders and never
// touches terminal modes; Terminal owns those.
type Input struct {
	logger  *log.Logger
	actions chan core.Action
	program *tea.Program
	done    chan struct{}

	mu  sync.Mutex
	err error
}

// inputModel forwards every bound key press to out.
type inputModel struct {
	keys   KeyMap
	out    chan<- core.Action
	logger *log.Logger
}

func (m inputModel) Init() tea.Cmd { return nil }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	action := m.keys.Action(keyMsg)
	if action == core.ActionNone {
		return m, nil
	}
	select {
	case m.out <- action:
	default:
		m.logger.Debug("input buffer full, dropping action", "action", action)
	}
	return m, nil
}

func (m inputModel) View() string { return "" }

// NewInput creates an input reader over in. Call Start to begin reading.
func NewInput(in io.Reader, keys KeyMap, logger *log.Logger) *Input {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	actions := make(chan core.Action, inputBuffer)
	model := inputModel{keys: keys, out: actions, logger: logger}

	return &Input{
		logger:  logger,
		actions: actions,
		done:    make(chan struct{}),
		program: tea.NewProgram(model,
			tea.WithInput(in),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
			tea.WithoutSignalHandler(),
		),
	}
}

// Start runs the decoder on its own goroutine.
func (i *Input) Start() {
	go func() {
		defer close(i.done)
		// Close quits gracefully, so any error here is a reader failure.
		// A bare ErrProgramKilled carries no cause and is not reported.
		_, err := i.program.Run()
		if err != nil && err != tea.ErrProgramKilled {
			i.mu.Lock()
			i.err = fmt.Errorf("input reader: %w", err)
			i.mu.Unlock()
			i.logger.Error("input reader stopped", "error", err)
		}
		// Update no longer runs, so nothing else sends on actions.
		close(i.actions)
	}()
}

// Poll returns the next queued action without waiting.
func (i *Input) Poll() (core.Action, bool) {
	select {
	case a, ok := <-i.actions:
		return a, ok
	default:
		return core.ActionNone, false
	}
}

// Err returns the reader failure, or nil while input is healthy or after a
// clean Close.
func (i *Input) Err() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.err
}

// Read blocks until an action arrives, the reader stops or ctx is done.
func (i *Input) Read(ctx context.Context) (core.Action, error) {
	select {
	case a, ok := <-i.actions:
		if !ok {
			if err := i.Err(); err != nil {
				return core.ActionNone, fmt.Errorf("%w: %w", engine.ErrInputClosed, err)
			}
			return core.ActionNone, engine.ErrInputClosed
		}
		return a, nil
	case <-ctx.Done():
		return core.ActionNone, ctx.Err()
	}
}

// Close stops the decoder and waits for it. It returns the reader's error,
// if it failed on its own.
func (i *Input) Close() error {
	i.program.Quit()
	<-i.done
	return i.Err()
}
