package audio

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Close waits up to drainTimeout for queued effects, then up to stopTimeout
// for the mixer to exit once the output is closed.
var (
	drainTimeout = 2 * time.Second
	stopTimeout  = 500 * time.Millisecond
)

// Engine is a Sink that streams effects into an external player process.
type Engine struct {
	config Config
	logger *log.Logger
	cache  [soundCount][]float64
	mixer  *Mixer

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser

	running    atomic.Bool
	silentMode atomic.Bool

	closing chan struct{}
	wg      sync.WaitGroup
}

// NewEngine creates an engine and synthesizes every effect up front.
func NewEngine(cfg Config, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		config:  cfg,
		logger:  logger,
		closing: make(chan struct{}),
	}
	for _, s := range Sounds() {
		e.cache[s] = synthesize(s)
	}
	return e
}

// Start launches the player process and the mixer. A missing or failing
// backend puts the engine into silent mode; that is logged, not returned.
func (e *Engine) Start() error {
	if e.running.Load() {
		return errors.New("audio engine already running")
	}
	if !e.config.Enabled {
		e.logger.Debug("audio muted")
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}

	backend, err := DetectBackend()
	if err != nil {
		e.logger.Warn("audio disabled", "error", err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.backend = backend

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		e.logger.Warn("audio disabled", "backend", backend.Name, "error", err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		e.logger.Warn("audio disabled", "backend", backend.Name, "error", err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.cmd = cmd
	e.stdin = stdin

	e.wg.Add(1)
	go e.monitorProcess()

	e.logger.Info("audio started", "backend", backend.Name)
	e.startMixer(stdin)
	return nil
}

// StartWithWriter runs the mixer against w instead of a player process.
func (e *Engine) StartWithWriter(w io.Writer) error {
	if e.running.Load() {
		return errors.New("audio engine already running")
	}
	e.startMixer(w)
	return nil
}

func (e *Engine) startMixer(w io.Writer) {
	e.mixer = NewMixer(w)
	e.mixer.Start()

	e.wg.Add(1)
	go e.monitorMixer()

	e.running.Store(true)
}

func (e *Engine) monitorProcess() {
	defer e.wg.Done()

	err := e.cmd.Wait()
	if err != nil && e.running.Load() && !e.silentMode.Load() {
		e.logger.Warn("audio player exited", "backend", e.backend.Name, "error", err)
		e.silentMode.Store(true)
	}
}

func (e *Engine) monitorMixer() {
	defer e.wg.Done()

	select {
	case <-e.mixer.done:
	case <-e.closing:
		return
	}
	select {
	case err := <-e.mixer.Errors():
		e.logger.Warn("audio output failed", "error", err)
		e.silentMode.Store(true)
	default:
	}
}

// Play queues s for playback. It never blocks.
func (e *Engine) Play(s Sound) {
	if !e.Enabled() || s < 0 || s >= soundCount {
		return
	}
	e.mixer.Play(e.cache[s], e.config.volume(s))
}

// Length returns how long s plays.
func (e *Engine) Length(s Sound) time.Duration {
	if s < 0 || s >= soundCount {
		return 0
	}
	return time.Duration(len(e.cache[s])) * time.Second / SampleRate
}

// Enabled reports whether triggers currently reach a player.
func (e *Engine) Enabled() bool {
	return e.running.Load() && !e.silentMode.Load() && e.mixer != nil
}

// Close lets queued effects finish, then stops the mixer and the player.
func (e *Engine) Close() error {
	if !e.running.CompareAndSwap(true, false) {
		return fmt.Errorf("close: %w", ErrNotRunning)
	}

	if e.mixer != nil && !e.mixer.Drain(drainTimeout) {
		e.logger.Debug("audio drain timed out")
	}
	// Closing the pipe unblocks a mixer stuck writing to a player that
	// stopped reading.
	if e.stdin != nil {
		e.stdin.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}
	close(e.closing)
	if e.mixer != nil && !e.mixer.Wait(stopTimeout) {
		e.logger.Warn("audio output blocked, abandoning mixer")
	}
	e.wg.Wait()

	if e.mixer != nil {
		played, dropped := e.mixer.Stats()
		e.logger.Debug("audio stopped", "played", played, "dropped", dropped)
	}
	return nil
}
