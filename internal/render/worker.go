package render

import (
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Worker renders submitted frames on its own goroutine. It owns the surface
// exclusively from Start until Close returns.
type Worker struct {
	surface  Surface
	queue    *frameQueue
	logger   *log.Logger
	done     chan struct{}
	err      error
	rendered atomic.Int64
}

// NewWorker creates a worker for the given surface. Call Start to begin.
func NewWorker(s Surface, logger *log.Logger) *Worker {
	return &Worker{
		surface: s,
		queue:   newFrameQueue(),
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start launches the render loop. The surface is first fully redrawn with an
// empty frame.
func (w *Worker) Start() {
	go w.loop()
}

func (w *Worker) loop() {
	defer close(w.done)

	last := core.NewFrame()
	if err := Render(w.surface, &last, &last, true); err != nil {
		w.fail(err)
	}

	for {
		curr, ok := w.queue.pop()
		if !ok {
			return
		}
		// After a failure keep draining so Submit stays cheap, but stop
		// touching the surface.
		if w.err != nil {
			continue
		}
		if err := Render(w.surface, &last, &curr, false); err != nil {
			w.fail(err)
			continue
		}
		last = curr
		w.rendered.Add(1)
	}
}

func (w *Worker) fail(err error) {
	w.err = err
	w.logger.Error("render failed", "error", err)
}

// Submit queues a frame for rendering. It never blocks; the worker receives
// frames in submission order. Frames submitted after Close are dropped.
func (w *Worker) Submit(f core.Frame) {
	if !w.queue.push(f) {
		w.logger.Debug("frame submitted after close")
	}
}

// Close stops accepting frames, waits until every queued frame has been
// rendered and returns the first surface error, if any.
func (w *Worker) Close() error {
	w.queue.close()
	<-w.done
	w.logger.Debug("render worker stopped", "frames", w.rendered.Load())
	return w.err
}

// Rendered returns the number of frames painted so far, excluding the
// initial full redraw.
func (w *Worker) Rendered() int64 {
	return w.rendered.Load()
}

// Pending returns the number of frames waiting to be rendered.
func (w *Worker) Pending() int {
	return w.queue.len()
}
