package render

import (
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// frameQueue is an unbounded FIFO of frames. Push never blocks; Pop blocks
// until a frame is available or the queue is closed and drained.
type frameQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frames []core.Frame
	closed bool
}

func newFrameQueue() *frameQueue {
	q := &frameQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends a copy of f. Pushing to a closed queue is a no-op and
// reports false.
func (q *frameQueue) push(f core.Frame) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.frames = append(q.frames, f)
	q.cond.Signal()
	return true
}

// pop returns the oldest frame. ok is false once the queue is closed and
// empty.
func (q *frameQueue) pop() (f core.Frame, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.frames) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.frames) == 0 {
		return core.Frame{}, false
	}
	f = q.frames[0]
	q.frames[0] = core.Frame{}
	q.frames = q.frames[1:]
	return f, true
}

// close wakes every waiter; frames already queued are still delivered.
func (q *frameQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// len returns the number of frames waiting.
func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}
