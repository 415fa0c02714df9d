package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

const (
	bufferDuration = 20 * time.Millisecond
	bufferSamples  = SampleRate * int(bufferDuration) / int(time.Second)
)

// activeSound tracks a playing sound instance
type activeSound struct {
	buffer []float64
	pos    int
	volume float64
}

type playRequest struct {
	buffer []float64
	volume float64
}

// Mixer sums active sounds and writes them to the output in fixed slices.
// Silence is written while idle to keep the player's pipe primed.
type Mixer struct {
	output io.Writer

	playQueue chan playRequest
	stopChan  chan struct{}
	done      chan struct{}
	stopped   atomic.Bool
	draining  atomic.Bool

	// Accessed only by the mix goroutine
	active []activeSound

	statsMu sync.Mutex
	played  uint64
	dropped uint64

	errChan chan error
}

// NewMixer creates a mixer writing to out.
func NewMixer(out io.Writer) *Mixer {
	return &Mixer{
		output:    out,
		playQueue: make(chan playRequest, 32),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		active:    make([]activeSound, 0, 8),
		errChan:   make(chan error, 1),
	}
}

// Start begins the mixing loop
func (m *Mixer) Start() {
	go m.loop()
}

// Stop halts the mix loop without waiting for it. A loop blocked in a
// write to the output only notices once the write returns.
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
}

// Wait blocks until the mix loop has exited or timeout passes, and reports
// whether it exited.
func (m *Mixer) Wait(timeout time.Duration) bool {
	select {
	case <-m.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Drain stops accepting sounds and waits up to timeout for the ones already
// playing to finish, then stops the loop. It reports whether they finished.
func (m *Mixer) Drain(timeout time.Duration) bool {
	m.draining.Store(true)
	finished := m.Wait(timeout)
	m.Stop()
	return finished
}

// Play queues a buffer at the given gain. It never blocks; when the queue is
// full the request is dropped.
func (m *Mixer) Play(buf []float64, volume float64) {
	if m.stopped.Load() || m.draining.Load() || len(buf) == 0 {
		return
	}

	select {
	case m.playQueue <- playRequest{buffer: buf, volume: volume}:
	default:
		m.statsMu.Lock()
		m.dropped++
		m.statsMu.Unlock()
	}
}

// Errors returns channel for pipe errors
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

func (m *Mixer) loop() {
	defer close(m.done)

	ticker := time.NewTicker(bufferDuration)
	defer ticker.Stop()

	mixBuf := make([]float64, bufferSamples)
	outBytes := make([]byte, bufferSamples*BytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.activate(req)

		case <-ticker.C:
			if m.draining.Load() && len(m.active) == 0 && len(m.playQueue) == 0 {
				return
			}
			clear(mixBuf)
			m.active = mixActive(m.active, mixBuf)
			floatToBytes(mixBuf, outBytes)

			if _, err := m.output.Write(outBytes); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

func (m *Mixer) activate(req playRequest) {
	m.active = append(m.active, activeSound{buffer: req.buffer, volume: req.volume})
	m.statsMu.Lock()
	m.played++
	m.statsMu.Unlock()
}

// mixActive adds every active sound into buf and returns the ones that
// still have samples left.
func mixActive(active []activeSound, buf []float64) []activeSound {
	remaining := active[:0]
	for i := range active {
		s := &active[i]
		for j := 0; j < len(buf) && s.pos < len(s.buffer); j++ {
			buf[j] += s.buffer[s.pos] * s.volume
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}
	return remaining
}

// floatToBytes converts float64 mono to interleaved stereo int16 LE bytes,
// soft limiting before the hard clip.
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}

		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}

		i16 := int16(v * 32767)
		idx := i * BytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16))
	}
}

// Stats returns played and dropped counts
func (m *Mixer) Stats() (played, dropped uint64) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.played, m.dropped
}
