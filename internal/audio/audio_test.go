package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

func TestSoundNames(t *testing.T) {
	for _, s := range Sounds() {
		got, ok := ParseSound(s.String())
		if !ok || got != s {
			t.Errorf("ParseSound(%q) = %v, %v; want %v", s.String(), got, ok, s)
		}
	}
	if _, ok := ParseSound("boing"); ok {
		t.Error("ParseSound accepted an unknown name")
	}
	if Sound(99).String() != "unknown" {
		t.Errorf("out of range sound = %q", Sound(99).String())
	}
}

func TestSynthesizeEverySound(t *testing.T) {
	for _, s := range Sounds() {
		t.Run(s.String(), func(t *testing.T) {
			buf := synthesize(s)
			if len(buf) == 0 {
				t.Fatal("empty buffer")
			}
			if len(buf) > rate.N(maxEffectLength)+512 {
				t.Errorf("buffer length %d exceeds cap", len(buf))
			}
			var peak float64
			for _, v := range buf {
				if math.IsNaN(v) {
					t.Fatal("NaN sample")
				}
				peak = max(peak, math.Abs(v))
			}
			if peak == 0 {
				t.Error("buffer is silent")
			}
			if peak > 1.0001 {
				t.Errorf("peak %f outside [-1, 1]", peak)
			}
		})
	}
}

func TestConfigVolume(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		sound  Sound
		expect float64
	}{
		{"defaults", DefaultConfig(), SoundPew, 0.5},
		{"effect scaled", DefaultConfig(), SoundMove, 0.3},
		{"master clamped", Config{MasterVolume: 3}, SoundWin, 1},
		{"negative clamped", Config{MasterVolume: -1}, SoundWin, 0},
		{"effect clamped", Config{MasterVolume: 1, EffectVolumes: map[Sound]float64{SoundWin: 2}}, SoundWin, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.volume(tt.sound); math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("volume = %f, want %f", got, tt.expect)
			}
		})
	}
}

func TestDetectBackend(t *testing.T) {
	defer func(orig func(string) (string, error)) { lookPath = orig }(lookPath)

	tests := []struct {
		name      string
		available map[string]bool
		expect    string
		err       error
	}{
		{"prefers pacat", map[string]bool{"pacat": true, "aplay": true}, "pacat", nil},
		{"falls back to aplay", map[string]bool{"aplay": true, "ffplay": true}, "aplay", nil},
		{"last resort ffplay", map[string]bool{"ffplay": true}, "ffplay", nil},
		{"nothing installed", map[string]bool{}, "", ErrNoAudioBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookPath = func(name string) (string, error) {
				if tt.available[name] {
					return "/usr/bin/" + name, nil
				}
				return "", errors.New("not found")
			}

			b, err := DetectBackend()
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if tt.err != nil {
				return
			}
			if b.Name != tt.expect || b.Path != "/usr/bin/"+tt.expect {
				t.Errorf("backend = %s at %s, want %s", b.Name, b.Path, tt.expect)
			}
		})
	}
}

func TestFloatToBytes(t *testing.T) {
	in := []float64{0, 0.5, -0.5, 5, -5}
	out := make([]byte, len(in)*BytesPerFrame)
	floatToBytes(in, out)

	sample := func(i, ch int) int16 {
		return int16(binary.LittleEndian.Uint16(out[i*BytesPerFrame+ch*2:]))
	}

	if sample(0, 0) != 0 {
		t.Errorf("silence encoded as %d", sample(0, 0))
	}
	if got := sample(1, 0); got != 16383 {
		t.Errorf("0.5 encoded as %d", got)
	}
	for i := range in {
		if sample(i, 0) != sample(i, 1) {
			t.Errorf("sample %d: channels differ", i)
		}
	}
	if sample(3, 0) <= sample(1, 0) || sample(3, 0) > 32767 {
		t.Errorf("loud sample not limited: %d", sample(3, 0))
	}
	if sample(4, 0) != -sample(3, 0) {
		t.Errorf("limiter not symmetric: %d vs %d", sample(4, 0), sample(3, 0))
	}
}

func TestMixActive(t *testing.T) {
	active := []activeSound{
		{buffer: []float64{0.1, 0.1, 0.1, 0.1}, volume: 1},
		{buffer: []float64{0.2, 0.2}, volume: 0.5},
	}
	buf := make([]float64, 3)

	active = mixActive(active, buf)

	want := []float64{0.2, 0.2, 0.1}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-9 {
			t.Errorf("buf[%d] = %f, want %f", i, buf[i], want[i])
		}
	}
	if len(active) != 1 || active[0].pos != 3 {
		t.Fatalf("active = %+v, want one sound at pos 3", active)
	}
}

// syncBuffer is a bytes.Buffer safe for the mixer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}

func TestEnginePlaysIntoWriter(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	out := &syncBuffer{}
	if err := e.StartWithWriter(out); err != nil {
		t.Fatalf("StartWithWriter: %v", err)
	}
	if !e.Enabled() {
		t.Fatal("engine not enabled after start")
	}

	e.Play(SoundPew)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data := out.Bytes()
	if len(data) == 0 {
		t.Fatal("nothing written")
	}
	nonZero := false
	for _, b := range data {
		if b != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("only silence written")
	}

	played, _ := e.mixer.Stats()
	if played != 1 {
		t.Errorf("played = %d, want 1", played)
	}
}

func TestEngineLength(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	if got := e.Length(SoundExplode); got < 290*time.Millisecond || got > 310*time.Millisecond {
		t.Errorf("explode length = %s, want about 300ms", got)
	}
	if got := e.Length(Sound(-1)); got != 0 {
		t.Errorf("invalid sound length = %s", got)
	}
}

func TestEngineCloseTwice(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	if err := e.StartWithWriter(&syncBuffer{}); err != nil {
		t.Fatalf("StartWithWriter: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := e.Close(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("second Close = %v, want ErrNotRunning", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEngineGoesSilentOnWriteError(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	if err := e.StartWithWriter(failingWriter{}); err != nil {
		t.Fatalf("StartWithWriter: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for e.Enabled() {
		if time.Now().After(deadline) {
			t.Fatal("engine still enabled after write error")
		}
		time.Sleep(5 * time.Millisecond)
	}

	e.Play(SoundExplode) // must not block or panic
	if err := e.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

// stuckWriter blocks every write until release is closed, like a player
// that stopped reading its pipe.
type stuckWriter struct {
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newStuckWriter() *stuckWriter {
	return &stuckWriter{entered: make(chan struct{}), release: make(chan struct{})}
}

func (w *stuckWriter) Write(p []byte) (int, error) {
	w.once.Do(func() { close(w.entered) })
	<-w.release
	return len(p), nil
}

func TestMixerDrainWithBlockedOutput(t *testing.T) {
	w := newStuckWriter()
	m := NewMixer(w)
	m.Start()
	<-w.entered

	start := time.Now()
	if m.Drain(50 * time.Millisecond) {
		t.Error("Drain reported finished while output was blocked")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Drain took %v", elapsed)
	}
	if m.Wait(20 * time.Millisecond) {
		t.Error("mix loop exited while still inside Write")
	}

	close(w.release)
	if !m.Wait(time.Second) {
		t.Error("mix loop did not exit after the write returned")
	}
}

func TestEngineCloseWithBlockedOutput(t *testing.T) {
	oldDrain, oldStop := drainTimeout, stopTimeout
	drainTimeout, stopTimeout = 50*time.Millisecond, 50*time.Millisecond
	defer func() { drainTimeout, stopTimeout = oldDrain, oldStop }()

	w := newStuckWriter()
	defer close(w.release)

	e := NewEngine(DefaultConfig(), nil)
	if err := e.StartWithWriter(w); err != nil {
		t.Fatalf("StartWithWriter: %v", err)
	}
	<-w.entered

	done := make(chan error, 1)
	go func() { done <- e.Close() }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Close: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Close hung on a blocked output")
	}
}

func TestEngineMutedIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	e := NewEngine(cfg, nil)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if e.Enabled() {
		t.Error("muted engine reports enabled")
	}
	e.Play(SoundWin)
	if err := e.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSinkImplementations(t *testing.T) {
	var _ Sink = Silent{}
	var _ Sink = (*Engine)(nil)
	Silent{}.Play(SoundLose)
}
