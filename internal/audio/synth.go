package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveform selects an oscillator shape.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

var rate = beep.SampleRate(SampleRate)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveform
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave waveform) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
		wave:     wave,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	total := rate.N(d)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero
// volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one tone of a short melody.
type note struct {
	freq float64
	dur  time.Duration
	wave waveform
}

func melody(notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := newOscillator(n.freq, n.dur, n.wave)
		parts = append(parts, newEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3))
	}
	return beep.Seq(parts...)
}

// effect builds the unity-gain streamer for a sound.
func effect(s Sound) beep.Streamer {
	switch s {
	case SoundPew:
		return melody(
			note{1320, 25 * time.Millisecond, waveSquare},
			note{990, 25 * time.Millisecond, waveSquare},
			note{660, 30 * time.Millisecond, waveSquare},
		)
	case SoundExplode:
		noise := newOscillator(0, 300*time.Millisecond, waveNoise)
		rumble := newOscillator(70, 300*time.Millisecond, waveSaw)
		// Mix pads with silence once its inputs drain.
		return beep.Take(rate.N(300*time.Millisecond), beep.Mix(
			newVolume(newEnvelope(noise, 300*time.Millisecond, 2*time.Millisecond, 250*time.Millisecond), 0.6),
			newVolume(newEnvelope(rumble, 300*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond), 0.4),
		))
	case SoundMove:
		return melody(note{110, 70 * time.Millisecond, waveSquare})
	case SoundStartup:
		return melody(
			note{523.25, 90 * time.Millisecond, waveSine},
			note{659.25, 90 * time.Millisecond, waveSine},
			note{783.99, 90 * time.Millisecond, waveSine},
			note{1046.50, 180 * time.Millisecond, waveSine},
		)
	case SoundWin:
		return melody(
			note{783.99, 120 * time.Millisecond, waveSquare},
			note{1046.50, 120 * time.Millisecond, waveSquare},
			note{1318.51, 120 * time.Millisecond, waveSquare},
			note{1567.98, 360 * time.Millisecond, waveSine},
		)
	case SoundLose:
		return melody(
			note{392.00, 150 * time.Millisecond, waveSaw},
			note{311.13, 150 * time.Millisecond, waveSaw},
			note{261.63, 150 * time.Millisecond, waveSaw},
			note{196.00, 400 * time.Millisecond, waveSaw},
		)
	default:
		return nil
	}
}

// maxEffectLength caps a rendered effect.
const maxEffectLength = 2 * time.Second

// synthesize renders a sound to mono float samples in [-1, 1].
func synthesize(s Sound) []float64 {
	st := effect(s)
	if st == nil {
		return nil
	}

	limit := rate.N(maxEffectLength)
	var out []float64
	chunk := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := st.Stream(chunk)
		for i := 0; i < n; i++ {
			out = append(out, chunk[i][0])
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}
