// Package audio plays the game's sound effects. Effects are synthesized with
// beep and streamed as raw PCM into whichever command-line player the system
// provides; without one the engine runs silently.
package audio

import "errors"

// Sound identifies a sound effect trigger.
type Sound int

const (
	SoundExplode Sound = iota // an invader was destroyed
	SoundLose                 // the round was lost or abandoned
	SoundMove                 // the swarm stepped
	SoundStartup              // a round is starting
	SoundPew                  // a projectile was fired
	SoundWin                  // the swarm was cleared
	soundCount
)

var soundNames = [soundCount]string{
	SoundExplode: "explode",
	SoundLose:    "lose",
	SoundMove:    "move",
	SoundStartup: "startup",
	SoundPew:     "pew",
	SoundWin:     "win",
}

// String returns the trigger name.
func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSound looks up a sound by trigger name.
func ParseSound(name string) (Sound, bool) {
	for i, n := range soundNames {
		if n == name {
			return Sound(i), true
		}
	}
	return 0, false
}

// Sounds returns every sound effect.
func Sounds() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}

// Sink receives sound triggers. Play must not block and has no result:
// the game never depends on playback.
type Sink interface {
	Play(s Sound)
}

// Silent is a Sink that discards every trigger.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Sound) {}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrNotRunning     = errors.New("audio engine not running")
)
