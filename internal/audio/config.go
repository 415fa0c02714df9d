package audio

// Output format shared by the synthesizer, the mixer and every backend.
const (
	SampleRate    = 44100
	Channels      = 2
	BytesPerFrame = 2 * Channels // s16le stereo
)

// Config controls playback.
type Config struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[Sound]float64
}

// DefaultConfig returns a config with every effect at full volume.
func DefaultConfig() Config {
	vols := make(map[Sound]float64, soundCount)
	for _, s := range Sounds() {
		vols[s] = 1.0
	}
	vols[SoundMove] = 0.6
	return Config{
		Enabled:       true,
		MasterVolume:  0.5,
		EffectVolumes: vols,
	}
}

// volume returns the effective gain for s.
func (c Config) volume(s Sound) float64 {
	vol := clampVolume(c.MasterVolume)
	if ev, ok := c.EffectVolumes[s]; ok {
		vol *= clampVolume(ev)
	}
	return vol
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
