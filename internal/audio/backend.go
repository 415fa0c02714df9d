package audio

import (
	"os/exec"
	"strconv"
)

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
)

// BackendConfig describes a CLI audio player fed raw s16le PCM on stdin.
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// DetectBackend searches for an available audio player.
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay
func DetectBackend() (*BackendConfig, error) {
	rateArg := strconv.Itoa(SampleRate)
	chanArg := strconv.Itoa(Channels)

	candidates := []BackendConfig{
		{
			Type: BackendPulse,
			Name: "pacat",
			Args: []string{"--raw", "--format=s16le", "--rate=" + rateArg, "--channels=" + chanArg, "--latency-msec=50", "--playback"},
		},
		{
			Type: BackendPipeWire,
			Name: "pw-cat",
			Args: []string{"--playback", "--format=s16", "--rate=" + rateArg, "--channels=" + chanArg, "--latency=50ms", "-"},
		},
		{
			Type: BackendALSA,
			Name: "aplay",
			Args: []string{"-t", "raw", "-f", "S16_LE", "-r", rateArg, "-c", chanArg, "-q"},
		},
		{
			Type: BackendSoX,
			Name: "play",
			Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", chanArg, "-r", rateArg, "-", "-d", "-q"},
		},
		{
			Type: BackendFFplay,
			Name: "ffplay",
			Args: []string{"-nodisp", "-autoexit", "-f", "s16le", "-ac", chanArg, "-ar", rateArg,
				"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet"},
		},
	}

	for _, c := range candidates {
		path, err := lookPath(c.Name)
		if err != nil {
			continue
		}
		c.Path = path
		return &c, nil
	}
	return nil, ErrNoAudioBackend
}
