package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the embedded
// file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Keys: KeysConfig{
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Shoot:   []string{" "},
			Pierce:  []string{"e"},
			Confirm: []string{"enter"},
			Quit:    []string{"q", "esc", "ctrl+c"},
		},
		Palette: map[string]string{},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			Effects: map[string]float64{
				"move": 0.6,
			},
		},
		Loop: LoopConfig{
			Sleep: time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
