// Package config loads the YAML presentation settings for the game: key
// bindings, the terminal palette, audio volumes, loop pacing and logging.
// Game rules are fixed in code and never configured here.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Config is the full settings file.
type Config struct {
	Keys    KeysConfig        `yaml:"keys"`
	Palette map[string]string `yaml:"palette"` // core color name -> lipgloss color
	Audio   AudioConfig       `yaml:"audio"`
	Loop    LoopConfig        `yaml:"loop"`
	Log     LogConfig         `yaml:"log"`
}

// KeysConfig lists the key names bound to each action, as Bubble Tea
// reports them ("left", "a", "ctrl+c"). "space" is accepted for " ".
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Shoot   []string `yaml:"shoot"`
	Pierce  []string `yaml:"pierce"`
	Confirm []string `yaml:"confirm"`
	Quit    []string `yaml:"quit"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	Effects      map[string]float64 `yaml:"effects"` // sound name -> volume
}

// LoopConfig paces the simulation loop.
type LoopConfig struct {
	Sleep time.Duration `yaml:"sleep"` // courtesy sleep after each tick
}

// LogConfig controls the log file output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Bindings returns the key names for every bindable action.
func (k KeysConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionLeft:    k.Left,
		core.ActionRight:   k.Right,
		core.ActionShoot:   k.Shoot,
		core.ActionPierce:  k.Pierce,
		core.ActionConfirm: k.Confirm,
		core.ActionQuit:    k.Quit,
	}
}

// Colors resolves the palette into core colors. Unknown names are skipped;
// Validate reports them.
func (c Config) Colors() map[core.Color]string {
	out := make(map[core.Color]string, len(c.Palette))
	for name, value := range c.Palette {
		if col, ok := core.ParseColor(name); ok {
			out[col] = value
		}
	}
	return out
}

// AudioSettings converts the audio section for the audio engine.
func (c Config) AudioSettings() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	for name, vol := range c.Audio.Effects {
		if s, ok := audio.ParseSound(name); ok {
			ac.EffectVolumes[s] = vol
		}
	}
	return ac
}

// Validate checks names and ranges.
func (c Config) Validate() error {
	var errs []error

	for action, keys := range c.Keys.Bindings() {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: no binding for %s", action))
		}
	}
	for name := range c.Palette {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("palette: unknown color %q", name))
		}
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio: master_volume %.2f outside [0, 1]", c.Audio.MasterVolume))
	}
	for name, vol := range c.Audio.Effects {
		if _, ok := audio.ParseSound(name); !ok {
			errs = append(errs, fmt.Errorf("audio: unknown effect %q", name))
		} else if vol < 0 || vol > 1 {
			errs = append(errs, fmt.Errorf("audio: effect %s volume %.2f outside [0, 1]", name, vol))
		}
	}
	if c.Loop.Sleep < 0 {
		errs = append(errs, fmt.Errorf("loop: negative sleep %s", c.Loop.Sleep))
	}

	return errors.Join(errs...)
}
