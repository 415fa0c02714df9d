package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds [name...]",
	Short: "Play sound effects",
	Long: `Plays each sound effect once to check the audio setup.
Without arguments every effect is played.

Effects: explode, lose, move, startup, pew, win`,
	Run: runSounds,
}

func runSounds(cmd *cobra.Command, args []string) {
	sounds, err := parseSounds(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	backend, err := audio.DetectBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Install pulseaudio-utils, pipewire, alsa-utils, sox or ffmpeg.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	audioCfg := cfg.AudioSettings()
	audioCfg.Enabled = true
	engine := audio.NewEngine(audioCfg, logger)
	if err := engine.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Using %s (%s)\n", backend.Name, backend.Path)
	for _, s := range sounds {
		fmt.Printf("  %s\n", s)
		engine.Play(s)
		time.Sleep(engine.Length(s) + 150*time.Millisecond)
	}

	if err := engine.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func parseSounds(names []string) ([]audio.Sound, error) {
	if len(names) == 0 {
		return audio.Sounds(), nil
	}
	var errs []error
	sounds := make([]audio.Sound, 0, len(names))
	for _, name := range names {
		s, ok := audio.ParseSound(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown sound %q", name))
			continue
		}
		sounds = append(sounds, s)
	}
	return sounds, errors.Join(errs...)
}
