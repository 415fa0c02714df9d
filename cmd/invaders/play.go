package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a round. When it ends, confirm to play again or quit.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Space       - Shoot (up to 3 shots in flight)
  E           - Fire a piercer (1 at a time, passes through invaders)
  Enter       - New round from the result screen
  Q/Esc       - Quit

Bindings can be changed in the config file; see 'invaders keys'.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger, closeLog, err := newLogger(flagLogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := play(cfg, logger); err != nil {
		logger.Error("game stopped", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	closeLog()
}

// play runs one session. The render worker is joined before the terminal
// is restored so the last frame lands on the game screen.
func play(cfg config.Config, logger *log.Logger) error {
	audioCfg := cfg.AudioSettings()
	if flagMute {
		audioCfg.Enabled = false
	}
	sound := audio.NewEngine(audioCfg, logger)
	if err := sound.Start(); err != nil {
		return err
	}
	defer func() {
		if err := sound.Close(); err != nil {
			logger.Warn("audio close", "error", err)
		}
	}()

	terminal := tui.NewTerminal(os.Stdin, os.Stdout)
	if err := terminal.Enter(); err != nil {
		return err
	}
	defer func() {
		if err := terminal.Restore(); err != nil {
			logger.Warn("terminal restore", "error", err)
		}
	}()

	worker := render.NewWorker(tui.NewSurface(os.Stdout, cfg.Colors()), logger)
	worker.Start()

	keys := tui.NewKeyMap(cfg.Keys)
	input := tui.NewInput(os.Stdin, keys, logger)
	input.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	game := engine.New(input, sound, worker, engine.Options{
		Sleep:  cfg.Loop.Sleep,
		Logger: logger,
		Hints:  menuHints(keys),
	})
	logger.Info("session started", "config", flagConfig, "mute", !audioCfg.Enabled)

	runErr := game.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	inputErr := input.Close()
	renderErr := worker.Close()
	logger.Info("session ended", "frames", worker.Rendered())

	return errors.Join(runErr, inputErr, renderErr)
}

// menuHints formats the result screen hints from the key bindings.
func menuHints(keys tui.KeyMap) []string {
	bindings := keys.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s  %s", h.Key, h.Desc))
	}
	return hints
}
