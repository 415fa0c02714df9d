// invaders is a space invaders game for the terminal.
//
// Usage:
//
//	invaders                 - Play (same as 'invaders play')
//	invaders play            - Play
//	invaders keys            - List key bindings
//	invaders sounds [name]   - Play sound effects to check audio
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--mute               - Disable sound
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space invaders in your terminal",
	Long: `Defend the bottom row against a descending swarm.
The swarm speeds up as it thins out.

Available commands:
  play     - Play the game (default)
  keys     - Show key bindings
  sounds   - Play the sound effects

Examples:
  invaders
  invaders --mute
  invaders play --config ./my-invaders.yaml
  invaders sounds explode`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(soundsCmd)
}
