package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows the key bindings from the active config.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	keys := tui.NewKeyMap(cfg.Keys)

	fmt.Println("Key bindings:")
	fmt.Println()

	// Calculate column widths
	maxKeyLen := 4 // "Keys" header
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			if n := len(b.Help().Key); n > maxKeyLen {
				maxKeyLen = n
			}
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Keys", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "----", "------")

	// Print bindings
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			fmt.Printf("  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
		}
	}

	fmt.Println()
	fmt.Println("Change them under 'keys:' in ~/.invaders/config.yaml.")
}
