package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 400x600 window and play there.

Controls:
  Space/Up/W - Flap, or restart after game over
  Esc        - Quit

Examples:
  flappy window
  flappy window --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return window.Run(window.Options{
		Runtime: runtimeConfig(cfg, 0, 0),
		Scale:   cfg.Window.Scale,
		Title:   cfg.Window.Title,
		Logger:  newLogger(os.Stderr, cfg),
	})
}
