package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap, or restart after game over
  Q/Esc      - Quit

The terminal owns the screen while playing, so logs are discarded
unless --log-file is given.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --log-file ~/.flappy/flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		path, expErr := config.ExpandHome(cfg.Log.File)
		if expErr != nil {
			return expErr
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(tui.Options{
		Runtime: runtimeConfig(cfg, width, height),
		Glyphs:  glyphs(cfg),
		Logger:  newLogger(logOut, cfg),
	})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
