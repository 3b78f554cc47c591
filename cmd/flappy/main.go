// flappy is a Flappy Bird style arcade game for the terminal, SSH and the desktop.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.flappy/config.yaml)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a square through the pipes",
	Long: `Flappy is a small arcade game: the square falls, you flap,
and every pipe pair you pass scores a point.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy window
  flappy serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger creates the application logger.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	// Validate has already accepted the level
	level, _ := log.ParseLevel(cfg.Log.Level)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
}

// runtimeConfig builds the runtime config for a screen of w×h.
func runtimeConfig(cfg config.Config, w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}
}

func glyphs(cfg config.Config) tui.Glyphs {
	return tui.Glyphs{
		flappy.PlayerColor: cfg.Terminal.PlayerRune(),
		flappy.PipeColor:   cfg.Terminal.PipeRune(),
	}
}
