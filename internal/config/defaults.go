package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		Log: LogConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			PlayerChar: "█",
			PipeChar:   "▒",
		},
		Window: WindowConfig{
			Scale: 1,
			Title: "Flappy Bird",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
