// Package config provides YAML-based configuration loading for the shells
// that host the game. It never configures the simulation itself.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Limits enforced by Validate.
const (
	MinTickRate    = 1
	MaxTickRate    = 240
	MinWindowScale = 1
	MaxWindowScale = 4
)

// Config contains all shell configuration.
type Config struct {
	TickRate int            `yaml:"tick_rate"`
	Seed     int64          `yaml:"seed"`
	Log      LogConfig      `yaml:"log"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Terminal shell only; empty discards logs
}

// TerminalConfig defines how the playfield is drawn with characters.
type TerminalConfig struct {
	PlayerChar string `yaml:"player_char"`
	PipeChar   string `yaml:"pipe_char"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Scale int    `yaml:"scale"`
	Title string `yaml:"title"`
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks that all values are usable by the shells.
func (c Config) Validate() error {
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d outside [%d, %d]", ErrInvalid, c.TickRate, MinTickRate, MaxTickRate)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q: %v", ErrInvalid, c.Log.Level, err)
	}
	if utf8.RuneCountInString(c.Terminal.PlayerChar) != 1 {
		return fmt.Errorf("%w: terminal.player_char must be a single character, got %q", ErrInvalid, c.Terminal.PlayerChar)
	}
	if utf8.RuneCountInString(c.Terminal.PipeChar) != 1 {
		return fmt.Errorf("%w: terminal.pipe_char must be a single character, got %q", ErrInvalid, c.Terminal.PipeChar)
	}
	if c.Window.Scale < MinWindowScale || c.Window.Scale > MaxWindowScale {
		return fmt.Errorf("%w: window.scale %d outside [%d, %d]", ErrInvalid, c.Window.Scale, MinWindowScale, MaxWindowScale)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalid)
	}
	return nil
}

// PlayerRune returns the terminal player character.
func (t TerminalConfig) PlayerRune() rune {
	r, _ := utf8.DecodeRuneInString(t.PlayerChar)
	return r
}

// PipeRune returns the terminal pipe character.
func (t TerminalConfig) PipeRune() rune {
	r, _ := utf8.DecodeRuneInString(t.PipeChar)
	return r
}
