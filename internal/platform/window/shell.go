// Package window hosts the game in a desktop window through Ebiten.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures the window shell.
type Options struct {
	Runtime core.RuntimeConfig
	Scale   int
	Title   string
	Logger  *log.Logger
}

// jumpKeys trigger a jump, matching the terminal bindings.
var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Shell implements ebiten.Game for one game.
// Ebiten calls Update at the tick rate, so each Update is one fixed step.
type Shell struct {
	game    *flappy.Game
	surface *ImageSurface
	logger  *log.Logger
	state   core.GameState
}

// NewShell creates a shell around a fresh game.
func NewShell(opts Options) (*Shell, error) {
	face, err := NewFaceSource()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Shell{
		game:    flappy.New(flappy.NewRand(seed)),
		surface: NewImageSurface(face, flappy.ScreenWidth, flappy.ScreenHeight),
		logger:  logger,
	}, nil
}

// Update implements ebiten.Game. It runs one simulation step from the
// keyboard state.
func (s *Shell) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.logger.Info("quit", "score", s.state.Score)
		return ebiten.Termination
	}

	pressed, held := false, false
	for _, k := range jumpKeys {
		pressed = pressed || inpututil.IsKeyJustPressed(k)
		held = held || ebiten.IsKeyPressed(k)
	}

	prev := s.state
	s.state = s.game.Tick(pressed, held)

	switch {
	case !prev.GameOver && s.state.GameOver:
		s.logger.Info("game over", "score", s.state.Score)
	case prev.GameOver && !s.state.GameOver:
		s.logger.Debug("game restarted")
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Shell) Draw(screen *ebiten.Image) {
	s.surface.Target(screen)
	s.game.Render(s.surface)
}

// Layout implements ebiten.Game. It keeps the logical playfield size and
// lets Ebiten scale it to the window.
func (s *Shell) Layout(_, _ int) (int, int) {
	return int(flappy.ScreenWidth), int(flappy.ScreenHeight)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	shell, err := NewShell(opts)
	if err != nil {
		return err
	}

	scale := core.Max(opts.Scale, 1)
	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}

	ebiten.SetWindowSize(int(flappy.ScreenWidth)*scale, int(flappy.ScreenHeight)*scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(tps)

	shell.logger.Info("game started", "seed", opts.Runtime.Seed, "tick_rate", tps)
	if err := ebiten.RunGame(shell); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
