package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// footerHeight is the number of rows reserved below the playfield for help.
const footerHeight = 1

// Options configures a terminal game session.
type Options struct {
	Runtime core.RuntimeConfig
	Glyphs  Glyphs
	Logger  *log.Logger
}

// DefaultGlyphs returns the runes used for the player and the pipes.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		flappy.PlayerColor: '█',
		flappy.PipeColor:   '▒',
	}
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	surface    *CellSurface
	stepper    *clock.Stepper
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	glyphs := opts.Glyphs
	if glyphs == nil {
		glyphs = DefaultGlyphs()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 1))
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       flappy.New(flappy.NewRand(cfg.Seed)),
		screen:     screen,
		surface:    NewCellSurface(screen, flappy.ScreenWidth, flappy.ScreenHeight, glyphs),
		stepper:    clock.NewStepper(cfg.TickRate),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records actions for the next simulation step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)
	}
	return m, nil
}

// handleResize refits the playfield. The game itself is unaffected because
// it runs in logical pixels.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
	m.surface.Layout()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs every simulation step that is due since the last tick.
// Pending input is consumed by the first step; if no step is due yet it
// waits for the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.stepper.Step()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	for range m.stepper.Advance(elapsed) {
		prev := m.gameState
		m.gameState = m.game.Step(m.inputFrame)
		m.inputFrame.Clear()
		m.logTransition(prev, m.gameState)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, next core.GameState) {
	switch {
	case !prev.GameOver && next.GameOver:
		m.logger.Info("game over", "score", next.Score)
	case prev.GameOver && !next.GameOver:
		m.logger.Debug("game restarted")
	}
}

// State returns the most recent game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the playfield followed by the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.surface)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
