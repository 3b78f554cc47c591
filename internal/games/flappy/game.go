// Package flappy implements a Flappy Bird-style game.
// The player controls a square that must pass through gaps in a stream of
// scrolling pipe pairs. The simulation is deterministic apart from the gap
// positions drawn from the injected Rand.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Playfield and physics constants, in logical pixels and pixels per tick.
const (
	ScreenWidth  = 400.0
	ScreenHeight = 600.0
	PlayerSize   = 20.0
	PipeWidth    = 60.0
	PipeGap      = 150.0 // Vertical size of the gap between pipes
	PipeSpeed    = 2.0   // How fast the front pair moves left per tick
	Gravity      = 0.4   // Downward acceleration per tick
	JumpVelocity = -8.0  // Velocity after a jump (negative = up)
	SpawnSpacing = 200.0 // Distance from the spawn line that triggers a new pair
	GapMargin    = 100.0 // Minimum distance of the gap centre from either edge
)

// Colours used when rendering.
const (
	BackgroundColor = core.ColorWhite
	PlayerColor     = core.ColorRed
	PipeColor       = core.ColorGreen
	TextColor       = core.ColorBlack
)

// State is the game's mode.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the Flappy Bird game logic.
type Game struct {
	state     State
	playerY   float64    // Player vertical centre
	playerVel float64    // Player vertical velocity
	pipes     *PipeQueue // Obstacle queue
	score     int        // Pairs passed
	passed    bool       // Whether the front pair has already been scored
}

// New creates a new game in the playing state.
func New(rng Rand) *Game {
	g := &Game{pipes: NewPipeQueue(rng)}
	g.Reset()
	return g
}

// Reset reinitializes all state to its start values.
func (g *Game) Reset() {
	g.state = StatePlaying
	g.playerY = ScreenHeight / 2
	g.playerVel = 0
	g.pipes.Clear()
	g.score = 0
	g.passed = false
}

// Step advances the game by one tick using the actions in the frame.
func (g *Game) Step(in core.InputFrame) core.GameState {
	g.Advance(in.Has(core.ActionJump))
	return g.State()
}

// Advance runs one fixed simulation step.
// While playing, jump overwrites the velocity after gravity is integrated.
// After game over, jump restarts the game and anything else is ignored.
func (g *Game) Advance(jump bool) {
	switch g.state {
	case StatePlaying:
		g.advancePlaying(jump)
	case StateGameOver:
		if jump {
			g.Reset()
		}
	}
}

func (g *Game) advancePlaying(jump bool) {
	g.playerVel += Gravity
	g.playerY += g.playerVel
	if jump {
		g.playerVel = JumpVelocity
	}

	if g.playerY < 0 || g.playerY > ScreenHeight {
		g.state = StateGameOver
		return
	}

	player := PlayerRect(g.playerY)

	if front := g.pipes.Front(); front != nil {
		front.X -= PipeSpeed

		if front.X < ScreenWidth/2 && !g.passed {
			g.score++
			g.passed = true
		}

		if front.X < -PipeWidth {
			g.pipes.Pop()
			g.passed = false
		}
	}

	if front := g.pipes.Front(); front != nil && front.Overlaps(player) {
		g.state = StateGameOver
	}

	if g.pipes.NeedsSpawn() {
		g.pipes.Spawn()
	}
}

// Jump handles a discrete jump key press outside the fixed-step loop.
// It is equivalent to a jump request on the next Advance.
func (g *Game) Jump() {
	switch g.state {
	case StatePlaying:
		g.playerVel = JumpVelocity
	case StateGameOver:
		g.Reset()
	}
}

// Tick combines both input paths of a shell that can poll the keyboard:
// a fresh press is handled as an event, then one step runs with the held state.
func (g *Game) Tick(pressed, held bool) core.GameState {
	if pressed {
		g.Jump()
	}
	g.Advance(held)
	return g.State()
}

// PlayerRect returns the player's bounding box for a vertical centre y.
func PlayerRect(y float64) core.Rect {
	return core.NewRect(
		ScreenWidth/2-PlayerSize/2,
		y-PlayerSize/2,
		PlayerSize,
		PlayerSize,
	)
}

// Render draws the current game state to the surface.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(BackgroundColor)

	switch g.state {
	case StatePlaying:
		dst.FillRect(PlayerRect(g.playerY), PlayerColor)
		for _, p := range g.pipes.pairs {
			dst.FillRect(p.TopRect(), PipeColor)
			dst.FillRect(p.BottomRect(), PipeColor)
		}
		dst.DrawText(10, 10, fmt.Sprintf("Score: %d", g.score), TextColor, 1.5)

	case StateGameOver:
		dst.DrawText(ScreenWidth/2-50, ScreenHeight/2-50, "Game Over!", TextColor, 2)
		dst.DrawText(ScreenWidth/2-70, ScreenHeight/2, fmt.Sprintf("Final Score: %d", g.score), TextColor, 1.5)
		dst.DrawText(ScreenWidth/2-100, ScreenHeight/2+50, "Press Space to Restart", TextColor, 1.5)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
	}
}

// Snapshot is a read-only copy of the full simulation state.
type Snapshot struct {
	State     State
	PlayerY   float64
	PlayerVel float64
	Score     int
	Passed    bool
	Pairs     []Pair
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.state,
		PlayerY:   g.playerY,
		PlayerVel: g.playerVel,
		Score:     g.score,
		Passed:    g.passed,
		Pairs:     g.pipes.Pairs(),
	}
}
