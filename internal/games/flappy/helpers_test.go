package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fixedRand always returns the same gap centre.
type fixedRand float64

func (f fixedRand) Float64Range(lo, hi float64) float64 {
	return float64(f)
}

// drawOp is one recorded Surface call.
type drawOp struct {
	kind  string // "clear", "rect" or "text"
	rect  core.Rect
	x, y  float64
	text  string
	color core.Color
	scale float64
}

// recordingSurface captures draw calls for assertions.
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) Clear(c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "clear", color: c})
}

func (s *recordingSurface) FillRect(r core.Rect, c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "rect", rect: r, color: c})
}

func (s *recordingSurface) DrawText(x, y float64, text string, c core.Color, scale float64) {
	s.ops = append(s.ops, drawOp{kind: "text", x: x, y: y, text: text, color: c, scale: scale})
}

func (s *recordingSurface) Width() float64  { return ScreenWidth }
func (s *recordingSurface) Height() float64 { return ScreenHeight }

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) texts() []string {
	var out []string
	for _, op := range s.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

// autopilot parks the player in the centre of the front gap so the game
// keeps running through many pairs.
func autopilot(g *Game) {
	g.playerVel = 0
	if front := g.pipes.Front(); front != nil {
		g.playerY = front.GapY
		return
	}
	g.playerY = ScreenHeight / 2
}

func (p Pair) String() string {
	return fmt.Sprintf("pair#%d(x=%.1f gap=%.1f)", p.ID, p.X, p.GapY)
}
