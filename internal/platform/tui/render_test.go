package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenKeepsContent(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.FillArea(0, 0, 10, 3, core.Cell{Rune: ' ', Bg: core.ColorWhite})
	s.DrawText(1, 1, "Hi", core.ColorBlack)
	s.SetCell(5, 2, core.Cell{Rune: '#', Fg: core.ColorGreen, Bg: core.ColorWhite})

	out := RenderScreen(s)

	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 3 lines, got %q", out)
	}
	if !strings.Contains(out, "Hi") {
		t.Errorf("output should contain the text, got %q", out)
	}
	if !strings.Contains(out, "#") {
		t.Errorf("output should contain the glyph, got %q", out)
	}
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorDefault)

	out := RenderScreen(s)
	if out != "ab  \n    " {
		t.Errorf("uncoloured cells should render unstyled, got %q", out)
	}
}

func TestStyleCache(t *testing.T) {
	p := colorPair{fg: core.ColorRed, bg: core.ColorWhite}
	styleFor(p)
	if _, ok := styleCache[p]; !ok {
		t.Error("style should be cached after first use")
	}
}
