package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorWhite:  lipgloss.Color("15"),
	core.ColorBlack:  lipgloss.Color("0"),
	core.ColorRed:    lipgloss.Color("9"),
	core.ColorGreen:  lipgloss.Color("2"),
	core.ColorYellow: lipgloss.Color("11"),
	core.ColorBlue:   lipgloss.Color("12"),
	core.ColorGray:   lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if st, ok := styleCache[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := ansiColors[p.fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansiColors[p.bg]; ok {
		st = st.Background(c)
	}
	styleCache[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fg, start.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(pair).Render(run.String()))
		}
	}
	return sb.String()
}
