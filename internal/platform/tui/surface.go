package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Glyphs selects the rune painted for each fill colour.
// Colours without an entry are painted as blank background.
type Glyphs map[core.Color]rune

// CellSurface maps a logical playfield onto a Screen.
// The playfield is scaled to fit the screen, corrected for tall cells and
// centred; anything outside it is left blank.
type CellSurface struct {
	screen  *core.Screen
	logical struct{ w, h float64 }
	glyphs  Glyphs

	pxPerCol float64 // Logical pixels per column
	pxPerRow float64 // Logical pixels per row
	cols     int     // Playfield width in cells
	rows     int     // Playfield height in cells
	offX     int
	offY     int
	bg       core.Color
}

// NewCellSurface creates a surface for a logical playfield of w×h pixels.
func NewCellSurface(screen *core.Screen, w, h float64, glyphs Glyphs) *CellSurface {
	s := &CellSurface{
		screen: screen,
		glyphs: glyphs,
	}
	s.logical.w = w
	s.logical.h = h
	s.Layout()
	return s
}

// Layout recomputes the cell mapping. Call it after resizing the screen.
func (s *CellSurface) Layout() {
	sw := float64(core.Max(s.screen.Width(), 1))
	sh := float64(core.Max(s.screen.Height(), 1))

	s.pxPerCol = math.Max(s.logical.w/sw, s.logical.h/(sh*cellAspect))
	s.pxPerRow = s.pxPerCol * cellAspect

	s.cols = core.Min(int(math.Ceil(s.logical.w/s.pxPerCol)), s.screen.Width())
	s.rows = core.Min(int(math.Ceil(s.logical.h/s.pxPerRow)), s.screen.Height())
	s.offX = (s.screen.Width() - s.cols) / 2
	s.offY = (s.screen.Height() - s.rows) / 2
}

// Bounds returns the playfield area in cells.
func (s *CellSurface) Bounds() (x, y, w, h int) {
	return s.offX, s.offY, s.cols, s.rows
}

// Width returns the logical playfield width.
func (s *CellSurface) Width() float64 {
	return s.logical.w
}

// Height returns the logical playfield height.
func (s *CellSurface) Height() float64 {
	return s.logical.h
}

// Clear blanks the screen and paints the playfield background.
func (s *CellSurface) Clear(c core.Color) {
	s.bg = c
	s.screen.Clear()
	s.screen.FillArea(s.offX, s.offY, s.offX+s.cols, s.offY+s.rows, core.Cell{Rune: ' ', Bg: c})
}

// FillRect paints the cells whose centres fall inside r, clipped to the
// playfield. A rectangle with positive size always covers at least one cell.
func (s *CellSurface) FillRect(r core.Rect, c core.Color) {
	x0, x1 := span(r.X, r.Right(), s.pxPerCol)
	y0, y1 := span(r.Y, r.Bottom(), s.pxPerRow)

	x0 = core.Clamp(x0, 0, s.cols)
	x1 = core.Clamp(x1, 0, s.cols)
	y0 = core.Clamp(y0, 0, s.rows)
	y1 = core.Clamp(y1, 0, s.rows)

	cell := core.Cell{Rune: ' ', Bg: s.bg}
	if g, ok := s.glyphs[c]; ok {
		cell.Rune = g
		cell.Fg = c
	} else {
		cell.Bg = c
	}
	s.screen.FillArea(s.offX+x0, s.offY+y0, s.offX+x1, s.offY+y1, cell)
}

// DrawText writes text at the cell nearest to (x, y). Terminal text has a
// single size, so scale is ignored.
func (s *CellSurface) DrawText(x, y float64, text string, c core.Color, _ float64) {
	col := s.offX + int(math.Round(x/s.pxPerCol))
	row := s.offY + int(math.Round(y/s.pxPerRow))
	s.screen.DrawText(col, row, text, c)
}

// span converts [lo, hi) in logical pixels to a cell range.
func span(lo, hi, px float64) (int, int) {
	if hi <= lo {
		return 0, 0
	}
	start := int(math.Round(lo / px))
	end := int(math.Round(hi / px))
	if end <= start {
		end = start + 1
	}
	return start, end
}
