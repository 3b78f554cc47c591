package window

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// baseTextSize is the pixel height of the arcade face at text scale 1.
const baseTextSize = 8

// palette maps core colours to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0, 0, 0, 0},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorBlue:    {0, 0, 255, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

// NewFaceSource loads the arcade font used for all text.
func NewFaceSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
}

// ImageSurface draws onto an ebiten image in logical pixels.
type ImageSurface struct {
	dst  *ebiten.Image
	face *text.GoTextFaceSource
	w, h float64
}

// NewImageSurface creates a surface of w×h logical pixels.
func NewImageSurface(face *text.GoTextFaceSource, w, h float64) *ImageSurface {
	return &ImageSurface{face: face, w: w, h: h}
}

// Target sets the image the next frame is drawn on.
func (s *ImageSurface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Width returns the logical width in pixels.
func (s *ImageSurface) Width() float64 { return s.w }

// Height returns the logical height in pixels.
func (s *ImageSurface) Height() float64 { return s.h }

// Clear fills the whole target with c.
func (s *ImageSurface) Clear(c core.Color) {
	s.dst.Fill(palette[c])
}

// FillRect draws a solid rectangle. Empty rectangles draw nothing.
func (s *ImageSurface) FillRect(r core.Rect, c core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), palette[c], false)
}

// DrawText draws text with its top-left corner at (x, y).
func (s *ImageSurface) DrawText(x, y float64, msg string, c core.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(palette[c])
	text.Draw(s.dst, msg, &text.GoTextFace{
		Source: s.face,
		Size:   baseTextSize * scale,
	}, op)
}
