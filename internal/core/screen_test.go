package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X'})
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(100, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenSetCellKeepsColours(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetCell(1, 0, Cell{Rune: '#', Fg: ColorGreen, Bg: ColorWhite})

	got := s.GetCell(1, 0)
	if got.Rune != '#' || got.Fg != ColorGreen || got.Bg != ColorWhite {
		t.Errorf("GetCell(1, 0) = %+v", got)
	}

	// DrawText replaces rune and foreground only
	s.DrawText(1, 0, "@", ColorRed)
	got = s.GetCell(1, 0)
	if got.Rune != '@' || got.Fg != ColorRed || got.Bg != ColorWhite {
		t.Errorf("DrawText should keep the background, got %+v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillCell(Cell{Rune: 'X', Fg: ColorRed, Bg: ColorBlue})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.FillCell(Cell{Rune: ' ', Bg: ColorWhite})
	s.DrawText(2, 1, "Hello", ColorBlack)

	for i, ch := range "Hello" {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, cell.Rune)
		}
		if cell.Fg != ColorBlack || cell.Bg != ColorWhite {
			t.Errorf("DrawText should set fg and keep bg, got %+v", cell)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorBlack)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenFillArea(t *testing.T) {
	s := NewScreen(10, 10)
	fill := Cell{Rune: '#', Fg: ColorGreen}
	s.FillArea(2, 2, 5, 5, fill)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y) != fill {
				t.Errorf("FillArea: expected fill at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillArea should not affect outside area")
	}

	// Out of range bounds are clamped rather than panicking
	s.FillArea(-5, -5, 100, 1, fill)
	if s.Get(9, 0) != '#' {
		t.Error("FillArea should clamp to the screen")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(firstRow(s), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", firstRow(s))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(firstRow(s), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", firstRow(s))
	}
}

func firstRow(s *Screen) string {
	return strings.SplitN(s.String(), "\n", 2)[0]
}
