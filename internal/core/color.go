package core

// Color is a logical paint colour. Each shell maps it to its native
// representation (ANSI codes in the terminal, RGBA in the window).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorGray
)

// String returns the colour name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
