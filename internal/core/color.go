package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
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
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// ANSI returns the ANSI color index for this color, or -1 for the terminal default.
func (c Color) ANSI() int {
	switch c {
	case ColorBlack:
		return 0
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorGray:
		return 245
	default:
		return -1
	}
}

// Style is a foreground/background color pair applied to a cell.
type Style struct {
	Fg Color
	Bg Color
}

// NewStyle creates a style with the given foreground and background.
func NewStyle(fg, bg Color) Style {
	return Style{Fg: fg, Bg: bg}
}

// StyleDefault leaves both colors to the terminal.
var StyleDefault = Style{}
