package core

// Color is a named fill colour understood by every host.
// Terminal hosts map it to ANSI codes, window hosts to RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorOrange
)

// String returns the CSS-style name of the colour.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	case ColorOrange:
		return "orange"
	default:
		return "default"
	}
}
