package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color through lipgloss.
type Color uint8

// Palette used by the maze renderer and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightYellow
)

// Semantic aliases so games pick colors by role.
const (
	ColorWall   = ColorGray
	ColorPlayer = ColorBrightYellow
	ColorExit   = ColorBrightGreen
	ColorHUD    = ColorCyan
	ColorAlert  = ColorRed
)
