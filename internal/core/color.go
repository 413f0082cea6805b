package core

// Color is an abstract foreground color for a screen cell. The platform
// renderer maps each value to a concrete ANSI style; the game never deals in
// escape codes.
type Color uint8

// Palette used by the game renderer and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
