package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes at render time, so game
// code can pick colors without importing any terminal library.
type Color uint8

// Predefined colors for chips, highlights and HUD text.
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
