package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorBrightRed
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorWhite
	ColorGray
)
