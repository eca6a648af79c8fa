package core

// Color represents a foreground colour for a screen cell.
// The platform layer maps these onto terminal styles.
type Color uint8

// Predefined colours for board elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorGray
)
