package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrown
)

// HealthColor picks a health bar colour: green above 60%, yellow above 30%, red otherwise.
func HealthColor(health, maxHealth int) Color {
	if maxHealth <= 0 {
		return ColorRed
	}
	pct := float64(health) / float64(maxHealth)
	switch {
	case pct > 0.6:
		return ColorGreen
	case pct > 0.3:
		return ColorYellow
	default:
		return ColorRed
	}
}
