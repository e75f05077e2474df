package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the zones, sprites and HUD.
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
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBrown
	ColorDeepBlue
)

// progressRamp runs from needy red through amber to healthy green.
var progressRamp = []Color{ColorBrightRed, ColorRed, ColorOrange, ColorYellow, ColorBrightGreen}

// ProgressColor picks a color along the red-to-green ramp for done out of total.
// Values outside the range are clamped.
func ProgressColor(done, total int) Color {
	if total <= 0 {
		return progressRamp[len(progressRamp)-1]
	}
	done = Clamp(done, 0, total)
	idx := done * (len(progressRamp) - 1) / total
	return progressRamp[idx]
}
