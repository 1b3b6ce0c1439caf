package tui

import "github.com/ajitssourat/aji/internal/home"

// Color constants for the aji TUI theme
const (
	// Base Colors
	ColorCardBackground = "#2A1A10" // Dark brown
	ColorBorder         = "#4A3F38" // Warm grey

	// Text Colors
	ColorPrimaryText   = "#F2EDE6" // Titles, user input
	ColorSecondaryText = "#C7B9AA" // Descriptions, labels
	ColorDisabledText  = "#7D7368" // Muted text
	ColorPlaceholder   = "#C7B9AA"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (orange theme)
	ColorAccentMain   = "#F97316" // Logo, active borders
	ColorAccentBright = "#FDBA74" // Highlights, current step

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
	ColorNeutral = "#9CA3AF"
)

// levelColor maps the dashboard level colour to the palette
func levelColor(c home.Color) string {
	switch c {
	case home.ColorRed:
		return ColorError
	case home.ColorYellow:
		return ColorWarning
	case home.ColorGreen:
		return ColorSuccess
	default:
		return ColorNeutral
	}
}
