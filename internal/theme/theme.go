// Package theme provides color themes and styling for the deskmux UI.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and standard terminal
// colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Try to set the theme by ID
	ok := tint.SetTintID(themeName)
	if !ok {
		// Theme not found, fall back to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Window border colors
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808090")
	}
	// Regular red reads as muted next to the bright focused border
	return t.Red
}

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

func BorderMove() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.BrightYellow
}

func BorderResize() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff00ff")
	}
	return t.BrightPurple
}

// Mode indicator colors for the status bar
func ModeColorNormal() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

func ModeColorMove() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.BrightYellow
}

func ModeColorResize() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff00ff")
	}
	return t.BrightPurple
}

func ModeColorLauncher() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// Title bar markers for window flags
func MarkerSticky() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.BrightYellow
}

func MarkerOnTop() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff00ff")
	}
	return t.BrightPurple
}

// Launcher overlay colors
func LauncherBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

func LauncherFg() color.Color {
	return lipgloss.Color("7")
}

func LauncherQuery() color.Color {
	return lipgloss.Color("11")
}

func LauncherDim() color.Color {
	return lipgloss.Color("8")
}

func LauncherSelected() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ffff"), lipgloss.Color("#000000")
	}
	return t.BrightCyan, t.Black
}

// Status bar colors
func StatusBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

func StatusFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

func StatusAccent() color.Color {
	return lipgloss.Color("#a0a0b0")
}

func WorkspaceActive() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

func WorkspaceInactive() color.Color {
	return lipgloss.Color("#808090")
}

// Log overlay colors
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// Notification colors
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

func NotificationSuccess() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0000ee")
	}
	return t.Blue
}

func NotificationBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

func NotificationFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Help overlay colors
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

func HelpGray() color.Color {
	return lipgloss.Color("8")
}

func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

func HelpTableHeader() color.Color {
	return lipgloss.Color("12")
}

func HelpTableRow() color.Color {
	return lipgloss.Color("8")
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}
