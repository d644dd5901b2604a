package config

import "charm.land/lipgloss/v2"

// asciiBorder stands in for the decorated border sets when ASCII-only
// rendering is requested, for terminals without box-drawing glyphs.
var asciiBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "+",
	TopRight:     "+",
	BottomLeft:   "+",
	BottomRight:  "+",
	MiddleLeft:   "+",
	MiddleRight:  "+",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

// GetBorderForStyle returns the border set matching the runtime
// BorderStyle. ASCII-only mode overrides every style except hidden,
// which is already glyph-free.
func GetBorderForStyle() lipgloss.Border {
	if BorderStyle == "hidden" {
		return lipgloss.HiddenBorder()
	}
	if UseASCIIOnly {
		return asciiBorder
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "ascii":
		return asciiBorder
	default:
		return lipgloss.RoundedBorder()
	}
}

// GetStickyMarker returns the title marker for sticky windows.
func GetStickyMarker() string {
	if UseASCIIOnly {
		return "*"
	}
	return "●"
}

// GetOnTopMarker returns the title marker for always-on-top windows.
func GetOnTopMarker() string {
	if UseASCIIOnly {
		return "^"
	}
	return "▲"
}

// GetNotifyIcon returns the icon shown beside a notification of the
// given type.
func GetNotifyIcon(notifType string) string {
	if UseASCIIOnly {
		switch notifType {
		case "error":
			return "x"
		case "warning":
			return "!"
		case "success":
			return "+"
		default:
			return "i"
		}
	}
	switch notifType {
	case "error":
		return "✕"
	case "warning":
		return "⚠"
	case "success":
		return "✓"
	default:
		return "ℹ"
	}
}

// GetEllipsis returns the truncation tail for narrow labels.
func GetEllipsis() string {
	if UseASCIIOnly {
		return "..."
	}
	return "…"
}

// GetLauncherCursor returns the caret drawn after the launcher query.
func GetLauncherCursor() string {
	if UseASCIIOnly {
		return "_"
	}
	return "█"
}
