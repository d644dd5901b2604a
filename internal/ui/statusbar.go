package ui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/shell"
	"github.com/deskmux/deskmux/internal/theme"
)

// statusBarHeight is the number of rows the bar occupies. The shell's
// layout region is the terminal minus this.
const statusBarHeight = 1

// maxMinimizedLabel caps each minimized-window pill in the bar.
const maxMinimizedLabel = 14

// chromeHeight is the vertical space reserved for the status bar,
// zero when the bar is hidden.
func chromeHeight() int {
	if config.ShowStatusBar {
		return statusBarHeight
	}
	return 0
}

// statusBarLayer positions the rendered bar at the configured edge.
func (m *Model) statusBarLayer(width, height int) *lipgloss.Layer {
	y := height - statusBarHeight
	if config.StatusPosition == "top" {
		y = 0
	}
	return lipgloss.NewLayer(m.renderStatusBar(width)).
		X(0).
		Y(y).
		Z(zIndexStatusBar).
		ID("status")
}

// renderStatusBar lays out mode and workspaces on the left, minimized
// windows or the focused title in the middle, and the system gauges
// with the clock on the right.
func (m *Model) renderStatusBar(width int) string {
	left := m.renderModePill() + " " + m.renderWorkspaceCells()
	center := m.renderStatusCenter()
	right := m.renderStatusRight()

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	available := width - leftWidth - centerWidth - rightWidth
	leftSpacer := available / 2
	rightSpacer := available - leftSpacer
	if leftSpacer < 0 {
		leftSpacer = 0
	}
	if rightSpacer < 0 {
		rightSpacer = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(leftSpacer).Render(""),
		center,
		lipgloss.NewStyle().Width(rightSpacer).Render(""),
		right,
	)
}

// renderModePill draws the current mode name over its mode color.
func (m *Model) renderModePill() string {
	mode := m.shell.Mode()
	return lipgloss.NewStyle().
		Background(modeColor(mode)).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(0, 1).
		Render(mode.String())
}

func modeColor(mode shell.Mode) color.Color {
	switch mode {
	case shell.MoveMode:
		return theme.ModeColorMove()
	case shell.ResizeMode:
		return theme.ModeColorResize()
	case shell.LauncherMode:
		return theme.ModeColorLauncher()
	default:
		return theme.ModeColorNormal()
	}
}

// renderWorkspaceCells draws one cell per workspace with the active
// one highlighted.
func (m *Model) renderWorkspaceCells() string {
	reg := m.shell.Workspaces()
	active := reg.ActiveIndex()

	activeStyle := lipgloss.NewStyle().
		Background(theme.WorkspaceActive()).
		Foreground(lipgloss.Color("#000000")).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(theme.WorkspaceInactive()).
		Padding(0, 1)

	cells := make([]string, 0, reg.Count())
	for i, name := range reg.Names() {
		if i == active {
			cells = append(cells, activeStyle.Render(name))
			continue
		}
		cells = append(cells, inactiveStyle.Render(name))
	}
	return strings.Join(cells, "")
}

// renderStatusCenter shows minimized windows as pills on a floating
// workspace, or the focused title on a tiling one. Both give the bar
// its "what is where" readout.
func (m *Model) renderStatusCenter() string {
	ws := m.shell.Workspaces().Active()

	if ws.Desktop != nil {
		minimized := ws.Desktop.MinimizedWindows()
		if len(minimized) > 0 {
			pillStyle := lipgloss.NewStyle().
				Background(theme.StatusBg()).
				Foreground(theme.StatusFg()).
				Padding(0, 1)
			pills := make([]string, 0, len(minimized))
			for _, w := range minimized {
				label := ansi.Strip(w.Title)
				if label == "" {
					label = w.Name
				}
				label = ansi.Truncate(label, maxMinimizedLabel, config.GetEllipsis())
				pills = append(pills, pillStyle.Render(label))
			}
			return strings.Join(pills, " ")
		}
	}

	title := ansi.Strip(m.shell.FocusedTitle())
	if title == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.StatusAccent()).
		Bold(true).
		Render(title)
}

// renderStatusRight shows the system gauges and the clock.
func (m *Model) renderStatusRight() string {
	gauges := lipgloss.NewStyle().
		Foreground(theme.WorkspaceInactive()).
		Render(m.sys.CPUGauge() + " " + m.sys.MemGauge())

	clock := lipgloss.NewStyle().
		Foreground(theme.StatusAccent()).
		Bold(true).
		Padding(0, 1).
		Render(m.clock.Format("15:04:05"))

	return gauges + clock
}
