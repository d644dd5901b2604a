package ui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/shell"
	"github.com/deskmux/deskmux/internal/theme"
	"github.com/deskmux/deskmux/internal/workspace"
)

const (
	launcherWidth      = 44
	launcherMaxResults = 8
	logViewerWidth     = 80
	logViewerLines     = 20
	maxVisibleNotifs   = 3
	notifSpacing       = 4
)

// overlayLayers renders whichever overlays are open, in stacking
// order: mode hint, launcher, help, log, notifications.
func (m *Model) overlayLayers(width, height int) []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	switch m.shell.Mode() {
	case shell.MoveMode, shell.ResizeMode:
		hint := m.renderModeHint()
		x := max(width-lipgloss.Width(hint)-2, 0)
		y := height - lipgloss.Height(hint) - 1
		if config.ShowStatusBar && config.StatusPosition != "top" {
			y -= statusBarHeight
		}
		layers = append(layers, lipgloss.NewLayer(hint).
			X(x).Y(max(y, 0)).Z(zIndexModeHint).ID("mode-hint"))
	case shell.LauncherMode:
		layers = append(layers, lipgloss.NewLayer(m.renderLauncher(width, height)).
			X(0).Y(0).Z(zIndexLauncher).ID("launcher"))
	}

	if m.shell.ShowingHelp() {
		layers = append(layers, lipgloss.NewLayer(m.renderHelpMenu(width, height)).
			X(0).Y(0).Z(zIndexHelp).ID("help"))
	}
	if m.shell.ShowingLog() {
		layers = append(layers, lipgloss.NewLayer(m.renderLogViewer(width, height)).
			X(0).Y(0).Z(zIndexLog).ID("logs"))
	}

	layers = append(layers, m.notificationLayers(width)...)
	return layers
}

// renderLauncher draws the query buffer and the ranked matches,
// centered on the screen. The first result is the one confirm
// launches, so it gets the selection style.
func (m *Model) renderLauncher(width, height int) string {
	query := m.shell.LauncherQuery()
	results := m.shell.LauncherResults()

	queryStyle := lipgloss.NewStyle().Foreground(theme.LauncherQuery()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.LauncherDim())
	rowStyle := lipgloss.NewStyle().Foreground(theme.LauncherFg())
	selBg, selFg := theme.LauncherSelected()
	selectedStyle := lipgloss.NewStyle().Background(selBg).Foreground(selFg).Bold(true)

	lines := []string{queryStyle.Render("> " + query + config.GetLauncherCursor()), ""}

	if len(results) == 0 {
		lines = append(lines, dimStyle.Render("no matches"))
	}
	for i, meta := range results {
		if i >= launcherMaxResults {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("%s %d more", config.GetEllipsis(), len(results)-launcherMaxResults)))
			break
		}
		row := fmt.Sprintf(" %-10s %s ", meta.Name, meta.Title)
		if i == 0 {
			lines = append(lines, selectedStyle.Render(row))
			continue
		}
		lines = append(lines, rowStyle.Render(row))
	}

	footer := "enter launch · esc cancel"
	if config.UseASCIIOnly {
		footer = "enter launch / esc cancel"
	}
	lines = append(lines, "", dimStyle.Render(footer))

	box := lipgloss.NewStyle().
		Border(m.border()).
		BorderForeground(theme.ModeColorLauncher()).
		Background(theme.LauncherBg()).
		Padding(1, 2).
		Width(launcherWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpMenu draws the keybinding reference, filtered to the
// sections that apply to the current layout style.
func (m *Model) renderHelpMenu(width, height int) string {
	styleName := m.shell.Style().String()

	var sections []config.KeybindingSection
	for _, s := range config.GetKeybindings(m.registry) {
		if s.Condition != "" && s.Condition != styleName {
			continue
		}
		sections = append(sections, s)
	}

	headerStyle := lipgloss.NewStyle().Foreground(theme.HelpTableHeader()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKeyBadge()).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.HelpTableRow())

	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		lines := []string{headerStyle.Render(s.Title)}
		for _, b := range s.Bindings {
			lines = append(lines, keyStyle.Render(fmt.Sprintf("  %-18s", b.Key))+descStyle.Render(b.Description))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	// Two balanced columns keep the overlay inside shorter terminals.
	half := (len(blocks) + 1) / 2
	leftCol := strings.Join(blocks[:half], "\n\n")
	rightCol := ""
	if half < len(blocks) {
		rightCol = strings.Join(blocks[half:], "\n\n")
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	title := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("deskmux keys")
	footer := lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render("q/esc close")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", columns, "", footer)

	box := lipgloss.NewStyle().
		Border(m.border()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderLogViewer draws the tail of the session log with level
// coloring, centered.
func (m *Model) renderLogViewer(width, height int) string {
	logs := m.shell.Logs()
	if len(logs) > logViewerLines {
		logs = logs[len(logs)-logViewerLines:]
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.LogViewerTitle()).Bold(true)
	lines := []string{titleStyle.Render("Session Log"), ""}

	if len(logs) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.HelpGray()).Render("nothing logged yet"))
	}
	for _, entry := range logs {
		levelStyle := lipgloss.NewStyle().Foreground(logLevelColor(entry.Level))
		lines = append(lines, fmt.Sprintf("%s %s %s",
			entry.Time.Format("15:04:05"),
			levelStyle.Render(fmt.Sprintf("[%s]", entry.Level)),
			entry.Message))
	}

	lines = append(lines, "", lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render("q/esc close"))

	box := lipgloss.NewStyle().
		Border(m.border()).
		BorderForeground(theme.HelpBorder()).
		Background(theme.LogViewerBg()).
		Padding(1, 2).
		Width(logViewerWidth).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func logLevelColor(level string) color.Color {
	switch level {
	case "ERROR":
		return theme.LogViewerError()
	case "WARN":
		return theme.LogViewerWarn()
	default:
		return theme.LogViewerInfo()
	}
}

// notificationLayers stacks active notifications down the top-right
// corner, newest first, capped so they never wallpaper the screen.
func (m *Model) notificationLayers(width int) []*lipgloss.Layer {
	notifs := m.shell.Notifications()
	if len(notifs) == 0 {
		return nil
	}

	var layers []*lipgloss.Layer
	shown := 0
	for i := len(notifs) - 1; i >= 0 && shown < maxVisibleNotifs; i-- {
		n := notifs[i]

		icon := config.GetNotifyIcon(n.Type)
		border := notificationColor(n.Type)
		box := lipgloss.NewStyle().
			Border(m.border()).
			BorderForeground(border).
			Background(theme.NotificationBg()).
			Foreground(theme.NotificationFg()).
			Padding(0, 1).
			Bold(true).
			Render(fmt.Sprintf("%s  %s", icon, n.Message))

		x := max(width-lipgloss.Width(box)-2, 0)
		y := 1 + shown*notifSpacing

		layers = append(layers, lipgloss.NewLayer(box).
			X(x).
			Y(y).
			Z(zIndexNotify).
			ID(fmt.Sprintf("notif-%d", i)))
		shown++
	}
	return layers
}

func notificationColor(notifType string) color.Color {
	switch notifType {
	case "error":
		return theme.NotificationError()
	case "warning":
		return theme.NotificationWarning()
	case "success":
		return theme.NotificationSuccess()
	default:
		return theme.NotificationInfo()
	}
}

// renderModeHint shows the directional hints for move and resize
// mode; the canvas places it bottom-right above the status bar.
func (m *Model) renderModeHint() string {
	var modeName string
	if m.shell.Mode() == shell.MoveMode {
		modeName = "move"
	} else {
		modeName = "resize"
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKeyBadge()).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.HelpTableRow())

	bindings := config.GetModeKeybindings(modeName)
	lines := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		lines = append(lines, keyStyle.Render(fmt.Sprintf("%-16s", b.Key))+descStyle.Render(b.Description))
	}

	// Tiling reinterprets the same keys, so say what they do here.
	if m.shell.ActiveStyleIs(workspace.StyleTiling) {
		verb := "swap containers"
		if m.shell.Mode() == shell.ResizeMode {
			verb = "shift split ratios"
		}
		lines = append(lines, descStyle.Render(verb))
	}

	return lipgloss.NewStyle().
		Border(m.border()).
		BorderForeground(m.borderColor(true)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
