package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/floating"
	"github.com/deskmux/deskmux/internal/geometry"
	"github.com/deskmux/deskmux/internal/pool"
	"github.com/deskmux/deskmux/internal/shell"
	"github.com/deskmux/deskmux/internal/theme"
	"github.com/deskmux/deskmux/internal/tiling"
)

// Layer stacking. Windows start at the base and climb with their
// stack position; chrome sits far above so no window can cover it.
const (
	zIndexWindowBase = 10
	zIndexStatusBar  = 900
	zIndexModeHint   = 950
	zIndexLauncher   = 980
	zIndexHelp       = 1000
	zIndexLog        = 1001
	zIndexNotify     = 2000
)

// View renders the whole screen as a composited canvas.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(m.Canvas().Render()))
	view.AltScreen = true
	return view
}

// Canvas composites the active workspace, the status bar, and every
// open overlay into lipgloss layers.
func (m *Model) Canvas() *lipgloss.Canvas {
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		// Before the first WindowSizeMsg, fall back to the shell's own
		// notion of the screen.
		width, height = m.shell.ScreenSize()
		height += chromeHeight()
	}

	canvas := lipgloss.NewCanvas(width, height)

	layersPtr := pool.GetLayerSlice()
	layers := (*layersPtr)[:0]
	defer pool.PutLayerSlice(layersPtr)

	topMargin := 0
	if config.ShowStatusBar && config.StatusPosition == "top" {
		topMargin = statusBarHeight
	}

	layers = append(layers, m.workspaceLayers(topMargin)...)
	if config.ShowStatusBar {
		layers = append(layers, m.statusBarLayer(width, height))
	}
	layers = append(layers, m.overlayLayers(width, height)...)

	canvas.Compose(lipgloss.NewCompositor(layers...))
	return canvas
}

// workspaceLayers renders the active workspace's windows. Tiling
// panes come from the derived layout rects; floating windows stack in
// StackOrder, with sticky windows from other desktops underneath.
func (m *Model) workspaceLayers(topMargin int) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	ws := m.shell.Workspaces().Active()
	screenW, screenH := m.shell.ScreenSize()

	if ws.Tree != nil {
		area := geometry.NewRect(0, 0, screenW, screenH)
		focusedID := -1
		if app := ws.Tree.FindFocusedApp(); app != nil {
			focusedID = app.ID
		}
		for i, leaf := range ws.Tree.LayoutRects(area) {
			var content string
			if leaf.Node.Kind == tiling.KindApp {
				content = m.renderPane(leaf.Node, leaf.Rect, leaf.Node.ID == focusedID)
			} else {
				content = m.renderEmptyPane(leaf.Rect)
			}
			layers = append(layers, lipgloss.NewLayer(content).
				X(leaf.Rect.X).
				Y(leaf.Rect.Y+topMargin).
				Z(zIndexWindowBase+i).
				ID(fmt.Sprintf("pane-%d", leaf.Node.ID)))
		}
		return layers
	}

	z := zIndexWindowBase
	reg := m.shell.Workspaces()

	// Sticky windows follow the user across desktops. They render
	// below the active stack and never take focus styling here.
	for i := 0; i < reg.Count(); i++ {
		if i == reg.ActiveIndex() {
			continue
		}
		other := reg.Workspace(i).Desktop
		if other == nil {
			continue
		}
		for _, w := range other.Windows {
			if !w.Sticky || w.State == floating.StateMinimized {
				continue
			}
			layers = append(layers, lipgloss.NewLayer(m.renderWindow(w, false)).
				X(w.Rect.X).
				Y(w.Rect.Y+topMargin).
				Z(z).
				ID(fmt.Sprintf("win-%d", w.ID)))
			z++
		}
	}

	desktop := ws.Desktop
	focused := desktop.FocusedWindow()
	for _, w := range desktop.StackOrder() {
		layers = append(layers, lipgloss.NewLayer(m.renderWindow(w, w == focused)).
			X(w.Rect.X).
			Y(w.Rect.Y+topMargin).
			Z(z).
			ID(fmt.Sprintf("win-%d", w.ID)))
		z++
	}

	if len(layers) == 0 {
		screenWidth, screenHeight := m.width, m.height
		if screenWidth <= 0 || screenHeight <= 0 {
			screenWidth, screenHeight = screenW, screenH+chromeHeight()
		}
		layers = append(layers, m.welcomeLayer(screenWidth, screenHeight))
	}
	return layers
}

// renderWindow draws one floating window at its rect size.
func (m *Model) renderWindow(w *floating.Window, focused bool) string {
	c := m.borderColor(focused)
	label := m.windowLabel(w.Title, w.Name, focused, w.Sticky, w.AlwaysOnTop)
	body := m.windowBody(w.ID, w.Name, w.Rect, focused)
	return renderBox(label, body, w.Rect.Width, w.Rect.Height, c, m.border())
}

// renderPane draws one tiling leaf that hosts an app.
func (m *Model) renderPane(node *tiling.Container, rect geometry.Rect, focused bool) string {
	c := m.borderColor(focused)
	label := m.windowLabel(node.Title, node.Name, focused, false, false)
	body := m.windowBody(node.ID, node.Name, rect, focused)
	return renderBox(label, body, rect.Width, rect.Height, c, m.border())
}

// renderEmptyPane draws an unoccupied tiling slot with a spawn hint.
func (m *Model) renderEmptyPane(rect geometry.Rect) string {
	hint := lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render("empty")
	body := lipgloss.Place(max(rect.Width-2, 0), max(rect.Height-2, 0),
		lipgloss.Center, lipgloss.Center, hint)
	return renderBox("", body, rect.Width, rect.Height, theme.BorderUnfocused(), m.border())
}

// windowLabel builds the styled title for the top border. Sticky and
// always-on-top markers follow the title so the state is visible at a
// glance.
func (m *Model) windowLabel(title, name string, focused, sticky, onTop bool) string {
	text := ansi.Strip(title)
	if text == "" {
		text = ansi.Strip(name)
	}
	labelStyle := lipgloss.NewStyle().Foreground(m.borderColor(focused)).Bold(focused)
	label := labelStyle.Render(text)
	if sticky {
		label += lipgloss.NewStyle().Foreground(theme.MarkerSticky()).Render(" " + config.GetStickyMarker())
	}
	if onTop {
		label += lipgloss.NewStyle().Foreground(theme.MarkerOnTop()).Render(" " + config.GetOnTopMarker())
	}
	return label
}

// windowBody fills a window's interior with the hosted app's
// identity. In resize mode the focused window shows its dimensions
// instead, the only feedback that matters while resizing.
func (m *Model) windowBody(layoutID int, name string, rect geometry.Rect, focused bool) string {
	innerW := max(rect.Width-2, 0)
	innerH := max(rect.Height-2, 0)

	if focused && m.shell.Mode() == shell.ResizeMode {
		dims := lipgloss.NewStyle().
			Foreground(theme.BorderResize()).
			Bold(true).
			Render(fmt.Sprintf("%dx%d", rect.Width, rect.Height))
		return lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, dims)
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.StatusAccent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())

	lines := []string{nameStyle.Render(name)}
	if meta, ok := m.shell.Apps().Lookup(name); ok && meta.Category != "" {
		lines = append(lines, dimStyle.Render(meta.Category))
	}
	if inst := m.shell.InstanceFor(layoutID); inst != nil {
		up := time.Since(inst.LaunchedAt).Truncate(time.Second)
		lines = append(lines, dimStyle.Render("up "+up.String()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, content)
}

// borderColor picks the border for a window given focus and mode. The
// move and resize colors only ever apply to the focused window.
func (m *Model) borderColor(focused bool) color.Color {
	if !focused {
		return theme.BorderUnfocused()
	}
	switch m.shell.Mode() {
	case shell.MoveMode:
		return theme.BorderMove()
	case shell.ResizeMode:
		return theme.BorderResize()
	default:
		return theme.BorderFocused()
	}
}

// border returns the configured border set.
func (m *Model) border() lipgloss.Border {
	return config.GetBorderForStyle()
}

// renderBox draws a bordered box of exactly width x height cells with
// the label embedded in the top border. Degenerate sizes collapse to
// an empty string rather than corrupt the canvas.
func renderBox(label, body string, width, height int, c color.Color, border lipgloss.Border) string {
	if width < 2 || height < 2 {
		return ""
	}

	top := titledTopBorder(label, width, c, border)
	box := lipgloss.NewStyle().
		Border(border).
		BorderTop(false).
		BorderForeground(c).
		Width(width).
		Height(height - 1).
		Render(body)
	return top + "\n" + box
}

// titledTopBorder builds the top border line with the label inset
// after the corner. The box below renders with BorderTop(false).
func titledTopBorder(label string, width int, c color.Color, border lipgloss.Border) string {
	fg := lipgloss.NewStyle().Foreground(c)
	inner := width - 2

	if label != "" {
		label = " " + label + " "
	}
	if lw := lipgloss.Width(label); lw > inner-1 {
		label = ansi.Truncate(label, max(inner-1, 0), config.GetEllipsis())
	}
	fill := inner - lipgloss.Width(label)
	lead := min(1, fill)
	trail := fill - lead

	return fg.Render(border.TopLeft+strings.Repeat(border.Top, lead)) +
		label +
		fg.Render(strings.Repeat(border.Top, trail)+border.TopRight)
}

// welcomeLayer fills an empty floating workspace with a centered
// getting-started card.
func (m *Model) welcomeLayer(width, height int) *lipgloss.Layer {
	title := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("deskmux")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render("terminal workspace multiplexer")

	var hints []string
	if keys := m.registry.GetKeysForDisplay("spawn"); keys != "" {
		hints = append(hints, keys+" spawn")
	}
	if keys := m.registry.GetKeysForDisplay("launcher"); keys != "" {
		hints = append(hints, keys+" launcher")
	}
	if keys := m.registry.GetKeysForDisplay("toggle-help"); keys != "" {
		hints = append(hints, keys+" help")
	}
	hintLine := lipgloss.NewStyle().
		Foreground(theme.StatusFg()).
		Render(strings.Join(hints, "   "))

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", subtitle, "", hintLine)

	card := lipgloss.NewStyle().
		Border(m.border()).
		BorderForeground(theme.BorderUnfocused()).
		Padding(1, 3).
		Render(content)

	centered := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	return lipgloss.NewLayer(centered).X(0).Y(0).Z(zIndexWindowBase).ID("welcome")
}
