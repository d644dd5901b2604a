// Package ui renders a shell session as a Bubble Tea program: windows
// composited on a lipgloss canvas, a status bar, and the launcher,
// help, and log overlays. The package only reads shell state and
// feeds it key-equivalent action tokens; every mutation still flows
// through the shell's own operations.
package ui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/input"
	"github.com/deskmux/deskmux/internal/script"
	"github.com/deskmux/deskmux/internal/shell"
)

// tickInterval drives the clock, sysinfo sampling, notification
// expiry, and script pacing. Nothing animates between ticks, so a
// coarse rate is enough.
const tickInterval = 100 * time.Millisecond

// TickMsg is the periodic timer event.
type TickMsg time.Time

// ConfigReloadedMsg carries a freshly loaded configuration from the
// file watcher. The model rebuilds its keybind registry from it; the
// shell keeps the config it was built with.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// Model is the Bubble Tea front-end over one shell session.
type Model struct {
	shell      *shell.Shell
	registry   *config.KeybindRegistry
	dispatcher *input.ActionDispatcher

	width  int
	height int

	sys   *SysInfo
	clock time.Time

	// Script playback, when a script was attached. Commands apply on
	// ticks, paced by each command's delay, exactly as the equivalent
	// key presses would.
	player     *script.Player
	sleepUntil time.Time
}

// New builds a model around an existing shell. The keybind registry
// is derived from the shell's own configuration.
func New(sh *shell.Shell) *Model {
	return &Model{
		shell:      sh,
		registry:   config.NewKeybindRegistry(sh.Config()),
		dispatcher: input.NewActionDispatcher(),
		sys:        NewSysInfo(),
		clock:      time.Now(),
	}
}

// SetScript attaches a parsed script for interactive playback. The
// session stays fully interactive while the script runs.
func (m *Model) SetScript(p *script.Player) {
	m.player = p
}

// TickCmd schedules the next timer event.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return TickCmd()
}

// Update handles incoming messages: keys become action tokens through
// the registry, resizes propagate to the shell, and ticks advance the
// clock, the system gauges, and any attached script.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.clock = time.Time(msg)
		m.sys.Refresh()
		m.advanceScript()
		if m.shell.ShouldQuit() {
			return m, tea.Quit
		}
		return m, TickCmd()

	case tea.KeyPressMsg:
		input.HandleKey(msg.String(), m.shell, m.registry, m.dispatcher)
		if m.shell.ShouldQuit() {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.registry = config.NewKeybindRegistry(msg.Config)
			m.shell.Notify("configuration reloaded", "info")
		}
		return m, nil
	}

	return m, nil
}

// resize records the terminal size and hands the shell the region
// left over after the status bar.
func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	m.shell.Resize(width, max(height-chromeHeight(), 1))
}

// advanceScript applies the next script command once any pending
// sleep has elapsed. Unlike the headless runner, execution errors
// surface as notifications and playback continues; an interactive
// session should not die mid-script.
func (m *Model) advanceScript() {
	if m.player == nil || m.player.IsFinished() || m.player.IsPaused() {
		return
	}
	if !m.sleepUntil.IsZero() {
		if time.Now().Before(m.sleepUntil) {
			return
		}
		m.sleepUntil = time.Time{}
	}

	cmd := m.player.NextCommand()
	if cmd == nil {
		return
	}
	m.player.Advance()

	if cmd.Type == script.CommandType_Sleep && cmd.Delay > 0 {
		m.sleepUntil = time.Now().Add(cmd.Delay)
		return
	}
	if err := script.Execute(cmd, m.shell, m.dispatcher); err != nil {
		m.shell.Notify(fmt.Sprintf("script: %v", err), "error")
	}
}
