// Package input maps action names onto shell commands. Key handling
// resolves a pressed key to an action through the keybind registry;
// the dispatcher here is the single switchboard both the interactive
// UI and the script player drive.
package input

import (
	"github.com/deskmux/deskmux/internal/floating"
	"github.com/deskmux/deskmux/internal/shell"
	"github.com/deskmux/deskmux/internal/tiling"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(sh *shell.Shell)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Spawn and layout actions
	d.Register("spawn", handleSpawn)
	d.Register("launcher", handleLauncher)
	d.Register("split-horizontal", makeSplitHandler(tiling.Horizontal))
	d.Register("split-vertical", makeSplitHandler(tiling.Vertical))
	d.Register("close-focused", handleCloseFocused)

	// Focus actions
	d.Register("focus-left", makeDirectionalHandler(tiling.FocusLeft))
	d.Register("focus-right", makeDirectionalHandler(tiling.FocusRight))
	d.Register("focus-up", makeDirectionalHandler(tiling.FocusUp))
	d.Register("focus-down", makeDirectionalHandler(tiling.FocusDown))
	d.Register("cycle-focus", handleCycleFocus)
	d.Register("cycle-focus-reverse", handleCycleFocusReverse)

	// Window state actions
	d.Register("maximize", handleMaximize)
	d.Register("restore", handleRestore)
	d.Register("minimize", handleMinimize)
	d.Register("cascade", handleCascade)
	d.Register("toggle-always-on-top", handleToggleAlwaysOnTop)
	d.Register("toggle-sticky", handleToggleSticky)

	// Snap actions
	d.Register("snap-left", makeSnapHandler(floating.SnapLeft))
	d.Register("snap-right", makeSnapHandler(floating.SnapRight))
	d.Register("snap-top-left", makeSnapHandler(floating.SnapTopLeft))
	d.Register("snap-top-right", makeSnapHandler(floating.SnapTopRight))
	d.Register("snap-bottom-left", makeSnapHandler(floating.SnapBottomLeft))
	d.Register("snap-bottom-right", makeSnapHandler(floating.SnapBottomRight))

	// Workspace switching (1-9)
	for i := 1; i <= 9; i++ {
		d.Register("switch-workspace-"+string(rune('0'+i)), makeSwitchWorkspaceHandler(i-1))
		d.Register("move-to-workspace-"+string(rune('0'+i)), makeMoveToWorkspaceHandler(i-1))
	}
	d.Register("workspace-next", handleWorkspaceNext)
	d.Register("workspace-prev", handleWorkspacePrev)

	// Mode control actions
	d.Register("move-mode", handleMoveMode)
	d.Register("resize-mode", handleResizeMode)
	d.Register("confirm", handleConfirm)
	d.Register("cancel", handleCancel)

	// System actions
	d.Register("toggle-help", handleToggleHelp)
	d.Register("toggle-log", handleToggleLog)
	d.Register("quit", handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action and reports whether
// the action was registered.
func (d *ActionDispatcher) Dispatch(action string, sh *shell.Shell) bool {
	if handler, ok := d.handlers[action]; ok {
		handler(sh)
		return true
	}
	return false
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Actions returns the registered action names in map order.
func (d *ActionDispatcher) Actions() []string {
	actions := make([]string, 0, len(d.handlers))
	for action := range d.handlers {
		actions = append(actions, action)
	}
	return actions
}

// ============================================================================
// Spawn and Layout Action Handlers
// ============================================================================

func handleSpawn(sh *shell.Shell) {
	sh.SpawnDefault()
}

func handleLauncher(sh *shell.Shell) {
	sh.OpenLauncher()
}

func makeSplitHandler(direction tiling.Direction) ActionHandler {
	return func(sh *shell.Shell) {
		sh.Split(direction)
	}
}

func handleCloseFocused(sh *shell.Shell) {
	sh.CloseFocused()
}

// ============================================================================
// Focus Action Handlers
// ============================================================================

func makeDirectionalHandler(dir tiling.FocusDir) ActionHandler {
	return func(sh *shell.Shell) {
		sh.Directional(dir)
	}
}

func handleCycleFocus(sh *shell.Shell) {
	sh.CycleFocus(false)
}

func handleCycleFocusReverse(sh *shell.Shell) {
	sh.CycleFocus(true)
}

// ============================================================================
// Window State Action Handlers
// ============================================================================

func handleMaximize(sh *shell.Shell) {
	sh.MaximizeFocused()
}

func handleRestore(sh *shell.Shell) {
	sh.RestoreFocused()
}

func handleMinimize(sh *shell.Shell) {
	sh.MinimizeFocused()
}

func handleCascade(sh *shell.Shell) {
	sh.Cascade()
}

func handleToggleAlwaysOnTop(sh *shell.Shell) {
	sh.ToggleAlwaysOnTop()
}

func handleToggleSticky(sh *shell.Shell) {
	sh.ToggleSticky()
}

func makeSnapHandler(position floating.SnapPosition) ActionHandler {
	return func(sh *shell.Shell) {
		sh.Snap(position)
	}
}

// ============================================================================
// Workspace Action Handlers
// ============================================================================

func makeSwitchWorkspaceHandler(index int) ActionHandler {
	return func(sh *shell.Shell) {
		sh.SwitchWorkspace(index)
	}
}

func makeMoveToWorkspaceHandler(index int) ActionHandler {
	return func(sh *shell.Shell) {
		sh.MoveFocusedToWorkspace(index)
	}
}

func handleWorkspaceNext(sh *shell.Shell) {
	sh.NextWorkspace()
}

func handleWorkspacePrev(sh *shell.Shell) {
	sh.PrevWorkspace()
}

// ============================================================================
// Mode Control Action Handlers
// ============================================================================

func handleMoveMode(sh *shell.Shell) {
	sh.EnterMoveMode()
}

func handleResizeMode(sh *shell.Shell) {
	sh.EnterResizeMode()
}

func handleConfirm(sh *shell.Shell) {
	sh.Confirm()
}

func handleCancel(sh *shell.Shell) {
	sh.Cancel()
}

// ============================================================================
// System Action Handlers
// ============================================================================

func handleToggleHelp(sh *shell.Shell) {
	sh.ToggleHelp()
}

func handleToggleLog(sh *shell.Shell) {
	sh.ToggleLog()
}

func handleQuit(sh *shell.Shell) {
	sh.Quit()
}
