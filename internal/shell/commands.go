package shell

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/deskmux/deskmux/internal/appmgr"
	"github.com/deskmux/deskmux/internal/floating"
	"github.com/deskmux/deskmux/internal/geometry"
	"github.com/deskmux/deskmux/internal/tiling"
	"github.com/deskmux/deskmux/internal/workspace"
)

// Directional deltas for floating move and resize modes, in cells.
// Horizontal steps are doubled because terminal cells are roughly
// twice as tall as they are wide.
const (
	moveStepX = 2
	moveStepY = 1
)

// SpawnApp places a new application on the active workspace. On a
// tiling workspace the focused empty slot is filled, splitting first
// when no slot is open; on a floating workspace the window is placed
// at the next cascade offset with the configured default size.
func (sh *Shell) SpawnApp(name, title string) {
	if sh.mode != NormalMode || name == "" {
		return
	}
	if title == "" {
		title = name
	}

	if tree := sh.activeTree(); tree != nil {
		if !tree.Spawn(name, title) {
			tree.Split(sh.splitFallbackDirection(tree))
			if !tree.Spawn(name, title) {
				return
			}
		}
		app := tree.FindFocusedApp()
		if app == nil {
			return
		}
		inst := sh.apps.Launch(name)
		sh.instances[app.ID] = inst.ID
		sh.LogInfo("spawned %s into container %d", name, app.ID)
		return
	}

	d := sh.activeDesktop()
	w := floating.NewWindow(sh.ids.Next(), name, title, sh.nextSpawnRect())
	d.AddWindow(w)
	inst := sh.apps.Launch(name)
	sh.instances[w.ID] = inst.ID
	sh.LogInfo("spawned %s as window %d", name, w.ID)
}

// SpawnDefault spawns a numbered placeholder app, for the bare spawn
// command that names nothing.
func (sh *Shell) SpawnDefault() {
	if sh.mode != NormalMode {
		return
	}
	sh.spawnCount++
	sh.SpawnApp(fmt.Sprintf("app-%d", sh.spawnCount), fmt.Sprintf("App %d", sh.spawnCount))
}

// splitFallbackDirection picks the direction that guarantees the
// follow-up spawn lands in a fresh slot: splitting a split root along
// its own axis inserts an empty child right after the focused one.
func (sh *Shell) splitFallbackDirection(tree *tiling.Tree) tiling.Direction {
	if tree.Root.IsSplit() {
		return tree.Root.Direction
	}
	if sh.cfg.General.DefaultSplit == "vertical" {
		return tiling.Vertical
	}
	return tiling.Horizontal
}

// nextSpawnRect computes the cascade placement for a new floating
// window and advances the shared offset.
func (sh *Shell) nextSpawnRect() geometry.Rect {
	x := 2 + sh.cascadeOffset
	y := 1 + sh.cascadeOffset/2
	sh.cascadeOffset = (sh.cascadeOffset + 3) % 15

	width := min(sh.cfg.Window.DefaultWidth, sh.screenW-x-2)
	height := min(sh.cfg.Window.DefaultHeight, sh.screenH-y-2)
	return geometry.NewRect(x, y, width, height).
		ClampMinSize(sh.cfg.Window.MinWidth, sh.cfg.Window.MinHeight).
		ClampToScreen(sh.screenW, sh.screenH)
}

// Split restructures the active tiling workspace along direction.
// Floating workspaces ignore the command.
func (sh *Shell) Split(direction tiling.Direction) {
	if sh.mode != NormalMode {
		return
	}
	if tree := sh.activeTree(); tree != nil {
		tree.Split(direction)
	}
}

// CloseFocused closes the focused container or window and releases
// the app instances it hosted.
func (sh *Shell) CloseFocused() {
	if sh.mode != NormalMode {
		return
	}

	if tree := sh.activeTree(); tree != nil {
		closed := tree.CloseFocused()
		if closed == nil {
			return
		}
		for _, app := range closed.Apps() {
			sh.releaseInstance(app.ID)
		}
		return
	}

	d := sh.activeDesktop()
	if d.Focused == 0 {
		return
	}
	removed := d.RemoveWindow(d.Focused)
	if removed == nil {
		return
	}
	sh.releaseInstance(removed.ID)
	delete(sh.savedRects, removed.ID)
	sh.syncAppFocus()
}

// releaseInstance kills the app instance bound to a layout id.
func (sh *Shell) releaseInstance(layoutID int) {
	if instanceID, ok := sh.instances[layoutID]; ok {
		sh.apps.Kill(instanceID)
		delete(sh.instances, layoutID)
	}
}

// Directional applies a direction command according to the current
// mode: focus movement in normal mode, moves in move mode, resizes in
// resize mode. Launcher mode ignores directions.
func (sh *Shell) Directional(dir tiling.FocusDir) {
	switch sh.mode {
	case NormalMode:
		if tree := sh.activeTree(); tree != nil {
			tree.FocusDirection(dir)
			sh.syncAppFocus()
		}

	case MoveMode:
		if tree := sh.activeTree(); tree != nil {
			tree.MoveFocused(dir)
			return
		}
		if w := sh.focusedWindow(); w != nil {
			dx, dy := directionDeltas(dir)
			w.MoveBy(dx*moveStepX, dy*moveStepY, sh.screenW, sh.screenH)
		}

	case ResizeMode:
		if tree := sh.activeTree(); tree != nil {
			tree.ResizeFocused(dir)
			return
		}
		if w := sh.focusedWindow(); w != nil {
			dx, dy := directionDeltas(dir)
			w.ResizeBy(dx*moveStepX, dy*moveStepY, sh.cfg.Window.MinWidth, sh.cfg.Window.MinHeight)
			w.Rect = w.Rect.ClampToScreen(sh.screenW, sh.screenH)
		}
	}
}

// directionDeltas maps a direction onto unit x/y deltas.
func directionDeltas(dir tiling.FocusDir) (dx, dy int) {
	switch dir {
	case tiling.FocusLeft:
		return -1, 0
	case tiling.FocusRight:
		return 1, 0
	case tiling.FocusUp:
		return 0, -1
	default:
		return 0, 1
	}
}

// CycleFocus moves floating focus to the next (or previous) visible
// window. Tiling workspaces navigate with directions instead.
func (sh *Shell) CycleFocus(reverse bool) {
	if sh.mode != NormalMode {
		return
	}
	if d := sh.activeDesktop(); d != nil {
		d.CycleFocus(reverse)
		sh.syncAppFocus()
	}
}

// MaximizeFocused grows the focused window to the full screen,
// remembering its rect for a later restore.
func (sh *Shell) MaximizeFocused() {
	if sh.mode != NormalMode {
		return
	}
	w := sh.focusedWindow()
	if w == nil || w.State == floating.StateMaximized {
		return
	}
	sh.savedRects[w.ID] = w.Rect
	w.Maximize(sh.screenW, sh.screenH)
}

// RestoreFocused returns a maximized window to its remembered rect,
// or brings a minimized window back to view.
func (sh *Shell) RestoreFocused() {
	if sh.mode != NormalMode {
		return
	}
	w := sh.focusedWindow()
	if w == nil {
		return
	}
	wasMaximized := w.State == floating.StateMaximized
	w.Restore()
	if !wasMaximized {
		return
	}
	if saved, ok := sh.savedRects[w.ID]; ok {
		w.Rect = saved.ClampToScreen(sh.screenW, sh.screenH)
		delete(sh.savedRects, w.ID)
	}
}

// MinimizeFocused hides the focused window and moves focus to the
// next visible one.
func (sh *Shell) MinimizeFocused() {
	if sh.mode != NormalMode {
		return
	}
	w := sh.focusedWindow()
	if w == nil {
		return
	}
	w.Minimize()
	sh.activeDesktop().CycleFocus(false)
	sh.syncAppFocus()
}

// Snap places the focused window into a screen half or quarter.
func (sh *Shell) Snap(position floating.SnapPosition) {
	if sh.mode != NormalMode {
		return
	}
	w := sh.focusedWindow()
	if w == nil {
		return
	}
	w.Snap(position, sh.screenW, sh.screenH)
	delete(sh.savedRects, w.ID)
}

// Cascade re-staggers every visible window on the active desktop.
func (sh *Shell) Cascade() {
	if sh.mode != NormalMode {
		return
	}
	if d := sh.activeDesktop(); d != nil {
		d.Cascade()
	}
}

// ToggleAlwaysOnTop flips the focused window's stacking layer.
func (sh *Shell) ToggleAlwaysOnTop() {
	if sh.mode != NormalMode {
		return
	}
	if w := sh.focusedWindow(); w != nil {
		w.AlwaysOnTop = !w.AlwaysOnTop
	}
}

// ToggleSticky flips whether the focused window shows on every
// workspace. Stickiness is a render filter, not a change of ownership.
func (sh *Shell) ToggleSticky() {
	if sh.mode != NormalMode {
		return
	}
	if w := sh.focusedWindow(); w != nil {
		w.Sticky = !w.Sticky
	}
}

// SwitchWorkspace activates the workspace at index i.
func (sh *Shell) SwitchWorkspace(i int) {
	if sh.mode != NormalMode {
		return
	}
	if sh.workspaces.SwitchTo(i) {
		sh.Notify("workspace "+sh.workspaces.ActiveName(), "info")
		sh.syncAppFocus()
	}
}

// NextWorkspace activates the following workspace, wrapping around.
func (sh *Shell) NextWorkspace() {
	if sh.mode != NormalMode {
		return
	}
	sh.workspaces.Next()
	sh.Notify("workspace "+sh.workspaces.ActiveName(), "info")
	sh.syncAppFocus()
}

// PrevWorkspace activates the preceding workspace, wrapping around.
func (sh *Shell) PrevWorkspace() {
	if sh.mode != NormalMode {
		return
	}
	sh.workspaces.Prev()
	sh.Notify("workspace "+sh.workspaces.ActiveName(), "info")
	sh.syncAppFocus()
}

// MoveFocusedToWorkspace transfers the focused floating window to
// another workspace. The window keeps its geometry and state; focus
// on the source desktop falls back to the last remaining window.
// Tiling containers stay on their workspace.
func (sh *Shell) MoveFocusedToWorkspace(i int) {
	if sh.mode != NormalMode {
		return
	}
	if i == sh.workspaces.ActiveIndex() {
		return
	}
	target := sh.workspaces.Workspace(i)
	if target == nil || target.Desktop == nil {
		return
	}
	d := sh.activeDesktop()
	if d == nil || d.Focused == 0 {
		return
	}
	moved := d.RemoveWindow(d.Focused)
	if moved == nil {
		return
	}
	target.Desktop.AddWindow(moved)
	sh.Notify(fmt.Sprintf("%s moved to workspace %s", moved.Title, target.Name), "info")
	sh.syncAppFocus()
}

// EnterMoveMode starts repurposing directional commands as moves.
func (sh *Shell) EnterMoveMode() {
	if sh.mode != NormalMode {
		return
	}
	sh.mode = MoveMode
}

// EnterResizeMode starts repurposing directional commands as resizes.
func (sh *Shell) EnterResizeMode() {
	if sh.mode != NormalMode {
		return
	}
	sh.mode = ResizeMode
}

// OpenLauncher enters launcher mode with a cleared query.
func (sh *Shell) OpenLauncher() {
	if sh.mode != NormalMode {
		return
	}
	sh.mode = LauncherMode
	sh.launcherInput = ""
}

// LauncherType appends typed text to the launcher query.
func (sh *Shell) LauncherType(s string) {
	if sh.mode != LauncherMode {
		return
	}
	sh.launcherInput += s
}

// LauncherBackspace removes the last rune of the launcher query.
func (sh *Shell) LauncherBackspace() {
	if sh.mode != LauncherMode || sh.launcherInput == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(sh.launcherInput)
	sh.launcherInput = sh.launcherInput[:len(sh.launcherInput)-size]
}

// Confirm leaves the current mode. Confirming the launcher spawns the
// typed app first; an empty query spawns nothing.
func (sh *Shell) Confirm() {
	switch sh.mode {
	case LauncherMode:
		name := strings.TrimSpace(sh.launcherInput)
		sh.mode = NormalMode
		sh.launcherInput = ""
		if name == "" {
			return
		}
		title := name
		if meta, ok := sh.apps.Lookup(name); ok {
			title = meta.Title
		}
		sh.SpawnApp(name, title)
		sh.Notify("launched "+name, "success")

	case MoveMode, ResizeMode:
		sh.mode = NormalMode
	}
}

// Cancel closes an open overlay, or leaves the current mode,
// discarding any launcher input. Overlays go first so one escape
// never both closes help and drops out of a mode.
func (sh *Shell) Cancel() {
	if sh.showHelp {
		sh.showHelp = false
		return
	}
	if sh.showLog {
		sh.showLog = false
		return
	}
	if sh.mode == NormalMode {
		return
	}
	sh.mode = NormalMode
	sh.launcherInput = ""
}

// LauncherResults ranks the app catalog against the current query.
func (sh *Shell) LauncherResults() []appmgr.Meta {
	return sh.apps.Search(sh.launcherInput)
}

// ActiveStyleIs reports whether the active workspace uses the given
// layout style.
func (sh *Shell) ActiveStyleIs(style workspace.Style) bool {
	return sh.workspaces.Style() == style
}
