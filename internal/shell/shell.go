// Package shell owns every piece of mutable layout state: the
// workspace pool, the modal input state, the id counter, and the
// bindings between layout containers and running app instances. All
// mutation flows through the Shell; rendering layers only read it.
package shell

import (
	"github.com/deskmux/deskmux/internal/appmgr"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/floating"
	"github.com/deskmux/deskmux/internal/geometry"
	"github.com/deskmux/deskmux/internal/tiling"
	"github.com/deskmux/deskmux/internal/workspace"
)

// Mode is the modal input state. Structural commands apply only in
// NormalMode; the other modes reinterpret directional commands or
// capture text.
type Mode int

const (
	// NormalMode accepts every structural command.
	NormalMode Mode = iota
	// MoveMode turns directional commands into window moves or
	// container swaps.
	MoveMode
	// ResizeMode turns directional commands into window resizes or
	// ratio shifts.
	ResizeMode
	// LauncherMode captures typed text for the app launcher.
	LauncherMode
)

func (m Mode) String() string {
	switch m {
	case MoveMode:
		return "MOVE"
	case ResizeMode:
		return "RESIZE"
	case LauncherMode:
		return "LAUNCH"
	default:
		return "NORMAL"
	}
}

// idCounter hands out container and window ids. Ids are never reused
// within a session.
type idCounter struct {
	last int
}

func (c *idCounter) Next() int {
	c.last++
	return c.last
}

// Options configures a new shell.
type Options struct {
	Config       *config.UserConfig
	Apps         *appmgr.Manager
	ScreenWidth  int
	ScreenHeight int
}

// Shell is the aggregate owner of the layout session.
type Shell struct {
	cfg        *config.UserConfig
	ids        *idCounter
	workspaces *workspace.Registry
	apps       *appmgr.Manager

	mode          Mode
	launcherInput string

	screenW int
	screenH int

	// cascadeOffset drives spawn placement and is shared across
	// workspaces, so consecutive spawns stagger even when they land on
	// different desktops.
	cascadeOffset int

	// savedRects remembers each window's pre-maximize geometry; the
	// window itself carries only its current rect and state.
	savedRects map[int]geometry.Rect

	// instances binds layout ids (container or window) to app-manager
	// instance ids.
	instances map[int]string

	spawnCount int

	notifications []Notification
	logs          []LogEntry

	showHelp bool
	showLog  bool
	quitting bool
}

// New builds a shell from the given options. A nil config falls back
// to the defaults, and a zero screen size falls back to 80x24.
func New(opts Options) *Shell {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	apps := opts.Apps
	if apps == nil {
		extra := make([]appmgr.Meta, 0, len(cfg.Apps))
		for _, app := range cfg.Apps {
			extra = append(extra, appmgr.Meta{
				Name:     app.Name,
				Title:    app.Title,
				Category: app.Category,
				Keywords: app.Keywords,
			})
		}
		apps = appmgr.New(extra...)
	}

	sh := &Shell{
		cfg:        cfg,
		ids:        &idCounter{},
		apps:       apps,
		screenW:    opts.ScreenWidth,
		screenH:    opts.ScreenHeight,
		savedRects: make(map[int]geometry.Rect),
		instances:  make(map[int]string),
	}
	if sh.screenW <= 0 {
		sh.screenW = 80
	}
	if sh.screenH <= 0 {
		sh.screenH = 24
	}
	sh.workspaces = workspace.New(
		cfg.Workspaces.Names,
		workspace.ParseStyle(cfg.General.Layout),
		sh.ids,
	)
	return sh
}

// Mode returns the current input mode.
func (sh *Shell) Mode() Mode { return sh.mode }

// Style returns the layout style the shell was configured with.
func (sh *Shell) Style() workspace.Style { return sh.workspaces.Style() }

// Workspaces exposes the workspace registry for rendering.
func (sh *Shell) Workspaces() *workspace.Registry { return sh.workspaces }

// Apps exposes the app manager.
func (sh *Shell) Apps() *appmgr.Manager { return sh.apps }

// Config returns the configuration the shell was built with.
func (sh *Shell) Config() *config.UserConfig { return sh.cfg }

// ScreenSize returns the current screen dimensions in cells.
func (sh *Shell) ScreenSize() (int, int) { return sh.screenW, sh.screenH }

// LauncherQuery returns the text typed into the launcher so far.
func (sh *Shell) LauncherQuery() string { return sh.launcherInput }

// ShowingHelp reports whether the help overlay is open.
func (sh *Shell) ShowingHelp() bool { return sh.showHelp }

// ShowingLog reports whether the log overlay is open.
func (sh *Shell) ShowingLog() bool { return sh.showLog }

// ToggleHelp flips the help overlay. Opening it closes the log
// overlay so only one covers the screen at a time.
func (sh *Shell) ToggleHelp() {
	sh.showHelp = !sh.showHelp
	if sh.showHelp {
		sh.showLog = false
	}
}

// ToggleLog flips the log overlay, closing the help overlay when it
// opens.
func (sh *Shell) ToggleLog() {
	sh.showLog = !sh.showLog
	if sh.showLog {
		sh.showHelp = false
	}
}

// ShouldQuit reports whether a quit command has been accepted.
func (sh *Shell) ShouldQuit() bool { return sh.quitting }

// Quit marks the session as finished.
func (sh *Shell) Quit() {
	sh.quitting = true
}

// Resize records the new screen size and re-clamps every floating
// window on every workspace. Tiling trees need nothing: their rects
// are derived from the screen at render time.
func (sh *Shell) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sh.screenW = width
	sh.screenH = height

	for i := 0; i < sh.workspaces.Count(); i++ {
		ws := sh.workspaces.Workspace(i)
		if ws.Desktop == nil {
			continue
		}
		for _, w := range ws.Desktop.Windows {
			if w.State == floating.StateMaximized {
				w.Maximize(width, height)
				continue
			}
			w.Rect = w.Rect.
				ClampMinSize(sh.cfg.Window.MinWidth, sh.cfg.Window.MinHeight).
				ClampToScreen(width, height)
		}
	}
}

// FocusedTitle returns the focused container's or window's title, or
// "" when nothing holds focus on the active workspace.
func (sh *Shell) FocusedTitle() string {
	ws := sh.workspaces.Active()
	if ws.Tree != nil {
		if app := ws.Tree.FindFocusedApp(); app != nil {
			return app.Title
		}
		return ""
	}
	if w := ws.Desktop.FocusedWindow(); w != nil {
		return w.Title
	}
	return ""
}

// InstanceFor returns the app instance bound to a layout id, or nil
// when the slot is empty or the id is unknown.
func (sh *Shell) InstanceFor(layoutID int) *appmgr.Instance {
	if instanceID, ok := sh.instances[layoutID]; ok {
		return sh.apps.Get(instanceID)
	}
	return nil
}

// activeTree returns the active workspace's tree, or nil on a
// floating layout.
func (sh *Shell) activeTree() *tiling.Tree {
	return sh.workspaces.Active().Tree
}

// activeDesktop returns the active workspace's desktop, or nil on a
// tiling layout.
func (sh *Shell) activeDesktop() *floating.Desktop {
	return sh.workspaces.Active().Desktop
}

// focusedWindow returns the focused window of the active desktop.
func (sh *Shell) focusedWindow() *floating.Window {
	d := sh.activeDesktop()
	if d == nil {
		return nil
	}
	return d.FocusedWindow()
}

// syncAppFocus raises the app instance hosted by the focused layout
// slot in the app manager's focus history.
func (sh *Shell) syncAppFocus() {
	var layoutID int
	if tree := sh.activeTree(); tree != nil {
		app := tree.FindFocusedApp()
		if app == nil {
			return
		}
		layoutID = app.ID
	} else if w := sh.focusedWindow(); w != nil {
		layoutID = w.ID
	} else {
		return
	}
	if instanceID, ok := sh.instances[layoutID]; ok {
		sh.apps.Focus(instanceID)
	}
}
