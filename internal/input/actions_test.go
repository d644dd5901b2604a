package input_test

import (
	"testing"

	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/input"
	"github.com/deskmux/deskmux/internal/shell"
)

func newShell(layout string) *shell.Shell {
	cfg := config.DefaultConfig()
	cfg.General.Layout = layout
	return shell.New(shell.Options{Config: cfg, ScreenWidth: 80, ScreenHeight: 24})
}

// =============================================================================
// Dispatcher Tests
// =============================================================================

func TestDispatcherCoversEveryDescribedAction(t *testing.T) {
	d := input.NewActionDispatcher()

	for action := range config.ActionDescriptions {
		if !d.HasAction(action) {
			t.Errorf("Expected handler for action %q", action)
		}
	}
}

func TestEveryHandlerDescribed(t *testing.T) {
	d := input.NewActionDispatcher()

	for _, action := range d.Actions() {
		if _, ok := config.ActionDescriptions[action]; !ok {
			t.Errorf("Action %q has a handler but no description", action)
		}
	}
}

func TestDefaultBindingsAreDispatchable(t *testing.T) {
	d := input.NewActionDispatcher()
	registry := config.NewKeybindRegistry(nil)

	for _, action := range registry.Actions() {
		if !d.HasAction(action) {
			t.Errorf("Action %q is bound by default but has no handler", action)
		}
	}
}

func TestDispatchRunsHandler(t *testing.T) {
	d := input.NewActionDispatcher()
	sh := newShell("floating")

	if !d.Dispatch("spawn", sh) {
		t.Fatal("Expected spawn to be dispatched")
	}
	if got := len(sh.Workspaces().Active().Desktop.Windows); got != 1 {
		t.Errorf("Expected 1 window after spawn, got %d", got)
	}

	d.Dispatch("move-mode", sh)
	if sh.Mode() != shell.MoveMode {
		t.Errorf("Expected move mode, got %v", sh.Mode())
	}
	d.Dispatch("cancel", sh)
	if sh.Mode() != shell.NormalMode {
		t.Errorf("Expected normal mode after cancel, got %v", sh.Mode())
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	d := input.NewActionDispatcher()
	sh := newShell("floating")

	if d.Dispatch("warp-window", sh) {
		t.Error("Expected unknown action to report unhandled")
	}
}

func TestDispatchWorkspaceActions(t *testing.T) {
	d := input.NewActionDispatcher()
	sh := newShell("floating")

	d.Dispatch("switch-workspace-3", sh)
	if sh.Workspaces().ActiveIndex() != 2 {
		t.Errorf("Expected workspace index 2, got %d", sh.Workspaces().ActiveIndex())
	}

	d.Dispatch("switch-workspace-1", sh)
	d.Dispatch("spawn", sh)
	d.Dispatch("move-to-workspace-2", sh)
	if got := len(sh.Workspaces().Workspace(1).Desktop.Windows); got != 1 {
		t.Errorf("Expected the window on workspace 2, got %d windows", got)
	}
}

func TestRegisterOverridesHandler(t *testing.T) {
	d := input.NewActionDispatcher()
	called := false
	d.Register("spawn", func(sh *shell.Shell) { called = true })

	d.Dispatch("spawn", newShell("floating"))
	if !called {
		t.Error("Expected the replacement handler to run")
	}
}

// =============================================================================
// Key Routing Tests
// =============================================================================

func TestHandleKeyDispatchesBoundAction(t *testing.T) {
	sh := newShell("floating")
	registry := config.NewKeybindRegistry(nil)
	d := input.NewActionDispatcher()

	if !input.HandleKey("n", sh, registry, d) {
		t.Fatal("Expected bound key to be consumed")
	}
	if got := len(sh.Workspaces().Active().Desktop.Windows); got != 1 {
		t.Errorf("Expected spawn via key, got %d windows", got)
	}

	if input.HandleKey("ctrl+shift+super+y", sh, registry, d) {
		t.Error("Expected unbound key to pass through")
	}
}

func TestHandleKeyLauncherCapturesText(t *testing.T) {
	sh := newShell("floating")
	registry := config.NewKeybindRegistry(nil)
	d := input.NewActionDispatcher()

	sh.OpenLauncher()

	// "n" is the spawn binding, but the launcher owns it now.
	input.HandleKey("n", sh, registry, d)
	if got := len(sh.Workspaces().Active().Desktop.Windows); got != 0 {
		t.Fatalf("Expected no spawn while the launcher is open, got %d windows", got)
	}
	if sh.LauncherQuery() != "n" {
		t.Errorf("Expected the key typed into the query, got %q", sh.LauncherQuery())
	}

	input.HandleKey("backspace", sh, registry, d)
	for _, key := range []string{"s", "h", "e", "l", "l"} {
		input.HandleKey(key, sh, registry, d)
	}
	input.HandleKey("enter", sh, registry, d)

	if sh.Mode() != shell.NormalMode {
		t.Fatalf("Expected normal mode after confirm, got %v", sh.Mode())
	}
	windows := sh.Workspaces().Active().Desktop.Windows
	if len(windows) != 1 || windows[0].Title != "Shell" {
		t.Errorf("Expected a Shell window, got %d windows", len(windows))
	}
}

func TestHandleKeyLauncherEscapeCancels(t *testing.T) {
	sh := newShell("floating")
	registry := config.NewKeybindRegistry(nil)
	d := input.NewActionDispatcher()

	sh.OpenLauncher()
	input.HandleKey("x", sh, registry, d)
	input.HandleKey("esc", sh, registry, d)

	if sh.Mode() != shell.NormalMode || sh.LauncherQuery() != "" {
		t.Error("Expected escape to cancel the launcher")
	}
}

func TestHandleKeyOverlaySwallowsCommands(t *testing.T) {
	sh := newShell("floating")
	registry := config.NewKeybindRegistry(nil)
	d := input.NewActionDispatcher()

	sh.ToggleHelp()

	input.HandleKey("n", sh, registry, d)
	if got := len(sh.Workspaces().Active().Desktop.Windows); got != 0 {
		t.Errorf("Expected no spawn under the help overlay, got %d windows", got)
	}

	// The toggle key closes its own overlay.
	input.HandleKey("?", sh, registry, d)
	if sh.ShowingHelp() {
		t.Error("Expected the help key to close the overlay")
	}

	sh.ToggleLog()
	input.HandleKey("q", sh, registry, d)
	if sh.ShowingLog() {
		t.Error("Expected q to close the log overlay")
	}
}

func TestHandleKeyEmergencyQuit(t *testing.T) {
	sh := newShell("floating")
	registry := config.NewKeybindRegistry(nil)
	d := input.NewActionDispatcher()

	sh.OpenLauncher()
	input.HandleKey("ctrl+c", sh, registry, d)
	if !sh.ShouldQuit() {
		t.Error("Expected ctrl+c to quit from any mode")
	}
}
