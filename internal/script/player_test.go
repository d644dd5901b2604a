package script_test

import (
	"context"
	"strings"
	"testing"

	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/geometry"
	"github.com/deskmux/deskmux/internal/input"
	"github.com/deskmux/deskmux/internal/script"
	"github.com/deskmux/deskmux/internal/shell"
)

func newShell(layout string) *shell.Shell {
	cfg := config.DefaultConfig()
	cfg.General.Layout = layout
	return shell.New(shell.Options{Config: cfg, ScreenWidth: 80, ScreenHeight: 24})
}

func mustParse(t *testing.T, content string) []script.Command {
	t.Helper()
	commands, errors := script.ParseFile(content)
	if len(errors) != 0 {
		t.Fatalf("Parse errors: %v", errors)
	}
	return commands
}

// =============================================================================
// Player Tests
// =============================================================================

func TestPlayerStepping(t *testing.T) {
	commands := mustParse(t, "spawn editor\nsplit horizontal\nquit")
	p := script.NewPlayer(commands)

	if p.TotalCommands() != 3 {
		t.Fatalf("Expected 3 commands, got %d", p.TotalCommands())
	}
	if p.Progress() != 0 {
		t.Errorf("Expected progress 0, got %d", p.Progress())
	}
	if cmd := p.NextCommand(); cmd == nil || cmd.Type != script.CommandType_Spawn {
		t.Errorf("Expected first command spawn, got %v", cmd)
	}

	p.Advance()
	if p.CurrentIndex() != 1 {
		t.Errorf("Expected index 1, got %d", p.CurrentIndex())
	}
	if p.IsFinished() {
		t.Error("Expected player not finished after one command")
	}

	p.Advance()
	p.Advance()
	if !p.IsFinished() {
		t.Error("Expected player finished after all commands")
	}
	if p.NextCommand() != nil {
		t.Error("Expected no next command when finished")
	}
	if p.Progress() != 100 {
		t.Errorf("Expected progress 100, got %d", p.Progress())
	}
	if p.CommandStr() != "script finished" {
		t.Errorf("Expected finished marker, got %q", p.CommandStr())
	}

	p.Reset()
	if p.IsFinished() || p.CurrentIndex() != 0 {
		t.Errorf("Expected reset player at start, got %s", p)
	}
}

func TestPlayerPause(t *testing.T) {
	p := script.NewPlayer(mustParse(t, "spawn editor"))

	if p.IsPaused() {
		t.Error("Expected new player unpaused")
	}
	p.SetPaused(true)
	if !p.IsPaused() {
		t.Error("Expected player paused")
	}
}

// =============================================================================
// Execute Tests
// =============================================================================

func TestExecuteLauncherFlow(t *testing.T) {
	sh := newShell("floating")
	d := input.NewActionDispatcher()

	commands := mustParse(t, "launcher\ntype \"monitor\"\nconfirm")
	for i := range commands {
		if err := script.Execute(&commands[i], sh, d); err != nil {
			t.Fatalf("Execute(%s): %v", commands[i].String(), err)
		}
	}

	if sh.Mode() != shell.NormalMode {
		t.Errorf("Expected normal mode after confirm, got %v", sh.Mode())
	}
	windows := sh.Workspaces().Active().Desktop.Windows
	if len(windows) != 1 {
		t.Fatalf("Expected 1 window, got %d", len(windows))
	}
	if windows[0].Title != "System Monitor" {
		t.Errorf("Expected catalog title, got %q", windows[0].Title)
	}
}

func TestExecuteFocusRepeat(t *testing.T) {
	sh := newShell("tiling")
	d := input.NewActionDispatcher()

	commands := mustParse(t, "spawn editor\nspawn monitor\nspawn shell\nleft 2")
	for i := range commands {
		if err := script.Execute(&commands[i], sh, d); err != nil {
			t.Fatalf("Execute(%s): %v", commands[i].String(), err)
		}
	}

	focused := sh.Workspaces().Active().Tree.FindFocusedApp()
	if focused == nil || focused.Name != "editor" {
		t.Fatalf("Expected focus back on editor, got %v", focused)
	}
}

func TestExecuteKeepsModeGuards(t *testing.T) {
	sh := newShell("floating")
	d := input.NewActionDispatcher()

	// A spawn in move mode is ignored, same as the key binding
	commands := mustParse(t, "mode move\nspawn editor\ncancel")
	for i := range commands {
		if err := script.Execute(&commands[i], sh, d); err != nil {
			t.Fatalf("Execute(%s): %v", commands[i].String(), err)
		}
	}

	if sh.Mode() != shell.NormalMode {
		t.Errorf("Expected normal mode after cancel, got %v", sh.Mode())
	}
	if n := len(sh.Workspaces().Active().Desktop.Windows); n != 0 {
		t.Errorf("Expected no windows, got %d", n)
	}
}

// =============================================================================
// Runner Tests
// =============================================================================

func TestRunnerRunsScript(t *testing.T) {
	sh := newShell("floating")
	d := input.NewActionDispatcher()

	commands := mustParse(t, `spawn editor
spawn monitor
workspace 2
spawn shell
workspace 1
maximize`)

	r := script.NewRunner(commands)
	if err := r.Run(context.Background(), sh, d); err != nil {
		t.Fatalf("Run: %v", err)
	}

	ws := sh.Workspaces()
	if ws.ActiveIndex() != 0 {
		t.Errorf("Expected to end on workspace 1, got index %d", ws.ActiveIndex())
	}
	if n := len(ws.Workspace(0).Desktop.Windows); n != 2 {
		t.Errorf("Expected 2 windows on workspace 1, got %d", n)
	}
	if n := len(ws.Workspace(1).Desktop.Windows); n != 1 {
		t.Errorf("Expected 1 window on workspace 2, got %d", n)
	}
	if n := len(sh.Apps().ListRunning()); n != 3 {
		t.Errorf("Expected 3 running apps, got %d", n)
	}

	focused := ws.Active().Desktop.FocusedWindow()
	if focused == nil {
		t.Fatal("Expected a focused window")
	}
	if focused.Title != "System Monitor" {
		t.Errorf("Expected monitor focused, got %q", focused.Title)
	}
	if focused.Rect != geometry.NewRect(0, 0, 80, 24) {
		t.Errorf("Expected maximized rect, got %+v", focused.Rect)
	}
}

func TestRunnerStopsOnQuit(t *testing.T) {
	sh := newShell("floating")
	d := input.NewActionDispatcher()

	commands := mustParse(t, "spawn editor\nquit\nspawn monitor")
	r := script.NewRunner(commands)
	if err := r.Run(context.Background(), sh, d); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !sh.ShouldQuit() {
		t.Error("Expected shell quit flag set")
	}
	if n := len(sh.Apps().ListRunning()); n != 1 {
		t.Errorf("Expected 1 running app, got %d", n)
	}

	stats := r.Stats()
	if stats.Executed != 2 || stats.Total != 3 {
		t.Errorf("Expected 2/3 executed, got %d/%d", stats.Executed, stats.Total)
	}
}

func TestRunnerVerboseTranscript(t *testing.T) {
	sh := newShell("floating")
	d := input.NewActionDispatcher()

	r := script.NewRunner(mustParse(t, "spawn editor\nworkspace 2\nquit"))
	r.SetVerbose(true)
	if err := r.Run(context.Background(), sh, d); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := r.GetOutput()
	for _, want := range []string{
		"running 3 commands",
		"[1/3] spawn editor",
		"on workspace 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected transcript to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRunnerHonorsContext(t *testing.T) {
	sh := newShell("floating")
	d := input.NewActionDispatcher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := script.NewRunner(mustParse(t, "spawn editor"))
	if err := r.Run(ctx, sh, d); err == nil {
		t.Fatal("Expected error from canceled context")
	}
	if n := len(sh.Apps().ListRunning()); n != 0 {
		t.Errorf("Expected no apps launched, got %d", n)
	}
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestValidateScript(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{"valid script", "spawn editor\nsplit horizontal", true},
		{"parse error", "split diagonal", false},
		{"empty script", "# comments only\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errors := script.ValidateScript(tt.content)
			if valid != tt.valid {
				t.Errorf("Expected valid=%v, got %v (errors %v)", tt.valid, valid, errors)
			}
			if !valid && len(errors) == 0 {
				t.Error("Expected at least one error for invalid script")
			}
		})
	}
}
