package input

import (
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/shell"
)

// HandleKey routes one pressed key. Overlays and the launcher capture
// keys before the keybind registry is consulted, so typing a query
// never triggers layout commands. The return value reports whether
// the key was consumed.
func HandleKey(key string, sh *shell.Shell, registry *config.KeybindRegistry, dispatcher *ActionDispatcher) bool {
	// Emergency quit bypasses the config system entirely.
	if key == "ctrl+c" {
		sh.Quit()
		return true
	}

	if sh.ShowingHelp() || sh.ShowingLog() {
		return handleOverlayKey(key, sh, registry, dispatcher)
	}

	if sh.Mode() == shell.LauncherMode {
		return handleLauncherKey(key, sh)
	}

	action := registry.GetAction(key)
	if action == "" {
		return false
	}
	return dispatcher.Dispatch(action, sh)
}

// handleOverlayKey services an open help or log overlay. Close keys
// and the overlay toggles work; everything else is swallowed so
// layout commands cannot fire underneath the overlay.
func handleOverlayKey(key string, sh *shell.Shell, registry *config.KeybindRegistry, dispatcher *ActionDispatcher) bool {
	if key == "q" || key == "esc" || key == "escape" {
		sh.Cancel()
		return true
	}
	switch action := registry.GetAction(key); action {
	case "toggle-help", "toggle-log", "quit":
		return dispatcher.Dispatch(action, sh)
	}
	return false
}

// handleLauncherKey feeds keys into the launcher query. Enter and
// escape keep their meaning; printable characters go into the buffer.
func handleLauncherKey(key string, sh *shell.Shell) bool {
	switch key {
	case "enter", "return":
		sh.Confirm()
		return true
	case "esc", "escape":
		sh.Cancel()
		return true
	case "backspace":
		sh.LauncherBackspace()
		return true
	case "space":
		sh.LauncherType(" ")
		return true
	}
	if len(key) == 1 && key[0] >= 32 && key[0] <= 126 {
		sh.LauncherType(key)
		return true
	}
	return false
}
