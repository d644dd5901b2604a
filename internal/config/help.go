package config

import "fmt"

// Keybinding is a single help-menu entry.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings for the help overlay.
type KeybindingSection struct {
	Title     string
	Condition string // empty for always shown, "tiling" or "floating" for one layout
	Bindings  []Keybinding
}

// GetModeKeybindings returns the static hints shown while a transient
// mode is active.
func GetModeKeybindings(mode string) []Keybinding {
	switch mode {
	case "launcher":
		return []Keybinding{
			{"a-z", "Filter applications"},
			{"Backspace", "Delete last character"},
			{"Enter", "Launch"},
			{"Esc", "Cancel"},
		}
	case "move":
		return []Keybinding{
			{"h/j/k/l, arrows", "Move the focused window"},
			{"Enter/Esc", "Back to normal mode"},
		}
	case "resize":
		return []Keybinding{
			{"h/j/k/l, arrows", "Resize the focused window"},
			{"Enter/Esc", "Back to normal mode"},
		}
	default:
		return nil
	}
}

// GetKeybindings builds the help-menu sections from the registry so
// the overlay always reflects the user's actual bindings. A nil
// registry falls back to the default bindings.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}

	sections := []KeybindingSection{}

	windows := KeybindingSection{Title: "WINDOWS"}
	addBinding(&windows, registry, "spawn", "Spawn app")
	addBinding(&windows, registry, "launcher", "Open launcher")
	addBinding(&windows, registry, "close-focused", "Close window")
	addBinding(&windows, registry, "maximize", "Maximize")
	addBinding(&windows, registry, "restore", "Restore")
	addBinding(&windows, registry, "minimize", "Minimize")
	if len(windows.Bindings) > 0 {
		sections = append(sections, windows)
	}

	focus := KeybindingSection{Title: "FOCUS"}
	addBinding(&focus, registry, "focus-left", "Focus left")
	addBinding(&focus, registry, "focus-down", "Focus down")
	addBinding(&focus, registry, "focus-up", "Focus up")
	addBinding(&focus, registry, "focus-right", "Focus right")
	addBinding(&focus, registry, "cycle-focus", "Next window")
	addBinding(&focus, registry, "cycle-focus-reverse", "Previous window")
	if len(focus.Bindings) > 0 {
		sections = append(sections, focus)
	}

	tiling := KeybindingSection{Title: "TILING", Condition: "tiling"}
	addBinding(&tiling, registry, "split-horizontal", "Split side by side")
	addBinding(&tiling, registry, "split-vertical", "Split top and bottom")
	addBinding(&tiling, registry, "move-mode", "Swap containers")
	addBinding(&tiling, registry, "resize-mode", "Adjust ratios")
	if len(tiling.Bindings) > 0 {
		sections = append(sections, tiling)
	}

	floating := KeybindingSection{Title: "FLOATING", Condition: "floating"}
	addBinding(&floating, registry, "snap-left", "Snap left half")
	addBinding(&floating, registry, "snap-right", "Snap right half")
	addBinding(&floating, registry, "snap-top-left", "Snap top-left")
	addBinding(&floating, registry, "snap-top-right", "Snap top-right")
	addBinding(&floating, registry, "snap-bottom-left", "Snap bottom-left")
	addBinding(&floating, registry, "snap-bottom-right", "Snap bottom-right")
	addBinding(&floating, registry, "cascade", "Cascade windows")
	addBinding(&floating, registry, "toggle-always-on-top", "Toggle always on top")
	addBinding(&floating, registry, "toggle-sticky", "Toggle sticky")
	addBinding(&floating, registry, "move-mode", "Move window")
	addBinding(&floating, registry, "resize-mode", "Resize window")
	if len(floating.Bindings) > 0 {
		sections = append(sections, floating)
	}

	workspaces := KeybindingSection{Title: "WORKSPACES"}
	for i := 1; i <= 9; i++ {
		addBinding(&workspaces, registry,
			fmt.Sprintf("switch-workspace-%d", i),
			fmt.Sprintf("Switch to workspace %d", i))
	}
	for i := 1; i <= 9; i++ {
		addBinding(&workspaces, registry,
			fmt.Sprintf("move-to-workspace-%d", i),
			fmt.Sprintf("Move window to workspace %d", i))
	}
	addBinding(&workspaces, registry, "workspace-next", "Next workspace")
	addBinding(&workspaces, registry, "workspace-prev", "Previous workspace")
	if len(workspaces.Bindings) > 0 {
		sections = append(sections, workspaces)
	}

	system := KeybindingSection{Title: "SYSTEM"}
	addBinding(&system, registry, "toggle-help", "Toggle help")
	addBinding(&system, registry, "toggle-log", "Toggle log")
	addBinding(&system, registry, "quit", "Quit")
	if len(system.Bindings) > 0 {
		sections = append(sections, system)
	}

	return sections
}

// addBinding appends an entry when the action has keys configured.
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}
