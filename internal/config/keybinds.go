package config

import (
	"fmt"
	"sort"
	"strings"
)

// ActionDescriptions maps every command token to its help text.
var ActionDescriptions = map[string]string{
	"spawn":                "Spawn an app into the focused slot",
	"split-horizontal":     "Split side by side",
	"split-vertical":       "Split top and bottom",
	"close-focused":        "Close the focused window",
	"focus-left":           "Focus left",
	"focus-right":          "Focus right",
	"focus-up":             "Focus up",
	"focus-down":           "Focus down",
	"cycle-focus":          "Focus next window",
	"cycle-focus-reverse":  "Focus previous window",
	"maximize":             "Maximize the focused window",
	"restore":              "Restore the focused window",
	"minimize":             "Minimize the focused window",
	"cascade":              "Cascade visible windows",
	"snap-left":            "Snap to the left half",
	"snap-right":           "Snap to the right half",
	"snap-top-left":        "Snap to the top-left quarter",
	"snap-top-right":       "Snap to the top-right quarter",
	"snap-bottom-left":     "Snap to the bottom-left quarter",
	"snap-bottom-right":    "Snap to the bottom-right quarter",
	"workspace-next":       "Next workspace",
	"workspace-prev":       "Previous workspace",
	"move-mode":            "Enter move mode",
	"resize-mode":          "Enter resize mode",
	"launcher":             "Open the app launcher",
	"confirm":              "Confirm / leave mode",
	"cancel":               "Cancel / leave mode",
	"toggle-always-on-top": "Keep the focused window on top",
	"toggle-sticky":        "Show the focused window on every workspace",
	"toggle-help":          "Toggle the help overlay",
	"toggle-log":           "Toggle the log overlay",
	"quit":                 "Quit deskmux",
}

func init() {
	for i := 1; i <= 9; i++ {
		ActionDescriptions[fmt.Sprintf("switch-workspace-%d", i)] = fmt.Sprintf("Switch to workspace %d", i)
		ActionDescriptions[fmt.Sprintf("move-to-workspace-%d", i)] = fmt.Sprintf("Move the focused window to workspace %d", i)
	}
}

// KeybindRegistry resolves keys to command tokens and back. It is
// built once from the user config and rebuilt on config reload.
type KeybindRegistry struct {
	actionToKeys map[string][]string
	keyToAction  map[string]string
	normalizer   *KeyNormalizer
}

// NewKeybindRegistry builds a registry from cfg; nil means defaults.
// The first binding of a key wins on conflicts, and the launcher
// action falls back to the mod key when nothing else binds it.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &KeybindRegistry{
		actionToKeys: make(map[string][]string),
		keyToAction:  make(map[string]string),
		normalizer:   NewKeyNormalizer(),
	}
	for _, section := range []map[string][]string{
		cfg.Keybindings.Layout,
		cfg.Keybindings.Focus,
		cfg.Keybindings.Window,
		cfg.Keybindings.Workspace,
		cfg.Keybindings.Mode,
		cfg.Keybindings.Global,
	} {
		for action, keys := range section {
			for _, key := range keys {
				r.bind(action, key)
			}
		}
	}

	if len(r.actionToKeys["launcher"]) == 0 {
		modKey := cfg.Keybindings.ModKey
		if modKey == "" {
			modKey = ModKey
		}
		r.bind("launcher", modKey)
	}
	return r
}

func (r *KeybindRegistry) bind(action, key string) {
	variants := r.normalizer.NormalizeKey(key)
	if len(variants) == 0 {
		return
	}
	bound := false
	for _, v := range variants {
		if _, taken := r.keyToAction[v]; taken {
			continue
		}
		r.keyToAction[v] = action
		bound = true
	}
	if bound {
		r.actionToKeys[action] = append(r.actionToKeys[action], variants[0])
	}
}

// GetKeys returns the keys bound to an action, in config order.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction resolves a pressed key to its command token, or "" when
// the key is unbound.
func (r *KeybindRegistry) GetAction(key string) string {
	for _, v := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.keyToAction[v]; ok {
			return action
		}
	}
	return ""
}

// HasKey reports whether a key is bound to anything.
func (r *KeybindRegistry) HasKey(key string) bool {
	return r.GetAction(key) != ""
}

// GetKeysForDisplay formats an action's keys for help output.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.actionToKeys[action]
	if len(keys) == 0 {
		return ""
	}
	display := make([]string, len(keys))
	for i, key := range keys {
		display[i] = FormatKeyForDisplay(key)
	}
	return strings.Join(display, ", ")
}

// Actions lists every bound action, sorted for stable output.
func (r *KeybindRegistry) Actions() []string {
	actions := make([]string, 0, len(r.actionToKeys))
	for action := range r.actionToKeys {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// FormatKeyForDisplay renders a normalized key in help-menu casing:
// modifiers title-cased, the final key upper-cased when it is a
// single letter.
func FormatKeyForDisplay(key string) string {
	parts := strings.Split(key, "+")
	for i, part := range parts {
		switch part {
		case "ctrl", "alt", "shift", "super":
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		case "esc", "escape":
			parts[i] = "Esc"
		case "enter", "return":
			parts[i] = "Enter"
		case "tab":
			parts[i] = "Tab"
		case "space":
			parts[i] = "Space"
		}
	}
	return strings.Join(parts, "+")
}

// keyAliases maps interchangeable key names in either direction.
var keyAliases = map[string]string{
	"esc":    "escape",
	"escape": "esc",
	"enter":  "return",
	"return": "enter",
}

// KeyNormalizer canonicalizes key strings from config files and from
// the input layer so both sides agree on spelling.
type KeyNormalizer struct{}

// NewKeyNormalizer returns a normalizer.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{}
}

// NormalizeKey lower-cases a key string and returns it together with
// any alias spellings (esc/escape, enter/return). The empty string
// normalizes to nothing.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	if key == " " {
		key = "space"
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil
	}
	variants := []string{key}

	parts := strings.Split(key, "+")
	last := parts[len(parts)-1]
	if alias, ok := keyAliases[last]; ok {
		parts[len(parts)-1] = alias
		variants = append(variants, strings.Join(parts, "+"))
	}
	return variants
}

// ValidateKey reports whether a key string is usable in a binding.
func (n *KeyNormalizer) ValidateKey(key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, fmt.Errorf("empty key")
	}
	parts := strings.Split(key, "+")
	for i, part := range parts {
		if part == "" {
			return false, fmt.Errorf("empty segment in key %q", key)
		}
		isModifier := false
		switch strings.ToLower(part) {
		case "ctrl", "alt", "shift", "super":
			isModifier = true
		}
		if isModifier && i == len(parts)-1 {
			return false, fmt.Errorf("key %q ends in a modifier", key)
		}
	}
	return true, nil
}
