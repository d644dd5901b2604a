// Package config defines the user configuration, the keybinding
// registry built from it, and the runtime display settings shared
// across the UI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Runtime display settings. Set once at startup from the user config
// plus CLI overrides, read everywhere else.
var (
	UseASCIIOnly   bool
	BorderStyle    = "rounded"
	StatusPosition = "bottom"
	ShowStatusBar  = true
	ThemeName      string
	ModKey         = "ctrl+space"
)

// UserConfig is the on-disk configuration.
type UserConfig struct {
	General     GeneralConfig     `toml:"general"`
	Window      WindowConfig      `toml:"window"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Workspaces  WorkspacesConfig  `toml:"workspaces"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Apps        []AppConfig       `toml:"apps"`
}

// GeneralConfig selects the layout engine and its split default.
type GeneralConfig struct {
	Layout       string `toml:"layout"`        // "tiling" or "floating"
	DefaultSplit string `toml:"default_split"` // "horizontal" or "vertical"
}

// WindowConfig bounds floating window geometry.
type WindowConfig struct {
	MinWidth      int `toml:"min_width"`
	MinHeight     int `toml:"min_height"`
	DefaultWidth  int `toml:"default_width"`
	DefaultHeight int `toml:"default_height"`
}

// AppearanceConfig covers borders, the status bar, and theming.
type AppearanceConfig struct {
	Theme          string `toml:"theme"`
	BorderStyle    string `toml:"border_style"`
	StatusPosition string `toml:"status_position"`
	ShowStatusBar  bool   `toml:"show_status_bar"`
	ASCIIOnly      bool   `toml:"ascii_only"`
}

// WorkspacesConfig names the fixed workspace pool.
type WorkspacesConfig struct {
	Names []string `toml:"names"`
}

// KeybindingsConfig maps action names to key lists, grouped by concern.
// Multiple keys may be bound to one action.
type KeybindingsConfig struct {
	ModKey    string              `toml:"mod_key"`
	Layout    map[string][]string `toml:"layout"`
	Focus     map[string][]string `toml:"focus"`
	Window    map[string][]string `toml:"window"`
	Workspace map[string][]string `toml:"workspace"`
	Mode      map[string][]string `toml:"mode"`
	Global    map[string][]string `toml:"global"`
}

// AppConfig adds an entry to the launcher catalog.
type AppConfig struct {
	Name     string   `toml:"name"`
	Title    string   `toml:"title"`
	Category string   `toml:"category"`
	Keywords []string `toml:"keywords"`
}

// DefaultConfig returns the builtin configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		General: GeneralConfig{
			Layout:       "floating",
			DefaultSplit: "horizontal",
		},
		Window: WindowConfig{
			MinWidth:      20,
			MinHeight:     5,
			DefaultWidth:  60,
			DefaultHeight: 20,
		},
		Appearance: AppearanceConfig{
			Theme:          "",
			BorderStyle:    "rounded",
			StatusPosition: "bottom",
			ShowStatusBar:  true,
		},
		Workspaces: WorkspacesConfig{
			Names: []string{"1", "2", "3", "4"},
		},
		Keybindings: KeybindingsConfig{
			ModKey: "ctrl+space",
			Layout: map[string][]string{
				"spawn":            {"n"},
				"split-horizontal": {"s"},
				"split-vertical":   {"v"},
				"close-focused":    {"x"},
			},
			Focus: map[string][]string{
				"focus-left":          {"h", "left"},
				"focus-right":         {"l", "right"},
				"focus-up":            {"k", "up"},
				"focus-down":          {"j", "down"},
				"cycle-focus":         {"tab"},
				"cycle-focus-reverse": {"shift+tab"},
			},
			Window: map[string][]string{
				"maximize":          {"f"},
				"restore":           {"u"},
				"minimize":          {"m"},
				"cascade":           {"c"},
				"snap-left":         {"shift+h"},
				"snap-right":        {"shift+l"},
				"snap-top-left":     {"1"},
				"snap-top-right":    {"2"},
				"snap-bottom-left":  {"3"},
				"snap-bottom-right": {"4"},
			},
			Workspace: map[string][]string{
				"switch-workspace-1":  {"alt+1"},
				"switch-workspace-2":  {"alt+2"},
				"switch-workspace-3":  {"alt+3"},
				"switch-workspace-4":  {"alt+4"},
				"switch-workspace-5":  {"alt+5"},
				"switch-workspace-6":  {"alt+6"},
				"switch-workspace-7":  {"alt+7"},
				"switch-workspace-8":  {"alt+8"},
				"switch-workspace-9":  {"alt+9"},
				"workspace-next":      {"]"},
				"workspace-prev":      {"["},
				"move-to-workspace-1": {"alt+shift+1"},
				"move-to-workspace-2": {"alt+shift+2"},
				"move-to-workspace-3": {"alt+shift+3"},
				"move-to-workspace-4": {"alt+shift+4"},
				"move-to-workspace-5": {"alt+shift+5"},
				"move-to-workspace-6": {"alt+shift+6"},
				"move-to-workspace-7": {"alt+shift+7"},
				"move-to-workspace-8": {"alt+shift+8"},
				"move-to-workspace-9": {"alt+shift+9"},
			},
			Mode: map[string][]string{
				"move-mode":   {"g"},
				"resize-mode": {"r"},
				"confirm":     {"enter"},
				"cancel":      {"esc"},
			},
			Global: map[string][]string{
				"toggle-always-on-top": {"o"},
				"toggle-sticky":        {"p"},
				"toggle-help":          {"?"},
				"toggle-log":           {"ctrl+l"},
				"quit":                 {"ctrl+q"},
			},
		},
	}
}

// ConfigPath returns the user config file location, creating parent
// directories as needed.
func ConfigPath() (string, error) {
	return xdg.ConfigFile("deskmux/deskmux.toml")
}

// LoadUserConfig reads the user config from the XDG path. A missing
// file is not an error: the default config is written there and
// returned. A file that exists but does not parse is an error.
func LoadUserConfig() (*UserConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("could not determine config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if writeErr := WriteDefault(path); writeErr != nil {
			// Still usable without a config file on disk.
			return DefaultConfig(), nil
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// WriteDefault writes the default config as commented TOML to path.
func WriteDefault(path string) error {
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# deskmux configuration\n")
	sb.WriteString("# Keybindings map action names to lists of keys;\n")
	sb.WriteString("# multiple keys may be bound to the same action.\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// normalize fills in anything the user config left empty so callers
// never see zero values for required settings.
func (c *UserConfig) normalize() {
	def := DefaultConfig()
	if c.General.Layout != "tiling" && c.General.Layout != "floating" {
		c.General.Layout = def.General.Layout
	}
	if c.General.DefaultSplit != "horizontal" && c.General.DefaultSplit != "vertical" {
		c.General.DefaultSplit = def.General.DefaultSplit
	}
	if c.Window.MinWidth <= 0 {
		c.Window.MinWidth = def.Window.MinWidth
	}
	if c.Window.MinHeight <= 0 {
		c.Window.MinHeight = def.Window.MinHeight
	}
	if c.Window.DefaultWidth <= 0 {
		c.Window.DefaultWidth = def.Window.DefaultWidth
	}
	if c.Window.DefaultHeight <= 0 {
		c.Window.DefaultHeight = def.Window.DefaultHeight
	}
	if c.Appearance.BorderStyle == "" {
		c.Appearance.BorderStyle = def.Appearance.BorderStyle
	}
	if c.Appearance.StatusPosition == "" {
		c.Appearance.StatusPosition = def.Appearance.StatusPosition
	}
	if len(c.Workspaces.Names) == 0 {
		c.Workspaces.Names = def.Workspaces.Names
	}
	if c.Keybindings.ModKey == "" {
		c.Keybindings.ModKey = def.Keybindings.ModKey
	}
	if c.Keybindings.Layout == nil {
		c.Keybindings.Layout = def.Keybindings.Layout
	}
	if c.Keybindings.Focus == nil {
		c.Keybindings.Focus = def.Keybindings.Focus
	}
	if c.Keybindings.Window == nil {
		c.Keybindings.Window = def.Keybindings.Window
	}
	if c.Keybindings.Workspace == nil {
		c.Keybindings.Workspace = def.Keybindings.Workspace
	}
	if c.Keybindings.Mode == nil {
		c.Keybindings.Mode = def.Keybindings.Mode
	}
	if c.Keybindings.Global == nil {
		c.Keybindings.Global = def.Keybindings.Global
	}
}

// Overrides carries CLI flag values that take precedence over the
// loaded config.
type Overrides struct {
	ASCIIOnly     bool
	BorderStyle   string
	StatusPos     string
	HideStatusBar bool
	ThemeName     string
	Layout        string
}

// ApplyOverrides folds the user config and CLI flags into the runtime
// settings. Flag values win over config values; cfg may be nil when no
// config file is available.
func ApplyOverrides(o Overrides, cfg *UserConfig) {
	if cfg != nil {
		UseASCIIOnly = cfg.Appearance.ASCIIOnly
		if cfg.Appearance.BorderStyle != "" {
			BorderStyle = cfg.Appearance.BorderStyle
		}
		if cfg.Appearance.StatusPosition != "" {
			StatusPosition = cfg.Appearance.StatusPosition
		}
		ShowStatusBar = cfg.Appearance.ShowStatusBar
		ThemeName = cfg.Appearance.Theme
		if cfg.Keybindings.ModKey != "" {
			ModKey = cfg.Keybindings.ModKey
		}
	}

	if o.ASCIIOnly {
		UseASCIIOnly = true
	}
	if o.BorderStyle != "" {
		BorderStyle = o.BorderStyle
	}
	if o.StatusPos != "" {
		StatusPosition = o.StatusPos
	}
	if o.HideStatusBar {
		ShowStatusBar = false
	}
	if o.ThemeName != "" {
		ThemeName = o.ThemeName
	}
	if cfg != nil && o.Layout != "" {
		cfg.General.Layout = o.Layout
	}
}
