package main

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/theme"
)

// listKeybindings prints every binding the help overlay knows about,
// one table per section, plus the static mode hints.
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	registry := config.NewKeybindRegistry(userConfig)

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey()).Render("deskmux keybindings"))
	fmt.Println()

	for _, section := range config.GetKeybindings(registry) {
		rows := [][]string{}
		for _, b := range section.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
		if len(rows) == 0 {
			continue
		}

		title := section.Title
		if section.Condition != "" {
			title = fmt.Sprintf("%s (%s layout only)", section.Title, section.Condition)
		}
		printBindingTable(title, rows)
	}

	// Transient modes use fixed keys rather than registry bindings.
	modes := []struct{ name, title string }{
		{"move", "MOVE MODE"},
		{"resize", "RESIZE MODE"},
		{"launcher", "LAUNCHER"},
	}
	for _, mode := range modes {
		rows := [][]string{}
		for _, b := range config.GetModeKeybindings(mode.name) {
			rows = append(rows, []string{b.Key, b.Description})
		}
		if len(rows) == 0 {
			continue
		}
		printBindingTable(mode.title, rows)
	}

	note := lipgloss.NewStyle().
		Foreground(theme.CLITableDim()).
		Italic(true).
		Render("Note: multiple keys may be bound to one action. Edit bindings with 'deskmux config edit'.")
	fmt.Println(note)
	fmt.Println()
	return nil
}

// printBindingTable renders one titled keys/action table.
func printBindingTable(title string, rows [][]string) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableBorder())).
		Headers("Keys", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Render(title))
	fmt.Println(t.Render())
	fmt.Println()
}

// listCustomKeybindings shows only the keybindings that differ from
// defaults.
func listCustomKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	customizations := findCustomizations(userConfig, config.DefaultConfig())

	if len(customizations) == 0 {
		fmt.Println(lipgloss.NewStyle().Foreground(theme.CLITableDim()).Render("No custom keybindings configured. All keybindings are using defaults."))
		fmt.Println()
		fmt.Println("Run 'deskmux keybinds list' to see all keybindings.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey()).Render("Custom Keybindings"))
	fmt.Println()

	rows := [][]string{}
	for _, custom := range customizations {
		rows = append(rows, []string{
			custom.Action,
			custom.DefaultKeys,
			custom.CustomKeys,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableBorder())).
		Headers("Action", "Default", "Custom").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Println(t.Render())
	fmt.Println()

	note := lipgloss.NewStyle().
		Foreground(theme.CLITableHeader()).
		Render(fmt.Sprintf("Found %d customized keybinding(s)", len(customizations)))
	fmt.Println(note)
	fmt.Println()
	return nil
}

// Customization is one keybinding that differs from the defaults.
type Customization struct {
	Action      string
	DefaultKeys string
	CustomKeys  string
}

// findCustomizations finds all keybindings that differ from defaults.
func findCustomizations(userCfg, defaultCfg *config.UserConfig) []Customization {
	var customizations []Customization

	compareSections := func(userSection, defaultSection map[string][]string) {
		for action, defaultKeys := range defaultSection {
			userKeys, exists := userSection[action]
			if !exists {
				continue // Using default
			}
			if !slices.Equal(userKeys, defaultKeys) {
				customizations = append(customizations, Customization{
					Action:      formatActionName(action),
					DefaultKeys: strings.Join(defaultKeys, ", "),
					CustomKeys:  strings.Join(userKeys, ", "),
				})
			}
		}
	}

	compareSections(userCfg.Keybindings.Layout, defaultCfg.Keybindings.Layout)
	compareSections(userCfg.Keybindings.Focus, defaultCfg.Keybindings.Focus)
	compareSections(userCfg.Keybindings.Window, defaultCfg.Keybindings.Window)
	compareSections(userCfg.Keybindings.Workspace, defaultCfg.Keybindings.Workspace)
	compareSections(userCfg.Keybindings.Mode, defaultCfg.Keybindings.Mode)
	compareSections(userCfg.Keybindings.Global, defaultCfg.Keybindings.Global)

	sort.Slice(customizations, func(i, j int) bool {
		return customizations[i].Action < customizations[j].Action
	})
	return customizations
}

// formatActionName formats an action name for display.
func formatActionName(action string) string {
	if desc, ok := config.ActionDescriptions[action]; ok {
		return desc
	}
	return strings.ReplaceAll(action, "-", " ")
}
