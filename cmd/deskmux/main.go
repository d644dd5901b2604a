// Package main implements deskmux, a terminal workspace multiplexer.
// deskmux is a keyboard-driven layout engine: tiling and floating
// window management, numbered workspaces, a fuzzy app launcher, and a
// small script language for driving layouts, served locally or over
// SSH.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Appearance and layout flags shared by the UI-facing commands.
var (
	layoutName     string
	themeName      string
	borderStyle    string
	statusPosition string
	hideStatusBar  bool
	asciiOnly      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskmux",
		Short: "Terminal workspace multiplexer",
		Long: `deskmux - terminal workspace multiplexer

A keyboard-driven layout engine for the terminal: tiling and floating
window management, numbered workspaces, a fuzzy app launcher, and a
small script language for driving layouts, local or over SSH.`,
		Example: `  # Run deskmux
  deskmux

  # Start in tiling layout with a theme
  deskmux --layout tiling --theme dracula

  # Serve sessions over SSH
  deskmux ssh --port 2222

  # Replay a layout script inside the UI
  deskmux script play demo.dmx

  # Check a script without running it
  deskmux script check demo.dmx

  # List all keybindings
  deskmux keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal("")
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&layoutName, "layout", "", "Layout style to start in (tiling or floating)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii")
	rootCmd.PersistentFlags().StringVar(&statusPosition, "status-position", "", "Status bar position (top or bottom)")
	rootCmd.PersistentFlags().BoolVar(&hideStatusBar, "hide-status-bar", false, "Hide the status bar")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii", false, "Use ASCII characters only (no unicode glyphs)")

	// SSH command variables
	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve deskmux sessions over SSH",
		Long: `Serve deskmux sessions over SSH

Each connection gets its own independent workspace set, sized to the
client's terminal. The host key is generated automatically if the
given path does not exist.`,
		Example: `  # Start SSH server on default port
  deskmux ssh

  # Start on custom port
  deskmux ssh --port 2222

  # Specify custom host key
  deskmux ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSH(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	// Script command variables
	var scriptWidth, scriptHeight int
	var scriptVerbose, scriptPaced bool

	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "Run and check layout scripts",
		Long: `Run and check layout scripts

A layout script is a plain text file of commands like "spawn editor",
"split horizontal" or "workspace 2", one per line. Scripts can run
headlessly against a virtual screen or replay inside the UI.`,
	}

	scriptRunCmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Execute a script headlessly",
		Long: `Execute a layout script against a virtual screen without rendering
a UI, and print what happened. Useful for testing scripts and for
smoke-testing layouts in CI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(args[0], scriptWidth, scriptHeight, scriptVerbose, scriptPaced)
		},
	}

	scriptRunCmd.Flags().IntVar(&scriptWidth, "width", 120, "Virtual screen width")
	scriptRunCmd.Flags().IntVar(&scriptHeight, "height", 36, "Virtual screen height")
	scriptRunCmd.Flags().BoolVarP(&scriptVerbose, "verbose", "v", false, "Print a per-command transcript")
	scriptRunCmd.Flags().BoolVar(&scriptPaced, "paced", false, "Honor sleep delays in real time")

	scriptCheckCmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse scripts and report errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkScripts(args)
		},
	}

	scriptPlayCmd := &cobra.Command{
		Use:   "play FILE",
		Short: "Replay a script inside the UI",
		Long: `Start the deskmux UI and replay a layout script inside it, one
command per tick. Sleep commands pause playback; the keyboard stays
live throughout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(args[0])
		},
	}

	scriptCmd.AddCommand(scriptRunCmd, scriptCheckCmd, scriptPlayCmd)

	// Config command group
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage deskmux configuration",
		Long:  `Manage the deskmux configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the deskmux configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common
editors like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration as deskmux sees it: the config file merged
over the builtin defaults, as TOML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the deskmux configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configShowCmd, configResetCmd)

	// Keybinds command group
	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect the deskmux keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCustomCmd := &cobra.Command{
		Use:   "list-custom",
		Short: "List customized keybindings",
		Long: `Display only keybindings that differ from defaults

Shows a comparison of default and custom keybindings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCustomKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd, keybindsCustomCmd)

	rootCmd.AddCommand(sshCmd, scriptCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Ensure config file exists (create default if needed)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// showConfig prints the resolved configuration as TOML
func showConfig() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(userConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults() error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Check if config exists and ask for confirmation
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.WriteDefault(configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: deskmux config edit")
	return nil
}
