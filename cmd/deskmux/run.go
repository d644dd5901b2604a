package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/input"
	"github.com/deskmux/deskmux/internal/script"
	"github.com/deskmux/deskmux/internal/server"
	"github.com/deskmux/deskmux/internal/shell"
	"github.com/deskmux/deskmux/internal/theme"
	"github.com/deskmux/deskmux/internal/ui"
	"golang.org/x/term"
)

// runLocal starts the UI in the current terminal. A non-empty
// scriptPath loads a layout script for in-UI playback.
func runLocal(scriptPath string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("deskmux needs an interactive terminal (use 'deskmux script run' for headless use)")
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	overrides := config.Overrides{
		ASCIIOnly:     asciiOnly,
		BorderStyle:   borderStyle,
		StatusPos:     statusPosition,
		HideStatusBar: hideStatusBar,
		ThemeName:     themeName,
		Layout:        layoutName,
	}
	config.ApplyOverrides(overrides, userConfig)

	if err := theme.Initialize(config.ThemeName); err != nil {
		log.Printf("Warning: theme %q unavailable: %v", config.ThemeName, err)
	}

	sh := shell.New(shell.Options{Config: userConfig})
	model := ui.New(sh)

	if scriptPath != "" {
		commands, err := loadScript(scriptPath)
		if err != nil {
			return err
		}
		model.SetScript(script.NewPlayer(commands))
	}

	p := tea.NewProgram(model, tea.WithoutSignalHandler())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	// Push config file changes into the running program. Flag values
	// keep their precedence across reloads.
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	if path, err := config.ConfigPath(); err == nil {
		watchErr := config.Watch(watchCtx, path, func() {
			cfg, err := config.LoadUserConfig()
			if err != nil {
				log.Printf("Warning: config reload failed: %v", err)
				return
			}
			config.ApplyOverrides(overrides, cfg)
			p.Send(ui.ConfigReloadedMsg{Config: cfg})
		})
		if watchErr != nil {
			log.Printf("Warning: config watching disabled: %v", watchErr)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// runSSH serves deskmux sessions over SSH until interrupted. Sessions
// share the host's appearance settings; layout and keybindings stay
// per-session.
func runSSH(sshHost, sshPort, sshKeyPath string) error {
	hostConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		hostConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:     asciiOnly,
		BorderStyle:   borderStyle,
		StatusPos:     statusPosition,
		HideStatusBar: hideStatusBar,
		ThemeName:     themeName,
	}, hostConfig)

	if err := theme.Initialize(config.ThemeName); err != nil {
		log.Printf("Warning: theme %q unavailable: %v", config.ThemeName, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	cfg := &server.Config{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Layout:  layoutName,
	}
	if err := server.Start(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

// runScript executes a layout script headlessly against a virtual
// screen and reports what happened.
func runScript(path string, width, height int, verbose, paced bool) error {
	commands, err := loadScript(path)
	if err != nil {
		return err
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(config.Overrides{Layout: layoutName}, userConfig)

	sh := shell.New(shell.Options{
		Config:       userConfig,
		ScreenWidth:  width,
		ScreenHeight: height,
	})

	runner := script.NewRunner(commands)
	runner.SetVerbose(verbose)
	runner.SetPaced(paced)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := runner.Run(ctx, sh, input.NewActionDispatcher())
	if verbose {
		if err := runner.WriteOutput(os.Stdout); err != nil {
			return err
		}
	}

	stats := runner.Stats()
	fmt.Printf("%s: %d/%d commands in %s\n",
		path, stats.Executed, stats.Total, stats.Elapsed.Round(time.Millisecond))
	if runErr != nil {
		return fmt.Errorf("script failed: %w", runErr)
	}
	return nil
}

// checkScripts parses each file and reports errors without executing
// anything.
func checkScripts(paths []string) error {
	failed := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}

		commands, problems := script.ParseFile(string(content))
		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, p)
			}
			failed++
			continue
		}
		if len(commands) == 0 {
			fmt.Fprintf(os.Stderr, "%s: no commands found\n", path)
			failed++
			continue
		}
		fmt.Printf("%s: ok (%d commands)\n", path, len(commands))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed validation", failed, len(paths))
	}
	return nil
}

// loadScript reads and parses a script file, printing parse errors to
// stderr.
func loadScript(path string) ([]script.Command, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read script: %w", err)
	}

	commands, problems := script.ParseFile(string(content))
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, p)
		}
		return nil, fmt.Errorf("script has %d error(s)", len(problems))
	}
	return commands, nil
}
