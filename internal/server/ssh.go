// Package server serves deskmux sessions over SSH. Every connection
// gets its own independent shell sized to the client's PTY; nothing
// is shared between sessions.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/ssh"
	"github.com/deskmux/deskmux/internal/config"
	"github.com/deskmux/deskmux/internal/shell"
	"github.com/deskmux/deskmux/internal/ui"
)

// Config holds the SSH server settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string
	// Layout, when set, overrides the configured layout style for
	// every new session.
	Layout string
}

// Start runs the SSH server until ctx is canceled, then shuts it
// down gracefully.
func Start(ctx context.Context, cfg *Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "deskmux_host_key")
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(cfg.teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	go func() {
		log.Printf("Starting SSH server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Printf("SSH server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down SSH server...")
	return server.Shutdown(ctx)
}

// teaHandler builds a fresh deskmux session for one SSH connection.
func (cfg *Config) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sess.Pty()
	if !active {
		// A layout session is useless without a PTY.
		return nil, nil
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: failed to load config for SSH session, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}
	if cfg.Layout != "" {
		userConfig.General.Layout = cfg.Layout
	}

	// The session environment carries the client's TERM and COLORTERM,
	// so the profile reflects the far end, not this process.
	profile := colorprofile.Detect(sess, sess.Environ())
	log.Printf("session %s from %s (%dx%d, %s)",
		sess.User(), sess.RemoteAddr(), pty.Window.Width, pty.Window.Height, profile)

	sh := shell.New(shell.Options{
		Config:       userConfig,
		ScreenWidth:  pty.Window.Width,
		ScreenHeight: max(pty.Window.Height-1, 1),
	})
	sh.Notify(fmt.Sprintf("connected as %s", sess.User()), "info")

	return ui.New(sh), nil
}
