package script

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/deskmux/deskmux/internal/input"
	"github.com/deskmux/deskmux/internal/shell"
)

// Runner executes a parsed script against a shell without rendering a
// UI. It captures a transcript of the run for logging or export.
type Runner struct {
	commands   []Command
	output     strings.Builder
	outputLock sync.Mutex
	verbose    bool
	paced      bool
	executed   int
	elapsed    time.Duration
}

// NewRunner creates a new headless script runner
func NewRunner(commands []Command) *Runner {
	return &Runner{commands: commands}
}

// SetVerbose enables per-command transcript logging
func (r *Runner) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// SetPaced makes Run honor sleep delays in real time. Unpaced runs
// apply every command back to back.
func (r *Runner) SetPaced(paced bool) {
	r.paced = paced
}

// Run executes all commands in order against the shell. It stops at
// the first failing command, when the script quits the shell, or when
// the context is canceled.
func (r *Runner) Run(ctx context.Context, sh *shell.Shell, d *input.ActionDispatcher) error {
	started := time.Now()
	defer func() { r.elapsed = time.Since(started) }()

	if r.verbose {
		r.logf("running %d commands\n", len(r.commands))
	}

	for i := range r.commands {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cmd := &r.commands[i]
		if r.verbose {
			r.logf("[%d/%d] %s\n", i+1, len(r.commands), cmd.String())
		}

		if err := Execute(cmd, sh, d); err != nil {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
		r.executed++

		if r.verbose {
			switch cmd.Type {
			case CommandType_Spawn:
				r.logf("  -> focused %q\n", sh.FocusedTitle())
			case CommandType_Workspace:
				r.logf("  -> on workspace %s\n", sh.Workspaces().ActiveName())
			}
		}

		if r.paced && cmd.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cmd.Delay):
			}
		}

		if sh.ShouldQuit() {
			if r.verbose {
				r.logf("script quit after %d commands\n", r.executed)
			}
			break
		}
	}

	if r.verbose {
		r.logf("done in %v\n", time.Since(started))
	}

	return nil
}

// Stats describes a completed run
type Stats struct {
	Total    int
	Executed int
	Elapsed  time.Duration
}

// Stats returns counts and timing for the last run
func (r *Runner) Stats() Stats {
	return Stats{
		Total:    len(r.commands),
		Executed: r.executed,
		Elapsed:  r.elapsed,
	}
}

// GetOutput returns the captured transcript
func (r *Runner) GetOutput() string {
	r.outputLock.Lock()
	defer r.outputLock.Unlock()
	return r.output.String()
}

// WriteOutput writes the transcript to a writer
func (r *Runner) WriteOutput(w io.Writer) error {
	r.outputLock.Lock()
	defer r.outputLock.Unlock()
	_, err := io.WriteString(w, r.output.String())
	return err
}

// logf appends a message to the transcript
func (r *Runner) logf(format string, args ...interface{}) {
	r.outputLock.Lock()
	defer r.outputLock.Unlock()
	fmt.Fprintf(&r.output, format, args...)
}

// ValidateScript checks whether script content parses without errors
func ValidateScript(content string) (bool, []string) {
	commands, errors := ParseFile(content)
	if len(errors) > 0 {
		return false, errors
	}
	if len(commands) == 0 {
		return false, []string{"no commands found in script"}
	}
	return true, nil
}
