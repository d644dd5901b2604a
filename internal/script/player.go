package script

import (
	"fmt"
	"strconv"

	"github.com/deskmux/deskmux/internal/input"
	"github.com/deskmux/deskmux/internal/shell"
)

// Player manages script playback
type Player struct {
	commands []Command
	index    int  // Current command index
	paused   bool // Whether playback is paused
	finished bool // Whether all commands have been played
}

// NewPlayer creates a new script player from a list of commands
func NewPlayer(commands []Command) *Player {
	return &Player{
		commands: commands,
	}
}

// NextCommand returns the next command to execute without advancing
// the player state
func (p *Player) NextCommand() *Command {
	if p.index >= len(p.commands) {
		return nil
	}
	return &p.commands[p.index]
}

// Advance moves to the next command
func (p *Player) Advance() {
	if p.index < len(p.commands) {
		p.index++
	}
	if p.index >= len(p.commands) {
		p.finished = true
	}
}

// IsFinished returns true if all commands have been executed
func (p *Player) IsFinished() bool {
	return p.finished
}

// IsPaused returns true if playback is paused
func (p *Player) IsPaused() bool {
	return p.paused
}

// SetPaused sets the paused state
func (p *Player) SetPaused(paused bool) {
	p.paused = paused
}

// Reset resets the player to the beginning
func (p *Player) Reset() {
	p.index = 0
	p.paused = false
	p.finished = false
}

// CurrentIndex returns the current command index
func (p *Player) CurrentIndex() int {
	return p.index
}

// TotalCommands returns the total number of commands
func (p *Player) TotalCommands() int {
	return len(p.commands)
}

// Progress returns a value between 0 and 100 representing playback progress
func (p *Player) Progress() int {
	if len(p.commands) == 0 {
		return 100
	}
	return (p.index * 100) / len(p.commands)
}

// CommandStr returns a display string for the current command
func (p *Player) CommandStr() string {
	if p.index >= len(p.commands) {
		return "script finished"
	}
	cmd := p.commands[p.index]
	return cmd.String()
}

// String returns a debug string representation
func (p *Player) String() string {
	return fmt.Sprintf(
		"Player{index=%d/%d, paused=%v, finished=%v}",
		p.index, len(p.commands), p.paused, p.finished,
	)
}

// Execute applies a single command to the shell through the action
// dispatcher, exactly as the equivalent key presses would. Mode guards
// still apply: a spawn in move mode is ignored the same way the key
// binding would be.
func Execute(cmd *Command, sh *shell.Shell, d *input.ActionDispatcher) error {
	if cmd == nil {
		return nil
	}

	dispatch := func(action string) error {
		if !d.Dispatch(action, sh) {
			return fmt.Errorf("no handler for action %q", action)
		}
		return nil
	}

	switch cmd.Type {
	case CommandType_Spawn:
		name := cmd.Args[0]
		title := name
		if len(cmd.Args) > 1 {
			title = cmd.Args[1]
		} else if meta, ok := sh.Apps().Lookup(name); ok {
			title = meta.Title
		}
		sh.SpawnApp(name, title)
		return nil

	case CommandType_Launcher:
		return dispatch("launcher")

	case CommandType_Type:
		sh.LauncherType(cmd.Args[0])
		return nil

	case CommandType_Split:
		return dispatch("split-" + cmd.Args[0])

	case CommandType_Close:
		return dispatch("close-focused")

	case CommandType_Snap:
		return dispatch("snap-" + cmd.Args[0])

	case CommandType_Maximize:
		return dispatch("maximize")

	case CommandType_Restore:
		return dispatch("restore")

	case CommandType_Minimize:
		return dispatch("minimize")

	case CommandType_Cascade:
		return dispatch("cascade")

	case CommandType_Sticky:
		return dispatch("toggle-sticky")

	case CommandType_OnTop:
		return dispatch("toggle-always-on-top")

	case CommandType_Focus:
		count := 1
		if len(cmd.Args) > 1 {
			count, _ = strconv.Atoi(cmd.Args[1])
		}
		for i := 0; i < count; i++ {
			if err := dispatch("focus-" + cmd.Args[0]); err != nil {
				return err
			}
		}
		return nil

	case CommandType_Cycle:
		if len(cmd.Args) > 0 {
			return dispatch("cycle-focus-reverse")
		}
		return dispatch("cycle-focus")

	case CommandType_Workspace:
		switch cmd.Args[0] {
		case "next":
			return dispatch("workspace-next")
		case "prev":
			return dispatch("workspace-prev")
		default:
			return dispatch("switch-workspace-" + cmd.Args[0])
		}

	case CommandType_MoveTo:
		return dispatch("move-to-workspace-" + cmd.Args[0])

	case CommandType_Mode:
		return dispatch(cmd.Args[0] + "-mode")

	case CommandType_Confirm:
		return dispatch("confirm")

	case CommandType_Cancel:
		return dispatch("cancel")

	case CommandType_Sleep:
		// Pacing only. The caller decides whether to honor the delay.
		return nil

	case CommandType_Quit:
		return dispatch("quit")

	default:
		return fmt.Errorf("unknown command type: %s", cmd.Type)
	}
}
