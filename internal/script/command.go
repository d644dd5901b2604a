package script

import (
	"fmt"
	"strings"
	"time"
)

// CommandType represents the type of a script command
type CommandType string

const (
	// Spawning
	CommandType_Spawn    CommandType = "spawn"
	CommandType_Launcher CommandType = "launcher"
	CommandType_Type     CommandType = "type"

	// Layout
	CommandType_Split    CommandType = "split"
	CommandType_Close    CommandType = "close"
	CommandType_Snap     CommandType = "snap"
	CommandType_Maximize CommandType = "maximize"
	CommandType_Restore  CommandType = "restore"
	CommandType_Minimize CommandType = "minimize"
	CommandType_Cascade  CommandType = "cascade"
	CommandType_Sticky   CommandType = "sticky"
	CommandType_OnTop    CommandType = "on-top"

	// Focus
	CommandType_Focus CommandType = "focus"
	CommandType_Cycle CommandType = "cycle"

	// Workspaces
	CommandType_Workspace CommandType = "workspace"
	CommandType_MoveTo    CommandType = "move-to"

	// Modes
	CommandType_Mode    CommandType = "mode"
	CommandType_Confirm CommandType = "confirm"
	CommandType_Cancel  CommandType = "cancel"

	// Pacing and session
	CommandType_Sleep CommandType = "sleep"
	CommandType_Quit  CommandType = "quit"
)

// Command represents a parsed script command
type Command struct {
	Type   CommandType
	Args   []string      // Command arguments
	Delay  time.Duration // Pause after this command during paced playback
	Line   int           // Source line number
	Column int           // Source column number
	Raw    string        // Original raw command text
}

// String returns a display form of the command for playback status
func (c *Command) String() string {
	switch c.Type {
	case CommandType_Spawn:
		return fmt.Sprintf("spawn %s", strings.Join(c.Args, " "))
	case CommandType_Type:
		return fmt.Sprintf("type %q", strings.Join(c.Args, " "))
	case CommandType_Sleep:
		return fmt.Sprintf("sleep %v", c.Delay)
	default:
		if len(c.Args) == 0 {
			return string(c.Type)
		}
		return fmt.Sprintf("%s %s", c.Type, strings.Join(c.Args, " "))
	}
}

// ParseDuration parses a duration literal (e.g., "500ms", "1s")
func ParseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
