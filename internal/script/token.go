// Package script implements the deskmux command file format: a
// line-oriented DSL whose commands drive the shell through the same
// action dispatcher the interactive keys use. Scripts automate layout
// setups and provide reproducible demo runs.
package script

// TokenType represents the type of a token in a command file
type TokenType string

const (
	// Special tokens
	TOKEN_EOF     TokenType = "EOF"
	TOKEN_ILLEGAL TokenType = "ILLEGAL"
	TOKEN_NEWLINE TokenType = "NEWLINE"

	// Literals
	TOKEN_STRING     TokenType = "STRING"
	TOKEN_NUMBER     TokenType = "NUMBER"
	TOKEN_DURATION   TokenType = "DURATION"
	TOKEN_IDENTIFIER TokenType = "IDENTIFIER"

	// Commands - Spawning
	TOKEN_SPAWN    TokenType = "spawn"
	TOKEN_LAUNCHER TokenType = "launcher"
	TOKEN_TYPE     TokenType = "type"

	// Commands - Layout
	TOKEN_SPLIT    TokenType = "split"
	TOKEN_CLOSE    TokenType = "close"
	TOKEN_SNAP     TokenType = "snap"
	TOKEN_MAXIMIZE TokenType = "maximize"
	TOKEN_RESTORE  TokenType = "restore"
	TOKEN_MINIMIZE TokenType = "minimize"
	TOKEN_CASCADE  TokenType = "cascade"
	TOKEN_STICKY   TokenType = "sticky"
	TOKEN_ON_TOP   TokenType = "on-top"

	// Commands - Focus and direction
	TOKEN_FOCUS TokenType = "focus"
	TOKEN_CYCLE TokenType = "cycle"
	TOKEN_LEFT  TokenType = "left"
	TOKEN_RIGHT TokenType = "right"
	TOKEN_UP    TokenType = "up"
	TOKEN_DOWN  TokenType = "down"

	// Commands - Workspaces
	TOKEN_WORKSPACE TokenType = "workspace"
	TOKEN_MOVE_TO   TokenType = "move-to"

	// Commands - Modes
	TOKEN_MODE    TokenType = "mode"
	TOKEN_CONFIRM TokenType = "confirm"
	TOKEN_CANCEL  TokenType = "cancel"

	// Commands - Pacing and session
	TOKEN_SLEEP TokenType = "sleep"
	TOKEN_QUIT  TokenType = "quit"
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsCommand returns true if the token type can start a command line
func (tt TokenType) IsCommand() bool {
	switch tt {
	case TOKEN_SPAWN, TOKEN_LAUNCHER, TOKEN_TYPE,
		TOKEN_SPLIT, TOKEN_CLOSE, TOKEN_SNAP,
		TOKEN_MAXIMIZE, TOKEN_RESTORE, TOKEN_MINIMIZE, TOKEN_CASCADE,
		TOKEN_STICKY, TOKEN_ON_TOP,
		TOKEN_FOCUS, TOKEN_CYCLE, TOKEN_LEFT, TOKEN_RIGHT, TOKEN_UP, TOKEN_DOWN,
		TOKEN_WORKSPACE, TOKEN_MOVE_TO,
		TOKEN_MODE, TOKEN_CONFIRM, TOKEN_CANCEL,
		TOKEN_SLEEP, TOKEN_QUIT:
		return true
	}
	return false
}

// IsDirection returns true if the token is a direction key
func (tt TokenType) IsDirection() bool {
	switch tt {
	case TOKEN_LEFT, TOKEN_RIGHT, TOKEN_UP, TOKEN_DOWN:
		return true
	}
	return false
}

// KeywordTokenMap maps command words to token types
var KeywordTokenMap = map[string]TokenType{
	// Spawning
	"spawn":    TOKEN_SPAWN,
	"launcher": TOKEN_LAUNCHER,
	"type":     TOKEN_TYPE,

	// Layout
	"split":    TOKEN_SPLIT,
	"close":    TOKEN_CLOSE,
	"snap":     TOKEN_SNAP,
	"maximize": TOKEN_MAXIMIZE,
	"restore":  TOKEN_RESTORE,
	"minimize": TOKEN_MINIMIZE,
	"cascade":  TOKEN_CASCADE,
	"sticky":   TOKEN_STICKY,
	"on-top":   TOKEN_ON_TOP,

	// Focus and direction
	"focus": TOKEN_FOCUS,
	"cycle": TOKEN_CYCLE,
	"left":  TOKEN_LEFT,
	"right": TOKEN_RIGHT,
	"up":    TOKEN_UP,
	"down":  TOKEN_DOWN,

	// Workspaces
	"workspace": TOKEN_WORKSPACE,
	"move-to":   TOKEN_MOVE_TO,

	// Modes
	"mode":    TOKEN_MODE,
	"confirm": TOKEN_CONFIRM,
	"cancel":  TOKEN_CANCEL,

	// Pacing and session
	"sleep": TOKEN_SLEEP,
	"quit":  TOKEN_QUIT,
}

// LookupKeyword returns the token type for a command word, or
// TOKEN_IDENTIFIER if the word is an argument
func LookupKeyword(ident string) TokenType {
	if tt, ok := KeywordTokenMap[ident]; ok {
		return tt
	}
	return TOKEN_IDENTIFIER
}
