package script

import (
	"fmt"
	"strconv"
)

// Parser parses command files into commands
type Parser struct {
	lexer   *Lexer
	curTok  Token
	peekTok Token
	errors  []string
}

// NewParser creates a new parser from a lexer
func NewParser(l *Lexer) *Parser {
	p := &Parser{
		lexer:  l,
		errors: []string{},
	}
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lexer.NextToken()
}

// Parse parses the entire file and returns all commands
func (p *Parser) Parse() []Command {
	var commands []Command

	for p.curTok.Type != TOKEN_EOF {
		if p.curTok.Type == TOKEN_NEWLINE {
			p.nextToken()
			continue
		}

		cmd, ok := p.parseCommand()
		if !ok {
			p.nextToken()
			continue
		}

		commands = append(commands, cmd)
	}

	return commands
}

// parseCommand parses a single command line
func (p *Parser) parseCommand() (Command, bool) {
	switch p.curTok.Type {
	case TOKEN_SPAWN:
		return p.parseSpawnCommand()
	case TOKEN_LAUNCHER:
		return p.parseBasicCommand(CommandType_Launcher)
	case TOKEN_TYPE:
		return p.parseTypeCommand()
	case TOKEN_SPLIT:
		return p.parseSplitCommand()
	case TOKEN_CLOSE:
		return p.parseBasicCommand(CommandType_Close)
	case TOKEN_SNAP:
		return p.parseSnapCommand()
	case TOKEN_MAXIMIZE:
		return p.parseBasicCommand(CommandType_Maximize)
	case TOKEN_RESTORE:
		return p.parseBasicCommand(CommandType_Restore)
	case TOKEN_MINIMIZE:
		return p.parseBasicCommand(CommandType_Minimize)
	case TOKEN_CASCADE:
		return p.parseBasicCommand(CommandType_Cascade)
	case TOKEN_STICKY:
		return p.parseBasicCommand(CommandType_Sticky)
	case TOKEN_ON_TOP:
		return p.parseBasicCommand(CommandType_OnTop)
	case TOKEN_FOCUS:
		return p.parseFocusCommand()
	case TOKEN_CYCLE:
		return p.parseCycleCommand()
	case TOKEN_LEFT, TOKEN_RIGHT, TOKEN_UP, TOKEN_DOWN:
		return p.parseDirectionCommand()
	case TOKEN_WORKSPACE:
		return p.parseWorkspaceCommand()
	case TOKEN_MOVE_TO:
		return p.parseMoveToCommand()
	case TOKEN_MODE:
		return p.parseModeCommand()
	case TOKEN_CONFIRM:
		return p.parseBasicCommand(CommandType_Confirm)
	case TOKEN_CANCEL:
		return p.parseBasicCommand(CommandType_Cancel)
	case TOKEN_SLEEP:
		return p.parseSleepCommand()
	case TOKEN_QUIT:
		return p.parseBasicCommand(CommandType_Quit)
	default:
		p.addError(fmt.Sprintf("unknown command: %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return Command{}, false
	}
}

// parseBasicCommand parses commands that take no arguments
func (p *Parser) parseBasicCommand(cmdType CommandType) (Command, bool) {
	cmd := Command{
		Type:   cmdType,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
		Raw:    p.curTok.Literal,
	}

	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.addError(fmt.Sprintf("%s takes no arguments, got %s", cmdType, tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	return cmd, true
}

// parseSpawnCommand parses spawn <app> ["title"] commands
func (p *Parser) parseSpawnCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Spawn,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume spawn

	if p.curTok.Type != TOKEN_IDENTIFIER && p.curTok.Type != TOKEN_STRING {
		p.addError(fmt.Sprintf("spawn expects an app name, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	name := p.curTok.Literal
	cmd.Args = []string{name}
	cmd.Raw = fmt.Sprintf("spawn %s", name)
	p.nextToken()

	if p.curTok.Type == TOKEN_STRING {
		cmd.Args = append(cmd.Args, p.curTok.Literal)
		cmd.Raw = fmt.Sprintf("spawn %s %q", name, p.curTok.Literal)
		p.nextToken()
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseTypeCommand parses type "text" commands
func (p *Parser) parseTypeCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Type,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume type

	if p.curTok.Type != TOKEN_STRING {
		p.addError(fmt.Sprintf("type expects a quoted string, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	cmd.Args = []string{p.curTok.Literal}
	cmd.Raw = fmt.Sprintf("type %q", p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseSplitCommand parses split horizontal|vertical commands
func (p *Parser) parseSplitCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Split,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume split

	if p.curTok.Type != TOKEN_IDENTIFIER ||
		(p.curTok.Literal != "horizontal" && p.curTok.Literal != "vertical") {
		p.addError(fmt.Sprintf("split expects horizontal or vertical, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	cmd.Args = []string{p.curTok.Literal}
	cmd.Raw = fmt.Sprintf("split %s", p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseSnapCommand parses snap <position> commands
func (p *Parser) parseSnapCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Snap,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume snap

	valid := p.curTok.Type == TOKEN_LEFT || p.curTok.Type == TOKEN_RIGHT
	if p.curTok.Type == TOKEN_IDENTIFIER {
		switch p.curTok.Literal {
		case "top-left", "top-right", "bottom-left", "bottom-right":
			valid = true
		}
	}

	if !valid {
		p.addError(fmt.Sprintf("snap expects left, right, top-left, top-right, bottom-left, or bottom-right, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	cmd.Args = []string{p.curTok.Literal}
	cmd.Raw = fmt.Sprintf("snap %s", p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseFocusCommand parses focus <direction> [count] commands
func (p *Parser) parseFocusCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Focus,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume focus

	if !p.curTok.Type.IsDirection() {
		p.addError(fmt.Sprintf("focus expects a direction (left, right, up, down), got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	cmd.Args = []string{p.curTok.Literal}
	cmd.Raw = fmt.Sprintf("focus %s", p.curTok.Literal)
	p.nextToken()

	if !p.parseOptionalCount(&cmd) {
		return cmd, false
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseDirectionCommand parses bare direction commands (left, right, up,
// down) with an optional repeat count. They are shorthand for focus in
// normal mode and nudge or resize the window in the other modes.
func (p *Parser) parseDirectionCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Focus,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
		Args:   []string{p.curTok.Literal},
		Raw:    p.curTok.Literal,
	}

	p.nextToken()

	if !p.parseOptionalCount(&cmd) {
		return cmd, false
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseOptionalCount consumes a trailing repeat count if one is present
func (p *Parser) parseOptionalCount(cmd *Command) bool {
	if p.curTok.Type != TOKEN_NUMBER {
		return true
	}

	count, err := strconv.Atoi(p.curTok.Literal)
	if err != nil || count < 1 {
		p.addError(fmt.Sprintf("repeat count must be a positive number, got %s", p.curTok.Literal))
		p.skipToNextLine()
		return false
	}

	cmd.Args = append(cmd.Args, p.curTok.Literal)
	cmd.Raw = fmt.Sprintf("%s %s", cmd.Raw, p.curTok.Literal)
	p.nextToken()
	return true
}

// parseCycleCommand parses cycle [reverse] commands
func (p *Parser) parseCycleCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Cycle,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
		Raw:    p.curTok.Literal,
	}

	p.nextToken() // consume cycle

	if p.curTok.Type == TOKEN_IDENTIFIER && p.curTok.Literal == "reverse" {
		cmd.Args = []string{"reverse"}
		cmd.Raw = "cycle reverse"
		p.nextToken()
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.addError(fmt.Sprintf("cycle accepts only reverse, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	return cmd, true
}

// parseWorkspaceCommand parses workspace <n>|next|prev commands
func (p *Parser) parseWorkspaceCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Workspace,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume workspace

	switch {
	case p.curTok.Type == TOKEN_NUMBER:
		if !p.validWorkspaceNumber(p.curTok.Literal) {
			p.skipToNextLine()
			return cmd, false
		}
	case p.curTok.Type == TOKEN_IDENTIFIER &&
		(p.curTok.Literal == "next" || p.curTok.Literal == "prev"):
	default:
		p.addError(fmt.Sprintf("workspace expects a number, next, or prev, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	cmd.Args = []string{p.curTok.Literal}
	cmd.Raw = fmt.Sprintf("workspace %s", p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseMoveToCommand parses move-to <n> commands
func (p *Parser) parseMoveToCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_MoveTo,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume move-to

	if p.curTok.Type != TOKEN_NUMBER {
		p.addError(fmt.Sprintf("move-to expects a workspace number, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	if !p.validWorkspaceNumber(p.curTok.Literal) {
		p.skipToNextLine()
		return cmd, false
	}

	cmd.Args = []string{p.curTok.Literal}
	cmd.Raw = fmt.Sprintf("move-to %s", p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// validWorkspaceNumber checks a workspace argument against the range
// the action dispatcher registers handlers for
func (p *Parser) validWorkspaceNumber(literal string) bool {
	n, err := strconv.Atoi(literal)
	if err != nil || n < 1 || n > 9 {
		p.addError(fmt.Sprintf("workspace number must be between 1 and 9, got %s", literal))
		return false
	}
	return true
}

// parseModeCommand parses mode move|resize commands
func (p *Parser) parseModeCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Mode,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume mode

	if p.curTok.Type != TOKEN_IDENTIFIER ||
		(p.curTok.Literal != "move" && p.curTok.Literal != "resize") {
		p.addError(fmt.Sprintf("mode expects move or resize, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	cmd.Args = []string{p.curTok.Literal}
	cmd.Raw = fmt.Sprintf("mode %s", p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseSleepCommand parses sleep <duration> commands
func (p *Parser) parseSleepCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Sleep,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume sleep

	if p.curTok.Type != TOKEN_DURATION {
		p.addError(fmt.Sprintf("sleep expects a duration such as 500ms, got %s", tokenText(p.curTok)))
		p.skipToNextLine()
		return cmd, false
	}

	duration, err := ParseDuration(p.curTok.Literal)
	if err != nil {
		p.addError(fmt.Sprintf("invalid duration: %s", p.curTok.Literal))
	}
	cmd.Args = []string{p.curTok.Literal}
	cmd.Delay = duration
	cmd.Raw = fmt.Sprintf("sleep %s", p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// skipToNextLine skips tokens until the next newline
func (p *Parser) skipToNextLine() {
	for p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.nextToken()
	}
}

// addError adds an error to the parser's error list
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", p.curTok.Line, msg))
}

// Errors returns the list of parser errors
func (p *Parser) Errors() []string {
	return p.errors
}

// tokenText returns a readable form of a token for error messages
func tokenText(tok Token) string {
	switch tok.Type {
	case TOKEN_NEWLINE:
		return "end of line"
	case TOKEN_EOF:
		return "end of file"
	case TOKEN_STRING:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		return tok.Literal
	}
}

// ParseFile parses a command file from a string
func ParseFile(content string) ([]Command, []string) {
	l := NewLexer(content)
	p := NewParser(l)
	commands := p.Parse()
	return commands, p.Errors()
}
