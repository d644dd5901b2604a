package script

import "strings"

// Lexer tokenizes command file content
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar advances the lexer to the next character
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.ch == '#' {
		l.skipComment()
	}

	tok := Token{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
		tok.Literal = ""
	case '\n':
		tok.Type = TOKEN_NEWLINE
		tok.Literal = "\n"
		tok.Line = l.line - 1
		l.readChar()
	case '"', '\'', '`':
		tok.Type = TOKEN_STRING
		tok.Literal = l.readString(l.ch)
	default:
		if isDigit(l.ch) {
			return l.readNumberOrDuration()
		}
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			tok.Type = LookupKeyword(literal)
			tok.Literal = literal
			return tok
		}
		tok.Type = TOKEN_ILLEGAL
		tok.Literal = string(l.ch)
		l.readChar()
	}

	return tok
}

// skipWhitespace skips spaces and tabs but not newlines, which
// terminate commands
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment skips from # to the end of the line
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readString reads a quoted string (single, double, or backtick),
// handling escape sequences
func (l *Lexer) readString(quote byte) string {
	var sb strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(l.ch)
			}
		} else {
			sb.WriteByte(l.ch)
		}
		l.readChar()
	}

	if l.ch == quote {
		l.readChar() // skip closing quote
	}

	return sb.String()
}

// readIdentifier reads a command word or bare argument. Dashes are
// part of identifiers so words like move-to and top-left stay whole.
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isIdentifierChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumberOrDuration reads a number, promoting it to a duration
// when a unit suffix follows (500ms, 2s, 1.5s)
func (l *Lexer) readNumberOrDuration() Token {
	tok := Token{Line: l.line, Column: l.column}
	position := l.position

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if isLetter(l.ch) {
		for isLetter(l.ch) {
			l.readChar()
		}
		tok.Type = TOKEN_DURATION
		tok.Literal = l.input[position:l.position]
		return tok
	}

	tok.Type = TOKEN_NUMBER
	tok.Literal = l.input[position:l.position]
	return tok
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentifierChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '-'
}

// Tokenize returns all tokens from the input (useful for testing)
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
