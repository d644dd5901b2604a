package script

import (
	"testing"
)

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "spawn with title",
			input:    `spawn editor "Editor"`,
			expected: []TokenType{TOKEN_SPAWN, TOKEN_IDENTIFIER, TOKEN_STRING, TOKEN_EOF},
		},
		{
			name:     "split command",
			input:    `split horizontal`,
			expected: []TokenType{TOKEN_SPLIT, TOKEN_IDENTIFIER, TOKEN_EOF},
		},
		{
			name:     "sleep command",
			input:    `sleep 500ms`,
			expected: []TokenType{TOKEN_SLEEP, TOKEN_DURATION, TOKEN_EOF},
		},
		{
			name:     "bare direction with count",
			input:    `left 3`,
			expected: []TokenType{TOKEN_LEFT, TOKEN_NUMBER, TOKEN_EOF},
		},
		{
			name:     "dashed keyword",
			input:    `move-to 2`,
			expected: []TokenType{TOKEN_MOVE_TO, TOKEN_NUMBER, TOKEN_EOF},
		},
		{
			name:     "on-top command",
			input:    `on-top`,
			expected: []TokenType{TOKEN_ON_TOP, TOKEN_EOF},
		},
		{
			name:     "snap corner",
			input:    `snap top-left`,
			expected: []TokenType{TOKEN_SNAP, TOKEN_IDENTIFIER, TOKEN_EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d", len(tt.expected), len(tokens))
			}

			for i, expectedType := range tt.expected {
				if tokens[i].Type != expectedType {
					t.Errorf("Token %d: expected %v, got %v", i, expectedType, tokens[i].Type)
				}
			}
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValue string
	}{
		{
			name:          "double quoted string",
			input:         `type "hello world"`,
			expectedValue: "hello world",
		},
		{
			name:          "single quoted string",
			input:         `type 'hello world'`,
			expectedValue: "hello world",
		},
		{
			name:          "backtick string",
			input:         `type ` + "`hello world`",
			expectedValue: "hello world",
		},
		{
			name:          "escaped quotes",
			input:         `type "say \"hi\""`,
			expectedValue: `say "hi"`,
		},
		{
			name:          "escaped newline",
			input:         `type "a\nb"`,
			expectedValue: "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)

			var stringToken Token
			for _, tok := range tokens {
				if tok.Type == TOKEN_STRING {
					stringToken = tok
					break
				}
			}

			if stringToken.Literal != tt.expectedValue {
				t.Errorf("Expected %q, got %q", tt.expectedValue, stringToken.Literal)
			}
		})
	}
}

func TestLexerDurations(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValue string
	}{
		{
			name:          "milliseconds",
			input:         `sleep 500ms`,
			expectedValue: "500ms",
		},
		{
			name:          "seconds",
			input:         `sleep 2s`,
			expectedValue: "2s",
		},
		{
			name:          "decimal seconds",
			input:         `sleep 1.5s`,
			expectedValue: "1.5s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)

			var durationToken Token
			for _, tok := range tokens {
				if tok.Type == TOKEN_DURATION {
					durationToken = tok
					break
				}
			}

			if durationToken.Literal != tt.expectedValue {
				t.Errorf("Expected %q, got %q", tt.expectedValue, durationToken.Literal)
			}
		})
	}
}

func TestLexerComments(t *testing.T) {
	input := `# layout demo
spawn editor
# another comment
quit`

	tokens := Tokenize(input)

	// Comment lines collapse to their terminating newline
	expected := []TokenType{
		TOKEN_NEWLINE,
		TOKEN_SPAWN, TOKEN_IDENTIFIER, TOKEN_NEWLINE,
		TOKEN_NEWLINE,
		TOKEN_QUIT,
		TOKEN_EOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, expectedType := range expected {
		if tokens[i].Type != expectedType {
			t.Errorf("Token %d: expected %v, got %v", i, expectedType, tokens[i].Type)
		}
	}
}

func TestLexerLineNumbers(t *testing.T) {
	input := `spawn editor
spawn monitor
spawn shell`

	tokens := Tokenize(input)

	var spawnTokens []Token
	for _, tok := range tokens {
		if tok.Type == TOKEN_SPAWN {
			spawnTokens = append(spawnTokens, tok)
		}
	}

	expectedLines := []int{1, 2, 3}

	if len(spawnTokens) != len(expectedLines) {
		t.Fatalf("Expected %d spawn tokens, got %d", len(expectedLines), len(spawnTokens))
	}

	for i, expectedLine := range expectedLines {
		if spawnTokens[i].Line != expectedLine {
			t.Errorf("Token %d: expected line %d, got %d", i, expectedLine, spawnTokens[i].Line)
		}
	}
}

func TestKeywordTokenMap(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		expected TokenType
	}{
		{"spawn", "spawn", TOKEN_SPAWN},
		{"move-to", "move-to", TOKEN_MOVE_TO},
		{"argument word", "horizontal", TOKEN_IDENTIFIER},
		{"case sensitive", "Spawn", TOKEN_IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenType := LookupKeyword(tt.keyword)
			if tokenType != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tokenType)
			}
		})
	}
}

func TestTokenTypeHelpers(t *testing.T) {
	t.Run("IsCommand", func(t *testing.T) {
		if !TOKEN_SPAWN.IsCommand() {
			t.Error("TOKEN_SPAWN should be a command")
		}
		if TOKEN_STRING.IsCommand() {
			t.Error("TOKEN_STRING should not be a command")
		}
	})

	t.Run("IsDirection", func(t *testing.T) {
		if !TOKEN_LEFT.IsDirection() {
			t.Error("TOKEN_LEFT should be a direction")
		}
		if !TOKEN_UP.IsDirection() {
			t.Error("TOKEN_UP should be a direction")
		}
		if TOKEN_SPAWN.IsDirection() {
			t.Error("TOKEN_SPAWN should not be a direction")
		}
	})
}
