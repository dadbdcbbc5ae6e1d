package script

import (
	"strconv"
)

// Lexer holds the state of the scanner.
type Lexer struct {
	input        string   // the string being scanned
	position     int      // current position in the input (points to current char)
	readPosition int      // current reading position in the input (after current char)
	ch           byte     // current char under examination
	eof          bool     // true once the input is exhausted
	pos          Position // position of ch
}

// NewLexer creates a new lexer.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:    input,
		pos:      Position{Line: 1, Column: 0},
		position: -1,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipBlanks()

	startPos := l.pos
	if l.eof {
		return Token{Type: EOF, Pos: startPos}
	}

	switch l.ch {
	case '\n':
		l.readChar()
		return Token{Type: NEWLINE, Literal: "\n", Pos: startPos}
	case '"':
		raw, ok := l.readString()
		if !ok {
			return Token{Type: ILLEGAL, Literal: raw, Pos: startPos}
		}
		lit, err := strconv.Unquote(raw)
		if err != nil {
			return Token{Type: ILLEGAL, Literal: raw, Pos: startPos}
		}
		return Token{Type: STRING, Literal: lit, Pos: startPos}
	default:
		return Token{Type: WORD, Literal: l.readWord(), Pos: startPos}
	}
}

// skipBlanks skips spaces, tabs, carriage returns and comments. Newlines
// are significant and are left in place.
func (l *Lexer) skipBlanks() {
	for !l.eof {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '#':
			for !l.eof && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.eof = true
	} else {
		l.ch = l.input[l.readPosition]
	}

	if l.position >= 0 && l.position < len(l.input) && l.input[l.position] == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}

	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) readWord() string {
	position := l.position
	for !l.eof && !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString reads a double-quoted literal and returns it raw, quotes
// included. ok is false if the input or line ends before the closing quote.
func (l *Lexer) readString() (raw string, ok bool) {
	position := l.position
	for {
		l.readChar()
		switch {
		case l.eof || l.ch == '\n':
			return l.input[position:l.position], false
		case l.ch == '\\':
			l.readChar()
			if l.eof {
				return l.input[position:l.position], false
			}
		case l.ch == '"':
			l.readChar()
			return l.input[position:l.position], true
		}
	}
}

func isDelimiter(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '"' || ch == '#'
}

// Tokenize converts the input string into a slice of tokens.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token

	for {
		tok := l.NextToken()
		if tok.Type == ILLEGAL {
			return nil, &SyntaxError{Pos: tok.Pos, Msg: "unterminated or malformed string " + tok.Literal}
		}

		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}

	return tokens, nil
}
