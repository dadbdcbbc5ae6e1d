package script

import "fmt"

// TokenType represents the type of a token.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	NEWLINE

	// Literals
	WORD   // insert, foo
	STRING // "foo\n"
)

func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case WORD:
		return "WORD"
	case STRING:
		return "STRING"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Position is a 1-based line and column in the script.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is a lexical token. For STRING tokens Literal holds the unquoted
// value.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
