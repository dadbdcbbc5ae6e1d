// Package script reads and runs line-oriented operation scripts against a
// trie.
//
// Each line holds one command followed by its argument, if any:
//
//	insert "foo"
//	erase bar
//	find ""
//	size
//
// Arguments are either bare words or Go-syntax double-quoted strings, which
// makes the empty string and arbitrary bytes expressible. A '#' starts a
// comment that runs to the end of the line.
package script

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned for a command word that is not recognized.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArity is returned when a command has the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// SyntaxError reports a malformed script with its position.
type SyntaxError struct {
	Pos Position
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Op identifies a script command.
type Op int

const (
	OpInsert Op = iota
	OpErase
	OpFind
	OpSize
	OpEmpty
	OpClear
	OpList
	OpPrefix
	OpDump
)

type opSpec struct {
	name    string
	takeArg bool
}

var ops = map[Op]opSpec{
	OpInsert: {"insert", true},
	OpErase:  {"erase", true},
	OpFind:   {"find", true},
	OpSize:   {"size", false},
	OpEmpty:  {"empty", false},
	OpClear:  {"clear", false},
	OpList:   {"list", false},
	OpPrefix: {"prefix", true},
	OpDump:   {"dump", false},
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, len(ops))
	for op, spec := range ops {
		m[spec.name] = op
	}
	return m
}()

func (o Op) String() string {
	if spec, ok := ops[o]; ok {
		return spec.name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one parsed script line.
type Command struct {
	Op  Op
	Arg string
	Pos Position
}

// Parser turns tokens into commands.
type Parser struct {
	l *Lexer

	currentToken Token
	peekToken    Token
}

// NewParser creates a new Parser.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	// Read two tokens, so currentToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// nextToken advances the parser to the next token.
func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Next parses the next command. It returns false with a nil error once the
// input is exhausted.
func (p *Parser) Next() (Command, bool, error) {
	for p.currentToken.Type == NEWLINE {
		p.nextToken()
	}

	tok := p.currentToken
	switch tok.Type {
	case EOF:
		return Command{}, false, nil
	case ILLEGAL:
		return Command{}, false, &SyntaxError{Pos: tok.Pos, Msg: "unterminated or malformed string " + tok.Literal}
	case STRING:
		return Command{}, false, &SyntaxError{Pos: tok.Pos, Msg: "expected command, got string"}
	}

	op, ok := opsByName[tok.Literal]
	if !ok {
		return Command{}, false, &SyntaxError{
			Pos: tok.Pos,
			Msg: fmt.Sprintf("%q: %v", tok.Literal, ErrUnknownCommand),
			Err: ErrUnknownCommand,
		}
	}
	cmd := Command{Op: op, Pos: tok.Pos}
	p.nextToken()

	var args []Token
	for p.currentToken.Type != NEWLINE && p.currentToken.Type != EOF {
		if p.currentToken.Type == ILLEGAL {
			return Command{}, false, &SyntaxError{
				Pos: p.currentToken.Pos,
				Msg: "unterminated or malformed string " + p.currentToken.Literal,
			}
		}
		args = append(args, p.currentToken)
		p.nextToken()
	}

	want := 0
	if ops[op].takeArg {
		want = 1
	}
	if len(args) != want {
		return Command{}, false, &SyntaxError{
			Pos: tok.Pos,
			Msg: fmt.Sprintf("%s takes %d argument(s), got %d: %v", op, want, len(args), ErrArity),
			Err: ErrArity,
		}
	}
	if want == 1 {
		cmd.Arg = args[0].Literal
	}
	return cmd, true, nil
}

// Parse parses a whole script.
func Parse(input string) ([]Command, error) {
	p := NewParser(NewLexer(input))
	var cmds []Command
	for {
		cmd, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return cmds, nil
		}
		cmds = append(cmds, cmd)
	}
}
