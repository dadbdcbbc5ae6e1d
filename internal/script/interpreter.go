package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/trie"
)

// Interpreter executes commands against a trie and writes one result per
// command to its output.
type Interpreter struct {
	trie   *trie.Trie
	out    *bufio.Writer
	logger zerolog.Logger
}

// NewInterpreter creates an interpreter operating on t.
func NewInterpreter(t *trie.Trie, out io.Writer, logger zerolog.Logger) *Interpreter {
	return &Interpreter{
		trie:   t,
		out:    bufio.NewWriter(out),
		logger: logger,
	}
}

// Run parses the script read from r and executes it. Nothing is executed if
// the script does not parse.
func (in *Interpreter) Run(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	cmds, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}
	in.logger.Debug().Int("commands", len(cmds)).Msg("Parsed script")

	for _, cmd := range cmds {
		if err := in.exec(cmd); err != nil {
			_ = in.out.Flush()
			return fmt.Errorf("%s: %s: %w", cmd.Pos, cmd.Op, err)
		}
	}
	return in.out.Flush()
}

// Exec executes a single command.
func (in *Interpreter) Exec(cmd Command) error {
	if err := in.exec(cmd); err != nil {
		return err
	}
	return in.out.Flush()
}

func (in *Interpreter) exec(cmd Command) error {
	in.logger.Debug().
		Str("op", cmd.Op.String()).
		Str("arg", cmd.Arg).
		Int("line", cmd.Pos.Line).
		Msg("Executing command")

	t := in.trie
	switch cmd.Op {
	case OpInsert:
		_, existed := t.Insert(cmd.Arg)
		return in.println(choose(existed, "present", "inserted"))
	case OpErase:
		return in.println(choose(t.Erase(cmd.Arg), "erased", "absent"))
	case OpFind:
		return in.println(choose(!t.Find(cmd.Arg).AtEnd(), "found", "missing"))
	case OpSize:
		return in.println(strconv.Itoa(t.Size()))
	case OpEmpty:
		return in.println(strconv.FormatBool(t.Empty()))
	case OpClear:
		t.Clear()
		return in.println("cleared")
	case OpList:
		return in.list("")
	case OpPrefix:
		return in.list(cmd.Arg)
	case OpDump:
		return in.println(t.String())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Op)
	}
}

func (in *Interpreter) list(prefix string) error {
	var err error
	in.trie.Walk(prefix, func(key string) bool {
		err = in.println(strconv.Quote(key))
		return err == nil
	})
	if err != nil {
		return err
	}
	return in.println("end")
}

func (in *Interpreter) println(s string) error {
	if _, err := in.out.WriteString(s); err != nil {
		return err
	}
	return in.out.WriteByte('\n')
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
