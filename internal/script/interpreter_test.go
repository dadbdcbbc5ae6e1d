package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/trie"
)

func TestInterpreter_Run(t *testing.T) {
	script := `insert fo
insert foo
insert b
insert bar
insert foo
insert ""
size
insert abc
insert xyz
insert a
insert foobar
insert ""
size
find foo
find ""
find foobaR
erase xyz
erase ""
erase foo
erase foobaR
size
list
prefix fo
clear
empty
insert ""
dump
`
	want := `inserted
inserted
inserted
inserted
present
inserted
5
inserted
inserted
inserted
inserted
present
9
found
found
missing
erased
erased
erased
absent
6
"a"
"abc"
"b"
"bar"
"fo"
"foobar"
end
"fo"
"foobar"
end
cleared
true
inserted
{{true,{}}}
`

	var out bytes.Buffer
	tr := trie.New()
	in := NewInterpreter(tr, &out, zerolog.Nop())
	require.NoError(t, in.Run(strings.NewReader(script)))
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, tr.Size())
}

func TestInterpreter_ParseErrorRunsNothing(t *testing.T) {
	var out bytes.Buffer
	tr := trie.New()
	in := NewInterpreter(tr, &out, zerolog.Nop())

	err := in.Run(strings.NewReader("insert a\nbogus\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Empty(t, out.String())
	assert.True(t, tr.Empty())
}

func TestInterpreter_Exec(t *testing.T) {
	var out bytes.Buffer
	tr := trie.New()
	in := NewInterpreter(tr, &out, zerolog.Nop())

	require.NoError(t, in.Exec(Command{Op: OpInsert, Arg: "\xff"}))
	require.NoError(t, in.Exec(Command{Op: OpList}))
	assert.Equal(t, "inserted\n\"\\xff\"\nend\n", out.String())

	assert.ErrorIs(t, in.Exec(Command{Op: Op(42)}), ErrUnknownCommand)
}
