package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, tr *Trie) []string {
	t.Helper()
	var keys []string
	for c := tr.Begin(); !c.Equal(tr.End()); {
		key, err := c.Key()
		require.NoError(t, err)
		keys = append(keys, key)
		require.NoError(t, c.Next())
	}
	return keys
}

func TestCursor_EndIsOutOfRange(t *testing.T) {
	tr := New()
	end := tr.End()

	_, err := end.Key()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, end.Next(), ErrOutOfRange)

	assert.True(t, tr.Begin().AtEnd(), "empty trie should begin at end")

	tr.Insert("only")
	c := tr.Begin()
	require.NoError(t, c.Next())
	assert.ErrorIs(t, c.Next(), ErrOutOfRange)
	_, err = c.Key()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCursor_IteratesInOrder(t *testing.T) {
	tr := New()
	for _, k := range []string{"fo", "foo", "b", "bar", "", "abc", "xyz", "a", "foobar"} {
		tr.Insert(k)
	}
	assert.Equal(t,
		[]string{"", "a", "abc", "b", "bar", "fo", "foo", "foobar", "xyz"},
		collect(t, tr))
}

func TestCursor_Equal(t *testing.T) {
	tr := New()
	tr.Insert("a")
	tr.Insert("b")
	other := New()
	other.Insert("a")

	assert.True(t, tr.Find("a").Equal(tr.Begin()))
	assert.False(t, tr.Find("a").Equal(tr.Find("b")))
	assert.False(t, tr.Find("a").Equal(tr.End()))
	assert.False(t, tr.Find("a").Equal(other.Find("a")))
	assert.True(t, tr.End().Equal(other.End()))
	assert.True(t, tr.Find("missing").Equal(tr.End()))

	c := tr.Find("a")
	require.NoError(t, c.Next())
	assert.True(t, c.Equal(tr.Find("b")))
}

func TestCursor_SurvivesEraseOfCurrentKey(t *testing.T) {
	tr := New()
	for _, k := range []string{"a", "ab", "abc", "b"} {
		tr.Insert(k)
	}

	c := tr.Find("ab")
	require.True(t, tr.Erase("ab"))
	require.True(t, tr.Erase("abc"))

	key, err := c.Key()
	require.NoError(t, err)
	assert.Equal(t, "ab", key)

	require.NoError(t, c.Next())
	key, err = c.Key()
	require.NoError(t, err)
	assert.Equal(t, "b", key)
}

func TestCursor_SeesInsertsAhead(t *testing.T) {
	tr := New()
	tr.Insert("a")
	tr.Insert("c")

	c := tr.Begin()
	tr.Insert("b")
	tr.Insert("aa")

	require.NoError(t, c.Next())
	key, err := c.Key()
	require.NoError(t, err)
	assert.Equal(t, "aa", key)

	require.NoError(t, c.Next())
	key, _ = c.Key()
	assert.Equal(t, "b", key)
}

func TestCursor_EraseWhileIterating(t *testing.T) {
	tr := New()
	for _, k := range []string{"", "a", "abc", "b", "bar", "fo", "foobar"} {
		tr.Insert(k)
	}

	var seen []string
	for c := tr.Begin(); !c.AtEnd(); {
		key, err := c.Key()
		require.NoError(t, err)
		seen = append(seen, key)
		tr.Erase(key)
		require.NoError(t, c.Next())
	}
	assert.Equal(t, []string{"", "a", "abc", "b", "bar", "fo", "foobar"}, seen)
	assert.True(t, tr.Empty())
	assert.True(t, tr.root.HasNoChildren())
}

func TestSuccessor(t *testing.T) {
	tr := New()
	for _, k := range []string{"", "a", "abc", "b", "bar", "fo", "foobar"} {
		tr.Insert(k)
	}

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{key: "", want: "a", ok: true},
		{key: "a", want: "abc", ok: true},
		{key: "abc", want: "b", ok: true},
		{key: "ab", want: "abc", ok: true},
		{key: "abd", want: "b", ok: true},
		{key: "bar", want: "fo", ok: true},
		{key: "fo", want: "foobar", ok: true},
		{key: "foobar", ok: false},
		{key: "\xff", ok: false},
		{key: "\x00", want: "a", ok: true},
	}
	for _, tt := range tests {
		got, ok := successor(tr.root, tt.key)
		assert.Equal(t, tt.ok, ok, "successor(%q)", tt.key)
		assert.Equal(t, tt.want, got, "successor(%q)", tt.key)
	}
}

func TestSuccessor_SkipsDeadBranches(t *testing.T) {
	// Build a tree that violates the pruning invariant: "ax" is a non-final
	// leaf between "a" and "b".
	root := NewNode()
	a := NewNode()
	a.MarkFinal()
	root.InsertChild('a', a)
	a.InsertChild('x', NewNode())
	b := NewNode()
	b.MarkFinal()
	root.InsertChild('b', b)

	got, ok := successor(root, "a")
	require.True(t, ok)
	assert.Equal(t, "b", got)

	tr := &Trie{root: NewNode()}
	tr.root.InsertChild('z', NewNode())
	assert.True(t, tr.Begin().AtEnd())
}
