// Package trie implements an ordered set of strings as a byte-indexed
// prefix tree.
//
// A Trie behaves like a sorted set: elements are unique and iterate in
// byte-lexicographic order. The empty string is a valid element and is
// represented by the root itself.
//
// A Trie is not safe for concurrent use. Callers sharing one between
// goroutines must serialize access themselves.
package trie

import (
	"iter"
	"strings"
)

// Trie represents a set of strings stored as a prefix tree
type Trie struct {
	root *Node
}

// New creates a new empty trie
func New() *Trie {
	return &Trie{
		root: NewNode(),
	}
}

// Insert adds s to the set. It returns a cursor positioned at s and whether
// s was already a member, in which case the tree is left unchanged.
func (t *Trie) Insert(s string) (Cursor, bool) {
	node := t.root
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !node.HasChild(c) {
			node.InsertChild(c, NewNode())
		}
		node = node.Child(c)
	}
	existed := node.IsFinal()
	node.MarkFinal()
	return Cursor{trie: t, key: s}, existed
}

// Erase removes s from the set and reports whether it was a member.
//
// Nodes that end up non-final and childless are pruned bottom-up, so every
// remaining non-root node has a final descendant.
func (t *Trie) Erase(s string) bool {
	if s == "" {
		if !t.root.IsFinal() {
			return false
		}
		t.root.MarkNonFinal()
		return true
	}

	// path[i] is the node reached after consuming s[:i].
	path := make([]*Node, 0, len(s)+1)
	path = append(path, t.root)
	node := t.root
	for i := 0; i < len(s); i++ {
		if !node.HasChild(s[i]) {
			return false
		}
		node = node.Child(s[i])
		path = append(path, node)
	}
	if !node.IsFinal() {
		return false
	}
	node.MarkNonFinal()

	for i := len(s); i > 0; i-- {
		n := path[i]
		if n.IsFinal() || !n.HasNoChildren() {
			break
		}
		path[i-1].EraseChild(s[i-1])
	}
	return true
}

// Find returns a cursor positioned at s, or End if s is not a member.
func (t *Trie) Find(s string) Cursor {
	if s == "" {
		if t.root.IsFinal() {
			return Cursor{trie: t}
		}
		return t.End()
	}
	node := t.lookup(s)
	if node == nil || !node.IsFinal() {
		return t.End()
	}
	return Cursor{trie: t, key: s}
}

// Contains reports whether s is a member.
func (t *Trie) Contains(s string) bool {
	node := t.lookup(s)
	return node != nil && node.IsFinal()
}

// lookup returns the node reached by spelling s, or nil if the path breaks.
func (t *Trie) lookup(s string) *Node {
	node := t.root
	for i := 0; i < len(s); i++ {
		if !node.HasChild(s[i]) {
			return nil
		}
		node = node.Child(s[i])
	}
	return node
}

// Clear removes every element. The trie stays usable.
func (t *Trie) Clear() {
	t.root.Clear()
}

// Size returns the number of elements.
func (t *Trie) Size() int {
	return t.root.Size()
}

// Empty reports whether the set has no elements.
func (t *Trie) Empty() bool {
	return !t.root.IsFinal() && t.root.HasNoChildren()
}

// Begin returns a cursor at the smallest element, or End if the set is empty.
func (t *Trie) Begin() Cursor {
	w := newWalker(t.root)
	key, ok := w.first()
	if !ok {
		return t.End()
	}
	return Cursor{trie: t, key: key}
}

// End returns the past-the-end cursor.
func (t *Trie) End() Cursor {
	return Cursor{trie: t, atEnd: true}
}

// LowerBound returns a cursor at the smallest element not less than s.
func (t *Trie) LowerBound(s string) Cursor {
	if t.Contains(s) {
		return Cursor{trie: t, key: s}
	}
	key, ok := successor(t.root, s)
	if !ok {
		return t.End()
	}
	return Cursor{trie: t, key: key}
}

// WalkFunc is the type of the function called for each element visited by
// Walk. If the function returns false, the walk stops.
type WalkFunc func(key string) bool

// Walk visits the elements having the given prefix in lexicographical order.
func (t *Trie) Walk(prefix string, f WalkFunc) {
	for c := t.LowerBound(prefix); !c.AtEnd(); c.advance() {
		if !strings.HasPrefix(c.key, prefix) {
			return
		}
		if !f(c.key) {
			return
		}
	}
}

// KeysWithPrefix returns all elements that have the given prefix, in order.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	results := []string{}
	t.Walk(prefix, func(key string) bool {
		results = append(results, key)
		return true
	})
	return results
}

// All returns an iterator over the elements in order.
func (t *Trie) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		t.Walk("", yield)
	}
}

// Keys returns all elements in order.
func (t *Trie) Keys() []string {
	return t.KeysWithPrefix("")
}

// Clone returns a deep copy of t. Mutating either trie afterwards does not
// affect the other.
func (t *Trie) Clone() *Trie {
	return &Trie{root: t.root.Clone()}
}

// Equal reports whether t and other hold the same elements.
func (t *Trie) Equal(other *Trie) bool {
	a, b := t.Begin(), other.Begin()
	for !a.AtEnd() && !b.AtEnd() {
		if a.key != b.key {
			return false
		}
		a.advance()
		b.advance()
	}
	return a.AtEnd() && b.AtEnd()
}
