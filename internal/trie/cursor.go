package trie

import (
	"errors"
)

// ErrOutOfRange is returned when dereferencing or advancing the end cursor.
var ErrOutOfRange = errors.New("trie: cursor out of range")

// Cursor is a position in the sorted sequence of a Trie's elements.
//
// A cursor holds only the current key, never nodes. Each advance re-walks
// the tree from the root, so a cursor stays usable across inserts and erases
// made through its Trie; it then moves to the smallest element greater than
// its key.
type Cursor struct {
	trie  *Trie
	key   string
	atEnd bool
}

// AtEnd reports whether c is past the last element.
func (c Cursor) AtEnd() bool { return c.atEnd }

// Key returns the element at c.
func (c Cursor) Key() (string, error) {
	if c.atEnd {
		return "", ErrOutOfRange
	}
	return c.key, nil
}

// Next moves c to the following element, or to the end.
func (c *Cursor) Next() error {
	if c.atEnd {
		return ErrOutOfRange
	}
	c.advance()
	return nil
}

func (c *Cursor) advance() {
	key, ok := successor(c.trie.root, c.key)
	if !ok {
		c.key, c.atEnd = "", true
		return
	}
	c.key = key
}

// Equal reports whether c and other denote the same position. Any two end
// cursors are equal.
func (c Cursor) Equal(other Cursor) bool {
	if c.atEnd || other.atEnd {
		return c.atEnd == other.atEnd
	}
	return c.trie == other.trie && c.key == other.key
}

// successor returns the smallest member of the tree under root that is
// strictly greater than key. key need not be a member.
func successor(root *Node, key string) (string, bool) {
	w := newWalker(root)
	for i := 0; i < len(key); i++ {
		n := w.top()
		c := key[i]
		if !n.HasChild(c) {
			// key leaves the tree here; everything under a larger sibling is
			// greater than key.
			if next, ok := n.NextChild(c); ok {
				w.push(next, n.Child(next))
				return w.first()
			}
			if !w.sibling() {
				return "", false
			}
			return w.first()
		}
		w.push(c, n.Child(c))
	}
	return w.below()
}

// walker tracks a root-to-node path and the bytes spelling it.
type walker struct {
	path []*Node
	buf  []byte
}

func newWalker(root *Node) *walker {
	return &walker{path: []*Node{root}}
}

func (w *walker) top() *Node { return w.path[len(w.path)-1] }

func (w *walker) push(c byte, n *Node) {
	w.buf = append(w.buf, c)
	w.path = append(w.path, n)
}

func (w *walker) pop() byte {
	c := w.buf[len(w.buf)-1]
	w.buf = w.buf[:len(w.buf)-1]
	w.path = w.path[:len(w.path)-1]
	return c
}

// first returns the smallest member at or below the current node.
func (w *walker) first() (string, bool) {
	for {
		n := w.top()
		if n.IsFinal() {
			return string(w.buf), true
		}
		c, ok := n.FirstChild()
		if !ok {
			// Dead branch; pruning should prevent this, so skip past it.
			if !w.sibling() {
				return "", false
			}
			continue
		}
		w.push(c, n.Child(c))
	}
}

// below returns the smallest member strictly below the current node.
func (w *walker) below() (string, bool) {
	n := w.top()
	if c, ok := n.FirstChild(); ok {
		w.push(c, n.Child(c))
		return w.first()
	}
	if !w.sibling() {
		return "", false
	}
	return w.first()
}

// sibling moves to the next subtree in pre-order after the current one,
// climbing as far as needed. It reports false once the root is exhausted.
func (w *walker) sibling() bool {
	for len(w.buf) > 0 {
		c := w.pop()
		parent := w.top()
		if next, ok := parent.NextChild(c); ok {
			w.push(next, parent.Child(next))
			return true
		}
	}
	return false
}
