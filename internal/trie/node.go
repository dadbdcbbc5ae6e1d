package trie

import (
	"fmt"
	"slices"
)

// Node represents a node in the trie
type Node struct {
	// children maps the next byte to the child node
	children map[byte]*Node

	// labels holds the keys of children in ascending byte order
	labels []byte

	// final marks if the path to this node spells a stored string
	final bool
}

// NewNode creates a new non-final node without children
func NewNode() *Node {
	return &Node{
		children: make(map[byte]*Node),
	}
}

// IsFinal reports whether the path leading to n is a member of the set.
func (n *Node) IsFinal() bool { return n.final }

// MarkFinal makes the path leading to n a member of the set.
func (n *Node) MarkFinal() { n.final = true }

// MarkNonFinal removes the path leading to n from the set. The children are
// left untouched.
func (n *Node) MarkNonFinal() { n.final = false }

// HasChild reports whether n has an edge labeled c.
func (n *Node) HasChild(c byte) bool {
	_, ok := n.children[c]
	return ok
}

// HasNoChildren reports whether n is a leaf.
func (n *Node) HasNoChildren() bool { return len(n.children) == 0 }

// Child returns the child reached through edge c. It panics if there is no
// such edge; callers check HasChild first.
func (n *Node) Child(c byte) *Node {
	child, ok := n.children[c]
	if !ok {
		panic(fmt.Sprintf("trie: no child at %q", c))
	}
	return child
}

// InsertChild attaches child under edge c. It panics if the edge exists.
func (n *Node) InsertChild(c byte, child *Node) {
	if _, ok := n.children[c]; ok {
		panic(fmt.Sprintf("trie: child at %q already exists", c))
	}
	if child == nil {
		panic("trie: nil child")
	}
	i, _ := slices.BinarySearch(n.labels, c)
	n.labels = slices.Insert(n.labels, i, c)
	n.children[c] = child
}

// EraseChild detaches the subtree under edge c. It panics if the edge is
// missing.
func (n *Node) EraseChild(c byte) {
	if _, ok := n.children[c]; !ok {
		panic(fmt.Sprintf("trie: cannot erase missing child at %q", c))
	}
	i, _ := slices.BinarySearch(n.labels, c)
	n.labels = slices.Delete(n.labels, i, i+1)
	delete(n.children, c)
}

// FirstChild returns the smallest edge label of n.
func (n *Node) FirstChild() (byte, bool) {
	if len(n.labels) == 0 {
		return 0, false
	}
	return n.labels[0], true
}

// NextChild returns the smallest edge label of n strictly greater than c.
func (n *Node) NextChild(c byte) (byte, bool) {
	i, found := slices.BinarySearch(n.labels, c)
	if found {
		i++
	}
	if i >= len(n.labels) {
		return 0, false
	}
	return n.labels[i], true
}

// Labels returns the edge labels of n in ascending order.
func (n *Node) Labels() []byte {
	return slices.Clone(n.labels)
}

// Size counts the final nodes in the subtree rooted at n, n included.
func (n *Node) Size() int {
	size := 0
	if n.final {
		size = 1
	}
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}

// Clone returns a deep copy of the subtree rooted at n. No node is shared
// between n and the copy.
func (n *Node) Clone() *Node {
	c := &Node{
		children: make(map[byte]*Node, len(n.children)),
		labels:   slices.Clone(n.labels),
		final:    n.final,
	}
	for label, child := range n.children {
		c.children[label] = child.Clone()
	}
	return c
}

// Clear releases every descendant bottom-up and leaves n non-final and
// childless, so a cleared root is a usable empty root.
func (n *Node) Clear() {
	for _, child := range n.children {
		child.Clear()
	}
	clear(n.children)
	n.labels = n.labels[:0]
	n.final = false
}
