package trie

import (
	"strconv"
	"strings"
)

// String renders the tree as nested tuples for debugging:
//
//	{{final,{{'c',{...}},...}}}
//
// Edges appear in ascending byte order. The tree is not modified.
func (t *Trie) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	writeNode(&sb, t.root)
	sb.WriteByte('}')
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	sb.WriteByte('{')
	sb.WriteString(strconv.FormatBool(n.final))
	sb.WriteString(",{")
	for i, c := range n.labels {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('{')
		sb.WriteString(charLiteral(c))
		sb.WriteByte(',')
		writeNode(sb, n.children[c])
		sb.WriteByte('}')
	}
	sb.WriteString("}}")
}

// charLiteral formats c the way it would be written as a C character
// literal.
func charLiteral(c byte) string {
	switch c {
	case '\'':
		return `'\''`
	case '"':
		return `'\"'`
	case '?':
		return `'\?'`
	case '\\':
		return `'\\'`
	case '\a':
		return `'\a'`
	case '\b':
		return `'\b'`
	case '\f':
		return `'\f'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case '\v':
		return `'\v'`
	case 0:
		return `'\0'`
	}
	if c < 0x20 || c >= 0x7f {
		const hex = "0123456789abcdef"
		return string([]byte{'\'', '\\', 'x', hex[c>>4], hex[c&0x0f], '\''})
	}
	return string([]byte{'\'', c, '\''})
}
