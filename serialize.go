package snailfish

import (
	"strconv"

	"github.com/npillmayer/snailfish/flat"
)

// String returns the bracket notation of n, e.g. "[[1,2],3]".
//
// Pairs are rendered as [left,right] and regular numbers as decimal digits.
// A pair position is bracketed only if at least one of its children renders
// to something, so absent slots left behind by explosions never show up.
// The result parses back to an equal number.
func (n *Number) String() string {
	if n == nil {
		return ""
	}
	return string(appendNode(nil, n.Tree(), 0))
}

// AppendText appends the bracket notation of n to buf.
func (n *Number) AppendText(buf []byte) ([]byte, error) {
	return appendNode(buf, n.Tree(), 0), nil
}

func appendNode(buf []byte, t *flat.Tree, i int) []byte {
	if node := t.At(i); node.Literal {
		return strconv.AppendInt(buf, int64(node.Value), 10)
	}
	if !t.HasLeft(i) {
		return buf
	}
	mark := len(buf)
	buf = append(buf, '[')
	inner := len(buf)
	buf = appendNode(buf, t, flat.LeftIndex(i))
	if t.HasRight(i) {
		comma := len(buf)
		if comma > inner {
			buf = append(buf, ',')
		}
		before := len(buf)
		buf = appendNode(buf, t, flat.RightIndex(i))
		if len(buf) == before && comma > inner {
			buf = buf[:comma] // right side empty, drop the separator
		}
	}
	if len(buf) == inner {
		return buf[:mark]
	}
	return append(buf, ']')
}

// Magnitude returns the magnitude of n: a regular number counts as itself,
// a pair as 3 times the magnitude of its left plus 2 times the magnitude of
// its right element.
func (n *Number) Magnitude() int {
	return magnitude(n.Tree(), 0)
}

func magnitude(t *flat.Tree, i int) int {
	if node := t.At(i); node.Literal {
		return node.Value
	}
	m := 0
	if t.HasLeft(i) {
		m += 3 * magnitude(t, flat.LeftIndex(i))
	}
	if t.HasRight(i) {
		m += 2 * magnitude(t, flat.RightIndex(i))
	}
	return m
}
