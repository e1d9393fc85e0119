package flat

import "fmt"

// Check validates structural tree invariants:
//
//   - a regular number never has a regular number as an ancestor,
//   - the sibling of every regular number (except the root) is either a
//     regular number or a pair with at least one regular number below it.
//
// This checker is intentionally strict and should be used in tests and
// debugging sessions.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrMalformed)
	}
	for n := range t.Literals() {
		for p := n.Index; p != 0; {
			p = ParentIndex(p)
			if t.At(p).Literal {
				return fmt.Errorf("%w: literal at %d below literal at %d", ErrMalformed, n.Index, p)
			}
		}
		if n.Index == 0 {
			continue
		}
		sibling := n.Index + 1
		if t.IsRightChild(n.Index) {
			sibling = n.Index - 1
		}
		if !t.populated(sibling) {
			return fmt.Errorf("%w: literal at %d has no sibling", ErrMalformed, n.Index)
		}
	}
	return nil
}

// populated reports whether the subtree rooted at i holds a regular number.
func (t *Tree) populated(i int) bool {
	if i >= t.Len() {
		return false
	}
	if t.At(i).Literal {
		return true
	}
	return t.populated(LeftIndex(i)) || t.populated(RightIndex(i))
}
