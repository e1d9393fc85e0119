package snailfish

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/snailfish/flat"
	"github.com/npillmayer/snailfish/number"
)

// Number is a snailfish number, stored as a flat binary tree.
//
// A number created by
//
//	Number{}
//
// is valid and empty; it renders as the empty string and has magnitude 0.
//
// Reduction mutates a number in place. Add and the operations built on it
// create new numbers and leave their operands untouched.
type Number struct {
	tree *flat.Tree
}

// FromTerm builds a number from a parsed term.
//
// The term is traversed depth-first with an explicit stack; every literal is
// written to the implicit index of its position. Pair positions are never
// written, so storage grows only as far as the deepest literal.
//
// Terms nested deeper than number.MaxDepth are rejected with a panic carrying
// ErrStructure; Parse never produces them.
func FromTerm(term number.Term) *Number {
	type item struct {
		index int
		term  number.Term
	}
	tree := flat.New()
	if term == nil {
		return &Number{tree: tree}
	}
	if d := number.Depth(term); d > number.MaxDepth {
		panic(fmt.Errorf("%w: term nested %d pairs deep, limit is %d", ErrStructure, d, number.MaxDepth))
	}
	stack := []item{{0, term}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := top.term.(type) {
		case number.Literal:
			tree.SetData(top.index, int(t))
		case *number.Pair:
			assert(t != nil, "FromTerm: nil pair in term")
			stack = append(stack, item{flat.LeftIndex(top.index), t.Left})
			stack = append(stack, item{flat.RightIndex(top.index), t.Right})
		}
	}
	return &Number{tree: tree}
}

// Parse parses a snailfish number from bracket notation.
// Malformed input results in a *number.ParseError.
func Parse(s string) (*Number, error) {
	term, err := number.Parse(s)
	if err != nil {
		return nil, err
	}
	return FromTerm(term), nil
}

// MustParse is like Parse, but panics on malformed input.
func MustParse(s string) *Number {
	return FromTerm(number.MustParse(s))
}

// Tree returns the underlying flat tree. Clients must treat it as read-only.
func (n *Number) Tree() *flat.Tree {
	if n == nil || n.tree == nil {
		return flat.New()
	}
	return n.tree
}

// Clone returns a deep copy of n.
func (n *Number) Clone() *Number {
	return &Number{tree: n.Tree().Clone()}
}

// IsVoid reports whether n does not hold any regular number.
func (n *Number) IsVoid() bool {
	for range n.Tree().Literals() {
		return false
	}
	return true
}

// Equal reports whether n and other hold the same regular numbers in the
// same places.
func (n *Number) Equal(other *Number) bool {
	return n.Tree().Equal(other.Tree())
}

// Check validates the structure of n. See flat.Tree.Check.
func (n *Number) Check() error {
	return n.Tree().Check()
}

// --- Helpers ---------------------------------------------------------------

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
