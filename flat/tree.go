package flat

import (
	"fmt"
	"iter"
)

// Node is a reference to a tree position, together with the regular number
// stored there, if any.
//
// Literal is false both for inner pair nodes and for positions which are
// unpopulated or lie beyond the current storage; Value is 0 then.
type Node struct {
	Index   int
	Value   int
	Literal bool
}

// slot is a single storage cell. A cleared or never written slot is absent.
type slot struct {
	value int
	set   bool
}

// Tree is an implicit binary tree stored in a flat, growable slice.
//
// A tree created by
//
//	Tree{}
//
// is a valid, empty tree. Trees are not safe for concurrent mutation; use Clone
// to hand private copies to concurrent workers.
type Tree struct {
	slots []slot
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the size of the current storage, including absent slots.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.slots)
}

// IsEmpty reports whether the tree has no storage at all.
func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	cloned := &Tree{slots: make([]slot, len(t.slots))}
	copy(cloned.slots, t.slots)
	return cloned
}

// grow extends the storage so that index i is addressable.
func (t *Tree) grow(i int) {
	if i < len(t.slots) {
		return
	}
	if i < cap(t.slots) {
		t.slots = t.slots[:i+1]
		return
	}
	grown := make([]slot, i+1, max(i+1, 2*cap(t.slots)))
	copy(grown, t.slots)
	t.slots = grown
}

// At returns the node at index i. It never fails: positions beyond the
// current storage are reported as absent.
func (t *Tree) At(i int) Node {
	if i < 0 || i >= t.Len() {
		return Node{Index: i}
	}
	s := t.slots[i]
	return Node{Index: i, Value: s.value, Literal: s.set}
}

// Left returns the left child of the node at index i.
// It panics if the child lies beyond the current storage.
func (t *Tree) Left(i int) Node {
	if !t.HasLeft(i) {
		panic(fmt.Errorf("%w: left child of %d (len=%d)", ErrIndexOutOfBounds, i, t.Len()))
	}
	return t.At(LeftIndex(i))
}

// Right returns the right child of the node at index i.
// It panics if the child lies beyond the current storage.
func (t *Tree) Right(i int) Node {
	if !t.HasRight(i) {
		panic(fmt.Errorf("%w: right child of %d (len=%d)", ErrIndexOutOfBounds, i, t.Len()))
	}
	return t.At(RightIndex(i))
}

// HasLeft reports whether the left child of i lies within the storage.
func (t *Tree) HasLeft(i int) bool {
	return LeftIndex(i) < t.Len()
}

// HasRight reports whether the right child of i lies within the storage.
func (t *Tree) HasRight(i int) bool {
	return RightIndex(i) < t.Len()
}

// Parent returns the parent node of i. Indices 0 and 1 both report the
// root with no value: the root of a tree with children is never a literal.
func (t *Tree) Parent(i int) Node {
	if i <= 1 {
		return Node{Index: 0}
	}
	return t.At(ParentIndex(i))
}

// IsRoot reports whether i is the root position.
func (t *Tree) IsRoot(i int) bool {
	return i == 0
}

// IsLeftChild reports whether i is the left child of its parent.
func (t *Tree) IsLeftChild(i int) bool {
	return LeftIndex(t.Parent(i).Index) == i
}

// IsRightChild reports whether i is the right child of its parent.
func (t *Tree) IsRightChild(i int) bool {
	return RightIndex(t.Parent(i).Index) == i
}

// SetLeft stores regular number v as the left child of parent. An existing
// sub-pair at that position is not cleared; this is the caller's
// responsibility.
func (t *Tree) SetLeft(parent int, v int) {
	t.SetData(LeftIndex(parent), v)
}

// SetRight stores regular number v as the right child of parent.
// See SetLeft.
func (t *Tree) SetRight(parent int, v int) {
	t.SetData(RightIndex(parent), v)
}

// SetData stores regular number v at index i, growing the storage if
// necessary.
func (t *Tree) SetData(i int, v int) {
	assert(i >= 0, "flat.SetData called with negative index")
	assert(v >= 0, "flat.SetData called with negative value")
	t.grow(i)
	t.slots[i] = slot{value: v, set: true}
}

// ClearData marks index i as absent, growing the storage if necessary.
func (t *Tree) ClearData(i int) {
	assert(i >= 0, "flat.ClearData called with negative index")
	t.grow(i)
	t.slots[i] = slot{}
}

// NodesAtDepth returns an iterator over all positions at depth d which lie
// within the current storage, from left to right. Absent positions are
// included.
func (t *Tree) NodesAtDepth(d int) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		first, last := DepthRange(d)
		for i := first; i <= last && i < t.Len(); i++ {
			if !yield(t.At(i)) {
				return
			}
		}
	}
}

// Literals returns an iterator over all regular numbers of the tree, in
// storage order.
func (t *Tree) Literals() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for i := range t.Len() {
			if t.slots[i].set && !yield(t.At(i)) {
				return
			}
		}
	}
}

// Equal reports whether two trees store the same regular numbers at the same
// positions. Absent slots, including trailing storage, do not count.
func (t *Tree) Equal(other *Tree) bool {
	n := max(t.Len(), other.Len())
	for i := range n {
		a, b := t.At(i), other.At(i)
		if a.Literal != b.Literal || a.Value != b.Value {
			return false
		}
	}
	return true
}
