package flat

// NearestLeft finds the first regular number strictly to the left of the node
// at index i, in canonical left-to-right order.
//
// We climb up the tree while i is a left child. As soon as i is a right child,
// the nearest literal is the rightmost one in the subtree rooted at i's left
// sibling.
func (t *Tree) NearestLeft(i int) (Node, bool) {
	if t.IsRoot(i) {
		return Node{}, false
	}
	parent := t.Parent(i).Index
	if t.IsLeftChild(i) {
		return t.NearestLeft(parent)
	}
	sibling := t.Left(parent)
	return t.RightmostAtLeast(sibling.Index, 0)
}

// NearestRight finds the first regular number strictly to the right of the
// node at index i. It mirrors NearestLeft.
func (t *Tree) NearestRight(i int) (Node, bool) {
	if t.IsRoot(i) {
		return Node{}, false
	}
	parent := t.Parent(i).Index
	if t.IsRightChild(i) {
		return t.NearestRight(parent)
	}
	sibling := t.Right(parent)
	return t.LeftmostAtLeast(sibling.Index, 0)
}

// LeftmostAtLeast returns the leftmost regular number >= threshold in the subtree
// rooted at root. Positions are visited left child first, then the root
// itself, then the right child.
func (t *Tree) LeftmostAtLeast(root int, threshold int) (Node, bool) {
	if t.HasLeft(root) {
		if n, ok := t.matchOrDescend(t.Left(root), threshold, t.LeftmostAtLeast); ok {
			return n, true
		}
	}
	if n := t.At(root); n.Literal && n.Value >= threshold {
		return n, true
	}
	if t.HasRight(root) {
		return t.matchOrDescend(t.Right(root), threshold, t.LeftmostAtLeast)
	}
	return Node{}, false
}

// RightmostAtLeast returns the rightmost regular number >= threshold in the subtree
// rooted at root. Positions are visited right child first, then the root
// itself, then the left child.
func (t *Tree) RightmostAtLeast(root int, threshold int) (Node, bool) {
	if t.HasRight(root) {
		if n, ok := t.matchOrDescend(t.Right(root), threshold, t.RightmostAtLeast); ok {
			return n, true
		}
	}
	if n := t.At(root); n.Literal && n.Value >= threshold {
		return n, true
	}
	if t.HasLeft(root) {
		return t.matchOrDescend(t.Left(root), threshold, t.RightmostAtLeast)
	}
	return Node{}, false
}

// matchOrDescend accepts child if it is a matching literal, otherwise it
// continues the search below child.
func (t *Tree) matchOrDescend(child Node, threshold int,
	search func(int, int) (Node, bool)) (Node, bool) {
	//
	if child.Literal && child.Value >= threshold {
		return child, true
	}
	return search(child.Index, threshold)
}
