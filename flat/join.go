package flat

// Join creates a new tree with a fresh root, holding a as its left and b as
// its right subtree. Every regular number is moved one level down by index
// splicing; a and b are left untouched.
//
// Join(a, b) has the same layout as the tree built from parsing
// "[" + a + "," + b + "]".
func Join(a, b *Tree) *Tree {
	joined := New()
	for side, t := range []*Tree{a, b} {
		for n := range t.Literals() {
			joined.SetData(shift(n.Index, side), n.Value)
		}
	}
	return joined
}
