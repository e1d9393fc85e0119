package flat

import "math/bits"

// LeftIndex returns the implicit index of the left child of i.
func LeftIndex(i int) int {
	return 2*i + 1
}

// RightIndex returns the implicit index of the right child of i.
func RightIndex(i int) int {
	return 2*i + 2
}

// ParentIndex returns the implicit index of the parent of i. The root is its
// own parent.
func ParentIndex(i int) int {
	if i <= 0 {
		return 0
	}
	return (i - 1) / 2
}

// Depth returns the number of parent hops from index i to the root.
//
// All indices at depth d form the contiguous range [2^d - 1, 2^(d+1) - 2], so
// the depth is the bit length of i+1, minus one.
func Depth(i int) int {
	assert(i >= 0, "flat.Depth called with negative index")
	return bits.Len(uint(i+1)) - 1
}

// DepthRange returns the first and last index living at depth d.
func DepthRange(d int) (first, last int) {
	assert(d >= 0, "flat.DepthRange called with negative depth")
	return 1<<d - 1, 1<<(d+1) - 2
}

// shift maps index i of a tree to the index it occupies after the tree has
// been hung below a new root as its left (side 0) or right (side 1) child.
func shift(i int, side int) int {
	d := Depth(i)
	first, _ := DepthRange(d)
	offset := i - first
	firstBelow, _ := DepthRange(d + 1)
	return firstBelow + side<<d + offset
}
