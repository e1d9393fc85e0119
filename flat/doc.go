/*
Package flat provides an array-backed binary tree with implicit index
arithmetic, as used to store snailfish numbers.

The tree is not a general purpose container. It stores regular numbers
(non-negative integers) at its leaves only; inner pair nodes carry no value
and exist purely by having populated descendants. Node positions are derived
from their parent's position:

	left(i)   = 2i + 1
	right(i)  = 2i + 2
	parent(i) = (i - 1) / 2

	depth 0                 0
	                      /   \
	depth 1              1     2
	                    / \   / \
	depth 2            3   4 5   6

Storage grows exactly as far as needed to address the highest index written
to, and never shrinks. Consequently, whether an index lies within storage
bounds doubles as "the node structurally exists". Clearing a slot leaves it in
place as an absent (ghost) slot.

Navigating beyond populated structure is a programming error and panics with
an error wrapping ErrIndexOutOfBounds.

Current status:
  - storage and navigation primitives,
  - depth-wise enumeration with range functions (`NodesAtDepth`),
  - nearest-literal search in canonical left-to-right order,
  - index splicing of two trees below a new root (`Join`),
  - structural invariant checking (`Check`).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package flat

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
