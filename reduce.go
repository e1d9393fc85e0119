package snailfish

import (
	"fmt"

	"github.com/npillmayer/snailfish/flat"
)

const (
	// ExplodeDepth is the depth of the regular numbers whose parent pair
	// explodes, i.e. pairs nested inside four pairs.
	ExplodeDepth = 5
	// SplitThreshold is the smallest regular number which splits.
	SplitThreshold = 10
	// DefaultMaxSteps caps the number of rewrite steps of a single reduction.
	DefaultMaxSteps = 10000
)

// Action is the outcome of a single reduction step.
type Action uint8

// Possible reduction step outcomes.
const (
	NoOp Action = iota
	Exploded
	Splitted
)

func (a Action) String() string {
	switch a {
	case NoOp:
		return "no-op"
	case Exploded:
		return "explode"
	case Splitted:
		return "split"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Progressed reports whether the step changed the number.
func (a Action) Progressed() bool {
	return a != NoOp
}

// ExplodeTrigger returns the index of the leftmost pair which has to explode.
//
// For numbers nested at most ExplodeDepth deep this is the parent of the
// leftmost populated position at ExplodeDepth. Deeper numbers (not yet
// reduced) explode their leftmost pair of two regular numbers nested inside
// at least four pairs.
func (n *Number) ExplodeTrigger() (int, bool) {
	t := n.Tree()
	if _, last := flat.DepthRange(ExplodeDepth); t.Len() > last+1 {
		return explodable(t, 0)
	}
	for node := range t.NodesAtDepth(ExplodeDepth) {
		if node.Literal {
			return t.Parent(node.Index).Index, true
		}
	}
	return 0, false
}

// explodable searches the subtree at i, left to right, for a pair of two
// regular numbers at depth ExplodeDepth-1 or deeper.
func explodable(t *flat.Tree, i int) (int, bool) {
	if t.At(i).Literal || !t.HasRight(i) {
		return 0, false
	}
	left, right := t.Left(i), t.Right(i)
	if flat.Depth(i) >= ExplodeDepth-1 && left.Literal && right.Literal {
		return i, true
	}
	if p, ok := explodable(t, left.Index); ok {
		return p, true
	}
	return explodable(t, right.Index)
}

// SplitTrigger returns the index of the leftmost regular number which has to
// split.
func (n *Number) SplitTrigger() (int, bool) {
	node, ok := n.Tree().LeftmostAtLeast(0, SplitThreshold)
	return node.Index, ok
}

// Explode explodes the pair at index parent. Both children of the pair must
// be regular numbers, otherwise Explode panics with ErrStructure.
func (n *Number) Explode(parent int) {
	t := n.Tree()
	if parent < 0 || !t.HasRight(parent) {
		panic(fmt.Errorf("%w: cannot explode position %d without elements", ErrStructure, parent))
	}
	left, right := t.Left(parent), t.Right(parent)
	if !left.Literal || !right.Literal {
		panic(fmt.Errorf("%w: cannot explode pair at %d with non-regular elements", ErrStructure, parent))
	}
	if l, ok := t.NearestLeft(left.Index); ok {
		t.SetData(l.Index, l.Value+left.Value)
	}
	if r, ok := t.NearestRight(right.Index); ok {
		t.SetData(r.Index, r.Value+right.Value)
	}
	t.ClearData(left.Index)
	t.ClearData(right.Index)
	// the pair collapses into a regular 0 in the slot it occupies
	// within its own parent
	switch {
	case t.IsRoot(parent):
		t.SetData(parent, 0)
	case t.IsLeftChild(parent):
		t.SetLeft(t.Parent(parent).Index, 0)
	default:
		t.SetRight(t.Parent(parent).Index, 0)
	}
	T().Debugf("snailfish: exploded [%d,%d] at %d", left.Value, right.Value, parent)
}

// Split replaces the regular number at index with a pair of its halves,
// the left one rounded down and the right one rounded up. If index does not
// hold a regular number, Split panics with ErrStructure.
func (n *Number) Split(index int) {
	t := n.Tree()
	node := t.At(index)
	if !node.Literal {
		panic(fmt.Errorf("%w: cannot split non-regular position %d", ErrStructure, index))
	}
	t.ClearData(index)
	t.SetLeft(index, node.Value/2)
	t.SetRight(index, (node.Value+1)/2)
	T().Debugf("snailfish: split %d at %d", node.Value, index)
}

// Step applies a single rewrite rule, if any applies. Explosions take
// precedence over splits. Step returns the action taken and the index it was
// applied to.
func (n *Number) Step() (Action, int) {
	if parent, ok := n.ExplodeTrigger(); ok {
		n.Explode(parent)
		return Exploded, parent
	}
	if index, ok := n.SplitTrigger(); ok {
		n.Split(index)
		return Splitted, index
	}
	return NoOp, 0
}

// IsReduced reports whether no rewrite rule applies to n.
func (n *Number) IsReduced() bool {
	if _, ok := n.ExplodeTrigger(); ok {
		return false
	}
	_, ok := n.SplitTrigger()
	return !ok
}

// Reduce applies rewrite rules until n reaches its fixpoint. If this takes
// more than DefaultMaxSteps steps, ErrNoConvergence is returned.
func (n *Number) Reduce() error {
	_, err := n.ReduceLimit(DefaultMaxSteps)
	return err
}

// ReduceLimit applies at most limit rewrite steps and returns the number of
// steps taken. If n has not reached its fixpoint after limit steps, an error
// wrapping ErrNoConvergence is returned.
func (n *Number) ReduceLimit(limit int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: step limit must be positive, is %d", ErrIllegalArguments, limit)
	}
	for steps := 0; steps < limit; steps++ {
		if action, _ := n.Step(); !action.Progressed() {
			return steps, nil
		}
	}
	if n.IsReduced() {
		return limit, nil
	}
	T().Errorf("snailfish: reduction of %v stopped after %d steps", n, limit)
	return limit, fmt.Errorf("%w: stopped after %d steps", ErrNoConvergence, limit)
}
