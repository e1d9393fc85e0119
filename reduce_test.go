package snailfish

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snailfish/number"
)

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()
	f()
}

func TestExplodeTrigger(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cases := []struct {
		s      string
		parent int
	}{
		{"[[[[[9,8],1],2],3],4]", 15},
		{"[7,[6,[5,[4,[3,2]]]]]", 30},
		{"[[6,[5,[4,[3,2]]]],1]", 22},
		{"[[[[0,7],4],[[7,8],[0,[6,7]]]],[1,1]]", 22},
	}
	for _, c := range cases {
		p, ok := MustParse(c.s).ExplodeTrigger()
		if !ok || p != c.parent {
			t.Errorf("expected %s to explode at %d, got (%d,%v)", c.s, c.parent, p, ok)
		}
	}
	if _, ok := MustParse("[[[[0,7],4],[15,[0,13]]],[1,1]]").ExplodeTrigger(); ok {
		t.Errorf("expected no explosion for a number nested 4 levels deep")
	}
}

func TestExplode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		s        string
		parent   int
		expected string
	}{
		{"[[[[[9,8],1],2],3],4]", 15, "[[[[0,9],2],3],4]"},
		{"[7,[6,[5,[4,[3,2]]]]]", 30, "[7,[6,[5,[7,0]]]]"},
		{"[[6,[5,[4,[3,2]]]],1]", 22, "[[6,[5,[7,0]]],3]"},
		{"[[3,[2,[1,[7,3]]]],[6,[5,[4,[3,2]]]]]", 22, "[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]"},
		{"[[[[0,7],4],[[7,8],[0,[6,7]]]],[1,1]]", 22, "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]"},
	}
	for _, c := range cases {
		n := MustParse(c.s)
		n.Explode(c.parent)
		if n.String() != c.expected {
			t.Errorf("expected %s to explode into %s, got %s", c.s, c.expected, n)
		}
		if err := n.Check(); err != nil {
			t.Errorf("exploded number is malformed: %v", err)
		}
	}
}

func TestExplodeNonRegularPanics(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := MustParse("[[1,2],[3,[4,5]]]")
	expectPanic(t, ErrStructure, func() { n.Explode(2) })
	expectPanic(t, ErrStructure, func() { n.Explode(0) })
	// positions without elements in storage
	m := MustParse("[[1,2],3]")
	expectPanic(t, ErrStructure, func() { m.Explode(2) })
	expectPanic(t, ErrStructure, func() { m.Explode(40) })
	expectPanic(t, ErrStructure, func() { m.Explode(-1) })
	if m.String() != "[[1,2],3]" {
		t.Errorf("expected number to be unchanged, is %s", m)
	}
}

func TestReduceDeeplyNested(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := MustParse("[[[[[1,[2,3]],4],5],6],7]")
	p, ok := n.ExplodeTrigger()
	if !ok || p != 32 {
		t.Fatalf("expected pair [2,3] at 32 to explode, got %d (%v)", p, ok)
	}
	if action, _ := n.Step(); action != Exploded || n.String() != "[[[[[3,0],7],5],6],7]" {
		t.Fatalf("expected [[[[[3,0],7],5],6],7] after explosion, got %v %s", action, n)
	}
	if err := n.Reduce(); err != nil {
		t.Fatal(err)
	}
	if n.String() != "[[[[0,7],5],6],7]" {
		t.Errorf("expected [[[[0,7],5],6],7], got %s", n)
	}
}

func TestFromTermTooDeepPanics(t *testing.T) {
	var term number.Term = number.Literal(1)
	for range number.MaxDepth + 1 {
		term = &number.Pair{Left: term, Right: number.Literal(2)}
	}
	expectPanic(t, ErrStructure, func() { FromTerm(term) })
}

func TestSplit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := MustParse("[10,11]")
	n.Split(1)
	n.Split(2)
	if n.String() != "[[5,5],[5,6]]" {
		t.Errorf("expected [[5,5],[5,6]], got %s", n)
	}
	expectPanic(t, ErrStructure, func() { n.Split(0) })
}

func TestStep(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		s        string
		action   Action
		index    int
		expected string
	}{
		{"[[[[0,7],4],[15,[0,13]]],[1,1]]", Splitted, 9,
			"[[[[0,7],4],[[7,8],[0,13]]],[1,1]]"},
		{"[[[[0,7],4],[[7,8],[0,13]]],[1,1]]", Splitted, 22,
			"[[[[0,7],4],[[7,8],[0,[6,7]]]],[1,1]]"},
		{"[[[[5,11],[13,0]],[[15,14],[14,0]]],[[2,[0,[11,4]]],[[[6,7],1],[7,[1,6]]]]]", Exploded, 26,
			"[[[[5,11],[13,0]],[[15,14],[14,0]]],[[2,[11,0]],[[[10,7],1],[7,[1,6]]]]]"},
		{"[[1,2],3]", NoOp, 0, "[[1,2],3]"},
	}
	for _, c := range cases {
		n := MustParse(c.s)
		action, index := n.Step()
		if action != c.action || index != c.index {
			t.Errorf("expected step on %s to %s at %d, got %s at %d", c.s, c.action, c.index, action, index)
		}
		if n.String() != c.expected {
			t.Errorf("expected %s, got %s", c.expected, n)
		}
	}
}

func TestReduceToFixpoint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	n := MustParse("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	expected := []struct {
		action Action
		s      string
	}{
		{Exploded, "[[[[0,7],4],[7,[[8,4],9]]],[1,1]]"},
		{Exploded, "[[[[0,7],4],[15,[0,13]]],[1,1]]"},
		{Splitted, "[[[[0,7],4],[[7,8],[0,13]]],[1,1]]"},
		{Splitted, "[[[[0,7],4],[[7,8],[0,[6,7]]]],[1,1]]"},
		{Exploded, "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]"},
	}
	for i, e := range expected {
		action, _ := n.Step()
		if action != e.action || n.String() != e.s {
			t.Fatalf("step %d: expected %s -> %s, got %s -> %s", i+1, e.action, e.s, action, n)
		}
	}
	if action, _ := n.Step(); action.Progressed() {
		t.Errorf("expected fixpoint after 5 steps, got %s", action)
	}
	//
	n = MustParse("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	steps, err := n.ReduceLimit(DefaultMaxSteps)
	if err != nil {
		t.Fatal(err)
	}
	if steps != 5 {
		t.Errorf("expected 5 steps, got %d", steps)
	}
	if !n.IsReduced() {
		t.Errorf("expected number to be reduced")
	}
}

func TestReduceIsIdempotent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := MustParse("[[[[5,11],[13,0]],[[15,14],[14,0]]],[[2,[0,[11,4]]],[[[6,7],1],[7,[1,6]]]]]")
	if err := n.Reduce(); err != nil {
		t.Fatal(err)
	}
	s := n.String()
	if action, _ := n.Step(); action != NoOp {
		t.Errorf("expected no-op after reduction, got %s", action)
	}
	if err := n.Reduce(); err != nil {
		t.Fatal(err)
	}
	if n.String() != s {
		t.Errorf("expected second reduction to leave %s unchanged, got %s", s, n)
	}
}

func TestReduceLimit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := MustParse("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	steps, err := n.ReduceLimit(2)
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("expected ErrNoConvergence, got %v", err)
	}
	if steps != 2 {
		t.Errorf("expected 2 steps, got %d", steps)
	}
	if _, err = n.ReduceLimit(0); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for zero limit, got %v", err)
	}
	// exactly as many steps as needed
	n = MustParse("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	if _, err = n.ReduceLimit(5); err != nil {
		t.Errorf("expected reduction within 5 steps, got %v", err)
	}
}
