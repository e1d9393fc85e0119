package flat

import "testing"

func TestNearestRightAfterDeepPair(t *testing.T) {
	tree := build(t, "[[[[[9,8],1],2],3],4]")
	if _, ok := tree.NearestLeft(31); ok {
		t.Errorf("expected no literal left of the leftmost literal")
	}
	n, ok := tree.NearestRight(32)
	if !ok {
		t.Fatalf("expected a literal right of 32")
	}
	if n.Index != 16 || n.Value != 1 {
		t.Errorf("expected literal 1 at 16, got %+v", n)
	}
}

func TestNearestLeftAcrossGhostSlots(t *testing.T) {
	tree := build(t, "[7,[6,[5,[4,[3,2]]]]]")
	n, ok := tree.NearestLeft(61)
	if !ok {
		t.Fatalf("expected a literal left of 61")
	}
	if n.Index != 29 || n.Value != 4 {
		t.Errorf("expected literal 4 at 29, got %+v", n)
	}
	if _, ok := tree.NearestRight(62); ok {
		t.Errorf("expected no literal right of the rightmost literal")
	}
}

func TestNearestNeighboursInOrder(t *testing.T) {
	tree := build(t, "[[1,[2,3]],[[4,5],6]]")
	// in-order sequence of literals with their implicit indices
	order := []Node{
		{Index: 3, Value: 1, Literal: true},
		{Index: 9, Value: 2, Literal: true},
		{Index: 10, Value: 3, Literal: true},
		{Index: 11, Value: 4, Literal: true},
		{Index: 12, Value: 5, Literal: true},
		{Index: 6, Value: 6, Literal: true},
	}
	for k, n := range order {
		left, okL := tree.NearestLeft(n.Index)
		right, okR := tree.NearestRight(n.Index)
		if k == 0 {
			if okL {
				t.Errorf("expected nothing left of %d, got %+v", n.Index, left)
			}
		} else if !okL || left != order[k-1] {
			t.Errorf("expected %+v left of %d, got %+v", order[k-1], n.Index, left)
		}
		if k == len(order)-1 {
			if okR {
				t.Errorf("expected nothing right of %d, got %+v", n.Index, right)
			}
		} else if !okR || right != order[k+1] {
			t.Errorf("expected %+v right of %d, got %+v", order[k+1], n.Index, right)
		}
	}
}

func TestLeftmostAndRightmostAtLeast(t *testing.T) {
	tree := build(t, "[[[[0,7],4],[15,[0,13]]],[1,1]]")
	n, ok := tree.LeftmostAtLeast(0, 10)
	if !ok || n.Index != 9 || n.Value != 15 {
		t.Errorf("expected leftmost literal >= 10 to be 15 at 9, got %+v", n)
	}
	n, ok = tree.RightmostAtLeast(0, 10)
	if !ok || n.Index != 22 || n.Value != 13 {
		t.Errorf("expected rightmost literal >= 10 to be 13 at 22, got %+v", n)
	}
	if n, ok = tree.LeftmostAtLeast(2, 10); ok {
		t.Errorf("expected no literal >= 10 below 2, got %+v", n)
	}
	n, ok = tree.LeftmostAtLeast(0, 0)
	if !ok || n.Index != 15 || n.Value != 0 {
		t.Errorf("expected leftmost literal to be 0 at 15, got %+v", n)
	}
}

func TestSearchOnLiteralRoot(t *testing.T) {
	tree := New()
	tree.SetData(0, 12)
	n, ok := tree.LeftmostAtLeast(0, 10)
	if !ok || n.Index != 0 {
		t.Errorf("expected literal root to match, got %+v", n)
	}
	if _, ok := tree.NearestLeft(0); ok {
		t.Errorf("expected no neighbour for the root")
	}
}
