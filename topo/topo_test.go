package topo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/planarfem/mech"
)

func mustRot(t *testing.T, id string, children []mech.Frame) mech.Frame {
	f, err := mech.NewRotationalFrame(id, 0, [2]float64{0, 0}, nil, children)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustTrack(t *testing.T, id string, children []mech.Frame) mech.Frame {
	f, err := mech.NewTrackFrame(id, 0, 0, [2]float64{0, 0}, nil, children)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// TestSortWorkedExample checks a worked example: roots
// [track "cart" -> rot "p1" -> rot "p2"] and [track "ball"], declared
// cart-before-ball, sort to ["ball", "cart", "p1", "p2"].
func TestSortWorkedExample(t *testing.T) {
	chk.PrintTitle("sort worked example")
	p2 := mustRot(t, "p2", nil)
	p1 := mustRot(t, "p1", []mech.Frame{p2})
	cart := mustTrack(t, "cart", []mech.Frame{p1})
	ball := mustTrack(t, "ball", nil)

	idx := Build([]mech.Frame{cart, ball})
	got := make([]string, idx.N())
	for i, f := range idx.Sorted {
		got[i] = f.ID()
	}
	want := []string{"ball", "cart", "p1", "p2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

// TestSortInvariant checks the general sort invariant: for every index,
// every ancestor in its path has a strictly smaller index.
func TestSortInvariant(t *testing.T) {
	chk.PrintTitle("sort invariant (random forests)")
	rnd.Init(4321)
	for trial := 0; trial < 200; trial++ {
		roots := randomForest(t, rnd.Int(1, 4), 3)
		idx := Build(roots)
		checkSortInvariant(t, idx)
	}
}

func checkSortInvariant(t *testing.T, idx *Index) {
	for i, path := range idx.Paths {
		if path[len(path)-1] != i {
			t.Fatalf("path for %d does not end in %d: %v", i, i, path)
		}
		for k := 1; k < len(path); k++ {
			if path[k-1] >= path[k] {
				t.Fatalf("path %v not strictly increasing at %d", path, k)
			}
		}
	}
}

// randomForest builds a random forest of nroots trees, each at most
// maxdepth levels deep, using gosl/rnd to pick branching/shape.
func randomForest(t *testing.T, nroots, maxdepth int) []mech.Frame {
	counter := 0
	var build func(depth int) mech.Frame
	build = func(depth int) mech.Frame {
		counter++
		id := io.Sf("f%d", counter)
		var children []mech.Frame
		if depth < maxdepth {
			n := rnd.Int(0, 3)
			for k := 0; k < n; k++ {
				children = append(children, build(depth+1))
			}
		}
		if rnd.Int(0, 1) == 0 {
			return mustRot(t, id, children)
		}
		return mustTrack(t, id, children)
	}
	roots := make([]mech.Frame, nroots)
	for i := range roots {
		roots[i] = build(0)
	}
	return roots
}

// TestPathInvariant checks that root-to-self paths and parent lookups agree.
func TestPathInvariant(t *testing.T) {
	chk.PrintTitle("path invariant")
	p2 := mustRot(t, "p2", nil)
	p1 := mustRot(t, "p1", []mech.Frame{p2})
	cart := mustTrack(t, "cart", []mech.Frame{p1})
	idx := Build([]mech.Frame{cart})

	rootIdx := idx.ByID["cart"]
	if len(idx.Paths[rootIdx]) != 1 || idx.Paths[rootIdx][0] != rootIdx {
		t.Fatalf("root path should be [root], got %v", idx.Paths[rootIdx])
	}
	if _, ok := idx.ParentIndex(rootIdx); ok {
		t.Fatal("root must have no parent")
	}

	p1Idx := idx.ByID["p1"]
	parent, ok := idx.ParentIndex(p1Idx)
	if !ok || parent != rootIdx {
		t.Fatalf("parent of p1 should be cart (%d), got %d ok=%v", rootIdx, parent, ok)
	}
}

func TestEmptySceneTopology(t *testing.T) {
	idx := Build(nil)
	if idx.N() != 0 {
		t.Fatalf("expected empty topology, got n=%d", idx.N())
	}
}

func TestSingleFrameTopology(t *testing.T) {
	f := mustRot(t, "only", nil)
	idx := Build([]mech.Frame{f})
	if idx.N() != 1 {
		t.Fatalf("expected n=1, got %d", idx.N())
	}
	if _, ok := idx.ParentIndex(0); ok {
		t.Fatal("single frame must have no parent")
	}
	if len(idx.Paths[0]) != 1 || idx.Paths[0][0] != 0 {
		t.Fatalf("expected path [0], got %v", idx.Paths[0])
	}
}

func TestDescendantsAndSparsity(t *testing.T) {
	p2 := mustRot(t, "p2", nil)
	p1 := mustRot(t, "p1", []mech.Frame{p2})
	cart := mustTrack(t, "cart", []mech.Frame{p1})
	ball := mustTrack(t, "ball", nil)
	idx := Build([]mech.Frame{cart, ball})

	cartIdx := idx.ByID["cart"]
	ballIdx := idx.ByID["ball"]
	desc := idx.Descendants(cartIdx)
	if len(desc) != 3 {
		t.Fatalf("expected cart to have 3 descendants-or-self, got %v", desc)
	}
	for _, d := range desc {
		if d == ballIdx {
			t.Fatal("ball must not be a descendant of cart")
		}
	}
	if idx.IsDescendant(cartIdx, ballIdx) {
		t.Fatal("ball must not be a descendant of cart")
	}
}
