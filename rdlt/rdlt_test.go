package rdlt_test

import (
	"errors"
	"testing"

	"github.com/arqade/rdltpn/rdlt"
)

func mustAddController(t *testing.T, r *rdlt.RDLT, id string) {
	t.Helper()
	if err := r.AddVertex(rdlt.Vertex{ID: id, Kind: rdlt.KindController}); err != nil {
		t.Fatalf("AddVertex(%s): %v", id, err)
	}
}

func TestAddVertex_DuplicateRejected(t *testing.T) {
	r := rdlt.New()
	mustAddController(t, r, "x")
	if err := r.AddVertex(rdlt.Vertex{ID: "x", Kind: rdlt.KindController}); !errors.Is(err, rdlt.ErrDuplicateVertex) {
		t.Fatalf("want ErrDuplicateVertex, got %v", err)
	}
}

func TestAddVertex_ResetCenterOnControllerRejected(t *testing.T) {
	r := rdlt.New()
	err := r.AddVertex(rdlt.Vertex{ID: "x", Kind: rdlt.KindController, IsResetCenter: true})
	if !errors.Is(err, rdlt.ErrInvalidTopology) {
		t.Fatalf("want ErrInvalidTopology, got %v", err)
	}
}

func TestAddEdge_InvalidConstraint(t *testing.T) {
	r := rdlt.New()
	mustAddController(t, r, "x")
	mustAddController(t, r, "y")
	if _, err := r.AddEdge("x", "y", rdlt.Epsilon, 0, rdlt.EdgeNormal); !errors.Is(err, rdlt.ErrInvalidConstraint) {
		t.Fatalf("want ErrInvalidConstraint, got %v", err)
	}
}

func TestVerticesInRBS(t *testing.T) {
	r := rdlt.New()
	_ = r.AddVertex(rdlt.Vertex{ID: "c", Kind: rdlt.KindEntity, IsResetCenter: true})
	mustAddController(t, r, "i")
	mustAddController(t, r, "a")
	mustAddController(t, r, "o2")
	_, _ = r.AddEdge("i", "c", rdlt.Epsilon, 1, rdlt.EdgeNormal)
	_, _ = r.AddEdge("c", "a", rdlt.Epsilon, 1, rdlt.EdgeNormal)
	_, _ = r.AddEdge("a", "o2", "x", 1, rdlt.EdgeNormal) // non-ε: leaves the RBS

	members := r.VerticesInRBS("c")
	want := map[string]bool{"c": true, "a": true}
	if len(members) != len(want) {
		t.Fatalf("RBS members = %v, want keys of %v", members, want)
	}
	for _, m := range members {
		if !want[m] {
			t.Fatalf("unexpected RBS member %q", m)
		}
	}
}

func TestHasLoopingArc(t *testing.T) {
	r := rdlt.New()
	mustAddController(t, r, "x")
	mustAddController(t, r, "y")
	_, _ = r.AddEdge("x", "y", rdlt.Epsilon, 1, rdlt.EdgeNormal)
	_, _ = r.AddEdge("y", "x", rdlt.Epsilon, 1, rdlt.EdgeNormal)

	if !r.HasLoopingArc("x") {
		t.Fatal("want x to be part of a cycle")
	}
}

func TestClassifySplitCase1_SelfLoop(t *testing.T) {
	r := rdlt.New()
	mustAddController(t, r, "x")
	mustAddController(t, r, "y")
	_, _ = r.AddEdge("x", "x", rdlt.Epsilon, 1, rdlt.EdgeNormal)
	_, _ = r.AddEdge("x", "y", rdlt.Epsilon, 1, rdlt.EdgeNormal)

	sc := r.ClassifySplitCase1("x")
	if !sc.PartOfCycle || !sc.Any() {
		t.Fatalf("want self-loop vertex to classify via PartOfCycle, got %+v", sc)
	}
}

func TestClassifySplitCase1_SiblingORJoin(t *testing.T) {
	r := rdlt.New()
	for _, id := range []string{"w", "x", "y", "z"} {
		mustAddController(t, r, id)
	}
	_, _ = r.AddEdge("w", "x", rdlt.Epsilon, 1, rdlt.EdgeNormal)
	_, _ = r.AddEdge("w", "y", rdlt.Epsilon, 1, rdlt.EdgeNormal)
	_, _ = r.AddEdge("x", "z", rdlt.Epsilon, 1, rdlt.EdgeNormal)
	_, _ = r.AddEdge("y", "z", rdlt.Epsilon, 1, rdlt.EdgeNormal)

	sc := r.ClassifySplitCase1("w")
	if !sc.SiblingORJoin {
		t.Fatalf("want sibling OR-join detection at w, got %+v", sc)
	}
}
