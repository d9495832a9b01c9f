package digraph_test

import (
	"sort"
	"testing"

	"github.com/arqade/rdltpn/digraph"
)

func TestSimpleCyclesJohnson_Triangle(t *testing.T) {
	g := digraph.NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	cycles := g.SimpleCyclesJohnson()
	if len(cycles) != 1 {
		t.Fatalf("want 1 cycle, got %d", len(cycles))
	}
	if len(cycles[0]) != 3 {
		t.Fatalf("want cycle length 3, got %d", len(cycles[0]))
	}
}

func TestSimpleCyclesJohnson_SelfLoop(t *testing.T) {
	g := digraph.NewGraph()
	g.AddEdge("a", "a")
	g.AddEdge("a", "b")

	cycles := g.SimpleCyclesJohnson()
	if len(cycles) != 1 || len(cycles[0]) != 1 {
		t.Fatalf("want one self-loop cycle, got %+v", cycles)
	}
}

func TestSimpleCyclesJohnson_ParallelEdgesDistinct(t *testing.T) {
	g := digraph.NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b") // parallel
	g.AddEdge("b", "a")

	cycles := g.SimpleCyclesJohnson()
	if len(cycles) != 2 {
		t.Fatalf("want 2 cycles (one per parallel edge), got %d", len(cycles))
	}
}

func TestSCCTarjan(t *testing.T) {
	g := digraph.NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	g.AddEdge("b", "c")

	sccs := g.SCCTarjan()
	sizes := make([]int, len(sccs))
	for i, c := range sccs {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	if len(sizes) != 2 || sizes[0] != 1 || sizes[1] != 2 {
		t.Fatalf("want sizes [1 2], got %v", sizes)
	}
}

func TestReachableAndSimplePaths(t *testing.T) {
	g := digraph.NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("a", "c")

	ai, _ := g.IndexOf("a")
	ci, _ := g.IndexOf("c")
	if !g.Reachable(ai, ci) {
		t.Fatal("want c reachable from a")
	}
	paths := g.SimplePaths(ai, ci)
	if len(paths) != 2 {
		t.Fatalf("want 2 simple paths a->c, got %d", len(paths))
	}
}
