package digraph

import "sort"

// Cycle is an elementary (simple) cycle expressed as its edge sequence,
// closing back on its own start vertex. Parallel edges make distinct
// cycles: two self-loops on the same vertex, or two parallel hops between
// the same pair of vertices, are reported as separate cycles.
type Cycle []*Edge

// SimpleCyclesJohnson enumerates every elementary cycle of the graph using
// Johnson's algorithm: vertices are considered as cycle-start candidates in
// index order and blocked/unblocked as the search backtracks, so each cycle
// is produced exactly once regardless of where in it the search happened to
// begin.
//
// Complexity: O((V + E) * (C + 1)) where C is the number of elementary
// cycles, matching Johnson's original bound.
func (g *Graph) SimpleCyclesJohnson() []Cycle {
	n := len(g.vertices)
	var cycles []Cycle

	blocked := make([]bool, n)
	blockMap := make([][]int, n)
	stack := make([]*Edge, 0, n)

	var unblock func(u int)
	unblock = func(u int) {
		blocked[u] = false
		for _, w := range blockMap[u] {
			if blocked[w] {
				unblock(w)
			}
		}
		blockMap[u] = nil
	}

	var circuit func(v, s int) bool
	circuit = func(v, s int) bool {
		found := false
		blocked[v] = true
		stack = append(stack, nil) // placeholder slot, filled per outgoing edge below

		for _, e := range g.Outgoing(v) {
			w := e.To
			if w < s {
				continue // vertices below s were already fully explored as starts
			}
			stack[len(stack)-1] = e
			if w == s {
				cycles = append(cycles, append(Cycle(nil), stack...))
				found = true
			} else if !blocked[w] {
				if circuit(w, s) {
					found = true
				}
			}
		}

		if found {
			unblock(v)
		} else {
			for _, e := range g.Outgoing(v) {
				w := e.To
				if w < s {
					continue
				}
				blockMap[w] = appendUnique(blockMap[w], v)
			}
		}
		stack = stack[:len(stack)-1]

		return found
	}

	starts := make([]int, n)
	for i := range starts {
		starts[i] = i
	}
	sort.Ints(starts)

	for _, s := range starts {
		for i := range blocked {
			blocked[i] = false
			blockMap[i] = nil
		}
		circuit(s, s)
	}

	return cycles
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}

	return append(s, v)
}
