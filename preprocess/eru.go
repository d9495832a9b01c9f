package preprocess

import "github.com/arqade/rdltpn/rdlt"

// allSimpleCycles enumerates every elementary cycle of r, expressed as
// rdlt.Edge sequences (spec §4.3 eRU step 1).
func allSimpleCycles(r *rdlt.RDLT) [][]*rdlt.Edge {
	raw := r.Graph().SimpleCyclesJohnson()
	edges := r.Edges()
	out := make([][]*rdlt.Edge, len(raw))
	for i, c := range raw {
		seq := make([]*rdlt.Edge, len(c))
		for j, de := range c {
			seq[j] = edges[de.Index]
		}
		out[i] = seq
	}

	return out
}

// minL returns the minimum traversal bound among the edges of cycle.
func minL(cycle []*rdlt.Edge) int {
	m := cycle[0].L
	for _, e := range cycle[1:] {
		if e.L < m {
			m = e.L
		}
	}

	return m
}

// isInternalToSomeRBS reports whether e's endpoints both belong to the same
// RBS (spec §4.3 step 2: "B = RBS-subgraph").
func isInternalToSomeRBS(e *rdlt.Edge, infos map[string]*RBSInfo) bool {
	for _, info := range infos {
		if info.Members[e.From] && info.Members[e.To] {
			return true
		}
	}

	return false
}

// cycleSubsetOfRBS reports whether every edge of cycle belongs to the RBS
// subgraph B for the given center (spec §4.3 step 3: "simple cycles k⊆B").
func cycleSubsetOfRBS(cycle []*rdlt.Edge, info *RBSInfo) bool {
	for _, e := range cycle {
		if !(info.Members[e.From] && info.Members[e.To]) {
			return false
		}
	}

	return true
}

// cycleContainsEdge reports whether e appears (by arena identity) in cycle.
func cycleContainsEdge(cycle []*rdlt.Edge, e *rdlt.Edge) bool {
	for _, c := range cycle {
		if c == e {
			return true
		}
	}

	return false
}

// cycleContainsVertex reports whether id appears among cycle's endpoints.
func cycleContainsVertex(cycle []*rdlt.Edge, id string) bool {
	for _, e := range cycle {
		if e.From == id || e.To == id {
			return true
		}
	}

	return false
}

// rbsLocalReusability computes RU(x,y) for every edge internal to the
// given RBS (spec §4.3 eRU step 3), keyed by rdlt.Edge.Index. The
// loop-safety cap RU'(x,y) = min(RU(x,y), L(x,y)) is applied separately by
// capLoopSafety.
func rbsLocalReusability(cycles [][]*rdlt.Edge, info *RBSInfo) map[int]int {
	ru := make(map[int]int)
	for _, cycle := range cycles {
		if !cycleSubsetOfRBS(cycle, info) {
			continue
		}
		contribution := minL(cycle)
		for _, e := range cycle {
			ru[e.Index] += contribution
		}
	}

	return ru
}

func capLoopSafety(edges []*rdlt.Edge, ru map[int]int) map[int]int {
	capped := make(map[int]int, len(ru))
	for _, e := range edges {
		if val, ok := ru[e.Index]; ok {
			if val < e.L {
				capped[e.Index] = val
			} else {
				capped[e.Index] = e.L
			}
		}
	}

	return capped
}

// pathRU computes pathRU(P): the minimum RU' among P's hops that are
// internal to the RBS (spec §4.3 eRU step 4). Returns 0 if no hop of P
// belongs to the RBS subgraph.
func pathRU(path []*rdlt.Edge, ruPrime map[int]int) int {
	best := -1
	for _, e := range path {
		if v, ok := ruPrime[e.Index]; ok {
			if best == -1 || v < best {
				best = v
			}
		}
	}
	if best == -1 {
		return 0
	}

	return best
}

// pca computes the pseudocritical-arc set of cycle: the non-RBS edges of
// minimum L (spec glossary, PCA). Empty if every edge of cycle is internal
// to some RBS.
func pca(cycle []*rdlt.Edge, infos map[string]*RBSInfo) []*rdlt.Edge {
	var candidates []*rdlt.Edge
	for _, e := range cycle {
		if !isInternalToSomeRBS(e, infos) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	min := candidates[0].L
	for _, e := range candidates[1:] {
		if e.L < min {
			min = e.L
		}
	}
	var out []*rdlt.Edge
	for _, e := range candidates {
		if e.L == min {
			out = append(out, e)
		}
	}

	return out
}

// mergePCA merges several PCA sets, keeping one arc per edge key and, on a
// collision, the smaller L (spec §4.3, Pseudocritical arcs).
func mergePCA(sets ...[]*rdlt.Edge) []*rdlt.Edge {
	best := make(map[string]*rdlt.Edge)
	for _, set := range sets {
		for _, e := range set {
			key := rdlt.EdgeKey(e)
			if cur, ok := best[key]; !ok || e.L < cur.L {
				best[key] = e
			}
		}
	}
	out := make([]*rdlt.Edge, 0, len(best))
	for _, e := range best {
		out = append(out, e)
	}

	return out
}

func minEdgeL(edges []*rdlt.Edge) int {
	m := edges[0].L
	for _, e := range edges[1:] {
		if e.L < m {
			m = e.L
		}
	}

	return m
}

// vertexIncidentMinL returns the minimum L among edges of r incident to id
// (either endpoint). Used as the operational reading of "L(b)" in spec
// §4.3 eRU step 5, where b is a bridge vertex rather than an edge.
func vertexIncidentMinL(r *rdlt.RDLT, id string) int {
	best := -1
	for _, e := range r.OutgoingEdges(id) {
		if best == -1 || e.L < best {
			best = e.L
		}
	}
	for _, e := range r.IncomingEdges(id) {
		if best == -1 || e.L < best {
			best = e.L
		}
	}
	if best == -1 {
		return 1
	}

	return best
}

// computeERU implements spec §4.3's eRU algorithm in full for a single
// abstract path P inside RBS info, given the full RDLT r and every RBS's
// RBSInfo (cycles spanning two RBSs need to see both). Returns the eRU
// value, or (Unbounded, true) with a warning message if no pseudocritical
// arc bounds some in-bridge's qualifying cycle.
func computeERU(r *rdlt.RDLT, info *RBSInfo, path []*rdlt.Edge, cycles [][]*rdlt.Edge, infos map[string]*RBSInfo) (eru int, unbounded bool, warning string) {
	ru := rbsLocalReusability(cycles, info)
	ruPrime := capLoopSafety(r.Edges(), ru)
	pRU := pathRU(path, ruPrime)

	sum := 0
	for _, b := range info.InBridges {
		var qualifying [][]*rdlt.Edge
		for _, cycle := range cycles {
			if !cycleContainsVertex(cycle, b) {
				continue
			}
			hasPathHop := false
			for _, e := range path {
				if cycleContainsEdge(cycle, e) {
					hasPathHop = true

					break
				}
			}
			if hasPathHop {
				qualifying = append(qualifying, cycle)
			}
		}

		if len(qualifying) == 0 {
			sum += 1 * (pRU + 1)

			continue
		}

		var pcaSets [][]*rdlt.Edge
		for _, cycle := range qualifying {
			pcaSets = append(pcaSets, pca(cycle, infos))
		}
		merged := mergePCA(pcaSets...)
		if len(merged) == 0 {
			return Unbounded, true, "unbounded reuse: no pseudocritical arc crosses the RBS boundary for in-bridge " + b
		}

		lb := vertexIncidentMinL(r, b)
		lpca := minEdgeL(merged)
		contribution := lb
		if lpca < contribution {
			contribution = lpca
		}
		sum += contribution * (pRU + 1)
	}

	return sum, false, ""
}
