package rdlt

// SplitCase1 reports, for a vertex v with ≥2 outgoing edges, the four
// independent limbs spec §4.2 defines; only their disjunction drives mapper
// behaviour, but all four are returned so callers can log which limb fired
// (spec §4.2: "the classifier returns all four booleans so the mapper can
// emit a per-vertex log").
type SplitCase1 struct {
	SiblingORJoin    bool // (a) a descendant OR-join reachable by ≥2 sibling paths
	NonSiblingPaths  bool // (b) ≥2 non-sibling elementary paths to some candidate join, or no candidate join exists
	HasAbstractEdge  bool // (c) an outgoing edge of v is abstract
	PartOfCycle      bool // (d) v participates in a cycle
}

// Any reports whether any of the four limbs fired.
func (s SplitCase1) Any() bool {
	return s.SiblingORJoin || s.NonSiblingPaths || s.HasAbstractEdge || s.PartOfCycle
}

// ClassifySplitCase1 evaluates the split-case-1 classifier for vertex id.
// Returns the zero SplitCase1 if id has fewer than 2 outgoing edges.
func (r *RDLT) ClassifySplitCase1(id string) SplitCase1 {
	out := r.OutgoingEdges(id)
	if len(out) < 2 {
		return SplitCase1{}
	}

	var result SplitCase1
	for _, e := range out {
		if e.Kind == EdgeAbstract {
			result.HasAbstractEdge = true

			break
		}
	}
	result.PartOfCycle = r.HasLoopingArc(id)

	joins := r.candidateORJoins(id)
	siblingFound := false
	nonSiblingFound := false
	for _, j := range joins {
		paths := r.elementaryPaths(id, j)
		if len(paths) < 2 {
			continue
		}
		hasSibling, hasNonSibling := pairwiseSiblingAnalysis(paths)
		if hasSibling {
			siblingFound = true
		}
		if hasNonSibling {
			nonSiblingFound = true
		}
	}
	result.SiblingORJoin = siblingFound
	result.NonSiblingPaths = !siblingFound && (len(joins) == 0 || nonSiblingFound)

	return result
}

// candidateORJoins returns every descendant of id that qualifies as an
// OR-join: ≥2 incoming edges all sharing one constraint symbol C.
func (r *RDLT) candidateORJoins(id string) []string {
	idx, ok := r.g.IndexOf(id)
	if !ok {
		return nil
	}
	var joins []string
	for _, v := range r.g.BFS(idx, nil) {
		if v == idx {
			continue
		}
		vid := r.g.VertexID(v)
		if r.isORJoin(vid) {
			joins = append(joins, vid)
		}
	}

	return joins
}

func (r *RDLT) isORJoin(id string) bool {
	in := r.IncomingEdges(id)
	if len(in) < 2 {
		return false
	}
	c := in[0].C
	for _, e := range in[1:] {
		if e.C != c {
			return false
		}
	}

	return true
}

// elementaryPaths returns the edge-index sets of every simple path from
// from to to (as []int of digraph edge indices, for edge-disjointness
// comparison).
func (r *RDLT) elementaryPaths(from, to string) [][]int {
	fi, ok1 := r.g.IndexOf(from)
	ti, ok2 := r.g.IndexOf(to)
	if !ok1 || !ok2 {
		return nil
	}
	paths := r.g.SimplePaths(fi, ti)
	out := make([][]int, len(paths))
	for i, p := range paths {
		ids := make([]int, len(p))
		for j, e := range p {
			ids[j] = e.Index
		}
		out[i] = ids
	}

	return out
}

// pairwiseSiblingAnalysis reports whether any pair of paths is a sibling
// pair (edge-disjoint) and whether any pair is a non-sibling pair (shares
// at least one edge).
func pairwiseSiblingAnalysis(paths [][]int) (hasSibling, hasNonSibling bool) {
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			if edgeSetsDisjoint(paths[i], paths[j]) {
				hasSibling = true
			} else {
				hasNonSibling = true
			}
		}
	}

	return hasSibling, hasNonSibling
}

func edgeSetsDisjoint(a, b []int) bool {
	set := make(map[int]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	for _, y := range b {
		if set[y] {
			return false
		}
	}

	return true
}
