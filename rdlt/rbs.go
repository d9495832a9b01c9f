package rdlt

import "github.com/arqade/rdltpn/digraph"

// VerticesInRBS returns the reset-bound subsystem rooted at centerID: the
// center plus every vertex reachable from it by following outgoing ε-edges
// whose targets themselves belong to the RBS (spec §3, RBS). Returns nil if
// centerID is absent.
//
// Complexity: O(V + E).
func (r *RDLT) VerticesInRBS(centerID string) []string {
	idx, ok := r.g.IndexOf(centerID)
	if !ok {
		return nil
	}
	order := r.g.BFS(idx, r.epsilonFilter())
	out := make([]string, len(order))
	for i, vi := range order {
		out[i] = r.g.VertexID(vi)
	}

	return out
}

// epsilonFilter returns a digraph.EdgeFilter that follows only ε-edges, by
// looking the traversed edge up in the RDLT's own edge metadata.
func (r *RDLT) epsilonFilter() digraph.EdgeFilter {
	return func(e *digraph.Edge) bool {
		return r.edges[e.Index].IsEpsilon()
	}
}

// HasLoopingArc reports whether id participates in a cycle: either a direct
// self-loop, or an outgoing edge whose target can reach back to id (spec
// §4.2).
//
// Complexity: O(V + E).
func (r *RDLT) HasLoopingArc(id string) bool {
	idx, ok := r.g.IndexOf(id)
	if !ok {
		return false
	}
	for _, e := range r.g.Outgoing(idx) {
		if e.To == idx {
			return true
		}
		if r.g.Reachable(e.To, idx) {
			return true
		}
	}

	return false
}

// IsInBridge reports whether id has at least one incoming edge whose source
// is outside the set members (spec §3, RBS).
func IsInBridge(r *RDLT, id string, members map[string]bool) bool {
	for _, e := range r.IncomingEdges(id) {
		if !members[e.From] {
			return true
		}
	}

	return false
}

// IsOutBridge reports whether id has at least one outgoing edge whose
// target is outside the set members (spec §3, RBS).
func IsOutBridge(r *RDLT, id string, members map[string]bool) bool {
	for _, e := range r.OutgoingEdges(id) {
		if !members[e.To] {
			return true
		}
	}

	return false
}
