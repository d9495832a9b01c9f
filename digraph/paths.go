package digraph

// Path is a simple path expressed as the ordered sequence of edges traversed;
// parallel edges are kept distinct because the sequence holds edge pointers,
// not (from,to) vertex pairs.
type Path []*Edge

// SimplePaths enumerates every simple (vertex-non-repeating) path from from
// to to via depth-first search. The empty path (from == to) is not
// returned; callers that need to special-case a trivial path do so
// themselves. The traversal never revisits a vertex already on the current
// path, so it always terminates even in the presence of cycles.
//
// Complexity: exponential in the worst case, as with any finite enumeration
// of simple paths in a general digraph; acceptable here because RDLT
// fragments (RBS subgraphs, split-case branches) are small.
func (g *Graph) SimplePaths(from, to int) []Path {
	return g.SimplePathsFiltered(from, to, nil)
}

// SimplePathsFiltered is SimplePaths restricted to edges accepted by
// filter (nil means "follow everything"), letting callers enumerate paths
// confined to a subgraph (e.g. a single reset-bound subsystem) without
// cloning the graph, so edge identity is preserved across calls.
func (g *Graph) SimplePathsFiltered(from, to int, filter EdgeFilter) []Path {
	var out []Path
	visiting := make([]bool, len(g.vertices))
	var cur Path

	visiting[from] = true
	var walk func(v int)
	walk = func(v int) {
		for _, e := range g.Outgoing(v) {
			if filter != nil && !filter(e) {
				continue
			}
			if e.To == to {
				cur = append(cur, e)
				out = append(out, append(Path(nil), cur...))
				cur = cur[:len(cur)-1]
				continue
			}
			if visiting[e.To] {
				continue
			}
			visiting[e.To] = true
			cur = append(cur, e)
			walk(e.To)
			cur = cur[:len(cur)-1]
			visiting[e.To] = false
		}
	}
	walk(from)

	return out
}
