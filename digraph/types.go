package digraph

// Edge is an arena entry: a directed connection from one vertex index to
// another. The *Edge values handed out to callers (cycles, paths) are
// pointers into this arena, so two parallel edges between the same pair of vertices
// remain distinguishable by identity even though From/To compare equal.
type Edge struct {
	Index int // position of this edge in the owning Graph's edge arena
	From  int // source vertex index
	To    int // destination vertex index
}

// Vertex is an arena entry addressed by index.
type Vertex struct {
	Index int    // position of this vertex in the owning Graph's vertex arena
	ID    string // caller-assigned identifier, unique within the Graph
}

// Graph is a directed multigraph backed by two arenas. Vertex and edge
// identity is their arena index; adjacency lists store those indices, never
// copies of the Vertex/Edge values, so renaming or mutating arena entries in
// place (which this package never does post-construction) would be visible
// everywhere at once.
type Graph struct {
	vertices []Vertex
	edges    []*Edge

	idIndex  map[string]int // vertex ID -> index
	outgoing [][]int        // vertex index -> outgoing edge indices
	incoming [][]int        // vertex index -> incoming edge indices
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		idIndex: make(map[string]int),
	}
}

// AddVertex inserts a vertex with the given ID, returning its index.
// Returns ErrEmptyVertexID for an empty id, ErrDuplicateVertex if id already
// exists. Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	if _, exists := g.idIndex[id]; exists {
		return -1, ErrDuplicateVertex
	}
	idx := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{Index: idx, ID: id})
	g.idIndex[id] = idx
	g.outgoing = append(g.outgoing, nil)
	g.incoming = append(g.incoming, nil)

	return idx, nil
}

// EnsureVertex returns the index of id, inserting it first if absent.
func (g *Graph) EnsureVertex(id string) int {
	if idx, ok := g.idIndex[id]; ok {
		return idx
	}
	idx, _ := g.AddVertex(id)

	return idx
}

// AddEdge appends a new edge from -> to, both resolved by ID (inserted if
// absent), and returns the created Edge. Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) *Edge {
	fi := g.EnsureVertex(from)
	ti := g.EnsureVertex(to)
	e := &Edge{Index: len(g.edges), From: fi, To: ti}
	g.edges = append(g.edges, e)
	g.outgoing[fi] = append(g.outgoing[fi], e.Index)
	g.incoming[ti] = append(g.incoming[ti], e.Index)

	return e
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// VertexID returns the ID of the vertex at index idx.
func (g *Graph) VertexID(idx int) string { return g.vertices[idx].ID }

// IndexOf returns the index of id and whether it exists.
func (g *Graph) IndexOf(id string) (int, bool) {
	idx, ok := g.idIndex[id]

	return idx, ok
}

// Edges returns every edge in the graph, in insertion order. The returned
// slice shares the underlying arena and must not be mutated by callers.
func (g *Graph) Edges() []*Edge { return g.edges }

// Outgoing returns the edges leaving vertex index idx, in insertion order.
func (g *Graph) Outgoing(idx int) []*Edge {
	ids := g.outgoing[idx]
	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out
}

// Incoming returns the edges entering vertex index idx, in insertion order.
func (g *Graph) Incoming(idx int) []*Edge {
	ids := g.incoming[idx]
	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out
}
