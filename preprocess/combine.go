package preprocess

import (
	"sort"

	"github.com/arqade/rdltpn/rdlt"
)

// DummySource and DummySink are the synthetic vertex IDs EVSA's extension
// step adds (spec §4.3, Extension).
const (
	DummySource = "i"
	DummySink   = "o"
)

// applyExtension adds the dummy source/sink vertices to l1 in place: an
// ε-edge of L=1 from the dummy source to every current source, and an
// edge of L=1 from every current sink to the dummy sink whose constraint
// is the per-terminator symbol "{id}_o" (so a Σ-edge, not an ε-edge). Returns ErrInvalidTopology if l1
// has no source or no sink.
func applyExtension(l1 *rdlt.RDLT) error {
	sources := l1.Sources()
	sinks := l1.Sinks()
	if len(sources) == 0 || len(sinks) == 0 {
		return ErrInvalidTopology
	}

	if err := l1.AddVertex(rdlt.Vertex{ID: DummySource, Kind: rdlt.KindController}); err != nil {
		return err
	}
	if err := l1.AddVertex(rdlt.Vertex{ID: DummySink, Kind: rdlt.KindController}); err != nil {
		return err
	}
	for _, s := range sources {
		if s == DummySink {
			continue
		}
		if _, err := l1.AddEdge(DummySource, s, rdlt.Epsilon, 1, rdlt.EdgeNormal); err != nil {
			return err
		}
	}
	for _, s := range sinks {
		if s == DummySource {
			continue
		}
		if _, err := l1.AddEdge(s, DummySink, s+"_o", 1, rdlt.EdgeNormal); err != nil {
			return err
		}
	}

	return nil
}

// buildCombined assembles the mapper's input (spec §4.3, Combined RDLT):
// Level-1 vertices/edges keep their IDs; every Level-2 node/edge is cloned
// with an appended "'" marker, recording its rbsGroup, with the RBS's own
// center clone flagged IsCenter.
func buildCombined(l1 *rdlt.RDLT, level2 map[string]*rdlt.RDLT) *rdlt.RDLT {
	c := rdlt.New()
	for _, id := range l1.Vertices() {
		_ = c.AddVertex(*l1.Vertex(id))
	}
	for _, e := range l1.Edges() {
		_, _ = c.AddEdge(e.From, e.To, e.C, e.L, e.Kind)
	}

	for _, center := range sortedKeys(level2) {
		l2 := level2[center]
		for _, id := range l2.Vertices() {
			v := *l2.Vertex(id)
			v.ID = id + "'"
			_ = c.AddVertex(v)
		}
		for _, e := range l2.Edges() {
			_, _ = c.AddEdge(e.From+"'", e.To+"'", e.C, e.L, e.Kind)
		}
	}

	return c
}

func sortedKeys(m map[string]*rdlt.RDLT) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
