package preprocess

import (
	"github.com/arqade/rdltpn/digraph"
	"github.com/arqade/rdltpn/rdlt"
)

// buildLevel2 implements Pass R2 step (i) (spec §4.3): the Level-2 RDLT for
// one RBS, containing every member vertex (with original kind/flags,
// RBSGroup set, and the center flagged IsCenter) and every original edge
// internal to the RBS.
func buildLevel2(r *rdlt.RDLT, info *RBSInfo) *rdlt.RDLT {
	l2 := rdlt.New()
	for _, id := range r.Vertices() {
		if !info.Members[id] {
			continue
		}
		v := r.Vertex(id)
		nv := rdlt.Vertex{
			ID:            id,
			Kind:          v.Kind,
			Label:         v.Label,
			IsResetCenter: v.IsResetCenter,
			RBSGroup:      info.Center,
			IsCenter:      id == info.Center,
		}
		_ = l2.AddVertex(nv)
	}
	for _, e := range r.Edges() {
		if info.Members[e.From] && info.Members[e.To] {
			_, _ = l2.AddEdge(e.From, e.To, e.C, e.L, e.Kind)
		}
	}

	return l2
}

// enumerateConcretePaths implements Pass R2 step (ii) (spec §4.3): the four
// buckets of concrete path, each restricted to paths whose interior visits
// no other bridge node.
func enumerateConcretePaths(r *rdlt.RDLT, info *RBSInfo) map[Bucket][][]*rdlt.Edge {
	edges := r.Edges()
	filter := digraph.EdgeFilter(func(de *digraph.Edge) bool {
		e := edges[de.Index]

		return info.Members[e.From] && info.Members[e.To]
	})
	g := r.Graph()

	collect := func(from, to string, forbidOther bool) [][]*rdlt.Edge {
		fi, ok1 := g.IndexOf(from)
		ti, ok2 := g.IndexOf(to)
		if !ok1 || !ok2 {
			return nil
		}
		raw := g.SimplePathsFiltered(fi, ti, filter)
		var out [][]*rdlt.Edge
		for _, p := range raw {
			seq := make([]*rdlt.Edge, len(p))
			for i, de := range p {
				seq[i] = edges[de.Index]
			}
			if forbidOther && pathHasOtherBridge(seq, info, from, to) {
				continue
			}
			out = append(out, seq)
		}

		return out
	}

	result := make(map[Bucket][][]*rdlt.Edge)
	for _, bIn := range info.InBridges {
		for _, bOut := range info.OutBridges {
			if bIn == bOut {
				continue
			}
			result[BucketInToOut] = append(result[BucketInToOut], collect(bIn, bOut, true)...)
			result[BucketOutToIn] = append(result[BucketOutToIn], collect(bOut, bIn, true)...)
		}
	}
	for _, b := range info.InBridges {
		result[BucketInSelfLoop] = append(result[BucketInSelfLoop], collect(b, b, true)...)
	}
	for _, b := range info.OutBridges {
		result[BucketOutSelfLoop] = append(result[BucketOutSelfLoop], collect(b, b, true)...)
	}

	return result
}

// pathHasOtherBridge reports whether path's interior (excluding the named
// endpoints) visits any bridge node of info other than from/to themselves.
func pathHasOtherBridge(path []*rdlt.Edge, info *RBSInfo, from, to string) bool {
	for i, e := range path {
		// interior vertex reached by this hop, excluding the path's final
		// arrival (which is always `to`).
		if i == len(path)-1 {
			continue
		}
		v := e.To
		if v == from || v == to {
			continue
		}
		if info.IsBridge(v) {
			return true
		}
	}

	return false
}
