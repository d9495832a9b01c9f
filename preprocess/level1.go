package preprocess

import "github.com/arqade/rdltpn/rdlt"

// buildLevel1 implements Pass R1 (spec §4.3): copy every vertex that is
// either not in any RBS or is an in-/out-bridge of its RBS, retyped to
// controller with IsResetCenter cleared; copy every edge both of whose
// endpoints survive, except edges strictly internal to a single RBS.
func buildLevel1(r *rdlt.RDLT, infos map[string]*RBSInfo) *rdlt.RDLT {
	l1 := rdlt.New()
	survives := make(map[string]bool)

	for _, id := range r.Vertices() {
		v := r.Vertex(id)
		info := rbsOf(infos, id)
		if info == nil || info.IsBridge(id) {
			survives[id] = true
			nv := rdlt.Vertex{
				ID:            id,
				Kind:          rdlt.KindController,
				Label:         v.Label,
				IsResetCenter: false,
			}
			if info != nil {
				nv.RBSGroup = info.Center
				for _, b := range info.InBridges {
					if b == id {
						nv.IsInBridge = true
					}
				}
				for _, b := range info.OutBridges {
					if b == id {
						nv.IsOutBridge = true
					}
				}
			}
			_ = l1.AddVertex(nv)
		}
	}

	for _, e := range r.Edges() {
		if !survives[e.From] || !survives[e.To] {
			continue
		}
		if isInternalToSomeRBS(e, infos) {
			continue // strictly internal to a single RBS: moves to Level-2
		}
		_, _ = l1.AddEdge(e.From, e.To, e.C, e.L, e.Kind)
	}

	return l1
}
