package mapper

import "github.com/arqade/rdltpn/petri"

// step7 links each Level-1 bridge node n to its Level-2 mirror n' (spec
// §4.4 step 7): an in-bridge feeds P{n}m into T'{n}; an out-bridge has
// T'{n} mirror every outgoing arc T{n} has accumulated so far.
func step7(st *state) StepLog {
	log := newLog(7, "level-1/level-2 bridge linkage")
	for _, v := range st.r.Vertices() {
		vv := st.r.Vertex(v)
		if !vv.IsInBridge && !vv.IsOutBridge {
			continue
		}
		prime := v + "'"
		if !st.r.HasVertex(prime) {
			continue
		}
		primeT := tID(prime)

		if vv.IsInBridge {
			pmID := traversedPlaceID(v)
			if _, ok := st.pn.Places[pmID]; ok {
				if !st.pn.HasArc(pmID, primeT, petri.ArcNormal) {
					st.pn.AddArc(pmID, primeT, petri.ArcNormal, 1)
				}
			}
		}
		if vv.IsOutBridge {
			for _, a := range st.pn.OutArcs(tID(v)) {
				if !st.pn.HasArc(primeT, a.To, a.Type) {
					st.pn.AddArc(primeT, a.To, a.Type, a.Weight)
				}
			}
		}

		log.Details = append(log.Details, v+" (in="+boolStr(vv.IsInBridge)+" out="+boolStr(vv.IsOutBridge)+") <-> "+primeT)
	}

	return log
}
