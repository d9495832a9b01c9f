package mapper

import (
	"sort"

	"github.com/arqade/rdltpn/petri"
)

// step6 gives every RBS that has at least one out-bridge a consensus place
// Pcons{c} and a reset transition Trr{c}, linked by both a normal and a
// reset arc, fed by a normal arc from every out-bridge's Level-2 mirror
// transition (spec §4.4 step 6).
func step6(st *state) StepLog {
	log := newLog(6, "consensus and reset")

	outBridges := make(map[string][]string)
	for _, v := range st.r.Vertices() {
		vv := st.r.Vertex(v)
		if vv.IsOutBridge && vv.RBSGroup != "" {
			outBridges[vv.RBSGroup] = append(outBridges[vv.RBSGroup], v)
		}
	}

	centers := make([]string, 0, len(outBridges))
	for c := range outBridges {
		centers = append(centers, c)
	}
	sort.Strings(centers)

	for _, c := range centers {
		consID := consensusID(c)
		cp := st.pn.AddPlace(consID, 0)
		cp.AddRole(petri.RoleConsensus)
		cp.RBSGroup = c

		rrID := resetTransitionID(c)
		st.pn.AddTransition(rrID, petri.RoleReset)
		st.pn.AddArc(consID, rrID, petri.ArcNormal, 1)
		st.pn.AddArc(consID, rrID, petri.ArcReset, 0)

		for _, n := range outBridges[c] {
			prime := n + "'"
			if !st.r.HasVertex(prime) {
				continue
			}
			if !st.pn.HasArc(tID(prime), consID, petri.ArcNormal) {
				st.pn.AddArc(tID(prime), consID, petri.ArcNormal, 1)
			}
		}

		log.Details = append(log.Details, "RBS "+c+": "+consID+", "+rrID)
	}

	return log
}
