package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/preprocess"
)

// step9 creates the globalSource place Pim with one initial token and a
// normal arc into T{i} (spec §4.4 step 9). If the combined RDLT was never
// extended with a dummy source (spec §8 boundary: extend=false), there is
// nothing to wire.
func step9(st *state) StepLog {
	log := newLog(9, "global source")
	if !st.r.HasVertex(preprocess.DummySource) {
		return log
	}
	pim := st.pn.AddPlace("Pim", 1)
	pim.AddRole(petri.RoleGlobalSource)
	st.pn.AddArc("Pim", tID(preprocess.DummySource), petri.ArcNormal, 1)
	log.Details = append(log.Details, "Pim -> "+tID(preprocess.DummySource))

	return log
}
