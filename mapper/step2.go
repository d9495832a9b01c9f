package mapper

import (
	"github.com/arqade/rdltpn/petri"
)

// step2 inserts a split place P{v}split between T{v} and all of v's
// outgoing wiring for every split-case-1 vertex (spec §4.4 step 2). Step 4
// sources ε routing from the split place instead of T{v} directly
// whenever one exists; step 5 always routes Σ-edges from T{v}.
func step2(st *state) StepLog {
	log := newLog(2, "split places")
	for _, v := range st.r.Vertices() {
		sc := st.r.ClassifySplitCase1(v)
		if !sc.Any() {
			continue
		}
		pid := splitPlaceID(v)
		p := st.pn.AddPlace(pid, 0)
		p.AddRole(petri.RoleSplit)
		st.splitPlace[v] = pid
		st.pn.AddArc(tID(v), pid, petri.ArcNormal, 1)
		log.Details = append(log.Details, v+" -> "+pid)
	}

	return log
}
