package mapper

import "github.com/arqade/rdltpn/petri"

// step1 creates a check transition T{v} for every RDLT vertex (spec §4.4
// step 1). The original edges stay queryable via r.Outgoing/IncomingEdges;
// later steps consult them directly rather than a duplicate scaffold arc,
// since every such arc would be torn down again by steps 2-5 before the
// net is final.
func step1(st *state) StepLog {
	log := newLog(1, "check transitions")
	for _, v := range st.r.Vertices() {
		st.pn.AddTransition(tID(v), petri.RoleCheck)
		log.Details = append(log.Details, tID(v))
	}

	return log
}
