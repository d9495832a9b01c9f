package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/preprocess"
)

// step3 inserts a traversed place P{v}m between every incoming arc of v and
// T{v}, for every vertex with at least one incoming edge (spec §4.4 step
// 3). The dummy sink additionally gets a globalSink place Po. A vertex fed
// by any Σ-constrained edge gets a TJ{v} traverse transition and a PJ{v}
// auxiliary budget place gating it; TJ{v} is wired into P{v}m here, and
// step 5 routes the Σ-edges themselves into TJ{v} once their checked
// places exist.
func step3(st *state) StepLog {
	log := newLog(3, "traversed places")
	for _, v := range st.r.Vertices() {
		in := st.r.IncomingEdges(v)
		if len(in) == 0 {
			continue
		}

		pmID := traversedPlaceID(v)
		pm := st.pn.AddPlace(pmID, 0)
		pm.AddRole(petri.RoleTraversed)
		st.pn.AddArc(pmID, tID(v), petri.ArcNormal, 1)

		if v == preprocess.DummySink {
			po := st.pn.AddPlace("Po", 0)
			po.AddRole(petri.RoleGlobalSink)
			st.pn.AddArc(tID(v), "Po", petri.ArcNormal, 1)
		}

		hasSigma, allSameC, sum, min, first := false, true, 0, 1<<30, true
		var sigmaC string
		for _, e := range in {
			if e.IsEpsilon() {
				continue
			}
			hasSigma = true
			if first {
				sigmaC = e.C
				first = false
			} else if e.C != sigmaC {
				allSameC = false
			}
			sum += e.L
			if e.L < min {
				min = e.L
			}
		}
		if !hasSigma {
			continue
		}

		tjid := tjID(v)
		st.pn.AddTransition(tjid, petri.RoleTraverse)
		st.tj[v] = tjid

		tokens := min
		if allSameC {
			tokens = sum
		}
		pjid := pjID(v)
		pj := st.pn.AddPlace(pjid, tokens)
		pj.AddRole(petri.RoleAuxiliary)
		pj.ResetTarget = tjid
		pj.RBSGroup = st.r.Vertex(v).RBSGroup
		st.pn.AddArc(pjid, tjid, petri.ArcNormal, 1)
		st.pn.AddArc(tjid, pmID, petri.ArcNormal, 1)

		st.auxRecords = append(st.auxRecords, auxRecord{
			placeID:       pjid,
			resetTarget:   tjid,
			targetVertex:  v,
			rbsGroup:      pj.RBSGroup,
			initialTokens: tokens,
		})

		log.Details = append(log.Details, v+": "+pmID+", sigma-gated via "+tjid+" ("+pjid+"="+itoaMapper(tokens)+")")
	}

	return log
}
