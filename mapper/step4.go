package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/rdlt"
)

// step4 wires every ε-edge into a traverse transition Tε{to}{from} between
// its source and P{to}m (spec §4.4 step 4). A non-abstract edge, or an
// abstract edge whose source has no split place, is gated by a checked
// place Pε{to}{from} inserted after T{from} (or P{from}split, if present).
// An abstract edge whose source does have a split place skips the checked
// place and wires the split place straight into Tε…. Either way, an
// auxiliary place carrying the edge's L as initial tokens feeds Tε… so it
// can only fire L times before a reset.
func step4(st *state) StepLog {
	log := newLog(4, "epsilon transitions")
	runIdx := make(map[string]int) // "from|to" -> next abstract running index

	for _, e := range st.r.Edges() {
		if !e.IsEpsilon() {
			continue
		}
		from, to := e.From, e.To
		abstract := e.Kind == rdlt.EdgeAbstract

		idx := 0
		if abstract {
			key := from + "|" + to
			idx = runIdx[key]
			runIdx[key] = idx + 1
		}
		teID := epsTransitionID(to, from, idx, abstract)
		st.pn.AddTransition(teID, petri.RoleTraverse)
		st.epsByTo[to] = append(st.epsByTo[to], teID)

		pmTo := traversedPlaceID(to)
		if _, ok := st.pn.Places[pmTo]; !ok {
			pm := st.pn.AddPlace(pmTo, 0)
			pm.AddRole(petri.RoleTraversed)
			st.pn.AddArc(pmTo, tID(to), petri.ArcNormal, 1)
		}

		splitFrom, hasSplit := st.splitPlace[from]

		if abstract && hasSplit {
			st.pn.AddArc(splitFrom, teID, petri.ArcNormal, 1)
		} else {
			pEpsID := checkedEpsID(to, from)
			if abstract {
				pEpsID = pEpsID + "_" + itoaMapper(idx)
			}
			p := st.pn.AddPlace(pEpsID, 0)
			p.AddRole(petri.RoleChecked)
			source := tID(from)
			if hasSplit {
				source = splitFrom
			}
			st.pn.AddArc(source, pEpsID, petri.ArcNormal, 1)
			st.pn.AddArc(pEpsID, teID, petri.ArcNormal, 1)
		}
		st.pn.AddArc(teID, pmTo, petri.ArcNormal, 1)

		auxID := auxEpsID(to, from)
		if abstract {
			auxID = auxID + "_" + itoaMapper(idx)
		}
		aux := st.pn.AddPlace(auxID, e.L)
		aux.AddRole(petri.RoleAuxiliary)
		aux.ResetTarget = teID
		aux.RBSGroup = st.r.Vertex(to).RBSGroup
		st.pn.AddArc(auxID, teID, petri.ArcNormal, 1)

		st.auxRecords = append(st.auxRecords, auxRecord{
			placeID:       auxID,
			resetTarget:   teID,
			targetVertex:  to,
			rbsGroup:      aux.RBSGroup,
			initialTokens: e.L,
		})

		log.Details = append(log.Details, from+"->"+to+": "+teID+" (abstract="+boolStr(abstract)+")")
	}

	return log
}

func boolStr(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
