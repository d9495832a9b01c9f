package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/preprocess"
)

// step5 wires every Σ-edge through a checked place P{alias}{v} between
// T{u} and TJ{v} (spec §4.4 step 5), where alias is this edge's
// constraint-alias. A vertex fed by both ε-edges and Σ-edges is a
// mix-join: an unconstrained place P{alias}ε is created, wired
// bidirectionally to every ε-transition targeting v, fed by every sibling
// Σ-source, and reset-linked to the sink transition To; P{v}m is tagged mixJoin
// and reset-linked to T{v} and, if v has a Level-2 mirror, to T'{v}.
func step5(st *state) StepLog {
	log := newLog(5, "sigma checked places and mix-joins")

	mixJoins := make(map[string]bool)
	for _, v := range st.r.Vertices() {
		hasEps, hasSigma := false, false
		for _, e := range st.r.IncomingEdges(v) {
			if e.IsEpsilon() {
				hasEps = true
			} else {
				hasSigma = true
			}
		}
		if hasEps && hasSigma {
			mixJoins[v] = true
		}
	}

	for _, e := range st.r.Edges() {
		if e.IsEpsilon() {
			continue
		}
		u, v := e.From, e.To
		alias := st.alias.Alias(e.C)

		pid := sigmaCheckedID(alias, v)
		if _, ok := st.pn.Places[pid]; !ok {
			p := st.pn.AddPlace(pid, 0)
			p.AddRole(petri.RoleChecked)
		}
		st.pn.AddArc(tID(u), pid, petri.ArcNormal, 1)

		tj, ok := st.tj[v]
		if !ok {
			tj = tjID(v)
			st.pn.AddTransition(tj, petri.RoleTraverse)
			st.tj[v] = tj
		}
		st.pn.AddArc(pid, tj, petri.ArcNormal, 1)

		if mixJoins[v] {
			wireMixJoin(st, alias, u, v)
		}

		log.Details = append(log.Details, u+"->"+v+": alias="+alias+" place="+pid)
	}

	return log
}

func wireMixJoin(st *state, alias, u, v string) {
	mid := mixUnconstrainedID(alias)
	if _, ok := st.pn.Places[mid]; !ok {
		mp := st.pn.AddPlace(mid, 0)
		mp.AddRole(petri.RoleUnconstrained)
		for _, te := range st.epsByTo[v] {
			st.pn.AddArc(mid, te, petri.ArcNormal, 1)
			st.pn.AddArc(te, mid, petri.ArcNormal, 1)
		}
		if _, ok := st.pn.Places["Po"]; ok {
			st.pn.AddArc(mid, tID(preprocess.DummySink), petri.ArcReset, 0)
		}
	}
	if !st.pn.HasArc(tID(u), mid, petri.ArcNormal) {
		st.pn.AddArc(tID(u), mid, petri.ArcNormal, 1)
	}

	pmID := traversedPlaceID(v)
	if pm, ok := st.pn.Places[pmID]; ok {
		pm.AddRole(petri.RoleMixJoin)
		if !st.pn.HasArc(pmID, tID(v), petri.ArcReset) {
			st.pn.AddArc(pmID, tID(v), petri.ArcReset, 0)
		}
		prime := v + "'"
		if st.r.HasVertex(prime) && !st.pn.HasArc(pmID, tID(prime), petri.ArcReset) {
			st.pn.AddArc(pmID, tID(prime), petri.ArcReset, 0)
		}
	}
}
