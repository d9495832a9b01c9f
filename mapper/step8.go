package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/preprocess"
)

// step8 wires the reset topology for every auxiliary place created in
// steps 3-4 (spec §4.4 step 8): a reset arc into the sink transition To
// when the global sink place Po exists; if the place belongs to an RBS, a reset arc into that RBS's
// Trr{c} and a matching normal arc back out carrying the place's initial
// token count; and a reset arc to the place's own resetTarget, unless that
// target's originating vertex has a looping arc or is the dummy sink (spec
// §4.4 step 8 last clause) — in either case a per-step reset there would
// fight the vertex's own looping/terminal semantics.
func step8(st *state) StepLog {
	log := newLog(8, "reset topology")
	for _, rec := range st.auxRecords {
		if _, ok := st.pn.Places["Po"]; ok {
			to := tID(preprocess.DummySink)
			if !st.pn.HasArc(rec.placeID, to, petri.ArcReset) {
				st.pn.AddArc(rec.placeID, to, petri.ArcReset, 0)
			}
		}

		if rec.rbsGroup != "" {
			rr := resetTransitionID(rec.rbsGroup)
			if _, ok := st.pn.Transitions[rr]; ok {
				if !st.pn.HasArc(rec.placeID, rr, petri.ArcReset) {
					st.pn.AddArc(rec.placeID, rr, petri.ArcReset, 0)
				}
				if !st.pn.HasArc(rr, rec.placeID, petri.ArcNormal) {
					st.pn.AddArc(rr, rec.placeID, petri.ArcNormal, rec.initialTokens)
				}
			}
		}

		skip := st.r.HasVertex(rec.targetVertex) && st.r.HasLoopingArc(rec.targetVertex)
		skip = skip || rec.targetVertex == preprocess.DummySink
		if !skip && !st.pn.HasArc(rec.placeID, rec.resetTarget, petri.ArcReset) {
			st.pn.AddArc(rec.placeID, rec.resetTarget, petri.ArcReset, 0)
		}

		log.Details = append(log.Details, rec.placeID+" -> "+rec.resetTarget+" (skipped="+boolStr(skip)+")")
	}

	return log
}
