package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/rdlt"
)

// checkInvariants enforces spec §4.4's post-step-9 invariants (a)-(e). It
// is only meaningful when the combined RDLT was extended with a dummy
// source/sink (spec §6: analysis fields, and by extension this check,
// apply only when extend=true); a non-extended combined RDLT legitimately
// leaves the true source/sink transitions without the in/out-degree ≥1
// invariant (c) demands, since nothing pads them.
//
// A reset center's Level-2 clone transition T{c'} is exempt from the
// in-degree half of invariant (c): a reset center has no RDLT predecessor
// by construction (nothing outside its own RBS ever points at it, and
// step 7 only wires bridge nodes, not the center itself), so it receives
// tokens solely through Trr{c}'s arcs into auxiliary places rather than
// through an incoming arc on T{c'} itself.
func checkInvariants(r *rdlt.RDLT, pn *petri.PetriNet) error {
	if len(pn.PlacesWithRole(petri.RoleGlobalSource)) > 1 {
		return petri.ErrInternalInvariant
	}
	if len(pn.PlacesWithRole(petri.RoleGlobalSink)) > 1 {
		return petri.ErrInternalInvariant
	}
	for _, a := range pn.Arcs() {
		if a.Type == petri.ArcAbstract {
			return petri.ErrInternalInvariant
		}
	}
	centerTransitions := make(map[string]bool)
	for _, v := range r.Vertices() {
		if r.Vertex(v).IsCenter {
			centerTransitions[tID(v)] = true
		}
	}
	for _, id := range pn.TransitionIDs() {
		if len(pn.OutArcs(id)) == 0 {
			return petri.ErrInternalInvariant
		}
		if len(pn.InArcs(id)) == 0 && !centerTransitions[id] {
			return petri.ErrInternalInvariant
		}
	}
	for _, p := range pn.PlacesWithRole(petri.RoleAuxiliary) {
		hasReset := false
		for _, a := range pn.OutArcs(p.ID) {
			if a.Type == petri.ArcReset {
				hasReset = true

				break
			}
		}
		if !hasReset {
			return petri.ErrInternalInvariant
		}
	}
	for _, p := range pn.PlacesWithRole(petri.RoleConsensus) {
		rr := resetTransitionID(p.RBSGroup)
		if _, ok := pn.Transitions[rr]; !ok {
			return petri.ErrInternalInvariant
		}
	}

	return nil
}
