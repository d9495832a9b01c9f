package petri

import "sort"

// AddPlace inserts a place with the given ID and initial token count if
// absent, returning the (possibly pre-existing) Place. Mapper steps call
// this repeatedly as they discover the need for a place already created by
// an earlier step, so it is idempotent by ID.
func (pn *PetriNet) AddPlace(id string, initialTokens int) *Place {
	if p, ok := pn.Places[id]; ok {
		return p
	}
	p := &Place{ID: id, Tokens: initialTokens, Roles: make(map[PlaceRole]bool)}
	pn.Places[id] = p

	return p
}

// AddTransition inserts a transition with the given ID and role if absent,
// returning the (possibly pre-existing) Transition.
func (pn *PetriNet) AddTransition(id string, role TransitionRole) *Transition {
	if t, ok := pn.Transitions[id]; ok {
		return t
	}
	t := &Transition{ID: id, Role: role}
	pn.Transitions[id] = t

	return t
}

// AddArc appends a new arc from -> to with the given type and weight. Both
// endpoints must already exist as a place or transition. Complexity: O(1)
// amortized.
func (pn *PetriNet) AddArc(from, to string, typ ArcType, weight int) *Arc {
	a := &Arc{Index: len(pn.arcs), From: from, To: to, Type: typ, Weight: weight}
	pn.arcs = append(pn.arcs, a)
	pn.outArcs[from] = append(pn.outArcs[from], a.Index)
	pn.inArcs[to] = append(pn.inArcs[to], a.Index)

	return a
}

// Arcs returns every arc in the net, in insertion order.
func (pn *PetriNet) Arcs() []*Arc { return pn.arcs }

// OutArcs returns the arcs leaving node id (a place or transition ID), in
// insertion order.
func (pn *PetriNet) OutArcs(id string) []*Arc {
	idxs := pn.outArcs[id]
	out := make([]*Arc, len(idxs))
	for i, idx := range idxs {
		out[i] = pn.arcs[idx]
	}

	return out
}

// InArcs returns the arcs entering node id, in insertion order.
func (pn *PetriNet) InArcs(id string) []*Arc {
	idxs := pn.inArcs[id]
	out := make([]*Arc, len(idxs))
	for i, idx := range idxs {
		out[i] = pn.arcs[idx]
	}

	return out
}

// HasArc reports whether an arc from -> to of the given type already
// exists, letting mapper steps avoid duplicate wiring (spec §4.4 step 6:
// "deduplicated").
func (pn *PetriNet) HasArc(from, to string, typ ArcType) bool {
	for _, idx := range pn.outArcs[from] {
		a := pn.arcs[idx]
		if a.To == to && a.Type == typ {
			return true
		}
	}

	return false
}

// PlaceIDs returns every place ID, sorted for deterministic iteration.
func (pn *PetriNet) PlaceIDs() []string {
	ids := make([]string, 0, len(pn.Places))
	for id := range pn.Places {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// TransitionIDs returns every transition ID, sorted for deterministic
// iteration.
func (pn *PetriNet) TransitionIDs() []string {
	ids := make([]string, 0, len(pn.Transitions))
	for id := range pn.Transitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// PlacesWithRole returns every place carrying role, sorted by ID.
func (pn *PetriNet) PlacesWithRole(role PlaceRole) []*Place {
	var out []*Place
	for _, id := range pn.PlaceIDs() {
		if pn.Places[id].HasRole(role) {
			out = append(out, pn.Places[id])
		}
	}

	return out
}

// TransitionsWithRole returns every transition with the given role, sorted
// by ID.
func (pn *PetriNet) TransitionsWithRole(role TransitionRole) []*Transition {
	var out []*Transition
	for _, id := range pn.TransitionIDs() {
		if pn.Transitions[id].Role == role {
			out = append(out, pn.Transitions[id])
		}
	}

	return out
}
