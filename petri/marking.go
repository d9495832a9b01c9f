package petri

// Marking returns a copy of the current token count for every place, keyed
// by place ID.
func (pn *PetriNet) Marking() map[string]int {
	out := make(map[string]int, len(pn.Places))
	for id, p := range pn.Places {
		out[id] = p.Tokens
	}

	return out
}

// TokensAt returns the current token count of place id, or 0 and
// ErrPlaceNotFound if it does not exist.
func (pn *PetriNet) TokensAt(id string) (int, error) {
	p, ok := pn.Places[id]
	if !ok {
		return 0, ErrPlaceNotFound
	}

	return p.Tokens, nil
}

// SetTokens overwrites place id's token count directly. Used to seed the
// initial marking before simulation; firing logic goes through Fire
// instead.
func (pn *PetriNet) SetTokens(id string, tokens int) error {
	p, ok := pn.Places[id]
	if !ok {
		return ErrPlaceNotFound
	}
	p.Tokens = tokens

	return nil
}

// IsEnabled reports whether transition id can fire under the current
// marking: every normal input arc's source place holds at least the arc's
// weight in tokens. Reset input arcs (RoleReset transitions consuming from
// a reset-bound subsystem) do not gate enabling by weight — any token count,
// including zero, satisfies them, since their purpose is to drain the place
// rather than require a minimum.
func (pn *PetriNet) IsEnabled(id string) (bool, error) {
	if _, ok := pn.Transitions[id]; !ok {
		return false, ErrTransitionNotFound
	}
	for _, a := range pn.InArcs(id) {
		if a.Type == ArcReset {
			continue
		}
		p, ok := pn.Places[a.From]
		if !ok {
			return false, ErrPlaceNotFound
		}
		if p.Tokens < a.Weight {
			return false, nil
		}
	}

	return true, nil
}

// Fire consumes tokens from id's normal input places, then zeroes every
// place that has a reset arc into id (after the consumption), then
// produces tokens on its output places; a reset arc out of id zeroes its
// target place instead of adding to it (spec §3, PN arc — reset
// semantics). Fire does not check IsEnabled; callers
// (the behavioural analyser) are expected to have already filtered to
// enabled transitions.
func (pn *PetriNet) Fire(id string) error {
	if _, ok := pn.Transitions[id]; !ok {
		return ErrTransitionNotFound
	}
	for _, a := range pn.InArcs(id) {
		if a.Type != ArcNormal {
			continue
		}
		p, ok := pn.Places[a.From]
		if !ok {
			return ErrPlaceNotFound
		}
		p.Tokens -= a.Weight
	}
	for _, a := range pn.InArcs(id) {
		if a.Type != ArcReset {
			continue
		}
		p, ok := pn.Places[a.From]
		if !ok {
			return ErrPlaceNotFound
		}
		p.Tokens = 0
	}
	for _, a := range pn.OutArcs(id) {
		switch a.Type {
		case ArcReset:
			p, ok := pn.Places[a.To]
			if !ok {
				return ErrPlaceNotFound
			}
			p.Tokens = 0
		default:
			p, ok := pn.Places[a.To]
			if !ok {
				return ErrPlaceNotFound
			}
			p.Tokens += a.Weight
		}
	}

	return nil
}
