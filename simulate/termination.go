package simulate

import "github.com/arqade/rdltpn/petri"

// terminationChecksFor evaluates the four M[o] checks (spec §8) against
// pn's current marking. A missing globalSink place reports every check
// false, which classifyFromChecks reads as TerminationNone.
func terminationChecksFor(pn *petri.PetriNet) TerminationChecks {
	sinkID := globalSinkID(pn)
	if sinkID == "" {
		return TerminationChecks{}
	}
	marking := pn.Marking()
	sinkTokens := marking[sinkID]
	checks := TerminationChecks{Reached: sinkTokens >= 1}
	if !checks.Reached {
		return checks
	}
	checks.ExactlyOne = sinkTokens == 1
	checks.Multiple = sinkTokens > 1
	checks.OthersEmpty = true
	for id, tok := range marking {
		if id == sinkID {
			continue
		}
		if tok != 0 {
			checks.OthersEmpty = false

			break
		}
	}

	return checks
}

// classifyFromChecks applies spec §4.5's per-sequence termination
// classification to an already-evaluated set of M[o] checks.
func classifyFromChecks(c TerminationChecks) TerminationType {
	switch {
	case !c.Reached:
		return TerminationNone
	case c.ExactlyOne && c.OthersEmpty:
		return TerminationProper
	case c.ExactlyOne:
		return TerminationWeak
	default:
		return TerminationOption
	}
}

func globalSinkID(pn *petri.PetriNet) string {
	sinks := pn.PlacesWithRole(petri.RoleGlobalSink)
	if len(sinks) == 0 {
		return ""
	}

	return sinks[0].ID
}

// aggregateTermination classifies a whole run from its sequences'
// individual classifications (spec §4.5, Aggregate termination). An empty
// run (no sequences) aggregates to None.
func aggregateTermination(seqs []Sequence) AggregateTermination {
	if len(seqs) == 0 {
		return AggregateNone
	}

	allProper, anyProper := true, false
	allWeak := true
	anyOption := false
	allNone := true
	for _, s := range seqs {
		if s.Termination == TerminationProper {
			anyProper = true
		} else {
			allProper = false
		}
		if s.Termination != TerminationWeak {
			allWeak = false
		}
		if s.Termination == TerminationOption {
			anyOption = true
		}
		if s.Termination != TerminationNone {
			allNone = false
		}
	}

	switch {
	case allProper:
		return AggregateClassical
	case anyProper:
		return AggregateRelaxed
	case allWeak:
		return AggregateLazy
	case anyOption:
		return AggregateEasy
	case allNone:
		return AggregateNone
	default:
		return AggregateEasy
	}
}

// liveness reports whether fired covers every transition in pn (spec
// §4.5, Liveness).
func liveness(pn *petri.PetriNet, fired map[string]bool) bool {
	for _, id := range pn.TransitionIDs() {
		if !fired[id] {
			return false
		}
	}

	return true
}

// computeSoundness derives the overall verdict from aggregate termination
// and liveness (spec §4.5, Overall soundness).
func computeSoundness(term AggregateTermination, live bool) Soundness {
	switch term {
	case AggregateClassical:
		if live {
			return SoundnessClassical
		}

		return SoundnessWeak
	case AggregateRelaxed:
		if live {
			return SoundnessRelaxed
		}

		return SoundnessEasy
	case AggregateLazy:
		return SoundnessLazy
	case AggregateEasy:
		return SoundnessEasy
	default:
		return SoundnessNoConclusion
	}
}
