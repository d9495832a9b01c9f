package simulate

import (
	"strings"

	"github.com/arqade/rdltpn/petri"
)

// buildPerSequenceResults derives BehaviouralReport.perSequenceResults
// (spec §6) from the already-classified sequences of one run.
func buildPerSequenceResults(pn *petri.PetriNet, sequences []Sequence) []PerSequenceResult {
	out := make([]PerSequenceResult, len(sequences))
	for i, seq := range sequences {
		out[i] = PerSequenceResult{
			SequenceIndex:      i,
			Option:             seq.Termination == TerminationOption,
			TerminationChecks:  seq.Checks,
			TerminationType:    seq.Termination,
			FiringSequence:     firingSequenceOf(seq.Steps),
			ActivityExtraction: activityExtraction(pn, seq.Steps),
		}
	}

	return out
}

// firingSequenceOf renders each step's simultaneously-fired transitions as
// one "+"-joined entry, in firing order.
func firingSequenceOf(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = strings.Join(s.Fired, "+")
	}

	return out
}

// activityExtraction flattens every fired transition's arc-descriptor
// trace (petri.Transition.Activities) across a sequence's steps, each
// entry prefixed by the transition that produced it.
func activityExtraction(pn *petri.PetriNet, steps []Step) []string {
	var out []string
	for _, step := range steps {
		for _, tid := range step.Fired {
			t, ok := pn.Transitions[tid]
			if !ok || t.Activities == "" {
				continue
			}
			for _, a := range strings.Split(t.Activities, ",") {
				out = append(out, tid+":"+a)
			}
		}
	}

	return out
}
