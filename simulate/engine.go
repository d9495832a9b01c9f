package simulate

import (
	"sort"
	"strings"

	"github.com/arqade/rdltpn/petri"
)

// Run explores every concurrent firing sequence of pn from its current
// marking (spec §4.5), bounded by maxSteps (DefaultMaxSteps if <= 0).
// Exploration mutates pn's marking through its transactional
// snapshot/restore stack — one push per recursion level — and always
// leaves pn's marking exactly as it found it.
func Run(pn *petri.PetriNet, maxSteps int) *Report {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	fired := make(map[string]bool)
	pn.PushSnapshot()
	sequences := explore(pn, nil, 0, maxSteps, fired)
	_ = pn.RevertState()

	term := aggregateTermination(sequences)
	live := liveness(pn, fired)

	return &Report{
		Sequences:          sequences,
		PerSequenceResults: buildPerSequenceResults(pn, sequences),
		OverallLiveness:    live,
		OverallTermination: term,
		OverallSoundness:   computeSoundness(term, live),
	}
}

func explore(pn *petri.PetriNet, steps []Step, depth, maxSteps int, fired map[string]bool) []Sequence {
	enabled := enabledTransitions(pn)
	// Retrofit: the enabled set computed here describes the marking left
	// by the previous step, not this (not-yet-created) one (spec §4.5).
	if len(steps) > 0 {
		steps[len(steps)-1].Enabled = enabled
	}

	if len(enabled) == 0 || depth >= maxSteps {
		checks := terminationChecksFor(pn)

		return []Sequence{{
			Steps:       append([]Step(nil), steps...),
			Termination: classifyFromChecks(checks),
			Checks:      checks,
		}}
	}

	groups := groupConflicts(pn, enabled)
	var unique []string
	var splitGroups [][]string
	for _, g := range groups {
		if len(g.transitions) == 1 {
			unique = append(unique, g.transitions[0])
		} else {
			splitGroups = append(splitGroups, g.transitions)
		}
	}

	var sequences []Sequence
	for _, combo := range cartesianProduct(splitGroups) {
		firingSet := append(append([]string(nil), unique...), combo...)
		sort.Strings(firingSet)
		for _, t := range firingSet {
			fired[t] = true
		}

		before := pn.Marking()
		pn.PushSnapshot()
		for _, t := range firingSet {
			_ = pn.Fire(t)
		}

		step := Step{Marking: before, Fired: firingSet, Log: logLine(firingSet)}
		sequences = append(sequences, explore(pn, append(steps, step), depth+1, maxSteps, fired)...)

		_ = pn.RevertState()
	}

	return sequences
}

func enabledTransitions(pn *petri.PetriNet) []string {
	var out []string
	for _, id := range pn.TransitionIDs() {
		if ok, _ := pn.IsEnabled(id); ok {
			out = append(out, id)
		}
	}

	return out
}

func logLine(firingSet []string) string {
	if len(firingSet) == 0 {
		return "no transitions fired"
	}

	return "fired: " + strings.Join(firingSet, ", ")
}
