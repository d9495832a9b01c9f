package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/rdlt"
)

// Result is the mapper's output: the built PN plus the ordered per-step
// log the visualiser consumes.
type Result struct {
	PetriNet *petri.PetriNet
	Log      []StepLog
}

// Map runs the nine ordered structural-mapper steps over combined (the
// preprocessor's combined RDLT) and returns the resulting PetriNet. When
// extended is true, the post-step-9 invariants (spec §4.4) are checked
// before returning; ErrInternalInvariant indicates a defect in the mapper
// itself, never bad input (spec §7).
func Map(combined *rdlt.RDLT, extended bool) (*Result, error) {
	st := newState(combined)

	for _, step := range []func(*state) StepLog{step1, step2, step3, step4, step5, step6, step7, step8, step9} {
		st.logs = append(st.logs, step(st))
	}
	st.pn.DescribeActivities()

	if extended {
		if err := checkInvariants(combined, st.pn); err != nil {
			return nil, err
		}
	}

	return &Result{PetriNet: st.pn, Log: st.logs}, nil
}
