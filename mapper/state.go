package mapper

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/rdlt"
)

// StepLog is the structured record one mapper step returns (spec §4.4:
// "Each step returns a structured log entry consumed by the visualiser").
type StepLog struct {
	Step    int
	Title   string
	Details []string
}

func newLog(step int, title string) StepLog {
	return StepLog{Step: step, Title: title}
}

// auxRecord tracks one auxiliary place created in steps 3-4, for step 8's
// reset-topology pass.
type auxRecord struct {
	placeID       string
	resetTarget   string // transition ID the place's reset arc (normally) feeds
	targetVertex  string // RDLT vertex whose looping/sink status gates that arc
	rbsGroup      string
	initialTokens int
}

// state carries cross-step bookkeeping the nine ordered steps share.
type state struct {
	r  *rdlt.RDLT
	pn *petri.PetriNet

	splitPlace map[string]string // vertex id -> split place id (split-case-1 vertices only)
	tj         map[string]string // vertex id -> TJ{v} transition id
	epsByTo    map[string][]string

	alias      *aliasRegistry
	auxRecords []auxRecord
	logs       []StepLog
}

func newState(r *rdlt.RDLT) *state {
	st := &state{
		r:          r,
		pn:         petri.New(),
		splitPlace: make(map[string]string),
		tj:         make(map[string]string),
		epsByTo:    make(map[string][]string),
		alias:      newAliasRegistry(),
	}
	st.alias.seed(r)

	return st
}
