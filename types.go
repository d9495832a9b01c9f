package rdltpn

import (
	"github.com/arqade/rdltpn/petri"
	"github.com/arqade/rdltpn/rdlt"
	"github.com/arqade/rdltpn/simulate"
	"github.com/arqade/rdltpn/structural"
)

// StructuralReport is the structural analyser's (C8) report (spec §6,
// StructuralReport).
type StructuralReport = structural.Report

// BehaviouralReport is the behavioural analyser's (C7) report (spec §6,
// BehaviouralReport).
type BehaviouralReport = simulate.Report

// PreprocessResult carries the preprocessor's two views of the input RDLT:
// the Level-1 simplification and one Level-2 subgraph per reset-bound
// subsystem, keyed by reset-center ID.
type PreprocessResult struct {
	Level1 *rdlt.RDLT
	Level2 map[string]*rdlt.RDLT
}

// Payload is Convert's successful result (spec §6, Core API).
type Payload struct {
	RDLT           *rdlt.RDLT
	Preprocess     PreprocessResult
	CombinedModel  *rdlt.RDLT
	PetriNet       *petri.PetriNet
	StructAnalysis *StructuralReport
	BehaviorAnalysis *BehaviouralReport
}
