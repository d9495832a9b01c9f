package rdltpn

import (
	"github.com/arqade/rdltpn/mapper"
	"github.com/arqade/rdltpn/preprocess"
	"github.com/arqade/rdltpn/rdlt"
	"github.com/arqade/rdltpn/simulate"
	"github.com/arqade/rdltpn/structural"
)

// Convert runs the full pipeline over r (spec §2, data flow): preprocessor
// → structural mapper, and, when extend is true, the structural and
// behavioural analysers over the resulting PetriNet. Preprocessor
// warnings (e.g. unbounded reuse) are returned alongside a successful
// Payload rather than as an error, matching the preprocessor's own
// warning/error split.
func Convert(r *rdlt.RDLT, extend bool) (*Payload, []string, error) {
	if r == nil {
		return nil, nil, ErrNilRDLT
	}

	pre, err := preprocess.Simplify(r, extend)
	if err != nil {
		return nil, nil, err
	}

	mapped, err := mapper.Map(pre.Combined, extend)
	if err != nil {
		return nil, pre.Warnings, err
	}

	payload := &Payload{
		RDLT: r,
		Preprocess: PreprocessResult{
			Level1: pre.Level1,
			Level2: pre.Level2,
		},
		CombinedModel: pre.Combined,
		PetriNet:      mapped.PetriNet,
	}

	if extend {
		structReport := structural.Analyse(mapped.PetriNet)
		payload.StructAnalysis = structReport
		behaviorReport := simulate.Run(mapped.PetriNet, simulate.DefaultMaxSteps)
		payload.BehaviorAnalysis = behaviorReport
	}

	return payload, pre.Warnings, nil
}
