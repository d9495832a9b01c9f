package rdltpn_test

import (
	"errors"
	"testing"

	rdltpn "github.com/arqade/rdltpn"
	"github.com/arqade/rdltpn/rdltbuilder"
	"github.com/arqade/rdltpn/simulate"
)

func TestConvert_NilRDLT(t *testing.T) {
	_, _, err := rdltpn.Convert(nil, true)
	if !errors.Is(err, rdltpn.ErrNilRDLT) {
		t.Fatalf("want ErrNilRDLT, got %v", err)
	}
}

func TestConvert_TwoVertexEpsilonChain(t *testing.T) {
	r, err := rdltbuilder.EpsilonChain()
	if err != nil {
		t.Fatalf("EpsilonChain: %v", err)
	}

	payload, warnings, err := rdltpn.Convert(r, true)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("want no warnings for a clean chain, got %v", warnings)
	}
	if payload.PetriNet == nil {
		t.Fatal("want a non-nil PetriNet")
	}
	if payload.StructAnalysis == nil {
		t.Fatal("want a structural report when extend=true")
	}
	if payload.BehaviorAnalysis == nil {
		t.Fatal("want a behavioural report when extend=true")
	}
	if payload.BehaviorAnalysis.OverallSoundness != simulate.SoundnessClassical {
		t.Errorf("want Classical soundness, got %s", payload.BehaviorAnalysis.OverallSoundness)
	}
}

func TestConvert_NoExtendOmitsAnalysis(t *testing.T) {
	r, err := rdltbuilder.EpsilonChain()
	if err != nil {
		t.Fatalf("EpsilonChain: %v", err)
	}

	payload, _, err := rdltpn.Convert(r, false)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if payload.StructAnalysis != nil {
		t.Error("want nil StructAnalysis when extend=false")
	}
	if payload.BehaviorAnalysis != nil {
		t.Error("want nil BehaviorAnalysis when extend=false")
	}
}
