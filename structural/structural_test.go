package structural_test

import (
	"testing"

	"github.com/arqade/rdltpn/mapper"
	"github.com/arqade/rdltpn/preprocess"
	"github.com/arqade/rdltpn/rdlt"
	"github.com/arqade/rdltpn/structural"
)

func buildChainPN(t *testing.T) *mapper.Result {
	t.Helper()
	r := rdlt.New()
	for _, id := range []string{"x", "y"} {
		if err := r.AddVertex(rdlt.Vertex{ID: id, Kind: rdlt.KindController}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := r.AddEdge("x", "y", rdlt.Epsilon, 1, rdlt.EdgeNormal); err != nil {
		t.Fatal(err)
	}
	simplified, err := preprocess.Simplify(r, true)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	res, err := mapper.Map(simplified.Combined, true)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}

	return res
}

func TestAnalyse_TwoVertexEpsilonChain(t *testing.T) {
	res := buildChainPN(t)
	report := structural.Analyse(res.PetriNet)

	if report.Connectivity.Source == "" {
		t.Error("want a global source place")
	}
	if report.Connectivity.Sink == "" {
		t.Error("want a global sink place")
	}
	if len(report.Connectivity.Unreached) != 0 {
		t.Errorf("want every node reachable from the source, unreached=%v", report.Connectivity.Unreached)
	}
	if len(report.Connectivity.IsolatedNodes) != 0 {
		t.Errorf("want no isolated nodes, got %v", report.Connectivity.IsolatedNodes)
	}
	if report.PlacesCount == 0 || report.TransitionsCount == 0 {
		t.Error("want non-zero place and transition counts")
	}
	if _, ok := report.TransitionRoles[string(checkRole)]; !ok {
		t.Error("want at least one check-role transition reported")
	}
}

const checkRole = "check"

func TestAnalyse_EmptyPetriNet(t *testing.T) {
	res, err := mapper.Map(rdlt.New(), false)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	report := structural.Analyse(res.PetriNet)

	if report.PlacesCount != 0 || report.TransitionsCount != 0 {
		t.Fatalf("want empty counts, got places=%d transitions=%d", report.PlacesCount, report.TransitionsCount)
	}
	if len(report.Issues) != 0 {
		t.Errorf("want no issues for an empty net, got %v", report.Issues)
	}
}

func TestAnalyse_IsolatedNodeFlagged(t *testing.T) {
	res := buildChainPN(t)
	res.PetriNet.AddPlace("stray", 0)

	report := structural.Analyse(res.PetriNet)
	found := false
	for _, id := range report.Connectivity.IsolatedNodes {
		if id == "stray" {
			found = true
		}
	}
	if !found {
		t.Errorf("want stray place reported isolated, got %v", report.Connectivity.IsolatedNodes)
	}
	foundIssue := false
	for _, iss := range report.Issues {
		if iss == "isolated nodes with no incident arcs" {
			foundIssue = true
		}
	}
	if !foundIssue {
		t.Error("want an isolated-nodes issue recorded")
	}
}
