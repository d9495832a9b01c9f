package mapper_test

import (
	"testing"

	"github.com/arqade/rdltpn/mapper"
	"github.com/arqade/rdltpn/preprocess"
	"github.com/arqade/rdltpn/rdlt"
)

func mustAddController(t *testing.T, r *rdlt.RDLT, id string) {
	t.Helper()
	if err := r.AddVertex(rdlt.Vertex{ID: id, Kind: rdlt.KindController}); err != nil {
		t.Fatalf("AddVertex(%s): %v", id, err)
	}
}

// TestMap_TwoVertexEpsilonChain covers seed scenario 1 (spec §8): the PN
// must contain Tx, Ty, Pym, Pεyx (checked), Pεnyx (auxiliary, 1 token),
// Tεyx, Pim (1 token), Po.
func TestMap_TwoVertexEpsilonChain(t *testing.T) {
	r := rdlt.New()
	mustAddController(t, r, "x")
	mustAddController(t, r, "y")
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
	pn := res.PetriNet

	for _, id := range []string{"Tx", "Ty", "Pym", "Pεyx", "Pεnyx", "Tεyx", "Pim", "Po"} {
		if _, ok := pn.Places[id]; !ok {
			if _, ok := pn.Transitions[id]; !ok {
				t.Errorf("want node %s present", id)
			}
		}
	}
	if tok, err := pn.TokensAt("Pim"); err != nil || tok != 1 {
		t.Errorf("want Pim=1 token, got %d (err=%v)", tok, err)
	}
	if tok, err := pn.TokensAt("Pεnyx"); err != nil || tok != 1 {
		t.Errorf("want Pεnyx=1 token, got %d (err=%v)", tok, err)
	}
}

// TestMap_ThreeWaySplit covers seed scenario 2 (spec §8): a Pwsplit place
// must appear, the Σ-edges into z get the checked places Paz and Pbz, and
// the PN has a TJz transition.
func TestMap_ThreeWaySplit(t *testing.T) {
	r := rdlt.New()
	for _, id := range []string{"w", "x", "y", "z"} {
		mustAddController(t, r, id)
	}
	mustEdge(t, r, "w", "x", rdlt.Epsilon, 1)
	mustEdge(t, r, "w", "y", rdlt.Epsilon, 1)
	mustEdge(t, r, "x", "z", "a", 1)
	mustEdge(t, r, "y", "z", "b", 1)

	simplified, err := preprocess.Simplify(r, true)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	res, err := mapper.Map(simplified.Combined, true)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	pn := res.PetriNet

	if _, ok := pn.Places["Pwsplit"]; !ok {
		t.Error("want Pwsplit place for the three-way split without OR-join")
	}
	if _, ok := pn.Places["Paz"]; !ok {
		t.Error("want checked place Paz")
	}
	if _, ok := pn.Places["Pbz"]; !ok {
		t.Error("want checked place Pbz")
	}
	if _, ok := pn.Transitions["TJz"]; !ok {
		t.Error("want exactly one TJz transition")
	}
}

// TestMap_RBSWithOutBridge covers the consensus/reset wiring half of seed
// scenario 4 (spec §8).
func TestMap_RBSWithOutBridge(t *testing.T) {
	r := rdlt.New()
	if err := r.AddVertex(rdlt.Vertex{ID: "c", Kind: rdlt.KindEntity, IsResetCenter: true}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"ext", "brA", "o2", "sink"} {
		mustAddController(t, r, id)
	}
	mustEdge(t, r, "ext", "brA", rdlt.Epsilon, 1)
	mustEdge(t, r, "c", "brA", rdlt.Epsilon, 2)
	mustEdge(t, r, "brA", "o2", "k", 1) // Σ-edge: keeps o2 outside the RBS so brA is a genuine out-bridge
	mustEdge(t, r, "o2", "sink", rdlt.Epsilon, 1)

	simplified, err := preprocess.Simplify(r, true)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	res, err := mapper.Map(simplified.Combined, true)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	pn := res.PetriNet

	if _, ok := pn.Places["Pconsc"]; !ok {
		t.Error("want consensus place Pconsc")
	}
	if _, ok := pn.Transitions["Trrc"]; !ok {
		t.Error("want reset transition Trrc")
	}
}

func mustEdge(t *testing.T, r *rdlt.RDLT, from, to, c string, l int) {
	t.Helper()
	if _, err := r.AddEdge(from, to, c, l, rdlt.EdgeNormal); err != nil {
		t.Fatalf("AddEdge(%s,%s): %v", from, to, err)
	}
}

func TestMap_EmptyRDLTWithoutExtension(t *testing.T) {
	r := rdlt.New()
	res, err := mapper.Map(r, false)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(res.PetriNet.Places) != 0 || len(res.PetriNet.Transitions) != 0 {
		t.Fatal("want an empty RDLT to produce an empty PetriNet")
	}
}
