package petri_test

import (
	"testing"

	"github.com/arqade/rdltpn/petri"
)

func smallNet() *petri.PetriNet {
	pn := petri.New()
	pn.AddPlace("p1", 1)
	pn.AddPlace("p2", 0)
	pn.AddPlace("aux", 0)
	pn.AddTransition("t1", petri.RoleTraverse)
	pn.AddArc("p1", "t1", petri.ArcNormal, 1)
	pn.AddArc("t1", "p2", petri.ArcNormal, 1)
	pn.AddArc("t1", "aux", petri.ArcReset, 0)

	return pn
}

func TestAddPlaceIdempotent(t *testing.T) {
	pn := petri.New()
	a := pn.AddPlace("x", 3)
	b := pn.AddPlace("x", 99)
	if a != b {
		t.Fatal("want AddPlace to return the existing place on repeat calls")
	}
	if a.Tokens != 3 {
		t.Fatalf("want original token count preserved, got %d", a.Tokens)
	}
}

func TestIsEnabledRespectsWeight(t *testing.T) {
	pn := smallNet()
	ok, err := pn.IsEnabled("t1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("want t1 enabled with p1 holding 1 token")
	}

	_ = pn.SetTokens("p1", 0)
	ok, err = pn.IsEnabled("t1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("want t1 disabled once p1 is empty")
	}
}

func TestFireMovesTokensAndResets(t *testing.T) {
	pn := smallNet()
	_ = pn.SetTokens("aux", 5)

	if err := pn.Fire("t1"); err != nil {
		t.Fatal(err)
	}
	if tok, _ := pn.TokensAt("p1"); tok != 0 {
		t.Fatalf("want p1 drained to 0, got %d", tok)
	}
	if tok, _ := pn.TokensAt("p2"); tok != 1 {
		t.Fatalf("want p2 to gain 1 token, got %d", tok)
	}
	if tok, _ := pn.TokensAt("aux"); tok != 0 {
		t.Fatalf("want reset arc to zero aux regardless of prior count, got %d", tok)
	}
}

func TestSnapshotRevertRestoresMarking(t *testing.T) {
	pn := smallNet()
	before := pn.Marking()

	pn.PushSnapshot()
	if err := pn.Fire("t1"); err != nil {
		t.Fatal(err)
	}
	if tok, _ := pn.TokensAt("p2"); tok != 1 {
		t.Fatal("want p2 to have gained a token before revert")
	}

	if err := pn.RevertState(); err != nil {
		t.Fatal(err)
	}
	after := pn.Marking()
	for id, tok := range before {
		if after[id] != tok {
			t.Fatalf("place %s: want %d tokens after revert, got %d", id, tok, after[id])
		}
	}
}

func TestSnapshotDiscardKeepsFiring(t *testing.T) {
	pn := smallNet()
	pn.PushSnapshot()
	if err := pn.Fire("t1"); err != nil {
		t.Fatal(err)
	}
	if err := pn.DiscardSnapshot(); err != nil {
		t.Fatal(err)
	}
	if tok, _ := pn.TokensAt("p2"); tok != 1 {
		t.Fatal("want firing to remain committed after discard")
	}
}

func TestRevertWithNoSnapshotErrors(t *testing.T) {
	pn := petri.New()
	if err := pn.RevertState(); err == nil {
		t.Fatal("want error reverting with an empty snapshot stack")
	}
}

func TestNestedSnapshots(t *testing.T) {
	pn := smallNet()
	pn.PushSnapshot()
	_ = pn.Fire("t1")
	pn.PushSnapshot()
	_ = pn.SetTokens("p2", 42)

	if err := pn.RevertState(); err != nil {
		t.Fatal(err)
	}
	if tok, _ := pn.TokensAt("p2"); tok != 1 {
		t.Fatalf("want inner revert to restore p2 to 1, got %d", tok)
	}

	if err := pn.RevertState(); err != nil {
		t.Fatal(err)
	}
	if tok, _ := pn.TokensAt("p2"); tok != 0 {
		t.Fatalf("want outer revert to restore p2 to 0, got %d", tok)
	}
}

func TestHasArcAndAccessors(t *testing.T) {
	pn := smallNet()
	if !pn.HasArc("p1", "t1", petri.ArcNormal) {
		t.Fatal("want HasArc true for the wired normal arc")
	}
	if pn.HasArc("p1", "t1", petri.ArcReset) {
		t.Fatal("want HasArc false for a type that was not added")
	}
	if len(pn.OutArcs("t1")) != 2 {
		t.Fatalf("want t1 to have 2 outgoing arcs, got %d", len(pn.OutArcs("t1")))
	}
	if len(pn.InArcs("t1")) != 1 {
		t.Fatalf("want t1 to have 1 incoming arc, got %d", len(pn.InArcs("t1")))
	}
}

func TestRolesAndLookupHelpers(t *testing.T) {
	pn := petri.New()
	s := pn.AddPlace("src", 1)
	s.AddRole(petri.RoleGlobalSource)
	pn.AddPlace("other", 0)

	sources := pn.PlacesWithRole(petri.RoleGlobalSource)
	if len(sources) != 1 || sources[0].ID != "src" {
		t.Fatalf("want exactly one global-source place, got %v", sources)
	}

	pn.AddTransition("check1", petri.RoleCheck)
	pn.AddTransition("trav1", petri.RoleTraverse)
	checks := pn.TransitionsWithRole(petri.RoleCheck)
	if len(checks) != 1 || checks[0].ID != "check1" {
		t.Fatalf("want exactly one check transition, got %v", checks)
	}
}

func TestDescribeActivitiesPopulatesFromIncidentArcs(t *testing.T) {
	pn := smallNet()
	pn.DescribeActivities()

	t1 := pn.Transitions["t1"]
	want := "aux:out:reset,p1:in:normal,p2:out:normal"
	if t1.Activities != want {
		t.Fatalf("t1.Activities = %q, want %q", t1.Activities, want)
	}
}
