package rdltbuilder_test

import (
	"errors"
	"testing"

	"github.com/arqade/rdltpn/rdltbuilder"
)

func TestBuild_NilConstructorErrors(t *testing.T) {
	_, err := rdltbuilder.Build(rdltbuilder.Controllers("x"), nil)
	if !errors.Is(err, rdltbuilder.ErrNilConstructor) {
		t.Fatalf("want ErrNilConstructor, got %v", err)
	}
}

func TestBuild_PropagatesConstructorError(t *testing.T) {
	_, err := rdltbuilder.Build(rdltbuilder.Eps("x", "y", 1))
	if err == nil {
		t.Fatal("want an error wiring an edge between two undeclared vertices")
	}
}

func TestEpsilonChain(t *testing.T) {
	r, err := rdltbuilder.EpsilonChain()
	if err != nil {
		t.Fatalf("EpsilonChain: %v", err)
	}
	if len(r.Vertices()) != 2 {
		t.Fatalf("want 2 vertices, got %d", len(r.Vertices()))
	}
	if len(r.Edges()) != 1 {
		t.Fatalf("want 1 edge, got %d", len(r.Edges()))
	}
}

func TestRBSWithOutBridge(t *testing.T) {
	r, err := rdltbuilder.RBSWithOutBridge()
	if err != nil {
		t.Fatalf("RBSWithOutBridge: %v", err)
	}
	c := r.Vertex("c")
	if c == nil || !c.IsResetCenter {
		t.Fatal("want vertex c flagged as a reset center")
	}
}

func TestAllScenariosBuildWithoutError(t *testing.T) {
	builders := []func() error{
		func() error { _, err := rdltbuilder.EpsilonChain(); return err },
		func() error { _, err := rdltbuilder.ThreeWaySplit(); return err },
		func() error { _, err := rdltbuilder.LoopCase(); return err },
		func() error { _, err := rdltbuilder.RBSWithOutBridge(); return err },
		func() error { _, err := rdltbuilder.MixJoin(); return err },
		func() error { _, err := rdltbuilder.SiblingOrJoin(); return err },
	}
	for i, b := range builders {
		if err := b(); err != nil {
			t.Errorf("scenario %d: %v", i, err)
		}
	}
}
