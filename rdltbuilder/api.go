package rdltbuilder

import (
	"fmt"

	"github.com/arqade/rdltpn/rdlt"
)

// Constructor applies one mutation to an in-progress RDLT. Implementations
// must return sentinel or rdlt-package errors rather than panic.
type Constructor func(r *rdlt.RDLT) error

// Build creates a fresh RDLT and applies cons in order, wrapping the first
// failing constructor's error with its index.
func Build(cons ...Constructor) (*rdlt.RDLT, error) {
	r := rdlt.New()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(r); err != nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, err)
		}
	}

	return r, nil
}

// Controllers adds one KindController vertex per id.
func Controllers(ids ...string) Constructor {
	return func(r *rdlt.RDLT) error {
		for _, id := range ids {
			if err := r.AddVertex(rdlt.Vertex{ID: id, Kind: rdlt.KindController}); err != nil {
				return err
			}
		}

		return nil
	}
}

// ResetCenter adds a KindBoundary vertex flagged as an RBS reset center.
func ResetCenter(id string) Constructor {
	return func(r *rdlt.RDLT) error {
		return r.AddVertex(rdlt.Vertex{ID: id, Kind: rdlt.KindBoundary, IsResetCenter: true})
	}
}

// Eps adds an ε-edge from -> to with bound l.
func Eps(from, to string, l int) Constructor {
	return Edge(from, to, rdlt.Epsilon, l)
}

// Sigma adds a Σ-edge from -> to constrained by c with bound l.
func Sigma(from, to, c string, l int) Constructor {
	return Edge(from, to, c, l)
}

// Edge adds a normal edge from -> to carrying constraint c and bound l.
func Edge(from, to, c string, l int) Constructor {
	return func(r *rdlt.RDLT) error {
		_, err := r.AddEdge(from, to, c, l, rdlt.EdgeNormal)

		return err
	}
}
