package rdlt

import "errors"

// ErrInvalidTopology indicates a missing global source/sink when extension
// is requested, an edge between two object vertices (boundary/entity), or a
// reset-center flag on a controller vertex.
var ErrInvalidTopology = errors.New("rdlt: invalid topology")

// ErrDuplicateVertex indicates AddVertex was called twice for the same ID.
var ErrDuplicateVertex = errors.New("rdlt: duplicate vertex")

// ErrInvalidConstraint indicates a non-positive traversal bound L.
var ErrInvalidConstraint = errors.New("rdlt: invalid constraint")

// ErrVertexNotFound indicates an edge or lookup referenced a vertex that
// does not exist in the RDLT.
var ErrVertexNotFound = errors.New("rdlt: vertex not found")
