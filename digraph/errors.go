package digraph

import "errors"

// ErrEmptyVertexID indicates a vertex was added with an empty identifier.
var ErrEmptyVertexID = errors.New("digraph: vertex ID is empty")

// ErrVertexNotFound indicates an operation referenced a vertex that does not exist.
var ErrVertexNotFound = errors.New("digraph: vertex not found")

// ErrDuplicateVertex indicates AddVertex was called twice for the same ID.
var ErrDuplicateVertex = errors.New("digraph: duplicate vertex")
