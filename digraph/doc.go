// Package digraph implements the directed-multigraph primitives the rest of
// this module builds on: adjacency, reachability, simple-path enumeration,
// Johnson's elementary-cycle algorithm, and Tarjan's strongly-connected-
// components algorithm.
//
// Unlike a map-keyed adjacency list, vertices and edges live in two arenas
// (slices) addressed by index. Parallel edges — two edges sharing the same
// (from, to) pair — are distinct arena entries and are never collapsed, so
// algorithms that must tell them apart (cycle enumeration, in particular)
// see them as distinct. incoming/outgoing adjacency holds edge indices, not
// owning references, so the arena is the single source of truth.
//
// The graph is built once and queried; there is no mutation after
// construction beyond AddVertex/AddEdge, and no concurrency guard is
// provided — callers needing one build the graph under their own lock, the
// way the rest of this module's single-threaded pipeline does.
package digraph
