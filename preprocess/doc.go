// Package preprocess implements EVSA, the Expanded Vertex Simplification
// Algorithm (spec §4.3): the two-pass preprocessor that reduces an RDLT to
// a Level-1 simplified graph plus one Level-2 subgraph per reset-bound
// subsystem, synthesising an abstract arc — carrying a computed expanded-
// reusability (eRU) bound — for every concrete path EVSA folds away.
//
// Simplify never mutates its input RDLT; it builds fresh Level-1/Level-2
// values and a combined view joining them, exactly as spec §3's Lifecycle
// paragraph requires.
package preprocess
