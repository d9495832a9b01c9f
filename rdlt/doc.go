// Package rdlt implements the typed Robustness Diagram with Loop and Time
// controls (RDLT) model: vertices carrying a kind and an optional
// reset-center flag, edges carrying a constraint symbol and a traversal
// bound, reset-bound-subsystem (RBS) discovery, and the split-case-1
// classifier that the preprocessor and structural mapper both consult.
//
// An RDLT is immutable once built: AddVertex/AddEdge populate it, and every
// later stage of the pipeline (preprocess, mapper) reads an RDLT value
// without mutating it, producing fresh values of their own instead.
package rdlt
