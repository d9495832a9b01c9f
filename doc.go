// Package rdltpn converts a Robustness Diagram with Loop and Time controls
// (RDLT) into its equivalent Petri net and reports on both its structure
// and its behaviour.
//
// Convert is the single entry point: it runs the preprocessor (package
// preprocess), the structural mapper (package mapper), and — when
// extend is requested — the structural and behavioural analysers
// (packages structural and simulate), and returns everything as one
// Payload. Parsing an RDLT from JSON, rendering it, and serving it over
// HTTP are left to external collaborators; this package accepts an
// already-validated *rdlt.RDLT.
package rdltpn
