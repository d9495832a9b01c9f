// Package simulate implements the behavioural analyser: a single-threaded,
// deterministic depth-first enumeration of concurrent firing steps over a
// PetriNet, classifying every resulting sequence's termination and
// aggregating an overall soundness verdict.
//
// There is no real concurrency at runtime — one "step" fires a set of
// transitions simultaneously, chosen by partitioning enabled transitions
// into conflict groups and taking the Cartesian product of each group's
// alternatives. Recursion explores every element of that product from a
// fresh copy of the marking.
package simulate
