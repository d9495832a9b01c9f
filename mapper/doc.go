// Package mapper implements the nine-step structural rewrite that turns a
// combined (Level-1 + Level-2) RDLT into a Petri net: check transitions per
// vertex, split/traversed/checked/auxiliary places, ε and Σ traverse
// transitions, reset-bound-subsystem consensus wiring, bridge linkage
// between the two levels, and the global source place.
//
// Steps run strictly in order; within a step, iteration order over
// vertices/edges does not affect the resulting topology (spec §5,
// Ordering) because every place/transition/arc insertion is keyed by a
// deterministic ID derived from the RDLT vertex/edge it comes from.
package mapper
