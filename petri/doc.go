// Package petri defines the Petri Net model the structural mapper builds
// and the behavioural analyser simulates: places, transitions, typed arcs,
// markings, and a nestable snapshot/restore stack for the analyser's
// transactional exploration of firing sequences.
//
// A PetriNet's topology is frozen once the mapper returns it (spec §3,
// Lifecycle): only markings change afterwards, and those changes go
// through PushSnapshot/RevertState so the canonical initial marking is
// always restorable.
package petri
