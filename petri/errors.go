package petri

import "errors"

// ErrPlaceNotFound indicates an operation referenced a place ID that does
// not exist in the net.
var ErrPlaceNotFound = errors.New("petri: place not found")

// ErrTransitionNotFound indicates an operation referenced a transition ID
// that does not exist in the net.
var ErrTransitionNotFound = errors.New("petri: transition not found")

// ErrInternalInvariant indicates a mapper invariant was violated (spec
// §4.4 post-step-9 invariants; spec §7). This signals a defect in the
// mapper, never a user-input error.
var ErrInternalInvariant = errors.New("petri: internal invariant violated")
