package preprocess

import "errors"

// ErrInvalidTopology indicates EVSA was asked to extend an RDLT with no
// source or no sink (spec §4.3, Failure modes).
var ErrInvalidTopology = errors.New("preprocess: invalid topology")

// ErrUnboundedReuse is the warning-class condition surfaced when an
// abstract arc's eRU computation finds no pseudocritical arc in any cycle
// crossing the RBS boundary — the preprocessor still produces a PN, whose
// analyser may in turn find it unsound (spec §4.3, Failure modes).
var ErrUnboundedReuse = errors.New("preprocess: unbounded reuse")
