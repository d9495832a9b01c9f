package rdltbuilder

import "errors"

// ErrNilConstructor is returned by Build when one of the supplied
// Constructors is nil.
var ErrNilConstructor = errors.New("rdltbuilder: nil constructor")
