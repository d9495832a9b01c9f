package rdltpn

import "errors"

// ErrNilRDLT is returned by Convert when called with a nil *rdlt.RDLT.
var ErrNilRDLT = errors.New("rdltpn: nil RDLT")
