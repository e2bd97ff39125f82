package sim

import "errors"

// ErrInvalidArgument is wrapped by every validation failure in this package.
// Callers distinguish rejected input from normal outcomes with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
