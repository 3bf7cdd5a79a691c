package accretion

import "errors"

// ErrInvalidConfig is wrapped by every construction-time validation failure
// (bad ring bands, non-positive masses, out of range tunables).
var ErrInvalidConfig = errors.New("invalid configuration")
