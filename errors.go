package nuflux

import "errors"

// Sentinel errors for the nuflux package.
// Use errors.Is to check: errors.Is(err, nuflux.ErrInvalidParameter)
var (
	ErrInvalidParameter = errors.New("nuflux: invalid parameter")
	ErrDomain           = errors.New("nuflux: evaluation outside mathematical domain")
	ErrNoConvergence    = errors.New("nuflux: flux integral did not converge")
)
