package nuflux

import (
	"fmt"
	"math"
)

// emissivityRedshiftFactor returns the z-dependent part of the source
// emissivity, (1+z)^(n-α), inside the open interval (zMin, zMax) and 0
// outside it (Ebe04 eq 24, 27-28; the power-law ansatz follows Wic04).
// The factor is kept separate from the energy part so only this piece is
// integrated over redshift.
func emissivityRedshiftFactor(z, zMin, zMax, n, alpha float64) float64 {
	if z <= zMin || z >= zMax {
		return 0
	}
	return math.Pow(1+z, n-alpha)
}

// emissivityEnergyFactor returns the z-independent part of the source
// emissivity, η0·j·e^(-α), a constant multiplier pulled out of the
// redshift integral. The normalization η0·j is very uncertain.
// Returns ErrDomain for a non-positive energy.
func emissivityEnergyFactor(e, eta0, j, alpha float64) (float64, error) {
	if e <= 0 {
		return 0, fmt.Errorf("%w: energy %g eV, want > 0 for power-law emissivity", ErrDomain, e)
	}
	return eta0 * j * math.Pow(e, -alpha), nil
}
