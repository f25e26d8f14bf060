package nuflux

import (
	"fmt"
	"math"
)

// Cosmology holds the density parameters and the dimensionless Hubble
// constant h, where H0 = 100 h [km/s/Mpc]. Units are carried nominally:
// the flux integral only ever uses 1/H(z), and the unknown normalization
// of the source emissivity absorbs the overall dimension.
type Cosmology struct {
	H      float64 `json:"h"`
	OmegaM float64 `json:"omega_m"`
	OmegaL float64 `json:"omega_l"`
	OmegaK float64 `json:"omega_k"`
}

// DefaultCosmology is the flat ΛCDM cosmology used by Eberle 2004.
var DefaultCosmology = Cosmology{H: 0.678, OmegaM: 0.308, OmegaL: 0.692, OmegaK: 0}

// IsFlat reports whether Ωm + ΩΛ + Ωk == 1, using exact floating-point
// equality. The strictness is deliberate: callers must supply canonical
// density triples, and the absorption formula assumes zero net curvature.
func (c Cosmology) IsFlat() bool {
	return c.OmegaM+c.OmegaL+c.OmegaK == 1
}

// HubbleRate returns H(z) = 100h · √(Ωm(1+z)³ + Ωk(1+z)² + ΩΛ).
// Returns ErrDomain when the radicand is negative.
func (c Cosmology) HubbleRate(z float64) (float64, error) {
	zp := 1 + z
	radicand := c.OmegaM*zp*zp*zp + c.OmegaK*zp*zp + c.OmegaL
	if radicand < 0 {
		return 0, fmt.Errorf("%w: H(z)² < 0 at z = %g (Ωm=%g ΩΛ=%g Ωk=%g)",
			ErrDomain, z, c.OmegaM, c.OmegaL, c.OmegaK)
	}
	return 100 * c.H * math.Sqrt(radicand), nil
}
