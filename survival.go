package nuflux

import (
	"fmt"
	"math"
)

// annProbability is the annihilation probability on the relic neutrino
// background at the reference Hubble constant (Ebe04 eq 16). It scales
// as 1/h for other cosmologies.
const (
	annProbability = 0.03
	referenceH     = 0.678
)

// SurvivalProbability returns the fraction of flux at energy e (eV) and
// redshift z that is not absorbed by resonant annihilation en route to
// Earth, for a resonance energy eRes (Ebe04 eq 15).
//
// Outside the resonance window, e < eRes/(1+z) or e > eRes, no absorption
// occurs and the result is exactly 1. Inside the window, with x = eRes/e:
//
//	P = exp( -(0.678/h)·0.03 · x³ / √(Ωm·x³ + Ωk·x² + ΩΛ) )
//
// Returns ErrInvalidParameter when the cosmology is not exactly flat.
func SurvivalProbability(e, z, eRes float64, cosmo Cosmology) (float64, error) {
	if !cosmo.IsFlat() {
		return 0, fmt.Errorf("%w: Ωm+ΩΛ+Ωk = %g, want exactly 1 (flat universe)",
			ErrInvalidParameter, cosmo.OmegaM+cosmo.OmegaL+cosmo.OmegaK)
	}

	if e < eRes/(1+z) || e > eRes {
		return 1, nil
	}

	ann := referenceH / cosmo.H * annProbability
	x := eRes / e
	x2 := x * x
	x3 := x2 * x
	return math.Exp(-ann * x3 / math.Sqrt(cosmo.OmegaM*x3+cosmo.OmegaK*x2+cosmo.OmegaL)), nil
}
