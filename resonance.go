package nuflux

import "fmt"

// ZBosonMass is the Z boson rest mass in eV.
const ZBosonMass = 91.2e9

// ResonanceEnergy returns the neutrino energy, in eV, at which a
// collision with a relic neutrino of the given mass (eV) hits the
// Z resonance: Eres = m_Z² / (2 m_ν).
// Returns ErrInvalidParameter when the mass is not positive; a massless
// neutrino has no resonance and the absorption physics is undefined.
func ResonanceEnergy(neutrinoMassEV float64) (float64, error) {
	if neutrinoMassEV <= 0 {
		return 0, fmt.Errorf("%w: neutrino mass %g eV, want > 0 for resonant absorption",
			ErrInvalidParameter, neutrinoMassEV)
	}
	return ZBosonMass * ZBosonMass / (2 * neutrinoMassEV), nil
}
