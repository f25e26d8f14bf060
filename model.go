package nuflux

import (
	"fmt"
	"math"

	"github.com/nu-flux/nuflux/quad"
)

// zDecayNeutrinoFraction is the fraction of resonant Z decays that yield
// a detectable neutrino: the 20% Z→νν̄ branching ratio doubled because
// each decay produces a pair.
const zDecayNeutrinoFraction = 0.4

// ModelConfig configures a Model.
// Zero values produce the Eberle 2004 defaults; see field comments.
type ModelConfig struct {
	ZMin                   float64   `json:"z_min"`                    // source window lower bound
	ZMax                   float64   `json:"z_max"`                    // zero → 20
	Alpha                  float64   `json:"alpha"`                    // spectral index; zero → 1
	SourceIndex            float64   `json:"source_index"`             // evolution index n; zero → 1
	NeutrinoMass           float64   `json:"neutrino_mass"`            // eV; zero → massless, absorption unavailable
	RelicDensity           float64   `json:"relic_density"`            // η0 [Mpc⁻³]; zero → 1e-5
	Emissivity             float64   `json:"emissivity"`               // normalization j; zero → 3e6
	EnergyMin              float64   `json:"energy_min"`               // eV; zero → 1e15
	EnergyMax              float64   `json:"energy_max"`               // eV; zero → 5e22
	Cosmology              Cosmology `json:"cosmology"`                // zero → DefaultCosmology
	DisableZDecay          bool      `json:"disable_z_decay"`          // zero false → secondary flux included
	DisableEnergyWeighting bool      `json:"disable_energy_weighting"` // zero false → exported fluxes scaled by e^α
	Tolerance              float64   `json:"tolerance"`                // quadrature tolerance; zero → 1.49e-8
	MaxIntervals           int       `json:"max_intervals"`            // quadrature budget; zero → 50
}

// Model computes cosmogenic neutrino fluxes for one parameter set.
// It is immutable after construction and safe for concurrent use.
type Model struct {
	zMin, zMax   float64
	alpha, n     float64
	mass         float64
	eta0, j      float64
	eMin, eMax   float64
	cosmo        Cosmology
	zDecay       bool
	weighting    bool
	eRes         float64 // resonance energy in eV; 0 when massless
	tol          float64
	maxIntervals int
}

// NewModel creates a Model from the given config.
// Zero-value fields are filled with defaults; invalid values return an
// error wrapping ErrInvalidParameter. The resonance energy is derived
// eagerly when the neutrino mass is positive.
func NewModel(cfg ModelConfig) (*Model, error) {
	zMax := cfg.ZMax
	if zMax == 0 {
		zMax = 20
	}
	alpha := cfg.Alpha
	if alpha == 0 {
		alpha = 1
	}
	n := cfg.SourceIndex
	if n == 0 {
		n = 1
	}
	eta0 := cfg.RelicDensity
	if eta0 == 0 {
		eta0 = 1e-5
	}
	j := cfg.Emissivity
	if j == 0 {
		j = 3e6
	}
	eMin := cfg.EnergyMin
	if eMin == 0 {
		eMin = 1e15
	}
	eMax := cfg.EnergyMax
	if eMax == 0 {
		eMax = 5e22
	}
	cosmo := cfg.Cosmology
	if cosmo == (Cosmology{}) {
		cosmo = DefaultCosmology
	}
	tol := cfg.Tolerance
	if tol == 0 {
		tol = quad.DefaultAbsTol
	}
	maxIntervals := cfg.MaxIntervals
	if maxIntervals == 0 {
		maxIntervals = quad.DefaultMaxIntervals
	}

	switch {
	case cfg.ZMin < 0:
		return nil, fmt.Errorf("%w: z_min %g, want ≥ 0", ErrInvalidParameter, cfg.ZMin)
	case zMax <= cfg.ZMin:
		return nil, fmt.Errorf("%w: z_max %g, want > z_min %g", ErrInvalidParameter, zMax, cfg.ZMin)
	case cfg.NeutrinoMass < 0:
		return nil, fmt.Errorf("%w: neutrino mass %g eV, want ≥ 0", ErrInvalidParameter, cfg.NeutrinoMass)
	case eMin <= 0:
		return nil, fmt.Errorf("%w: energy_min %g eV, want > 0", ErrInvalidParameter, eMin)
	case eMax <= eMin:
		return nil, fmt.Errorf("%w: energy_max %g eV, want > energy_min %g eV", ErrInvalidParameter, eMax, eMin)
	case tol < 0 || maxIntervals < 1:
		return nil, fmt.Errorf("%w: tolerance %g, max intervals %d", ErrInvalidParameter, tol, maxIntervals)
	}

	m := &Model{
		zMin:         cfg.ZMin,
		zMax:         zMax,
		alpha:        alpha,
		n:            n,
		mass:         cfg.NeutrinoMass,
		eta0:         eta0,
		j:            j,
		eMin:         eMin,
		eMax:         eMax,
		cosmo:        cosmo,
		zDecay:       !cfg.DisableZDecay,
		weighting:    !cfg.DisableEnergyWeighting,
		tol:          tol,
		maxIntervals: maxIntervals,
	}

	if cfg.NeutrinoMass > 0 {
		eRes, err := ResonanceEnergy(cfg.NeutrinoMass)
		if err != nil {
			return nil, err
		}
		m.eRes = eRes
	}
	return m, nil
}

// ResonanceEnergy returns the precomputed resonance energy in eV.
// Returns ErrInvalidParameter for a massless model.
func (m *Model) ResonanceEnergy() (float64, error) {
	if m.eRes == 0 {
		return 0, fmt.Errorf("%w: massless neutrino has no resonance energy", ErrInvalidParameter)
	}
	return m.eRes, nil
}

// Cosmology returns the model's cosmological parameters.
func (m *Model) Cosmology() Cosmology {
	return m.cosmo
}

// SurvivalProbability evaluates the absorption suppression at energy e
// (eV) and redshift z against the model's resonance energy and cosmology.
// Returns ErrInvalidParameter for a massless model.
func (m *Model) SurvivalProbability(e, z float64) (float64, error) {
	if m.eRes == 0 {
		return 0, fmt.Errorf("%w: absorption undefined for a massless neutrino", ErrInvalidParameter)
	}
	return SurvivalProbability(e, z, m.eRes, m.cosmo)
}

// integrand builds the per-redshift integrand for the flux integral:
// emissivity redshift factor over H(z), multiplied by the survival
// probability when absorption is on. Evaluation errors are captured in
// *evalErr (first one wins) and the integrand yields 0 there.
func (m *Model) integrand(e float64, absorption bool, evalErr *error) func(float64) float64 {
	return func(z float64) float64 {
		hz, err := m.cosmo.HubbleRate(z)
		if err != nil {
			if *evalErr == nil {
				*evalErr = err
			}
			return 0
		}
		f := emissivityRedshiftFactor(z, m.zMin, m.zMax, m.n, m.alpha) / hz
		if absorption {
			p, err := SurvivalProbability(e, z, m.eRes, m.cosmo)
			if err != nil {
				if *evalErr == nil {
					*evalErr = err
				}
				return 0
			}
			f *= p
		}
		return f
	}
}

// PrimaryFlux returns the per-flavor neutrino flux at energy e (eV),
// integrating survival probability × source emissivity / H(z) over
// [z_min, z_max] (Ebe04 eq 23). The emissivity vanishes identically
// beyond z_max, so the finite upper bound already captures the full
// (formally infinite) horizon integral. The 1/3 splits the total across
// the three flavors; 1/(4π) is the solid-angle normalization.
//
// With absorption off the survival probability is taken as 1 everywhere.
// Returns ErrInvalidParameter when absorption is requested for a
// massless model or a non-flat cosmology, ErrDomain for a non-positive
// energy, and ErrNoConvergence when the quadrature budget is exhausted.
func (m *Model) PrimaryFlux(e float64, absorption bool) (float64, error) {
	energyFactor, err := emissivityEnergyFactor(e, m.eta0, m.j, m.alpha)
	if err != nil {
		return 0, err
	}

	// Fail fast before integrating.
	if absorption {
		if m.eRes == 0 {
			return 0, fmt.Errorf("%w: absorption requested for a massless neutrino", ErrInvalidParameter)
		}
		if !m.cosmo.IsFlat() {
			return 0, fmt.Errorf("%w: Ωm+ΩΛ+Ωk = %g, want exactly 1 (flat universe)",
				ErrInvalidParameter, m.cosmo.OmegaM+m.cosmo.OmegaL+m.cosmo.OmegaK)
		}
	}

	var evalErr error
	res, err := quad.Adaptive(m.integrand(e, absorption, &evalErr), m.zMin, m.zMax, quad.Config{
		AbsTol:       m.tol,
		RelTol:       m.tol,
		MaxIntervals: m.maxIntervals,
	})
	if evalErr != nil {
		return 0, evalErr
	}
	if err != nil {
		return 0, fmt.Errorf("%w: e = %g eV: %w", ErrNoConvergence, e, err)
	}

	return 1 / (4 * math.Pi) * res.Value / 3 * energyFactor, nil
}

// TotalFlux returns the per-flavor flux at energy e (eV) including, when
// absorption and Z decay are both enabled, the secondary contribution
// from resonant Z production: the flux absorbed out of the spectrum at
// 2e reappears at e as decay neutrinos, weighted by the branching
// fraction. Without absorption no Z bosons are produced and the primary
// flux is returned unchanged.
func (m *Model) TotalFlux(e float64, absorption bool) (float64, error) {
	primary, err := m.PrimaryFlux(e, absorption)
	if err != nil {
		return 0, err
	}
	if !absorption || !m.zDecay {
		return primary, nil
	}

	unabsorbed, err := m.PrimaryFlux(2*e, false)
	if err != nil {
		return 0, err
	}
	absorbed, err := m.PrimaryFlux(2*e, true)
	if err != nil {
		return 0, err
	}
	return primary + zDecayNeutrinoFraction*(unabsorbed-absorbed), nil
}
