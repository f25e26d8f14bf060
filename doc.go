// Package nuflux computes the flux of ultra-high-energy cosmogenic
// neutrinos observed at Earth, including absorption on the relic
// neutrino background through resonant Z-boson production
// (Eberle et al. 2004, hep-ph/0401203).
//
// nuflux provides a pure-Go Model combining a power-law source
// emissivity, the Hubble expansion rate, and an energy- and
// redshift-dependent survival probability into a single redshift
// integral, with an optional secondary contribution from Z decay
// back into neutrino pairs. The adaptive quadrature lives in the
// nuflux/quad subpackage.
//
// Basic usage:
//
//	m, err := nuflux.NewModel(nuflux.ModelConfig{NeutrinoMass: 0.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	flux, err := m.TotalFlux(1e21, true)
package nuflux
