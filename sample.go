package nuflux

// FluxSample is one energy grid point of the computed spectrum, holding
// the total flux with and without relic-neutrino absorption.
type FluxSample struct {
	Energy             float64 `json:"energy"`
	FluxNoAbsorption   float64 `json:"flux_no_absorption"`
	FluxWithAbsorption float64 `json:"flux_with_absorption"`
}
