package nuflux

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EnergyGrid returns count uniformly spaced energies spanning [min, max].
// Energies must be strictly positive and count at least 2.
func EnergyGrid(min, max float64, count int) ([]float64, error) {
	if min <= 0 || max <= min {
		return nil, fmt.Errorf("%w: energy grid [%g, %g] eV, want 0 < min < max",
			ErrInvalidParameter, min, max)
	}
	if count < 2 {
		return nil, fmt.Errorf("%w: energy grid count %d, want ≥ 2", ErrInvalidParameter, count)
	}

	step := (max - min) / float64(count-1)
	grid := make([]float64, count)
	for i := range grid {
		grid[i] = min + float64(i)*step
	}
	grid[count-1] = max
	return grid, nil
}

// EnergyGrid returns a uniform grid over the model's configured energy
// bounds.
func (m *Model) EnergyGrid(count int) ([]float64, error) {
	return EnergyGrid(m.eMin, m.eMax, count)
}

// Sample computes the total flux at one energy, with and without
// absorption.
func (m *Model) Sample(e float64) (FluxSample, error) {
	noAbs, err := m.TotalFlux(e, false)
	if err != nil {
		return FluxSample{}, err
	}
	withAbs, err := m.TotalFlux(e, true)
	if err != nil {
		return FluxSample{}, err
	}
	return FluxSample{Energy: e, FluxNoAbsorption: noAbs, FluxWithAbsorption: withAbs}, nil
}

// Sweep computes a FluxSample for every energy, in input order. Each
// sample is independent, so the sweep runs in parallel bounded by
// GOMAXPROCS. The first error aborts the sweep and no partial results
// are returned.
func (m *Model) Sweep(ctx context.Context, energies []float64) ([]FluxSample, error) {
	samples := make([]FluxSample, len(energies))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range energies {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := m.Sample(e)
			if err != nil {
				return fmt.Errorf("sweep at e = %g eV: %w", e, err)
			}
			samples[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}

// WriteTable writes samples as tab-separated text, one line per sample:
// energy, flux without absorption, flux with absorption. When energy
// weighting is enabled both fluxes are scaled by e^α.
func (m *Model) WriteTable(w io.Writer, samples []FluxSample) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		noAbs := s.FluxNoAbsorption
		withAbs := s.FluxWithAbsorption
		if m.weighting {
			scale := math.Pow(s.Energy, m.alpha)
			noAbs *= scale
			withAbs *= scale
		}
		if _, err := fmt.Fprintf(bw, "%g\t%g\t%g\n", s.Energy, noAbs, withAbs); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Filename returns the export file name for the given prefix, encoding
// the parameters that identify a run: neutrino mass, z_max, source
// index, spectral index, and the Z-decay flag.
func (m *Model) Filename(prefix string) string {
	return fmt.Sprintf("%s_H0H1_m%g_zmax%d_n%d_alpha%d_Zdecay%t.txt",
		prefix, m.mass, int(m.zMax), int(m.n), int(m.alpha), m.zDecay)
}
