package nuflux_test

import (
	"testing"

	"github.com/nu-flux/nuflux"
)

func benchModel(b *testing.B) *nuflux.Model {
	b.Helper()
	m, err := nuflux.NewModel(nuflux.ModelConfig{NeutrinoMass: 0.1})
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// BenchmarkSurvivalProbability measures one suppression evaluation inside
// the resonance window.
func BenchmarkSurvivalProbability(b *testing.B) {
	m := benchModel(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.SurvivalProbability(1e22, 2); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPrimaryFlux measures one full redshift integral at an energy
// inside the resonance window.
func BenchmarkPrimaryFlux(b *testing.B) {
	m := benchModel(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.PrimaryFlux(1e22, true); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSample measures a full grid point: total flux with and without
// absorption, including the secondary Z-decay term.
func BenchmarkSample(b *testing.B) {
	m := benchModel(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Sample(1e22); err != nil {
			b.Fatal(err)
		}
	}
}
