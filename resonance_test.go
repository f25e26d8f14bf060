package nuflux

import (
	"errors"
	"testing"
)

func TestResonanceEnergy(t *testing.T) {
	tests := []struct {
		mass float64
		want float64
	}{
		{0.1, 4.15872e22},
		{1.0, 4.15872e21},
		{2.0, 2.07936e21},
	}
	for _, tt := range tests {
		got, err := ResonanceEnergy(tt.mass)
		if err != nil {
			t.Fatalf("ResonanceEnergy(%g) error: %v", tt.mass, err)
		}
		assertRel(t, "Eres", got, tt.want, 1e-12)
	}
}

func TestResonanceEnergyScalesInversely(t *testing.T) {
	a, err := ResonanceEnergy(0.05)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ResonanceEnergy(0.1)
	if err != nil {
		t.Fatal(err)
	}
	assertRel(t, "Eres(m)/Eres(2m)", a/b, 2, 1e-12)
}

func TestResonanceEnergyMassless(t *testing.T) {
	for _, mass := range []float64{0, -0.1} {
		_, err := ResonanceEnergy(mass)
		if err == nil {
			t.Fatalf("ResonanceEnergy(%g) should fail", mass)
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("error should wrap ErrInvalidParameter, got %v", err)
		}
	}
}
