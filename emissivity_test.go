package nuflux

import (
	"errors"
	"math"
	"testing"
)

func TestEmissivityRedshiftFactorOutsideWindow(t *testing.T) {
	tests := []struct {
		name string
		z    float64
	}{
		{"below z_min", -0.5},
		{"at z_min", 0},
		{"at z_max", 20},
		{"above z_max", 25},
	}
	for _, tt := range tests {
		got := emissivityRedshiftFactor(tt.z, 0, 20, 1, 1)
		if got != 0 {
			t.Errorf("%s: factor(%g) = %g, want exactly 0", tt.name, tt.z, got)
		}
	}
}

func TestEmissivityRedshiftFactorInterior(t *testing.T) {
	// n = α collapses the factor to (1+z)⁰ = 1.
	for _, z := range []float64{0.1, 1, 5, 19.9} {
		if got := emissivityRedshiftFactor(z, 0, 20, 1, 1); got != 1 {
			t.Errorf("factor(%g) with n=α = %g, want 1", z, got)
		}
	}
	// n-α = 1 gives (1+z).
	assertFloat(t, "factor(3) with n-α=1", emissivityRedshiftFactor(3, 0, 20, 2, 1), 4)
	// n-α = -2 gives (1+z)⁻².
	assertFloat(t, "factor(1) with n-α=-2", emissivityRedshiftFactor(1, 0, 20, 0, 2), 0.25)
}

func TestEmissivityEnergyFactor(t *testing.T) {
	// η0·j·e^(-α) with the Ebe04 defaults.
	got, err := emissivityEnergyFactor(1e18, 1e-5, 3e6, 1)
	if err != nil {
		t.Fatal(err)
	}
	assertRel(t, "energy factor", got, 3e-17, 1e-12)

	// α = 2 steepens the spectrum.
	got2, err := emissivityEnergyFactor(1e18, 1e-5, 3e6, 2)
	if err != nil {
		t.Fatal(err)
	}
	assertRel(t, "energy factor α=2", got2, 3e-35, 1e-12)
}

func TestEmissivityEnergyFactorPowerLaw(t *testing.T) {
	// Doubling e scales the factor by 2^(-α).
	a, err := emissivityEnergyFactor(1e20, 1e-5, 3e6, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := emissivityEnergyFactor(2e20, 1e-5, 3e6, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	assertRel(t, "b/a", b/a, math.Pow(2, -1.5), 1e-12)
}

func TestEmissivityEnergyFactorNonPositive(t *testing.T) {
	for _, e := range []float64{0, -1e18} {
		_, err := emissivityEnergyFactor(e, 1e-5, 3e6, 1)
		if err == nil {
			t.Fatalf("energy factor at e = %g should fail", e)
		}
		if !errors.Is(err, ErrDomain) {
			t.Errorf("error should wrap ErrDomain, got %v", err)
		}
	}
}
