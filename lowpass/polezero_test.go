package lowpass

import (
	"math/cmplx"
	"testing"
)

func TestPoles_ConjugatePair(t *testing.T) {
	c := lowpassCoefficients(1000, 48000)
	poles := c.Poles()

	if !almostEqual(real(poles[0]), real(poles[1]), eps) {
		t.Errorf("pole real parts differ: %v, %v", poles[0], poles[1])
	}
	if !almostEqual(imag(poles[0]), -imag(poles[1]), eps) {
		t.Errorf("poles not conjugate: %v, %v", poles[0], poles[1])
	}
	// Hand-derived pole radius at 48 kHz / 1 kHz: sqrt(B2).
	if !almostEqual(cmplx.Abs(poles[0]), 0.91159507970740917, 1e-9) {
		t.Errorf("|p| = %.17g, want 0.91159507970740917", cmplx.Abs(poles[0]))
	}
}

func TestZeros_AtMinusOne(t *testing.T) {
	// The lowpass numerator (1-cos w)/2 * (1 + 2z^-1 + z^-2) has a double
	// zero at z = -1, which pins the Nyquist response to zero.
	c := lowpassCoefficients(1000, 48000)
	zeros := c.Zeros()

	for i, z := range zeros {
		if !almostEqual(real(z), -1, 1e-9) || !almostEqual(imag(z), 0, 1e-9) {
			t.Errorf("zero %d = %v, want -1", i, z)
		}
	}
}

func TestStable_Bypass(t *testing.T) {
	if !bypass().Stable() {
		t.Error("bypass configuration reported unstable")
	}
}

func TestStable_Unstable(t *testing.T) {
	// A pole outside the unit circle must be reported.
	c := Coefficients{A0: 1, B1: -2.1, B2: 1.1}
	if c.Stable() {
		t.Error("coefficients with |p| > 1 reported stable")
	}
}

func TestQuadraticRoots_Degenerate(t *testing.T) {
	// Linear: b*z + c = 0.
	r := quadraticRoots(0, 2, -4)
	if r[0] != complex(2, 0) || r[1] != 0 {
		t.Errorf("linear roots = %v", r)
	}

	// Fully degenerate.
	if r := quadraticRoots(0, 0, 1); r != ([2]complex128{}) {
		t.Errorf("degenerate roots = %v", r)
	}
}
