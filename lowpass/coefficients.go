package lowpass

import "math"

// butterworthQ is the fixed quality factor of the maximally-flat
// (Butterworth) response. It is not a parameter of this design.
const butterworthQ = 1 / math.Sqrt2

// Coefficients holds the normalized transfer function coefficients of the
// filter. A0, A1, A2 are the feedforward (numerator) terms and B1, B2 the
// feedback (denominator) terms; the leading denominator term is normalized
// to 1 and not stored.
//
// The recursion realized by these coefficients is
//
//	y = A0*x + A1*x1 + A2*x2 - B1*y1 - B2*y2
type Coefficients struct {
	A0, A1, A2 float64 // feedforward (numerator)
	B1, B2     float64 // feedback (denominator)
}

// bypass is the identity pass-through configuration: with A0=1 and all
// other terms zero the recursion reduces to y = x.
func bypass() Coefficients {
	return Coefficients{A0: 1}
}

// lowpassCoefficients derives the Butterworth low-pass coefficients for the
// given cutoff via the bilinear transform. Cutoffs outside (0, sampleRate/2)
// yield the bypass configuration instead; the debug-build notice emitted on
// that path never alters the returned values.
func lowpassCoefficients(cutoff, sampleRate float64) Coefficients {
	if cutoff <= 0 || cutoff >= sampleRate/2 {
		bypassNotice(cutoff, sampleRate)
		return bypass()
	}

	w := 2 * math.Pi * cutoff / sampleRate
	sinW := math.Sin(w)
	cosW := math.Cos(w)
	alpha := sinW / (2 * butterworthQ)

	a0 := (1 - cosW) / 2
	a1 := 1 - cosW
	a2 := (1 - cosW) / 2
	norm := 1 / (1 + alpha)

	return Coefficients{
		A0: a0 * norm,
		A1: a1 * norm,
		A2: a2 * norm,
		B1: -2 * cosW * norm,
		B2: (1 - alpha) * norm,
	}
}
