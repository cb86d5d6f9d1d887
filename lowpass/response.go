package lowpass

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the
// coefficients at the given frequency (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.A0, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	den := complex(1, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression that
// avoids complex exponentials.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2

	num := (a0-a2)*(a0-a2) + a1*a1 + (a1*(a0+a2)+a0*a2*cw)*cw
	den := (1-b2)*(1-b2) + b1*b1 + (b1*(b2+1)+cw*b2)*cw

	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// ImpulseResponse computes n samples of the impulse response h[n] by
// feeding an impulse through the filter. The history is saved and restored
// so this method does not disturb a running stream.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := f.State()
	f.Reset()

	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	f.SetState(saved)

	return ir
}
