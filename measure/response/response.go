package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lowpass/lowpass"
)

// Errors returned by measurement functions.
var (
	ErrNilFilter      = errors.New("response: filter is nil")
	ErrInvalidFFTSize = errors.New("response: fft size must be a power of two >= 2")
)

// Measured estimates the filter's magnitude response |H(f)| from its
// impulse response via an FFT of the given size. The filter's running
// state is preserved.
//
// The returned slice holds fftSize/2+1 bins; bin i corresponds to the
// frequency BinFrequency(i, fftSize, filter.SampleRate()). The impulse
// response is truncated to fftSize samples, so the fft size should be
// large enough for the response to decay below the accuracy of interest
// (a few thousand samples for typical audio cutoffs).
func Measured(f *lowpass.Filter, fftSize int) ([]float64, error) {
	if f == nil {
		return nil, ErrNilFilter
	}

	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, ErrInvalidFFTSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	ir := f.ImpulseResponse(fftSize)

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	// Real input: only the first half of the spectrum is unique.
	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// MeasuredDB is Measured converted to dB (20*log10).
func MeasuredDB(f *lowpass.Filter, fftSize int) ([]float64, error) {
	mag, err := Measured(f, fftSize)
	if err != nil {
		return nil, err
	}

	for i, m := range mag {
		mag[i] = 20 * math.Log10(m)
	}

	return mag, nil
}

// BinFrequency returns the center frequency in Hz of FFT bin i.
func BinFrequency(i, fftSize int, sampleRate float64) float64 {
	return float64(i) * sampleRate / float64(fftSize)
}
