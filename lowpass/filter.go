package lowpass

import "errors"

// ErrInvalidSampleRate is returned by New for a non-positive sample rate.
var ErrInvalidSampleRate = errors.New("lowpass: sample rate must be positive")

// Filter is a single-channel second-order Butterworth low-pass filter.
// It implements Direct Form I processing: the history holds the two most
// recent inputs and the two most recent outputs.
//
// In a multi-channel setting each channel owns an independent Filter;
// instances share no state.
type Filter struct {
	Coefficients

	sampleRate float64
	cutoff     float64

	x1, x2 float64 // input history, x1 newer
	y1, y2 float64 // output history, y1 newer
}

// New creates a filter with a fixed sample rate and an initial cutoff.
// Coefficients are computed synchronously before New returns; history
// starts at zero.
//
// The sample rate is validated here because every later derivation divides
// by it. The cutoff is not: out-of-range cutoffs select bypass.
func New(sampleRate, cutoff float64) (*Filter, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	f := &Filter{
		sampleRate: sampleRate,
		cutoff:     cutoff,
	}
	f.Coefficients = lowpassCoefficients(cutoff, sampleRate)

	return f, nil
}

// SampleRate returns the sample rate fixed at construction.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Cutoff returns the current cutoff frequency in Hz.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// SetCutoff updates the cutoff frequency and recomputes the coefficients
// synchronously, so no ProcessSample call ever observes a stale or mixed
// coefficient set. Setting the current value again (exact equality) is a
// no-op that leaves the coefficients bit-identical. History is never
// invalidated by a cutoff change.
func (f *Filter) SetCutoff(hz float64) {
	if hz == f.cutoff {
		return
	}

	f.cutoff = hz
	f.Coefficients = lowpassCoefficients(hz, f.sampleRate)
}

// ProcessSample filters one input sample and returns the output.
//
// The input is unconstrained: no clamping or saturation is applied, and
// non-finite values propagate through the recursion per IEEE-754. Once a
// NaN or infinity enters the history, outputs stay non-finite until clean
// samples flush it out or Reset is called.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.A0*x + f.A1*f.x1 + f.A2*f.x2 - f.B1*f.y1 - f.B2*f.y2

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc, scalar;
// bit-identical to calling ProcessSample per element.
func (f *Filter) ProcessBlock(buf []float64) {
	a0, a1, a2 := f.A0, f.A1, f.A2
	b1, b2 := f.B1, f.B2
	x1, x2 := f.x1, f.x2
	y1, y2 := f.y1, f.y2

	for i, x := range buf {
		y := a0*x + a1*x1 + a2*x2 - b1*y1 - b2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	f.x1, f.x2 = x1, x2
	f.y1, f.y2 = y1, y2
}

// ProcessBlockTo filters src into dst, which must be at least as long as
// src. Zero-alloc. An empty src is a no-op.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the history to zero. Coefficients, cutoff and sample rate
// are untouched. This is an addition over the minimal filter contract:
// without it, history persists for the instance's entire life.
func (f *Filter) Reset() {
	f.x1, f.x2 = 0, 0
	f.y1, f.y2 = 0, 0
}

// State returns the current history as [x1, x2, y1, y2].
func (f *Filter) State() [4]float64 {
	return [4]float64{f.x1, f.x2, f.y1, f.y2}
}

// SetState restores a previously saved history.
func (f *Filter) SetState(state [4]float64) {
	f.x1, f.x2 = state[0], state[1]
	f.y1, f.y2 = state[2], state[3]
}
