package response

import (
	"errors"
	"math"
)

// Errors returned by sweep generation.
var (
	ErrInvalidFrequency  = errors.New("response: frequency must be positive")
	ErrInvalidDuration   = errors.New("response: duration must be positive")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrFrequencyOrder    = errors.New("response: start frequency must be less than end frequency")
)

// Sweep generates a unit-amplitude logarithmic sine sweep. Each octave
// takes the same amount of time, so the sweep spends equal time in every
// frequency band — a useful bounded stress signal for verifying that a
// filter's output stays bounded across its whole passband and stopband.
type Sweep struct {
	StartFreq  float64 // start frequency in Hz
	EndFreq    float64 // end frequency in Hz
	Duration   float64 // sweep duration in seconds
	SampleRate float64 // sample rate in Hz
}

// Validate checks that the Sweep parameters are valid.
func (s *Sweep) Validate() error {
	if s.StartFreq <= 0 || s.EndFreq <= 0 {
		return ErrInvalidFrequency
	}

	if s.StartFreq >= s.EndFreq {
		return ErrFrequencyOrder
	}

	if s.Duration <= 0 {
		return ErrInvalidDuration
	}

	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// Generate creates the sweep signal.
//
// The instantaneous frequency rises exponentially from StartFreq to
// EndFreq; integrating the frequency gives the phase:
//
//	x(t) = sin(2π * f1 * T / ln(f2/f1) * (exp(t/T * ln(f2/f1)) - 1))
func (s *Sweep) Generate() ([]float64, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}

	n := int(math.Round(s.Duration * s.SampleRate))
	out := make([]float64, n)

	T := s.Duration
	lnRatio := math.Log(s.EndFreq / s.StartFreq)

	for i := range out {
		t := float64(i) / s.SampleRate
		phase := 2 * math.Pi * s.StartFreq * T / lnRatio * (math.Exp(t/T*lnRatio) - 1)
		out[i] = math.Sin(phase)
	}

	return out, nil
}
