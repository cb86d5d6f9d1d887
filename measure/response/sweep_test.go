package response

import (
	"errors"
	"math"
	"testing"
)

func TestSweep_Validate(t *testing.T) {
	cases := []struct {
		name  string
		sweep Sweep
		want  error
	}{
		{"valid", Sweep{20, 20000, 1, 48000}, nil},
		{"zero start", Sweep{0, 20000, 1, 48000}, ErrInvalidFrequency},
		{"negative end", Sweep{20, -1, 1, 48000}, ErrInvalidFrequency},
		{"reversed", Sweep{20000, 20, 1, 48000}, ErrFrequencyOrder},
		{"equal", Sweep{440, 440, 1, 48000}, ErrFrequencyOrder},
		{"zero duration", Sweep{20, 20000, 0, 48000}, ErrInvalidDuration},
		{"zero rate", Sweep{20, 20000, 1, 0}, ErrInvalidSampleRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sweep.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSweep_Generate(t *testing.T) {
	sw := &Sweep{StartFreq: 20, EndFreq: 20000, Duration: 0.25, SampleRate: 48000}

	sig, err := sw.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(sig) != 12000 {
		t.Fatalf("len = %d, want 12000", len(sig))
	}

	// Unit amplitude, phase starts at zero.
	if sig[0] != 0 {
		t.Errorf("sig[0] = %v, want 0", sig[0])
	}
	for i, v := range sig {
		if v < -1 || v > 1 {
			t.Fatalf("sig[%d] = %v out of [-1, 1]", i, v)
		}
	}

	// Must actually oscillate.
	var maxAbs float64
	for _, v := range sig {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs < 0.9 {
		t.Errorf("peak amplitude %v, want close to 1", maxAbs)
	}
}

func TestSweep_GenerateInvalid(t *testing.T) {
	sw := &Sweep{StartFreq: -1, EndFreq: 20000, Duration: 1, SampleRate: 48000}
	if _, err := sw.Generate(); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("err = %v, want ErrInvalidFrequency", err)
	}
}

func TestSweep_Deterministic(t *testing.T) {
	sw := &Sweep{StartFreq: 20, EndFreq: 20000, Duration: 0.1, SampleRate: 48000}

	a, err := sw.Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := sw.Generate()
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}
