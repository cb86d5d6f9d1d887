// Package lowpass implements a single-channel second-order (biquad)
// Butterworth low-pass filter for real-time audio paths.
//
// A [Filter] combines coefficient derivation (bilinear transform of the
// analog Butterworth prototype, fixed Q = 1/sqrt(2)) with Direct Form I
// per-sample processing over the filter's own running history. Cutoff
// frequencies outside the open interval (0, sampleRate/2) select a defined
// bypass configuration where the filter passes input through unchanged;
// an out-of-range cutoff is never an error.
//
// Instances are not safe for concurrent use. The owning audio path must
// drive ProcessSample and SetCutoff from a single goroutine; no locking is
// built in, to keep the processing path free of unbounded-latency risk.
package lowpass
