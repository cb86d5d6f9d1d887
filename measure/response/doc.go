// Package response measures the frequency response of a lowpass filter
// numerically, independently of the closed-form expressions in package
// lowpass.
//
// [Measured] estimates the magnitude spectrum by transforming the filter's
// impulse response with an FFT; [Sweep] generates bounded sine sweeps for
// long-run stability checks. Both exist so the analytic response formulas
// and the actual sample recursion can be verified against each other.
package response
