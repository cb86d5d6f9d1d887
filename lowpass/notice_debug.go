//go:build debug

package lowpass

import "log"

// bypassNotice reports an out-of-range cutoff in debug builds. It is purely
// diagnostic: the bypass coefficients are computed the same way whether or
// not this fires.
func bypassNotice(cutoff, sampleRate float64) {
	log.Printf("lowpass: cutoff %g Hz outside (0, %g) at sample rate %g Hz, filter bypassed",
		cutoff, sampleRate/2, sampleRate)
}
