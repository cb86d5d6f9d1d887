//go:build !debug

package lowpass

// bypassNotice compiles to nothing outside debug builds.
func bypassNotice(cutoff, sampleRate float64) {}
