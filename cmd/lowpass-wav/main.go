// Command lowpass-wav runs a WAV file through a second-order Butterworth
// low-pass filter, one independent filter instance per channel.
//
// Usage:
//
//	lowpass-wav -cutoff 1000 input.wav output.wav
//	lowpass-wav -cutoff 3000 -v input.wav output.wav
//	lowpass-wav -info -rate 48000 -cutoff 1000
//
// A cutoff at or above the input's Nyquist frequency (or zero/negative)
// selects the filter's bypass mode: the file is copied through unchanged.
// The -info mode prints the magnitude response and pole locations for the
// given rate and cutoff without touching any files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cutoff := flag.Float64("cutoff", 1000, "Cutoff frequency in Hz")
	rate := flag.Float64("rate", 48000, "Sample rate in Hz (only used with -info)")
	info := flag.Bool("info", false, "Print filter response info and exit")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *info {
		return printInfo(os.Stdout, *rate, *cutoff)
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("expected input and output file arguments")
	}

	return filterFile(args[0], args[1], *cutoff, *verbose)
}
