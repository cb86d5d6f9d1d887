package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-lowpass/lowpass"
)

// Number of frames processed per chunk.
const chunkFrames = 8192

// wavInput holds an open, validated WAV file.
type wavInput struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file.
func openWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if verbose {
		log.Printf("input: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	return &wavInput{
		file:     f,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInput) Close() error {
	return w.file.Close()
}

// newChannelFilters creates one independent filter per channel.
func newChannelFilters(channels int, sampleRate, cutoff float64) ([]*lowpass.Filter, error) {
	filters := make([]*lowpass.Filter, channels)
	for ch := range channels {
		f, err := lowpass.New(sampleRate, cutoff)
		if err != nil {
			return nil, fmt.Errorf("failed to create filter for channel %d: %w", ch, err)
		}
		filters[ch] = f
	}
	return filters, nil
}

// maxSampleValue returns the largest positive sample value for a bit depth.
func maxSampleValue(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1)) - 1
}

// clampInt rounds v to the nearest integer and clamps it to the signed
// range of the bit depth. Rounding keeps the bypass path bit-exact across
// the int-to-float round trip.
func clampInt(v float64, bitDepth int) int {
	limit := float64(int64(1) << (bitDepth - 1))
	if v >= limit-1 {
		return int(limit - 1)
	}
	if v < -limit {
		return int(-limit)
	}
	return int(math.Round(v))
}

// filterChunk runs interleaved int samples through the per-channel filters
// in place. len(data) must be a multiple of the channel count.
func filterChunk(data []int, filters []*lowpass.Filter, bitDepth int) {
	channels := len(filters)
	maxVal := maxSampleValue(bitDepth)
	invMaxVal := 1 / maxVal

	for i, s := range data {
		f := filters[i%channels]
		y := f.ProcessSample(float64(s) * invMaxVal)
		data[i] = clampInt(y*maxVal, bitDepth)
	}
}

// filterFile streams a WAV file through the filter.
func filterFile(inPath, outPath string, cutoff float64, verbose bool) error {
	in, err := openWAVInput(inPath, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	encoder := wav.NewEncoder(out, in.rate, in.bitDepth, in.channels, 1)

	filters, err := newChannelFilters(in.channels, float64(in.rate), cutoff)
	if err != nil {
		return err
	}

	if verbose && (cutoff <= 0 || cutoff >= float64(in.rate)/2) {
		log.Printf("cutoff %g Hz outside (0, %g): passing audio through unchanged",
			cutoff, float64(in.rate)/2)
	}

	buf := &audio.IntBuffer{
		Data:   make([]int, chunkFrames*in.channels),
		Format: in.format,
	}

	var frames int64
	for {
		n, err := in.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read samples: %w", err)
		}
		if n == 0 {
			break
		}

		chunk := buf.Data[:n]
		filterChunk(chunk, filters, in.bitDepth)

		if err := encoder.Write(&audio.IntBuffer{Data: chunk, Format: in.format}); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
		frames += int64(n / in.channels)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	if verbose {
		log.Printf("filtered %d frames at cutoff %g Hz", frames, cutoff)
	}

	return nil
}

// printInfo writes a magnitude response table and pole report for the
// given sample rate and cutoff.
func printInfo(w io.Writer, sampleRate, cutoff float64) error {
	f, err := lowpass.New(sampleRate, cutoff)
	if err != nil {
		return err
	}

	nyquist := sampleRate / 2
	if cutoff <= 0 || cutoff >= nyquist {
		fmt.Fprintf(w, "cutoff %g Hz outside (0, %g): bypass (unity gain at all frequencies)\n",
			cutoff, nyquist)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "frequency\tmagnitude\t")
	cutoffPrinted := false
	for freq := 100.0; freq < nyquist; freq *= 2 {
		fmt.Fprintf(tw, "%.0f Hz\t%+.2f dB\t\n", freq, f.MagnitudeDB(freq, sampleRate))
		if freq == cutoff {
			cutoffPrinted = true
		}
	}
	if !cutoffPrinted {
		fmt.Fprintf(tw, "%.0f Hz\t%+.2f dB\t\n", cutoff, f.MagnitudeDB(cutoff, sampleRate))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	poles := f.Poles()
	fmt.Fprintf(w, "poles: %.4f%+.4fi, %.4f%+.4fi\n",
		real(poles[0]), imag(poles[0]), real(poles[1]), imag(poles[1]))
	fmt.Fprintf(w, "stable: %v\n", f.Stable())

	return nil
}
