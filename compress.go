// SPDX-License-Identifier: EPL-2.0

package wavfit

import (
	"fmt"

	"github.com/ik5/wavfit/audio"
	"github.com/ik5/wavfit/budget"
	"github.com/ik5/wavfit/formats/wav"
)

// Result is the outcome of Compress.
type Result struct {
	// Data is the complete WAV file.
	Data []byte

	SourceRate int // frame rate of the decoded input
	SampleRate int // frame rate written to Data
	Channels   int
	Frames     int

	// SourceSizeKB is the estimated PCM16 size of the input.
	SourceSizeKB float64
	// SizeKB is the size of Data, header included.
	SizeKB float64
}

type options struct {
	mono bool
}

// Option changes how Compress treats the signal.
type Option func(*options)

// WithMono averages all channels into one before the rate is solved,
// halving the size of stereo input on its own.
func WithMono() Option {
	return func(o *options) { o.mono = true }
}

// Compress reads src to the end and encodes it as a 16-bit PCM WAV file of
// about targetSizeMB megabytes.
//
// The new frame rate comes from budget.SolveFrameRate. When that rate is
// not lower than the source rate, the signal is encoded unchanged. src is
// not closed.
func Compress(src audio.Source, targetSizeMB float64, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	samples, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	if o.mono {
		samples = audio.Downmix(samples)
	}

	rate := samples.SampleRate()
	currentKB, err := budget.EstimateSizeKB(float64(rate), audio.BitDepth,
		float64(samples.Channels()), samples.Duration())
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	newRate, err := budget.SolveFrameRate(rate, targetSizeMB, currentKB)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	if newRate < rate {
		samples, err = audio.Resample(samples, newRate)
		if err != nil {
			return nil, fmt.Errorf("resample: %w", err)
		}
	}

	data, err := wav.Encode(samples)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:         data,
		SourceRate:   rate,
		SampleRate:   samples.SampleRate(),
		Channels:     samples.Channels(),
		Frames:       samples.Frames(),
		SourceSizeKB: currentKB,
		SizeKB:       float64(len(data)) / budget.BytesPerKilobyte,
	}, nil
}
