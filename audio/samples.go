// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Samples is a fully decoded, immutable multi-channel signal.
// Channels are stored planar, one slice per channel, all of equal length.
type Samples struct {
	sampleRate int
	channels   [][]float32
}

// NewSamples copies channels into a new Samples value.
//
// At least one channel with at least one frame is required, every channel
// must have the same length and sampleRate must be positive.
func NewSamples(sampleRate int, channels ...[]float32) (*Samples, error) {
	if err := validate(sampleRate, channels); err != nil {
		return nil, err
	}

	owned := make([][]float32, len(channels))
	for c, data := range channels {
		owned[c] = append([]float32(nil), data...)
	}

	return &Samples{sampleRate: sampleRate, channels: owned}, nil
}

// newSamplesOwned wraps channels without copying. Callers hand over ownership.
func newSamplesOwned(sampleRate int, channels [][]float32) *Samples {
	return &Samples{sampleRate: sampleRate, channels: channels}
}

func validate(sampleRate int, channels [][]float32) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidArgument, sampleRate)
	}
	if len(channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidArgument)
	}

	frames := len(channels[0])
	if frames == 0 {
		return fmt.Errorf("%w: no frames", ErrInvalidArgument)
	}
	for c := 1; c < len(channels); c++ {
		if len(channels[c]) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrInvalidArgument, c, len(channels[c]), frames)
		}
	}

	return nil
}

// Validate reports whether s is a usable signal. A nil or zero value is not.
func (s *Samples) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil samples", ErrInvalidArgument)
	}

	return validate(s.sampleRate, s.channels)
}

func (s *Samples) SampleRate() int { return s.sampleRate }
func (s *Samples) Channels() int   { return len(s.channels) }

// Frames is the number of samples per channel.
func (s *Samples) Frames() int {
	if len(s.channels) == 0 {
		return 0
	}
	return len(s.channels[0])
}

// Duration in seconds.
func (s *Samples) Duration() float64 {
	if s.sampleRate <= 0 {
		return 0
	}
	return float64(s.Frames()) / float64(s.sampleRate)
}

// Length is Duration as a time.Duration.
func (s *Samples) Length() time.Duration {
	return time.Duration(s.Duration() * float64(time.Second))
}

// At returns the sample of channel ch at frame.
func (s *Samples) At(frame, ch int) float32 {
	return s.channels[ch][frame]
}

// Channel returns a copy of channel ch.
func (s *Samples) Channel(ch int) []float32 {
	return append([]float32(nil), s.channels[ch]...)
}

// Interleave returns the samples frame-major, channel-minor.
func (s *Samples) Interleave() []float32 {
	channels := len(s.channels)
	out := make([]float32, s.Frames()*channels)
	for c, data := range s.channels {
		for f, v := range data {
			out[f*channels+c] = v
		}
	}

	return out
}
