// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/wavfit/audio"
	"github.com/ik5/wavfit/formats/internal/pcmsrc"
)

// frameReader is the part of goflac.Stream used here, to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	dec        frameReader
	sampleRate int
	channels   int
	scale      float32

	cur *frame.Frame // frame being drained
	pos int          // next sample index inside cur
	eof bool
}

func newSource(dec frameReader, sampleRate, channels, bitDepth int) *source {
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      pcmsrc.Scale(bitDepth),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return pcmsrc.DefaultBufSize - pcmsrc.DefaultBufSize%s.channels }

func (s *source) Close() error {
	if err := s.dec.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// next loads the following frame. It reports false at the end of the stream.
func (s *source) next() (bool, error) {
	f, err := s.dec.ParseNext()
	if errors.Is(err, io.EOF) {
		s.eof = true
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if len(f.Subframes) != s.channels {
		return false, fmt.Errorf("%w: %d subframes, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	s.cur, s.pos = f, 0
	return true, nil
}

func (s *source) remaining() int {
	if s.cur == nil {
		return 0
	}
	return len(s.cur.Subframes[0].Samples) - s.pos
}

// ReadSamples interleaves the subframes of consecutive FLAC frames into dst.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	written := 0

	for written < frames {
		if s.remaining() == 0 {
			if s.eof {
				break
			}
			ok, err := s.next()
			if err != nil {
				return written * s.channels, err
			}
			if !ok {
				break
			}
			continue
		}

		n := min(s.remaining(), frames-written)
		for c, sub := range s.cur.Subframes {
			for i := range n {
				dst[(written+i)*s.channels+c] = float32(sub.Samples[s.pos+i]) / s.scale
			}
		}
		s.pos += n
		written += n
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}

	return written * s.channels, nil
}

// Decoder reads FLAC files of any bit depth through github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Extensions() []string { return []string{"flac"} }

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels < 1 || info.SampleRate < 1 ||
		info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, ErrUnsupportedFlacLayout
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample)), nil
}
