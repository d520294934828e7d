// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavfit/audio"
	"github.com/ik5/wavfit/utils"
)

// Encode renders s as a complete 16-bit PCM WAV file.
//
// The result is HeaderSize + frames*channels*2 bytes. Samples are written
// frame by frame, channel by channel, clamped to [-1, 1] and quantized with
// utils.Float32ToInt16.
func Encode(s *audio.Samples) ([]byte, error) {
	h, err := headerFor(s)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+int(h.DataSize))
	h.put(out)

	channels := s.Channels()
	offset := HeaderSize
	for f := range s.Frames() {
		for c := range channels {
			binary.LittleEndian.PutUint16(out[offset:], uint16(utils.Float32ToInt16(s.At(f, c))))
			offset += bytesPerPCM16
		}
	}

	return out, nil
}

// EncodeTo writes the same bytes as Encode to w without holding the
// whole file in memory.
func EncodeTo(w io.Writer, s *audio.Samples) error {
	h, err := headerFor(s)
	if err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	h.put(header)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	channels := s.Channels()
	framesPerChunk := max(chunkSize/channels, 1)
	buf := make([]byte, 0, framesPerChunk*channels*bytesPerPCM16)

	frames := s.Frames()
	for start := 0; start < frames; start += framesPerChunk {
		buf = buf[:0]
		for f := start; f < min(start+framesPerChunk, frames); f++ {
			for c := range channels {
				buf = binary.LittleEndian.AppendUint16(buf, uint16(utils.Float32ToInt16(s.At(f, c))))
			}
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func headerFor(s *audio.Samples) (Header, error) {
	if err := s.Validate(); err != nil {
		return Header{}, err
	}

	return NewHeader(s.SampleRate(), s.Channels(), s.Frames())
}
