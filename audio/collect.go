// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads ReadAll tolerates in a row.
const maxEmptyReads = 100

// ReadAll drains src into a planar Samples value. It does not close src.
//
// A trailing partial frame (fewer values than channels) is dropped.
func ReadAll(src Source) (*Samples, error) {
	channels := src.Channels()
	rate := src.SampleRate()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: source has %d channels", ErrInvalidArgument, channels)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: source sample rate %d", ErrInvalidArgument, rate)
	}

	// Read whole frames only
	bufSize := max(src.BufSize(), channels)
	bufSize -= bufSize % channels
	buf := make([]float32, bufSize)

	planar := make([][]float32, channels)
	var pending []float32 // samples of a frame split across reads
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			empty = 0
			chunk := buf[:n]
			if len(pending) > 0 {
				chunk = append(pending, chunk...)
				pending = nil
			}

			whole := len(chunk) - len(chunk)%channels
			for i := 0; i < whole; i += channels {
				for c := range channels {
					planar[c] = append(planar[c], chunk[i+c])
				}
			}
			if whole < len(chunk) {
				pending = append([]float32(nil), chunk[whole:]...)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	if len(planar[0]) == 0 {
		return nil, ErrEmptySource
	}

	return newSamplesOwned(rate, planar), nil
}
