// SPDX-License-Identifier: EPL-2.0

package budget

import (
	"fmt"
	"math"
)

const (
	BitsPerByte          = 8
	BytesPerKilobyte     = 1024
	KilobytesPerMegabyte = 1024
)

// EstimateSizeKB returns the size in kilobytes of durationSec seconds of raw
// PCM at the given sample rate, bit depth and channel count:
//
//	sampleRate * bitDepth * channels * durationSec / (8 * 1024)
//
// The result is not rounded. Every argument must be finite and positive.
func EstimateSizeKB(sampleRate, bitDepth, channels, durationSec float64) (float64, error) {
	params := [...]struct {
		name  string
		value float64
	}{
		{"sample rate", sampleRate},
		{"bit depth", bitDepth},
		{"channels", channels},
		{"duration", durationSec},
	}
	for _, p := range params {
		if err := positive(p.name, p.value); err != nil {
			return 0, err
		}
	}

	bits := sampleRate * bitDepth * channels * durationSec
	return bits / (BitsPerByte * BytesPerKilobyte), nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s %v", ErrInvalidArgument, name, v)
	}
	return nil
}
