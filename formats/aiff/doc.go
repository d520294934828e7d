// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Decoding goes through github.com/go-audio/aiff. Only 16-bit PCM is
// accepted; any channel count and sample rate are fine.
//
//	source, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF file
//	}
//
// Input that cannot seek is buffered in memory first.
//
// AIFF stores samples big-endian and the sample rate as an 80-bit float;
// the decoder hides both and yields float32 samples in [-1, 1).
package aiff
