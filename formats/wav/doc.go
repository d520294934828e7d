// SPDX-License-Identifier: EPL-2.0

// Package wav encodes and decodes 16-bit PCM WAV files.
//
// # Encoding
//
// Encode turns decoded audio into a canonical 44-byte-header WAV file:
//
//	samples, _ := audio.NewSamples(44100, left, right)
//	data, err := wav.Encode(samples)
//
// Samples are clamped to [-1, 1]. Negative values are scaled by 32768 and
// the rest by 32767, so -1 encodes as -32768 and 1 as 32767. The payload is
// interleaved frame by frame.
//
// EncodeTo streams the same bytes to an io.Writer. WriteWAV16 writes samples
// that are already int16:
//
//	err := wav.WriteWAV16(file, 8000, 1, pcm)
//
// # Decoding
//
// Decoder reads WAV files through github.com/go-audio/wav, which skips
// chunks it does not know:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// Only 16-bit PCM is accepted. ParseHeader reads a canonical header
// without decoding samples.
//
// # File Format
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     channels
//	24      4     sample rate
//	28      4     byte rate = rate * channels * 2
//	32      2     block align = channels * 2
//	34      2     16
//	36      4     "data"
//	40      4     data size = frames * channels * 2
//
// All integers are little-endian.
package wav
