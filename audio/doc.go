// SPDX-License-Identifier: EPL-2.0

// Package audio provides the signal types and transformations used by wavfit.
//
// The package contains:
//   - Source, a stream of interleaved float32 samples produced by decoders
//   - Samples, an immutable planar signal collected from a Source
//   - Resample and Downmix, pure transformations on Samples
//   - Registry, a decoder lookup by file extension
//
// # Collecting a Source
//
// Decoders stream audio. ReadAll drains a stream into memory:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//
//	samples, err := audio.ReadAll(src)
//
// The returned Samples holds one slice per channel and every channel has the
// same number of frames.
//
// # Resampling
//
// Resample changes the sample rate using Catmull-Rom cubic interpolation:
//
//	low, err := audio.Resample(samples, 8000)
//
// The output has floor(frames * dstRate / srcRate) frames. Downsampling
// applies a one-pole low-pass filter first.
//
// # Channel Mixing
//
// Downmix averages all channels into one:
//
//	mono := audio.Downmix(samples)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.RegisterDecoder(wav.Decoder{})
//	decoder, ok := registry.Lookup("input.wav")
//
// # Sample Format
//
// Samples are float32 values nominally in [-1.0, 1.0]. Values outside the
// range are kept as they are; quantizers clamp them.
//
// # Error Handling
//
// Invalid input is reported with errors wrapping ErrInvalidArgument:
//
//	if errors.Is(err, audio.ErrInvalidArgument) {
//	    // bad sample rate, no frames, mismatched channel lengths ...
//	}
package audio
