// SPDX-License-Identifier: EPL-2.0

// Package wavfit shrinks decoded audio until it fits a size budget as a
// 16-bit PCM WAV file.
//
// The size of uncompressed PCM grows linearly with the frame rate, so the
// only knob is the rate: Compress estimates the current size, solves for a
// rate that lands a little under the target and resamples to it.
//
// # Quick Start
//
//	file, _ := os.Open("speech.mp3")
//	src, _ := mp3.Decoder{}.Decode(file)
//
//	res, err := wavfit.Compress(src, 3) // 3 MB
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("speech_compressed.wav", res.Data, 0o644)
//
// # Building Blocks
//
// The pipeline is made of smaller pieces that can be used on their own:
//   - budget.EstimateSizeKB and budget.SolveFrameRate do the arithmetic
//   - audio.ReadAll collects any audio.Source into audio.Samples
//   - audio.Resample and audio.Downmix transform Samples
//   - wav.Encode renders Samples as a canonical 44-byte header WAV file
//
// Decoders for WAV, AIFF, MP3, Ogg Vorbis and FLAC live under formats/ and
// can be looked up by file extension through an audio.Registry.
package wavfit
