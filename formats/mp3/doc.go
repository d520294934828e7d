// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
//	source, err := mp3.Decoder{}.Decode(file)
//
// go-mp3 always produces 16-bit stereo, so the source reports two channels
// even for mono files. Samples are float32 in [-1, 1).
package mp3
