// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files through github.com/mewkiz/flac.
//
//	source, err := flac.Decoder{}.Decode(file)
//	defer source.Close()
//
// Every bit depth the format allows is accepted; samples are scaled by
// 2^(bits-1) into [-1, 1). Close releases the underlying stream.
package flac
