// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through github.com/jfreymuth/oggvorbis.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis decodes to float samples natively, so no integer scaling takes
// place. Channel count and sample rate come from the stream header.
package vorbis
