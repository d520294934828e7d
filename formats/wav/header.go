// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// HeaderSize is the length of the canonical PCM WAV header.
	HeaderSize = 44
	// MIMEType for delivering encoded files.
	MIMEType = "audio/wav"

	formatPCM     = 1
	fmtChunkSize  = 16
	bitsPerSample = 16
	bytesPerPCM16 = bitsPerSample / 8
)

// Header holds the fields of a canonical 44-byte PCM WAV header.
type Header struct {
	RIFFSize      uint32 // 36 + DataSize
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NewHeader describes frames frames of 16-bit PCM with the given layout.
func NewHeader(sampleRate, channels, frames int) (Header, error) {
	if sampleRate <= 0 || channels <= 0 || frames < 0 {
		return Header{}, fmt.Errorf("%w: rate %d, channels %d, frames %d",
			ErrInvalidArgument, sampleRate, channels, frames)
	}

	blockAlign := uint64(channels) * bytesPerPCM16
	byteRate := uint64(sampleRate) * blockAlign
	dataSize := uint64(frames) * blockAlign

	if channels > math.MaxUint16 || blockAlign > math.MaxUint16 ||
		uint64(sampleRate) > math.MaxUint32 || byteRate > math.MaxUint32 ||
		36+dataSize > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: rate %d, channels %d, frames %d",
			ErrTooLarge, sampleRate, channels, frames)
	}

	return Header{
		RIFFSize:      uint32(36 + dataSize),
		AudioFormat:   formatPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(byteRate),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: bitsPerSample,
		DataSize:      uint32(dataSize),
	}, nil
}

// Frames is the number of frames the data chunk holds.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize / uint32(h.BlockAlign))
}

// put writes the header into b, which must hold HeaderSize bytes.
func (h Header) put(b []byte) {
	// RIFF header (12 bytes)
	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], h.RIFFSize)
	copy(b[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(b[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(b[22:24], h.Channels)
	binary.LittleEndian.PutUint32(b[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(b[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(b[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(b[34:36], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], h.DataSize)
}

// MarshalBinary returns the 44 header bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	h.put(b)

	return b, nil
}

// ParseHeader reads a canonical 44-byte header: RIFF/WAVE, a 16-byte fmt
// chunk and the data chunk immediately after it. Files with other chunks
// need Decoder.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if !bytes.Equal(b[12:16], []byte("fmt ")) ||
		binary.LittleEndian.Uint32(b[16:20]) != fmtChunkSize ||
		!bytes.Equal(b[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavLayout
	}

	return Header{
		RIFFSize:      binary.LittleEndian.Uint32(b[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		Channels:      binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}
