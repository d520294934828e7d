// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/wavfit/audio"
	"github.com/ik5/wavfit/formats/internal/pcmsrc"
)

// Decoder reads 16-bit PCM AIFF files through github.com/go-audio/aiff.
type Decoder struct{}

func (Decoder) Extensions() []string { return []string{"aiff", "aif"} }

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := pcmsrc.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcmsrc.New(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}
