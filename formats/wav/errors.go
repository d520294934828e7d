// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/wavfit/audio"
)

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrShortHeader           = errors.New("WAV header shorter than 44 bytes")
	ErrTooLarge              = errors.New("audio too large for a WAV header")

	// ErrInvalidArgument is audio.ErrInvalidArgument; both match with errors.Is.
	ErrInvalidArgument = audio.ErrInvalidArgument
)
