// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream does not start with a FLAC signature
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacLayout indicates stream info the decoder cannot use
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")

	// ErrChannelMismatch indicates a frame whose channel count differs from the stream info
	ErrChannelMismatch = errors.New("FLAC frame channel count mismatch")
)
