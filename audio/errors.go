// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptySource     = errors.New("source produced no frames")
)
