// SPDX-License-Identifier: EPL-2.0

package budget

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive or non-finite parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateSolution indicates the inputs admit no usable frame rate.
	ErrDegenerateSolution = errors.New("degenerate frame rate solution")
)
