// SPDX-License-Identifier: EPL-2.0

package budget

import (
	"fmt"
	"math"
)

const (
	// SafetyFactor scales the reduction to leave headroom for the container.
	SafetyFactor = 0.95
	// MinFrameRate is the lowest rate SolveFrameRate returns.
	MinFrameRate = 1
)

// SolveFrameRate returns the frame rate that shrinks audio of currentSizeKB
// at currentRate to about targetSizeMB:
//
//	max(floor(currentRate * (targetSizeMB*1024 / currentSizeKB) * 0.95), 1)
//
// The result is larger than currentRate when the target exceeds the current
// size. A currentSizeKB of zero or less has no defined reduction and yields
// ErrDegenerateSolution, as does a result too large for a WAV header.
func SolveFrameRate(currentRate int, targetSizeMB, currentSizeKB float64) (int, error) {
	if currentRate <= 0 {
		return 0, fmt.Errorf("%w: current frame rate %d", ErrInvalidArgument, currentRate)
	}
	if err := positive("target size", targetSizeMB); err != nil {
		return 0, err
	}
	if math.IsNaN(currentSizeKB) || math.IsInf(currentSizeKB, 0) {
		return 0, fmt.Errorf("%w: current size %v", ErrInvalidArgument, currentSizeKB)
	}
	if currentSizeKB <= 0 {
		return 0, fmt.Errorf("%w: current size %v KB", ErrDegenerateSolution, currentSizeKB)
	}

	targetSizeKB := targetSizeMB * KilobytesPerMegabyte
	reduction := targetSizeKB / currentSizeKB
	reduction *= SafetyFactor

	rate := math.Floor(float64(currentRate) * reduction)
	if math.IsInf(rate, 0) || rate > math.MaxUint32 {
		return 0, fmt.Errorf("%w: frame rate %v out of range", ErrDegenerateSolution, rate)
	}

	return max(int(rate), MinFrameRate), nil
}
