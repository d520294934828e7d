// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes x to signed 16-bit PCM.
//
// x is clamped to [-1, 1]; negative values scale by 32768 and the rest by
// 32767, so both -1 and 1 map to the ends of the int16 range. The product is
// truncated toward zero. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}

	if v < 0 {
		return int16(v * 32768)
	}
	return int16(v * 32767)
}
