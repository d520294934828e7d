// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// lowPassAlpha is the one-pole smoothing coefficient applied before downsampling.
const lowPassAlpha float32 = 0.5

// Resample converts s to dstRate using Catmull-Rom cubic interpolation on
// each channel. The result has floor(frames * dstRate / srcRate) frames, and
// never fewer than one.
//
// When downsampling, each channel first goes through a simple one-pole
// low-pass filter to reduce aliasing. A dstRate equal to the source rate
// returns s itself.
func Resample(s *Samples, dstRate int) (*Samples, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target sample rate %d", ErrInvalidArgument, dstRate)
	}

	srcRate := s.SampleRate()
	if dstRate == srcRate {
		return s, nil
	}

	srcFrames := s.Frames()
	dstFrames := max(int(int64(srcFrames)*int64(dstRate)/int64(srcRate)), 1)
	ratio := float64(srcRate) / float64(dstRate)

	out := make([][]float32, s.Channels())
	for c, data := range s.channels {
		if dstRate < srcRate {
			data = lowPass(data)
		}
		out[c] = interpolate(data, dstFrames, ratio)
	}

	return newSamplesOwned(dstRate, out), nil
}

// lowPass returns a filtered copy of x: y[n] = a*x[n] + (1-a)*y[n-1].
// The state starts at x[0] to avoid a warm-up transient.
func lowPass(x []float32) []float32 {
	y := make([]float32, len(x))
	state := x[0]
	for i, v := range x {
		state = lowPassAlpha*v + (1-lowPassAlpha)*state
		y[i] = state
	}

	return y
}

func interpolate(x []float32, frames int, ratio float64) []float32 {
	last := len(x) - 1
	at := func(i int) float32 {
		return x[min(max(i, 0), last)]
	}

	y := make([]float32, frames)
	for i := range y {
		pos := float64(i) * ratio
		idx := int(pos)
		t := float32(pos - float64(idx))

		y[i] = catmullRom(at(idx-1), at(idx), at(idx+1), at(idx+2), t)
	}

	return y
}

// catmullRom evaluates the spline through y1..y2 at t in [0, 1];
// y0 and y3 are the neighbouring points.
func catmullRom(y0, y1, y2, y3, t float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*t+a1)*t+a2)*t + y1
}
