// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages all channels of s into one. Mono input is returned as is.
func Downmix(s *Samples) *Samples {
	channels := s.Channels()
	if channels == 1 {
		return s
	}

	frames := s.Frames()
	mono := make([]float32, frames)
	inv := float32(1) / float32(channels)

	switch channels {
	case 2:
		left, right := s.channels[0], s.channels[1]
		for f := range frames {
			mono[f] = (left[f] + right[f]) * 0.5
		}
	default:
		for f := range frames {
			var sum float32
			for _, data := range s.channels {
				sum += data[f]
			}
			mono[f] = sum * inv
		}
	}

	return newSamplesOwned(s.sampleRate, [][]float32{mono})
}
