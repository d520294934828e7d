// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic signals for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel at frame.
type Waveform func(frame, channel int) float32

// MockSource generates interleaved audio on demand.
// It implements audio.Source without importing it to avoid cycles.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // values generated so far
	waveform   Waveform

	// MaxRead caps the number of values returned per ReadSamples call.
	// A cap that is not a multiple of channels splits frames across reads.
	MaxRead int
	// Err, when set, is returned once all frames have been produced instead of io.EOF.
	Err error

	closed bool
}

// NewMockSource creates a source of frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Constant(0))
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Sine(sampleRate, frequency))
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Constant(value))
}

// Constant is a waveform holding value.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Sine is a full-scale sine of frequency Hz.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Ramp makes channel c at frame f equal to f*100 + c, scaled by 1/32768.
// Every value is distinct and easy to identify after encoding.
func Ramp(frame, channel int) float32 {
	return float32(frame*100+channel) / 32768
}

// Planar renders waveform into one slice per channel.
func Planar(channels, frames int, waveform Waveform) [][]float32 {
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for f := range frames {
			out[c][f] = waveform(f, c)
		}
	}

	return out
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	total := m.frames * m.channels
	if m.generated >= total {
		return 0, m.end()
	}

	n := min(len(dst), total-m.generated)
	if m.MaxRead > 0 {
		n = min(n, m.MaxRead)
	}

	for i := range n {
		idx := m.generated + i
		dst[i] = m.waveform(idx/m.channels, idx%m.channels)
	}
	m.generated += n

	if m.generated >= total {
		return n, m.end()
	}

	return n, nil
}

func (m *MockSource) end() error {
	if m.Err != nil {
		return m.Err
	}
	return io.EOF
}
