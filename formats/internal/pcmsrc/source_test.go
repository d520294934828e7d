// SPDX-License-Identifier: EPL-2.0

package pcmsrc

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader simulates the go-audio decoders: it fills the buffer and
// reports the end with a short or empty read.
type mockReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 8000, NumChannels: 1}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{0, 32768},
		{64, 32768},
	}

	for _, tt := range tests {
		if got := Scale(tt.bits); got != tt.want {
			t.Errorf("Scale(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := New(&mockReader{samples: []int{0, 16384, -16384, 32767, -32768}}, 8000, 1, 16)

	dst := make([]float32, 2)
	var got []float32
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768, -1}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	src := New(&mockReader{samples: []int{1 << 22, -(1 << 23)}}, 48000, 2, 24)

	dst := make([]float32, 2)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if dst[0] != 0.5 || dst[1] != -1 {
		t.Errorf("ReadSamples() = %v, want [0.5 -1]", dst)
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := New(&mockReader{samples: []int{1}}, 8000, 1, 16)

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	src := New(&mockReader{err: io.ErrUnexpectedEOF}, 8000, 1, 16)

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := New(&mockReader{samples: make([]int, 10000)}, 8000, 1, 16)
	if src.BufSize() != DefaultBufSize {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), DefaultBufSize)
	}

	if _, err := src.ReadSamples(make([]float32, 8192)); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if src.BufSize() != 8192 {
		t.Errorf("BufSize() after read = %d, want 8192", src.BufSize())
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := Seekable(br)
	if err != nil {
		t.Fatalf("Seekable() error = %v", err)
	}
	if rs != br {
		t.Error("Seekable() should return a ReadSeeker unchanged")
	}

	rs, err = Seekable(io.MultiReader(strings.NewReader("xyz")))
	if err != nil {
		t.Fatalf("Seekable() error = %v", err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "yz" {
		t.Errorf("read after seek = %q, want \"yz\"", rest)
	}
}
