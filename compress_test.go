// SPDX-License-Identifier: EPL-2.0

package wavfit

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/wavfit/audio"
	"github.com/ik5/wavfit/budget"
	"github.com/ik5/wavfit/formats/wav"
	"github.com/ik5/wavfit/internal/audiotest"
	"github.com/ik5/wavfit/utils"
)

func TestCompress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		rate       int
		frames     int
		targetMB   float64
		opts       []Option
		wantRate   int
		wantCh     int
		wantFrames int
		wantKB     float64
	}{
		{
			name:       "stereo ten seconds to half a megabyte",
			channels:   2,
			rate:       44100,
			frames:     441000,
			targetMB:   0.5,
			wantRate:   12451,
			wantCh:     2,
			wantFrames: 124510,
			wantKB:     1722.65625,
		},
		{
			name:       "mono option",
			channels:   2,
			rate:       44100,
			frames:     441000,
			targetMB:   0.5,
			opts:       []Option{WithMono()},
			wantRate:   24903,
			wantCh:     1,
			wantFrames: 249030,
			wantKB:     861.328125,
		},
		{
			name:       "already small enough",
			channels:   1,
			rate:       8000,
			frames:     8000,
			targetMB:   1,
			wantRate:   8000,
			wantCh:     1,
			wantFrames: 8000,
			wantKB:     15.625,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.rate, tt.channels, tt.frames, 440)
			res, err := Compress(src, tt.targetMB, tt.opts...)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}

			if res.SourceRate != tt.rate {
				t.Errorf("SourceRate = %d, want %d", res.SourceRate, tt.rate)
			}
			if res.SampleRate != tt.wantRate {
				t.Errorf("SampleRate = %d, want %d", res.SampleRate, tt.wantRate)
			}
			if res.Channels != tt.wantCh {
				t.Errorf("Channels = %d, want %d", res.Channels, tt.wantCh)
			}
			if res.Frames != tt.wantFrames {
				t.Errorf("Frames = %d, want %d", res.Frames, tt.wantFrames)
			}
			if res.SourceSizeKB != tt.wantKB {
				t.Errorf("SourceSizeKB = %v, want %v", res.SourceSizeKB, tt.wantKB)
			}

			wantLen := wav.HeaderSize + tt.wantFrames*tt.wantCh*2
			if len(res.Data) != wantLen {
				t.Fatalf("len(Data) = %d, want %d", len(res.Data), wantLen)
			}
			if res.SizeKB != float64(wantLen)/1024 {
				t.Errorf("SizeKB = %v, want %v", res.SizeKB, float64(wantLen)/1024)
			}

			h, err := wav.ParseHeader(res.Data)
			if err != nil {
				t.Fatalf("ParseHeader() error = %v", err)
			}
			if int(h.SampleRate) != tt.wantRate || int(h.Channels) != tt.wantCh {
				t.Errorf("header = %d Hz x%d, want %d Hz x%d", h.SampleRate, h.Channels, tt.wantRate, tt.wantCh)
			}

			if src.Closed() {
				t.Error("Compress closed the source")
			}
		})
	}
}

func TestCompress_FitsTarget(t *testing.T) {
	t.Parallel()

	// 30 seconds of stereo CD audio is about 5 MB.
	src := audiotest.NewSilentSource(44100, 2, 44100*30)

	res, err := Compress(src, 1)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	if res.SizeKB > budget.KilobytesPerMegabyte {
		t.Errorf("SizeKB = %v, want <= 1024", res.SizeKB)
	}
	if res.SampleRate >= res.SourceRate {
		t.Errorf("SampleRate = %d, want below %d", res.SampleRate, res.SourceRate)
	}
}

func TestCompress_KeepsSamplesWhenNotResampled(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 4, audiotest.Ramp)

	res, err := Compress(src, 1)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	pcm := res.Data[wav.HeaderSize:]
	for f := range 4 {
		for c := range 2 {
			off := (f*2 + c) * 2
			got := int16(binary.LittleEndian.Uint16(pcm[off:]))
			if want := utils.Float32ToInt16(audiotest.Ramp(f, c)); got != want {
				t.Errorf("frame %d channel %d = %d, want %d", f, c, got, want)
			}
		}
	}
}

func TestCompress_Errors(t *testing.T) {
	t.Parallel()

	errRead := errors.New("read failed")
	failing := audiotest.NewSilentSource(8000, 1, 10)
	failing.Err = errRead

	tests := []struct {
		name     string
		src      audio.Source
		targetMB float64
		wantErr  error
	}{
		{"zero target", audiotest.NewSilentSource(8000, 1, 100), 0, budget.ErrInvalidArgument},
		{"negative target", audiotest.NewSilentSource(8000, 1, 100), -1, budget.ErrInvalidArgument},
		{"empty source", audiotest.NewSilentSource(8000, 1, 0), 1, audio.ErrEmptySource},
		{"no channels", audiotest.NewSilentSource(8000, 0, 10), 1, audio.ErrInvalidArgument},
		{"read error", failing, 1, errRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Compress(tt.src, tt.targetMB)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Compress() error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Errorf("Compress() result = %+v, want nil", res)
			}
		})
	}
}

func TestCompress_ReadErrorIsNotEOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)
	src.Err = io.ErrUnexpectedEOF

	if _, err := Compress(src, 1); errors.Is(err, io.EOF) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Compress() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func BenchmarkCompress(b *testing.B) {
	b.ReportAllocs()

	src := audiotest.NewSineSource(44100, 2, 44100*5, 440)
	for range b.N {
		src.Reset()
		if _, err := Compress(src, 0.25); err != nil {
			b.Fatal(err)
		}
	}
}
