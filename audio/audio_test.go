// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/wavfit/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	exts []string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func (d *mockDecoder) Extensions() []string { return d.exts }

// failingDecoder always returns an error
type failingDecoder struct{}

func (failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func (failingDecoder) Extensions() []string { return []string{"bad"} }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{exts: []string{"wav"}}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_CaseAndDot(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(".WAV", &mockDecoder{})

	for _, key := range []string{"wav", ".wav", "WAV", ".Wav"} {
		if _, ok := registry.Get(key); !ok {
			t.Errorf("Registry.Get(%q) ok = false, want true", key)
		}
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_RegisterDecoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{exts: []string{"aiff", "aif"}}
	registry.RegisterDecoder(decoder)
	registry.RegisterDecoder(failingDecoder{})

	want := []string{"aif", "aiff", "bad"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Registry.Formats() = %v, want %v", got, want)
	}

	bad, ok := registry.Get("bad")
	if !ok {
		t.Fatal("Registry.Get(bad) ok = false")
	}
	if _, err := bad.Decode(nil); err == nil {
		t.Error("failingDecoder.Decode() error = nil")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterDecoder(&mockDecoder{exts: []string{"mp3"}})

	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"/music/Song.MP3", true},
		{"archive.tar.mp3", true},
		{"song.wav", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if _, ok := registry.Lookup(tt.path); ok != tt.want {
				t.Errorf("Registry.Lookup(%q) ok = %v, want %v", tt.path, ok, tt.want)
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(string(rune('a'+i%26)), &mockDecoder{})
		}()
		go func() {
			defer wg.Done()
			registry.Get("a")
			registry.Formats()
		}()
	}

	wg.Wait()

	if n := len(registry.Formats()); n != 26 {
		t.Errorf("len(Formats()) = %d, want 26", n)
	}
}
