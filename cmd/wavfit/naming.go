// SPDX-License-Identifier: EPL-2.0

package main

import (
	"path/filepath"
	"strings"
)

// OutputPath names the file written for input: the extension is replaced
// by suffix + ".wav", so "talk.wav" becomes "talk_compressed.wav" and
// "talk.mp3" becomes "talk_compressed.wav". The directory is kept.
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if strings.HasSuffix(base, string(filepath.Separator)) || base == "" {
		// dotfile such as ".wav": keep the name whole
		base = input
	}

	return base + suffix + ".wav"
}
