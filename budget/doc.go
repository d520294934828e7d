// SPDX-License-Identifier: EPL-2.0

// Package budget sizes uncompressed PCM audio and picks a sample rate that
// fits it into a target size.
//
// Sizes are in kilobytes of 1024 bytes and megabytes of 1024 kilobytes.
//
//	current, _ := budget.EstimateSizeKB(44100, 16, 2, 60) // 10335.9375
//	rate, _ := budget.SolveFrameRate(44100, 3, current)  // 12451
//
// Both functions are pure and safe for concurrent use.
package budget
