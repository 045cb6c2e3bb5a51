// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns a chaos-game accumulator into a standard library
// image.
//
// The accumulator stores rows bottom-up (the plane's Y axis grows upward);
// every function here flips rows so that image row 0 is the top of the
// frame.
//
// # Usage
//
//	acc, _ := preset.Flame.Compute(frame, 1000, 800, 50)
//	img := render.Color(acc, flame.RGBPalette, flame.Black)
//	_ = png.Encode(w, img)
//
// For smoother output, compute at a multiple of the target size and shrink
// the result with Downscale.
package render
