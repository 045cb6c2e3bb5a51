// Package image encodes rendered fractals to image files.
//
// Binary formats (PNG, BMP, TIFF) take any image.Image. The netpbm text
// formats come in two flavours: WritePPM takes a rendered image, while
// WritePBM and WritePGM read an accumulator directly.
package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents an output file format.
type Format uint8

const (
	// FormatPNG is PNG, the default.
	FormatPNG Format = iota

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with Deflate compression.
	FormatTIFF

	// FormatPBM is netpbm P1: one bit per pixel, hit or not.
	FormatPBM

	// FormatPGM is netpbm P2: intensity in 0..100.
	FormatPGM

	// FormatPPM is netpbm P3: sRGB color in 0..255.
	FormatPPM

	// formatCount is the number of formats (for internal use).
	formatCount
)

var formatExt = [formatCount]string{
	FormatPNG:  ".png",
	FormatBMP:  ".bmp",
	FormatTIFF: ".tiff",
	FormatPBM:  ".pbm",
	FormatPGM:  ".pgm",
	FormatPPM:  ".ppm",
}

// String returns the canonical file extension without the dot.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatExt[f][1:]
}

// FromAccumulator reports whether f is written straight from an
// accumulator, one pixel per grid cell, rather than from an image.
func (f Format) FromAccumulator() bool {
	return f == FormatPBM || f == FormatPGM
}

// FormatFromPath picks a format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".tif" {
		return FormatTIFF, nil
	}
	for f, e := range formatExt {
		if e == ext {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
