package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the output format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrNeedsAccumulator is returned when encoding an image to a format that
	// is written straight from an accumulator (PBM, PGM).
	ErrNeedsAccumulator = errors.New("image: format is written from an accumulator")
)

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	if f.FromAccumulator() {
		return fmt.Errorf("%w: %s", ErrNeedsAccumulator, f)
	}
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPPM:
		err = WritePPM(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the format from the file extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return create(path, func(w io.Writer) error { return Encode(w, img, f) })
}

// SaveWith creates path and hands it to write. It is the common path for
// formats that are not produced from an image.Image.
func SaveWith(path string, write func(io.Writer) error) error {
	return create(path, write)
}

func create(path string, write func(io.Writer) error) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
