package image

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
)

// pgmMax is the maximum gray value written by WritePGM.
const pgmMax = 100

// HitMap is the read surface WritePBM needs.
type HitMap interface {
	Width() int
	Height() int
	IsHit(x, y int) bool
}

// IntensityMap is the read surface WritePGM needs.
type IntensityMap interface {
	Width() int
	Height() int
	Intensity(x, y int) float64
}

// WritePBM writes m as a plain (P1) bitmap: 1 for a hit pixel, 0 otherwise.
// Rows are written top to bottom, so the accumulator's last row comes first.
func WritePBM(w io.Writer, m HitMap) error {
	bw := bufio.NewWriter(w)
	width, height := m.Width(), m.Height()
	fmt.Fprintf(bw, "P1\n%d %d\n", width, height)
	for y := height - 1; y >= 0; y-- {
		for x := range width {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if m.IsHit(x, y) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return flush(bw, "PBM")
}

// WritePGM writes m as a plain (P2) graymap with maximum value 100, each
// pixel being its intensity scaled to 0..100 and rounded. Rows are written
// top to bottom.
func WritePGM(w io.Writer, m IntensityMap) error {
	bw := bufio.NewWriter(w)
	width, height := m.Width(), m.Height()
	fmt.Fprintf(bw, "P2\n%d %d\n%d\n", width, height, pgmMax)
	for y := height - 1; y >= 0; y-- {
		for x := range width {
			if x > 0 {
				bw.WriteByte(' ')
			}
			v := int(math.Round(m.Intensity(x, y) * pgmMax))
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return flush(bw, "PGM")
}

// WritePPM writes img as a plain (P3) pixmap with maximum value 255.
// Alpha is ignored.
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x > b.Min.X {
				bw.WriteByte(' ')
			}
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			fmt.Fprintf(bw, "%d %d %d", c.R, c.G, c.B)
		}
		bw.WriteByte('\n')
	}
	return flush(bw, "PPM")
}

// flush reports the first write error; bufio.Writer keeps it sticky.
func flush(bw *bufio.Writer, kind string) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("image: write %s: %w", kind, err)
	}
	return nil
}
