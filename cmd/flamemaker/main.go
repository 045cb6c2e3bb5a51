// Command flamemaker renders one of the built-in fractals to an image file.
//
// Usage:
//
//	flamemaker -preset sharkfin -width 800 -height 640 -density 50 -output sharkfin.png
//
// The output format follows the file extension: .png, .bmp, .tif/.tiff,
// .ppm (color), .pgm (intensity) or .pbm (hit map).
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/flame"
	fimage "github.com/gogpu/flame/internal/image"
	"github.com/gogpu/flame/render"
)

type config struct {
	preset      string
	width       int
	height      int
	density     int
	seed        uint64
	palette     string
	colors      int
	background  string
	supersample int
	output      string
	set         string
	verbose     bool
	list        bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.preset, "preset", "sharkfin", "fractal to render (see -list)")
	flag.IntVar(&cfg.width, "width", 500, "image width")
	flag.IntVar(&cfg.height, "height", 400, "image height")
	flag.IntVar(&cfg.density, "density", 50, "sampled points per pixel")
	flag.Uint64Var(&cfg.seed, "seed", flame.DefaultSeed, "random seed")
	flag.StringVar(&cfg.palette, "palette", "rgb", "palette: rgb or random")
	flag.IntVar(&cfg.colors, "colors", 5, "control colors of a random palette")
	flag.StringVar(&cfg.background, "bg", "black", "background: black or white")
	flag.IntVar(&cfg.supersample, "supersample", 1, "render at N times the size, then shrink")
	flag.StringVar(&cfg.output, "output", "flame.png", "output file")
	flag.StringVar(&cfg.set, "set", "", "variation weights to override, e.g. 0:swirl=0.5,2:linear=0")
	flag.BoolVar(&cfg.verbose, "verbose", false, "log debug output")
	flag.BoolVar(&cfg.list, "list", false, "list presets and exit")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	flame.SetLogger(logger)

	if cfg.list {
		listPresets(os.Stdout)
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("flamemaker failed", "err", err)
		os.Exit(1)
	}
}

func listPresets(w io.Writer) {
	for _, p := range flame.Presets() {
		kind := "flame"
		if p.IFS != nil {
			kind = "ifs"
		}
		fmt.Fprintf(w, "%-12s %-6s %s\n", p.Name, kind, p.Frame)
	}
}

func run(cfg config, logger *slog.Logger) error {
	p, ok := flame.PresetByName(cfg.preset)
	if !ok {
		return fmt.Errorf("unknown preset %q", cfg.preset)
	}
	format, err := fimage.FormatFromPath(cfg.output)
	if err != nil {
		return err
	}
	background, err := parseBackground(cfg.background)
	if err != nil {
		return err
	}
	palette, err := parsePalette(cfg)
	if err != nil {
		return err
	}

	if cfg.set != "" {
		if p.Flame == nil {
			return fmt.Errorf("-set: %s is not a flame", p.Name)
		}
		if p.Flame, err = applyWeights(p.Flame, cfg.set); err != nil {
			return err
		}
	}

	ss := max(cfg.supersample, 1)
	if format.FromAccumulator() {
		// Written pixel for pixel from the accumulator.
		ss = 1
	}

	frame, err := p.Frame.ExpandToAspectRatio(float64(cfg.width) / float64(cfg.height))
	if err != nil {
		return err
	}

	w, h := cfg.width*ss, cfg.height*ss
	start := time.Now()
	var acc *flame.Accumulator
	if p.IFS != nil {
		acc, err = p.IFS.Compute(frame, w, h, cfg.density, flame.WithSeed(cfg.seed))
	} else {
		acc, err = p.Flame.Compute(frame, w, h, cfg.density, flame.WithSeed(cfg.seed))
	}
	if err != nil {
		return err
	}

	switch format {
	case fimage.FormatPBM:
		err = fimage.SaveWith(cfg.output, func(out io.Writer) error { return fimage.WritePBM(out, acc) })
	case fimage.FormatPGM:
		err = fimage.SaveWith(cfg.output, func(out io.Writer) error { return fimage.WritePGM(out, acc) })
	default:
		var img image.Image
		if p.IFS != nil {
			img = render.Bitmap(acc)
		} else {
			img = render.Color(acc, palette, background)
		}
		if ss > 1 {
			img = render.Downscale(img, ss)
		}
		err = fimage.Save(cfg.output, img)
	}
	if err != nil {
		return err
	}

	pr := message.NewPrinter(language.English)
	logger.Info(pr.Sprintf("rendered %s: %d points in %v", p.Name, cfg.density*w*h, time.Since(start).Round(time.Millisecond)),
		"output", cfg.output,
		"width", cfg.width,
		"height", cfg.height,
		"max_hits", pr.Sprintf("%d", acc.MaxHitCount()))
	return nil
}

func parseBackground(name string) (flame.Color, error) {
	switch strings.ToLower(name) {
	case "black":
		return flame.Black, nil
	case "white":
		return flame.White, nil
	}
	return flame.Color{}, fmt.Errorf("unknown background %q", name)
}

// applyWeights edits f according to a comma-separated list of
// index:variation=weight items.
func applyWeights(f *flame.Flame, list string) (*flame.Flame, error) {
	b := flame.NewFlameBuilder(f)
	for _, item := range strings.Split(list, ",") {
		idx, rest, ok1 := strings.Cut(strings.TrimSpace(item), ":")
		name, weight, ok2 := strings.Cut(rest, "=")
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("-set: malformed item %q", item)
		}
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= b.Len() {
			return nil, fmt.Errorf("-set: transform index %q out of range [0, %d)", idx, b.Len())
		}
		v, ok := flame.VariationByName(name)
		if !ok {
			return nil, fmt.Errorf("-set: unknown variation %q", name)
		}
		w, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return nil, fmt.Errorf("-set: weight %q: %w", weight, err)
		}
		b.SetVariationWeight(i, v, w)
	}
	return b.Build(), nil
}

func parsePalette(cfg config) (flame.Palette, error) {
	switch strings.ToLower(cfg.palette) {
	case "rgb":
		return flame.RGBPalette, nil
	case "random":
		return flame.NewRandomPalette(cfg.colors, rand.New(rand.NewPCG(cfg.seed, 0)))
	}
	return nil, errors.New("palette must be rgb or random")
}
