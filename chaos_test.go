package flame

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorIndexes(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{3, []float64{0, 1, 0.5}},
		{5, []float64{0, 1, 0.5, 0.25, 0.75}},
		{9, []float64{0, 1, 0.5, 0.25, 0.75, 0.125, 0.375, 0.625, 0.875}},
	}
	for _, tt := range tests {
		got, err := ColorIndexes(tt.n)
		if err != nil {
			t.Fatalf("ColorIndexes(%d) = %v", tt.n, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ColorIndexes(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
	if _, err := ColorIndexes(0); !errors.Is(err, ErrNoTransforms) {
		t.Errorf("ColorIndexes(0) error = %v, want ErrNoTransforms", err)
	}
}

func TestColorIndexesInUnitInterval(t *testing.T) {
	got, err := ColorIndexes(100)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range got {
		if c < 0 || c > 1 {
			t.Errorf("ColorIndexes(100)[%d] = %v outside [0, 1]", i, c)
		}
	}
}

// countingTransform records how often it is applied.
type countingTransform struct {
	n *int
}

func (c countingTransform) TransformPoint(p Point) Point {
	*c.n++
	return p
}

func TestChaosGameIterationCount(t *testing.T) {
	var n int
	frame := mustRect(Origin, 2, 2)
	acc, err := compute([]Transformer{countingTransform{&n}}, nil, frame, 3, 2, 4, []ComputeOption{WithWarmup(5)})
	if err != nil {
		t.Fatal(err)
	}
	if want := 5 + 4*3*2; n != want {
		t.Errorf("transform applied %d times, want %d", n, want)
	}
	// The point never leaves the origin, which maps to pixel (1, 1).
	if got := acc.HitCount(1, 1); got != 24 {
		t.Errorf("HitCount(1, 1) = %d, want 24", got)
	}
}

func TestChaosGameWarmupNotRecorded(t *testing.T) {
	// The first application moves the point into the frame and every later
	// one moves it out again, so only warm-up would ever land inside.
	var n int
	step := transformFunc(func(p Point) Point {
		n++
		if n == 1 {
			return Pt(0.5, 0.5)
		}
		return Pt(5, 5)
	})
	frame := mustRect(Pt(0.5, 0.5), 1, 1)
	acc, err := compute([]Transformer{step}, nil, frame, 1, 1, 10, []ComputeOption{WithWarmup(1)})
	if err != nil {
		t.Fatal(err)
	}
	if acc.IsHit(0, 0) {
		t.Error("warm-up point was recorded")
	}
}

type transformFunc func(Point) Point

func (f transformFunc) TransformPoint(p Point) Point { return f(p) }

func TestChaosGameRunningColorIndex(t *testing.T) {
	// A single transform with color index 1 that stays at the origin:
	// c goes 0.5, 0.75, 0.875.
	frame := mustRect(Pt(0.5, 0.5), 1, 1)
	b := newTestBuilder(t, frame, 1, 1)
	g := newChaosGame([]Transformer{Identity()}, []float64{1}, computeOptions{seed: 1, warmup: 0})
	g.run(b, 3)
	acc := b.Build()
	want := 0.5 + 0.75 + 0.875
	if got := acc.colorIndexSum[0]; got != want {
		t.Errorf("color index sum = %v, want %v", got, want)
	}
}

func TestComputeValidation(t *testing.T) {
	frame := mustRect(Origin, 1, 1)
	ts := []Transformer{Identity()}
	tests := []struct {
		name    string
		ts      []Transformer
		w, h, d int
		want    error
	}{
		{"no transforms", nil, 10, 10, 1, ErrNoTransforms},
		{"negative density", ts, 10, 10, -1, ErrInvalidDensity},
		{"zero width", ts, 0, 10, 1, ErrInvalidDimension},
		{"zero height", ts, 10, 0, 1, ErrInvalidDimension},
		{"iteration count overflow", ts, 2, 2, 1<<62 + 1, ErrInvalidDensity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compute(tt.ts, nil, frame, tt.w, tt.h, tt.d, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestComputeZeroDensity(t *testing.T) {
	p := Sierpinski()
	acc, err := p.IFS.Compute(p.Frame, 5, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if acc.MaxHitCount() != 0 {
		t.Errorf("MaxHitCount() = %d, want 0", acc.MaxHitCount())
	}
}
