package flame

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlameComputeDeterministic(t *testing.T) {
	p := SharkFin()
	a1, err := p.Flame.Compute(p.Frame, 50, 40, 5)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := p.Flame.Compute(p.Frame, 50, 40, 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a1, a2, cmp.AllowUnexported(Accumulator{})); diff != "" {
		t.Errorf("same seed gave different accumulators (-first +second):\n%s", diff)
	}
	if a1.MaxHitCount() == 0 {
		t.Error("nothing landed in the frame")
	}

	a3, err := p.Flame.Compute(p.Frame, 50, 40, 5, WithSeed(DefaultSeed+1))
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(a1.hitCount, a3.hitCount) {
		t.Error("different seeds gave identical hit counts")
	}
}

func TestFlameComputeColorIndexRange(t *testing.T) {
	p := Turbulence()
	acc, err := p.Flame.Compute(p.Frame, 30, 30, 10)
	if err != nil {
		t.Fatal(err)
	}
	for y := range acc.Height() {
		for x := range acc.Width() {
			n := acc.HitCount(x, y)
			if n == 0 {
				continue
			}
			mean := acc.colorIndexSum[y*acc.Width()+x] / float64(n)
			if mean < 0 || mean > 1 {
				t.Fatalf("mean color index at (%d, %d) = %v", x, y, mean)
			}
			// Must not panic.
			acc.Color(RGBPalette, White, x, y)
		}
	}
}

func TestFlameCopiesTransforms(t *testing.T) {
	ts := []FlameTransform{IdentityFlameTransform()}
	f := NewFlame(ts...)
	ts[0] = AffineFlameTransform(Translate(1, 1))
	if f.Transforms()[0] != IdentityFlameTransform() {
		t.Error("NewFlame kept a reference to the caller's slice")
	}
}

func TestFlameBuilder(t *testing.T) {
	b := NewFlameBuilder(SharkFin().Flame)
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}

	b.SetAffine(0, Translate(1, 2))
	if got := b.Affine(0); got != Translate(1, 2) {
		t.Errorf("Affine(0) = %+v", got)
	}
	b.SetVariationWeight(1, Swirl, 0.3)
	if got := b.VariationWeight(1, Swirl); got != 0.3 {
		t.Errorf("VariationWeight(1, Swirl) = %v, want 0.3", got)
	}

	b.Add(IdentityFlameTransform())
	b.Remove(0)
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if got := b.Transform(2); got != IdentityFlameTransform() {
		t.Errorf("Transform(2) = %+v, want identity", got)
	}
	if got := b.VariationWeight(0, Swirl); got != 0.3 {
		t.Errorf("after Remove(0), VariationWeight(0, Swirl) = %v, want 0.3", got)
	}

	f := b.Build()
	b.SetTransform(0, IdentityFlameTransform())
	if f.Transforms()[0] == IdentityFlameTransform() {
		t.Error("built flame changed after later edit")
	}
	if SharkFin().Flame.Transforms()[0].Affine() == Translate(1, 2) {
		t.Error("builder edited its source flame")
	}
}

func TestFlameBuilderEmpty(t *testing.T) {
	b := NewFlameBuilder(nil)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	if _, err := b.Build().Compute(mustRect(Origin, 1, 1), 4, 4, 1); err == nil {
		t.Error("computing an empty flame should fail")
	}
}

func TestFlameBuilderOnChange(t *testing.T) {
	b := NewFlameBuilder(nil)
	var calls int
	cancel := b.OnChange(func() { calls++ })

	b.Add(IdentityFlameTransform())
	b.SetAffine(0, Scale(2, 2))
	b.SetVariationWeight(0, Bubble, 1)
	b.SetTransform(0, IdentityFlameTransform())
	_ = b.Affine(0)
	_ = b.Build()
	b.Remove(0)
	if calls != 5 {
		t.Errorf("observer called %d times, want 5", calls)
	}

	cancel()
	b.Add(IdentityFlameTransform())
	if calls != 5 {
		t.Errorf("observer called after cancel")
	}
}

func TestFlameBuilderOnChangeOrder(t *testing.T) {
	b := NewFlameBuilder(nil)
	var got []int
	cancels := make([]func(), 5)
	for i := range cancels {
		cancels[i] = b.OnChange(func() { got = append(got, i) })
	}
	cancels[2]()
	cancels[2]()

	b.Add(IdentityFlameTransform())
	b.Add(IdentityFlameTransform())
	want := []int{0, 1, 3, 4, 0, 1, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("notification order mismatch (-want +got):\n%s", diff)
	}
}

func TestFlameBuilderPanicsOnBadIndex(t *testing.T) {
	b := NewFlameBuilder(SharkFin().Flame)
	ops := map[string]func(){
		"Transform":          func() { b.Transform(3) },
		"SetAffine":          func() { b.SetAffine(-1, Identity()) },
		"VariationWeight":    func() { b.VariationWeight(5, Linear) },
		"SetVariationWeight": func() { b.SetVariationWeight(3, Linear, 1) },
		"Remove":             func() { b.Remove(3) },
	}
	for name, op := range ops {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			op()
		}()
	}
}
