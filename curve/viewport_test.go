package curve

import (
	"math"
	"testing"

	"github.com/npillmayer/arithm"
)

func TestAffineConversions(t *testing.T) {
	vp := Affine{XRange: [2]float64{-5, 5}, YRange: [2]float64{-5, 5}, Width: 500, Height: 500}
	cases := []struct {
		a     Axis
		plane float64
		dev   float64
	}{
		{X, -5, 0},
		{X, 0, 250},
		{X, 5, 500},
		{Y, -5, 500},
		{Y, 0, 250},
		{Y, 5, 0},
		{Y, 2.5, 125},
	}
	for _, c := range cases {
		if got := vp.PlaneToDevice(c.a, c.plane); got != c.dev {
			t.Errorf("PlaneToDevice(%v, %g): want %g, got %g", c.a, c.plane, c.dev, got)
		}
		if got := vp.DeviceToPlane(c.a, c.dev); got != c.plane {
			t.Errorf("DeviceToPlane(%v, %g): want %g, got %g", c.a, c.dev, c.plane, got)
		}
	}
	if p := vp.Point(arithm.P(5, 5)); p != arithm.P(500, 0) {
		t.Errorf("Point(5, 5): want (500, 0), got %v", p)
	}
}

func TestAffineRanges(t *testing.T) {
	vp := NewAffine(-1, 2, 3, -4, 30, 40)
	if lo, hi := vp.PlaneRange(X); lo != -1 || hi != 2 {
		t.Errorf("x plane range: got %g, %g", lo, hi)
	}
	if lo, hi := vp.PlaneRange(Y); lo != 3 || hi != -4 {
		t.Errorf("y plane range: got %g, %g", lo, hi)
	}
	if lo, hi := vp.DeviceRange(X); lo != 0 || hi != 30 {
		t.Errorf("x device range: got %d, %d", lo, hi)
	}
	if lo, hi := vp.DeviceRange(Y); lo != 40 || hi != 0 {
		t.Errorf("y device range: got %d, %d", lo, hi)
	}
}

func TestAffineInverted(t *testing.T) {
	vp := NewAffine(5, -5, -5, 5, 100, 100)
	if d := vp.PlaneToDevice(X, 5); d != 0 {
		t.Errorf("inverted x: 5 maps to %g, want 0", d)
	}
	if d := vp.PlaneToDevice(X, -5); d != 100 {
		t.Errorf("inverted x: -5 maps to %g, want 100", d)
	}
}

func TestAffineDegenerate(t *testing.T) {
	vp := NewAffine(1, 1, -5, 5, 100, 0)
	if d := vp.PlaneToDevice(X, 7); d != 100 {
		t.Errorf("empty plane range maps to %g, want the device max 100", d)
	}
	if p := vp.DeviceToPlane(Y, 3); p != 5 {
		t.Errorf("empty device range maps to %g, want the plane max 5", p)
	}
}

func TestAxisString(t *testing.T) {
	if X.String() != "x" || Y.String() != "y" || Axis(7).String() != "Axis(7)" {
		t.Errorf("wrong axis names %v %v %v", X, Y, Axis(7))
	}
	if X.other() != Y || Y.other() != X {
		t.Error("wrong perpendicular axes")
	}
}

func TestAffineDrag(t *testing.T) {
	vp := NewAffine(-5, 5, -5, 5, 500, 500)
	got := vp.Drag(arithm.P(250, 250), arithm.P(300, 200))
	if got.XRange != [2]float64{-6, 4} || got.YRange != [2]float64{-6, 4} {
		t.Errorf("want [-6, 4] × [-6, 4], got %v × %v", got.XRange, got.YRange)
	}
	if vp.XRange != [2]float64{-5, 5} {
		t.Errorf("Drag modified the receiver: %v", vp.XRange)
	}
	// The dragged point ends up under the cursor.
	if x := got.DeviceToPlane(X, 300); x != vp.DeviceToPlane(X, 250) {
		t.Errorf("plane x under the cursor moved from %g to %g", vp.DeviceToPlane(X, 250), x)
	}
}

func TestAffineZoom(t *testing.T) {
	vp := NewAffine(-5, 5, -5, 5, 500, 500)
	in := vp.Zoom(arithm.P(250, 250), 1)
	if !nearRange(in.XRange, -4.5, 4.5) || !nearRange(in.YRange, -4.5, 4.5) {
		t.Errorf("zoom in: want [-4.5, 4.5], got %v × %v", in.XRange, in.YRange)
	}
	out := vp.Zoom(arithm.P(250, 250), -3)
	if !nearRange(out.XRange, -5-5.0/9, 5+5.0/9) {
		t.Errorf("zoom out: want ±%g, got %v", 5+5.0/9, out.XRange)
	}
	if same := vp.Zoom(arithm.P(100, 100), 0); same != vp {
		t.Errorf("zero steps changed the view to %v", same)
	}
	// Zooming keeps the plane point under the cursor fixed.
	for _, at := range []arithm.Pair{arithm.P(0, 0), arithm.P(100, 400), arithm.P(499, 3)} {
		for _, steps := range []int{1, -1} {
			z := vp.Zoom(at, steps)
			for _, a := range []Axis{X, Y} {
				c := at.X()
				if a == Y {
					c = at.Y()
				}
				if before, after := vp.DeviceToPlane(a, c), z.DeviceToPlane(a, c); math.Abs(before-after) > 1e-12 {
					t.Errorf("zoom %d at %v: %v under cursor moved from %g to %g", steps, at, a, before, after)
				}
			}
		}
	}
}

func nearRange(r [2]float64, lo, hi float64) bool {
	return math.Abs(r[0]-lo) < 1e-12 && math.Abs(r[1]-hi) < 1e-12
}
