package curve

import (
	"strconv"

	"github.com/npillmayer/arithm"
)

// Axis selects an axis of a viewport.
type Axis int8

const (
	// X is the horizontal axis.
	X Axis = iota
	// Y is the vertical axis.
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}

// other returns the axis perpendicular to a.
func (a Axis) other() Axis {
	if a == X {
		return Y
	}
	return X
}

// Viewport maps a rectangle of the plane onto a rectangle of device pixels.
// Ranges are ordered pairs whose min may exceed max to express an inverted
// axis.
type Viewport interface {
	// PlaneRange returns the visible plane interval along an axis.
	PlaneRange(a Axis) (min, max float64)
	// DeviceRange returns the device pixel interval along an axis. Scans go
	// from min inclusive to max exclusive.
	DeviceRange(a Axis) (min, max int)
	// PlaneToDevice converts a plane coordinate to a device coordinate.
	PlaneToDevice(a Axis, v float64) float64
	// DeviceToPlane converts a device coordinate to a plane coordinate.
	DeviceToPlane(a Axis, v float64) float64
}

// Affine is a viewport of a device of Width by Height pixels with its origin
// in the top left corner, like a canvas. The vertical device range therefore
// runs from Height to 0.
type Affine struct {
	XRange, YRange [2]float64
	Width, Height  int
}

var _ Viewport = Affine{}

// NewAffine creates a viewport showing [xmin, xmax] × [ymin, ymax] on a
// device of the given size.
func NewAffine(xmin, xmax, ymin, ymax float64, width, height int) Affine {
	return Affine{
		XRange: [2]float64{xmin, xmax},
		YRange: [2]float64{ymin, ymax},
		Width:  width,
		Height: height,
	}
}

func (v Affine) PlaneRange(a Axis) (min, max float64) {
	if a == X {
		return v.XRange[0], v.XRange[1]
	}
	return v.YRange[0], v.YRange[1]
}

func (v Affine) DeviceRange(a Axis) (min, max int) {
	if a == X {
		return 0, v.Width
	}
	return v.Height, 0
}

func (v Affine) PlaneToDevice(a Axis, p float64) float64 {
	lo, hi := v.PlaneRange(a)
	dlo, dhi := v.DeviceRange(a)
	return rescale(p, lo, hi, float64(dlo), float64(dhi))
}

func (v Affine) DeviceToPlane(a Axis, d float64) float64 {
	lo, hi := v.PlaneRange(a)
	dlo, dhi := v.DeviceRange(a)
	return rescale(d, float64(dlo), float64(dhi), lo, hi)
}

// Point converts a plane point to device space.
func (v Affine) Point(p arithm.Pair) arithm.Pair {
	return arithm.P(v.PlaneToDevice(X, p.X()), v.PlaneToDevice(Y, p.Y()))
}

// rescale maps t from [lo, hi] onto [tlo, thi]. An empty source interval
// maps everything to thi.
func rescale(t, lo, hi, tlo, thi float64) float64 {
	if lo == hi {
		return thi
	}
	return (t-lo)/(hi-lo)*(thi-tlo) + tlo
}

// Drag returns a copy of v panned so that the plane point under device point
// from moves under device point to.
func (v Affine) Drag(from, to arithm.Pair) Affine {
	dx := v.DeviceToPlane(X, from.X()) - v.DeviceToPlane(X, to.X())
	dy := v.DeviceToPlane(Y, from.Y()) - v.DeviceToPlane(Y, to.Y())
	v.XRange = [2]float64{v.XRange[0] + dx, v.XRange[1] + dx}
	v.YRange = [2]float64{v.YRange[0] + dy, v.YRange[1] + dy}
	return v
}

// Zoom returns a copy of v zoomed by one step around device point at,
// keeping the plane point under it fixed. Positive steps zoom in by 10%,
// negative steps zoom out by the inverse factor, and zero changes nothing.
func (v Affine) Zoom(at arithm.Pair, steps int) Affine {
	var k float64
	switch {
	case steps > 0:
		k = 9.0 / 10.0
	case steps < 0:
		k = 10.0 / 9.0
	default:
		return v
	}
	v.XRange = zoomRange(v.XRange, v.DeviceToPlane(X, at.X()), k)
	v.YRange = zoomRange(v.YRange, v.DeviceToPlane(Y, at.Y()), k)
	return v
}

func zoomRange(r [2]float64, at, k float64) [2]float64 {
	size := r[1] - r[0]
	diff := size - size*k
	w := 0.5
	if size != 0 {
		w = (at - r[0]) / size
	}
	return [2]float64{r[0] + diff*w, r[1] - diff*(1-w)}
}
