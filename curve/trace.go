package curve

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graphing.curve'.
func tracer() tracing.Trace {
	return tracing.Select("graphing.curve")
}

// Sampler evaluates one coordinate of a curve from the other. A non-nil
// error means the curve is undefined there. NaN and infinite results are
// treated as undefined as well.
type Sampler func(t float64) (float64, error)

// Polyline is a connected run of device points in scan order.
type Polyline []arithm.Pair

// TraceX plots y = f(x). It samples f once per device column and returns the
// resulting polylines in scan order. The curve is broken wherever f is
// undefined. Where the curve leaves the visible y range, the polyline ends
// on the crossed boundary, and it resumes on the boundary where the curve
// comes back, so asymptotes are drawn up to the edge of the viewport instead
// of being joined across it.
//
// No returned polyline is empty, but a polyline may have a single point when
// f is defined at an isolated sample. Whether to draw such points is up to
// the caller.
func TraceX(f Sampler, vp Viewport) []Polyline {
	return trace(f, vp, X)
}

// TraceY plots x = f(y), sampling f once per device row. It is TraceX with
// the axes swapped.
func TraceY(f Sampler, vp Viewport) []Polyline {
	return trace(f, vp, Y)
}

type sampleKind int8

const (
	sampleUndefined sampleKind = iota
	sampleIn
	sampleAbove
	sampleBelow
)

// scan is the state of a single trace.
type scan struct {
	vp            Viewport
	along, across Axis
	// lo and hi bound the visible output interval, with lo <= hi.
	lo, hi float64

	cur Polyline
	out []Polyline

	// prev is the kind of the previous sample, and pt, pv are its plane
	// coordinates along and across the scan.
	prev   sampleKind
	pt, pv float64
}

func trace(f Sampler, vp Viewport, along Axis) []Polyline {
	s := scan{vp: vp, along: along, across: along.other()}
	s.lo, s.hi = vp.PlaneRange(s.across)
	if s.lo > s.hi {
		s.lo, s.hi = s.hi, s.lo
	}
	d0, d1 := vp.DeviceRange(along)
	step := 1
	if d0 > d1 {
		step = -1
	}
	for d := d0; d != d1; d += step {
		s.sample(f, float64(d))
	}
	s.close()
	tracer().Debugf("traced %d polylines along %v over device [%d, %d)", len(s.out), along, d0, d1)
	return s.out
}

func (s *scan) classify(v float64, err error) sampleKind {
	switch {
	case err != nil, math.IsNaN(v), math.IsInf(v, 0):
		return sampleUndefined
	case v > s.hi:
		return sampleAbove
	case v < s.lo:
		return sampleBelow
	default:
		return sampleIn
	}
}

func (s *scan) sample(f Sampler, d float64) {
	t := s.vp.DeviceToPlane(s.along, d)
	v, err := f(t)
	k := s.classify(v, err)
	switch k {
	case sampleUndefined:
		s.close()
	case sampleIn:
		if s.prev == sampleAbove || s.prev == sampleBelow {
			// Coming back into view. s.cur is always empty here.
			s.cur = append(s.cur, s.boundary(t, v, s.pt, s.pv, s.prev))
		}
		s.cur = append(s.cur, s.point(d, s.vp.PlaneToDevice(s.across, v)))
	case sampleAbove, sampleBelow:
		if s.prev == sampleIn {
			s.cur = append(s.cur, s.boundary(s.pt, s.pv, t, v, k))
			s.close()
		}
	}
	s.prev, s.pt, s.pv = k, t, v
}

// boundary computes the device point where the segment from the in-range
// plane point (it, iv) to the out-of-range point (ot, ov) crosses the output
// bound that ov exceeds.
func (s *scan) boundary(it, iv, ot, ov float64, k sampleKind) arithm.Pair {
	bound := s.lo
	if k == sampleAbove {
		bound = s.hi
	}
	t := it + (bound-iv)/(ov-iv)*(ot-it)
	return s.point(s.vp.PlaneToDevice(s.along, t), s.vp.PlaneToDevice(s.across, bound))
}

// point creates a device point from coordinates along and across the scan.
func (s *scan) point(along, across float64) arithm.Pair {
	if s.along == X {
		return arithm.P(along, across)
	}
	return arithm.P(across, along)
}

// close ends the current polyline, emitting it if it has any points.
func (s *scan) close() {
	if len(s.cur) > 0 {
		s.out = append(s.out, s.cur)
	}
	s.cur = nil
}
