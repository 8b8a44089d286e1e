package main

import (
	"io"
	"math"
	"strings"

	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/arithm"

	"github.com/zephyrtronium/graphing/curve"
)

// palette colors curves in plots, cycling for more curves than colors.
var palette = []prtxt.Color{
	prtxt.FgGreen,
	prtxt.FgCyan,
	prtxt.FgMagenta,
	prtxt.FgYellow,
	prtxt.FgRed,
	prtxt.FgBlue,
}

const (
	inkNone = 0
	inkAxis = -1
)

// raster is a grid of terminal cells with one cell per device pixel.
type raster struct {
	w, h  int
	cells []rune
	// ink is the curve index plus one for each cell, inkAxis for axes, or
	// inkNone for empty cells.
	ink []int
}

func newRaster(w, h int) *raster {
	r := &raster{w: w, h: h, cells: make([]rune, w*h), ink: make([]int, w*h)}
	for i := range r.cells {
		r.cells[i] = ' '
	}
	return r
}

func (r *raster) set(col, row int, c rune, ink int) {
	if col < 0 || col >= r.w || row < 0 || row >= r.h {
		return
	}
	r.cells[row*r.w+col] = c
	r.ink[row*r.w+col] = ink
}

func (r *raster) at(col, row int) rune {
	return r.cells[row*r.w+col]
}

// cell finds the cell containing a device point. Points on the far edges of
// the device belong to the last cell.
func (r *raster) cell(p arithm.Pair) (col, row int) {
	return clamp(int(math.Floor(p.X())), r.w), clamp(int(math.Floor(p.Y())), r.h)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// axes draws the coordinate axes where they are visible, with a tick mark at
// each grid value.
func (r *raster) axes(vp curve.Viewport) {
	row, rowok := r.deviceCell(vp, curve.Y, r.h)
	col, colok := r.deviceCell(vp, curve.X, r.w)
	if rowok {
		for c := 0; c < r.w; c++ {
			r.set(c, row, '-', inkAxis)
		}
		lo, hi := vp.PlaneRange(curve.X)
		for _, t := range curve.Ticks(lo, hi) {
			d := vp.PlaneToDevice(curve.X, t)
			if d >= 0 && d < float64(r.w) {
				r.set(int(d), row, '+', inkAxis)
			}
		}
	}
	if colok {
		for c := 0; c < r.h; c++ {
			if r.at(col, c) == ' ' {
				r.set(col, c, '|', inkAxis)
			}
		}
		lo, hi := vp.PlaneRange(curve.Y)
		for _, t := range curve.Ticks(lo, hi) {
			d := vp.PlaneToDevice(curve.Y, t)
			if d >= 0 && d < float64(r.h) {
				r.set(col, int(d), '+', inkAxis)
			}
		}
	}
}

// deviceCell finds the cell index of the plane origin along an axis.
func (r *raster) deviceCell(vp curve.Viewport, a curve.Axis, n int) (int, bool) {
	lo, hi := vp.PlaneRange(a)
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo > 0 || hi < 0 {
		return 0, false
	}
	d := math.Floor(vp.PlaneToDevice(a, 0))
	if d < 0 || d >= float64(n) {
		return 0, false
	}
	return int(d), true
}

// polyline draws a polyline. A polyline of a single point is drawn as a dot
// so that isolated defined points stay visible.
func (r *raster) polyline(p curve.Polyline, ink int) {
	if len(p) == 1 {
		c, w := r.cell(p[0])
		r.set(c, w, '.', ink)
		return
	}
	for i := 1; i < len(p); i++ {
		c0, r0 := r.cell(p[i-1])
		c1, r1 := r.cell(p[i])
		r.line(c0, r0, c1, r1, ink)
	}
}

// line draws a line between two cells with Bresenham's algorithm.
func (r *raster) line(c0, r0, c1, r1, ink int) {
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		r.set(c0, r0, '*', ink)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// render writes the raster row by row.
func (r *raster) render(w io.Writer, color bool) error {
	var b strings.Builder
	for row := 0; row < r.h; row++ {
		for col := 0; col < r.w; col++ {
			c := string(r.cells[row*r.w+col])
			ink := r.ink[row*r.w+col]
			switch {
			case !color, ink == inkNone:
				b.WriteString(c)
			case ink == inkAxis:
				b.WriteString(prtxt.FgHiBlack.Sprint(c))
			default:
				b.WriteString(inkColor(ink).Sprint(c))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func inkColor(ink int) prtxt.Color {
	return palette[(ink-1)%len(palette)]
}
