// seehuhn.de/go/sigpad - signature capture and input validation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster turns vector paths into anti-aliased pixel coverage.
//
// The signature renderer uses it to stroke recorded pen paths: every stroke
// is converted into closed outline polygons which are then filled with the
// nonzero winding rule. Coverage is delivered one scanline at a time, so the
// caller decides how to composite it into an image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage for one scanline.  Coverage values range
// from 0 (outside) to 1 (inside) and start at pixel column xMin.  The slice
// is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to pixel coverage.  Internal buffers grow as
// needed and are reused between calls, so one Rasteriser should be kept
// around for repeated rendering.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the open ends of a stroke.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins.  Must be at least 1.
	MiterLimit float64

	cover     []float32 // per-pixel cover change, reused as output
	area      []float32 // per-pixel area contribution
	edges     []edge
	active    []int     // indices into edges crossing the current scanline
	crossings []float64 // y values where an edge crosses pixel columns

	// device-space bounding box of edges
	bboxEmpty bool
	bboxX0    float64
	bboxX1    float64
	bboxY0    float64
	bboxY1    float64

	// stroke outline polygons, stored back to back
	outline      []vec.Vec2
	outlineStart []int

	// flattened stroke input
	segs      []strokeSegment
	segStart  []int
	segClosed []bool
	points    []vec.Vec2 // subpaths without orientation
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.  The
// stroke parameters default to a one unit wide line with round caps and
// round joins, which is what pen input looks like.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]
	r.segs = r.segs[:0]
	r.segStart = r.segStart[:0]
	r.segClosed = r.segClosed[:0]
	r.points = r.points[:0]
}

// toDevice applies the full CTM.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device-space length of a user-space vector,
// ignoring the translation part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// flattenCubic splits a cubic Bézier into line segments, using Wang's
// formula to choose the number of pieces.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenQuadratic splits a quadratic Bézier into line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	n := 1
	if e := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)); e > r.Flatness {
		n = int(math.Ceil(math.Sqrt(e / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p path.Path, emit EmitFunc) {
	r.beginEdges()

	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, pts[0], pts[1], r.addEdge)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addEdge)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}

	r.sweep(emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms a user-space segment to device space and records it.
// Horizontal edges carry no coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	da := r.toDevice(a)
	db := r.toDevice(b)

	dy := db.Y - da.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: da.X, y0: da.Y,
		x1: db.X, y1: db.Y,
		dxdy: (db.X - da.X) / dy,
	})

	x0, x1 := min(da.X, db.X), max(da.X, db.X)
	y0, y1 := min(da.Y, db.Y), max(da.Y, db.Y)
	if r.bboxEmpty {
		r.bboxX0, r.bboxX1, r.bboxY0, r.bboxY1 = x0, x1, y0, y1
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, x0)
	r.bboxX1 = max(r.bboxX1, x1)
	r.bboxY0 = min(r.bboxY0, y0)
	r.bboxY1 = max(r.bboxY1, y1)
}

// pixelBounds returns the integer bounding box of the collected edges,
// clipped to r.Clip.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// sweep walks the scanlines from top to bottom, keeping a list of the
// edges which cross the current line, and emits nonzero coverage.
//
// For every pixel two quantities are accumulated:
//
//	cover: the signed vertical extent of edge pieces inside the pixel column
//	area:  cover weighted by the horizontal distance to the right pixel edge
//
// Integrating from left to right, coverage = carried cover + area[i].
func (r *Rasteriser) sweep(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the part of e inside scanline y to the cover and area
// buffers, which are indexed by x - xMin.  Pieces left of the buffer still
// contribute their full cover to column 0; pieces to the right are dropped.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left := int(math.Floor(min(xTop, xBottom)))
	right := int(math.Floor(max(xTop, xBottom)))

	switch {
	case right < xMin:
		c := sign * float32(bottom-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	case left >= xMax:
		return false
	case left == right:
		r.deposit(e, top, bottom, sign, xMin, xMax)
		return true
	}

	// Split the piece where it crosses pixel column boundaries.
	r.crossings = append(r.crossings[:0], top, bottom)
	dydx := 1 / e.dxdy
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > top && yx < bottom {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		if r.crossings[i] > r.crossings[i-1] {
			r.deposit(e, r.crossings[i-1], r.crossings[i], sign, xMin, xMax)
		}
	}
	return true
}

// deposit adds a piece of e between y0 and y1 which lies within a single
// pixel column.
func (r *Rasteriser) deposit(e *edge, y0, y1 float64, sign float32, xMin, xMax int) {
	c := sign * float32(y1-y0)
	xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
	pix := int(math.Floor(xMid))

	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		frac := xMid - float64(pix)
		r.cover[pix-xMin] += c
		r.area[pix-xMin] += c * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover/area into final coverage in
// place, clamping the absolute winding to [0, 1].
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries together with its offset, or nil if all entries are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript: joins sharper than about
	// 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself,
	// cos(179.43°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)
