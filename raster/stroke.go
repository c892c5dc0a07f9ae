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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of the input path, in user space.
type strokeSegment struct {
	A, B vec.Vec2 // end points
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, T rotated 90° counter-clockwise
	L    float64  // length
}

// reversed returns the segment traversed from B to A.  Walking the +N side
// of the reversed segment visits the -N side of the original.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1), L: s.L}
}

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
//
// Each subpath is turned into closed polygons which are filled together
// with the nonzero rule, so overlapping parts of a stroke are painted once.
// A subpath consisting of a single position (for example a pen that did not
// move) is drawn as a dot when round caps are selected.
func (r *Rasteriser) Stroke(p path.Path, emit EmitFunc) {
	r.flatten(p)
	if len(r.segStart) == 0 && len(r.points) == 0 {
		return
	}

	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.points {
			start := len(r.outline)
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.outlineStart = append(r.outlineStart, start)
		}
	}

	var rev []strokeSegment
	for i := range r.segStart {
		segs := r.subpath(i)

		rev = rev[:0]
		for j := len(segs) - 1; j >= 0; j-- {
			rev = append(rev, segs[j].reversed())
		}

		if r.segClosed[i] {
			r.beginPolygon()
			r.walkSide(segs, true, d)
			r.endPolygon()
			r.beginPolygon()
			r.walkSide(rev, true, d)
			r.endPolygon()
			continue
		}

		first := &segs[0]
		last := &segs[len(segs)-1]
		r.beginPolygon()
		r.addCap(first.A, first.T.Mul(-1), d)
		r.walkSide(segs, false, d)
		r.addCap(last.B, last.T, d)
		r.walkSide(rev, false, d)
		r.endPolygon()
	}

	r.fillOutline(emit)
}

func (r *Rasteriser) beginPolygon() {
	r.outlineStart = append(r.outlineStart, len(r.outline))
}

// endPolygon discards the polygon just built if it cannot enclose any area.
func (r *Rasteriser) endPolygon() {
	last := len(r.outlineStart) - 1
	if len(r.outline)-r.outlineStart[last] < 3 {
		r.outline = r.outline[:r.outlineStart[last]]
		r.outlineStart = r.outlineStart[:last]
	}
}

// subpath returns the flattened segments of subpath i.
func (r *Rasteriser) subpath(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segStart) {
		end = r.segStart[i+1]
	}
	return r.segs[r.segStart[i]:end]
}

// flatten converts p into line segments.  Subpaths which draw something but
// have no segment of positive length are collected in r.points.
func (r *Rasteriser) flatten(p path.Path) {
	r.segs = r.segs[:0]
	r.segStart = r.segStart[:0]
	r.segClosed = r.segClosed[:0]
	r.points = r.points[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.segStart = append(r.segStart, first)
			r.segClosed = append(r.segClosed, closed)
		case drawn || closed:
			r.points = append(r.points, start)
		}
		first = len(r.segs)
		drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			cur = pts[0]
			start = cur
			first = len(r.segs)
			open = true
			drawn = false
		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			r.addSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenQuadratic(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]
		case path.CmdCubeTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]
		case path.CmdClose:
			if !open {
				continue
			}
			if cur != start {
				r.addSegment(cur, start)
			}
			finish(true)
			cur = start
			open = false
		}
	}
	if open {
		finish(false)
	}
}

// addSegment records a line segment, skipping zero-length ones.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}, L: l})
}

// walkSide appends the offset curve at distance d on the +N side of segs,
// including the corner geometry between consecutive segments.  For closed
// subpaths the corner between the last and the first segment is included
// as well.
func (r *Rasteriser) walkSide(segs []strokeSegment, closed bool, d float64) {
	ringStart := len(r.outline)
	skip := false
	for i := range segs {
		s := &segs[i]
		if !skip {
			r.outline = append(r.outline, s.A.Add(s.N.Mul(d)))
		}
		skip = false

		var n *strokeSegment
		switch {
		case i+1 < len(segs):
			n = &segs[i+1]
		case closed:
			n = &segs[0]
		default:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
			continue
		}

		skip = r.addCorner(s, n, d)
		if closed && i == len(segs)-1 && skip {
			// The inner corner point replaces the ring's first vertex.
			last := len(r.outline) - 1
			r.outline[ringStart] = r.outline[last]
			r.outline = r.outline[:last]
		}
	}
}

// addCorner appends the geometry where segment s meets segment n on the +N
// side.  It reports whether the offset start of n has already been covered.
func (r *Rasteriser) addCorner(s, n *strokeSegment, d float64) bool {
	P := s.B
	sin := s.T.X*n.T.Y - s.T.Y*n.T.X
	cos := s.T.Dot(n.T)

	switch {
	case math.Abs(sin) < collinearityThreshold && cos > 0:
		r.outline = append(r.outline, P.Add(s.N.Mul(d)))
		return false

	case cos < cuspCosineThreshold:
		// The path doubles back: close this side with a cap.
		r.outline = append(r.outline, P.Add(s.N.Mul(d)))
		r.addCap(P, s.T, d)
		return true

	case sin > 0:
		// +N is on the inside of the turn.
		if q, ok := innerCorner(P, s.T, n.T, d); ok && q.Sub(P).Length() <= min(s.L, n.L) {
			r.outline = append(r.outline, q)
			return true
		}
		r.outline = append(r.outline, P.Add(s.N.Mul(d)), P, P.Add(n.N.Mul(d)))
		return true

	default:
		r.outline = append(r.outline, P.Add(s.N.Mul(d)))
		r.addJoin(P, s.T, n.T, d)
		return false
	}
}

// innerCorner returns the intersection of the two offset lines on the
// inside of a corner at P, where the tangent turns from t1 to t2.
func innerCorner(P, t1, t2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cos := t1.Dot(t2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	half := math.Sqrt((1 + cos) / 2) // cos(θ/2)
	if half < 1e-9 {
		return vec.Vec2{}, false
	}
	dir := vec.Vec2{X: -t1.Y, Y: t1.X}.Add(vec.Vec2{X: -t2.Y, Y: t2.X})
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (half * l))), true
}

// addJoin appends the outer join geometry at P.  The offset point of the
// incoming segment has already been appended.
func (r *Rasteriser) addJoin(P, t1, t2 vec.Vec2, d float64) {
	cos := t1.Dot(t2)
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}

	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		r.addArc(P, d, n1, -angle, false)

	case graphics.LineJoinMiter:
		const miterEpsilon = 1e-10
		sinHalf := math.Sqrt((1 + cos) / 2)
		if sinHalf <= 0 || 1/sinHalf > r.MiterLimit+miterEpsilon {
			return // bevel
		}
		bisector := n1.Add(n2)
		if l := bisector.Length(); l > zeroLengthThreshold {
			r.outline = append(r.outline, P.Add(bisector.Mul(d/(sinHalf*l))))
		}
	}
	// LineJoinBevel: the offset points alone form the bevel.
}

// addCap appends a line cap at P, where T points away from the line.  The
// cap runs from the +N side of T to its -N side.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	}
}

// addArc appends points on a circular arc around center, starting in
// direction startDir and sweeping by sweep radians (positive is
// counter-clockwise).  The number of points is chosen so that chords stay
// within Flatness of the arc in device space.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}),
	)

	n := 1
	if devRadius >= r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// fillOutline fills all outline polygons as one compound path.
func (r *Rasteriser) fillOutline(emit EmitFunc) {
	r.beginEdges()
	for i, start := range r.outlineStart {
		end := len(r.outline)
		if i+1 < len(r.outlineStart) {
			end = r.outlineStart[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.sweep(emit)
}
