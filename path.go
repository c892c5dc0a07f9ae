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

// Package sigpad captures freehand signatures.
//
// Pointer input is recorded into a [StrokePath], which keeps the pen
// positions together with the places where the pen was lifted and any
// isolated taps.  [BuildOutline] turns a recorded path into vector form and
// [Rasterize] renders it into an anti-aliased bitmap.  A [Controller] ties
// these together: it consumes drag and tap events from a host UI, maintains
// the drawing state, and hands every finished stroke to the host.
package sigpad

//go:generate go run ./testcases/genref

import (
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// StrokePath is a recorded pen trajectory.
//
// A line is drawn between Points[i-1] and Points[i] unless i is contained in
// Breaks.  Dots holds the bounding boxes of taps, which are rendered as
// ellipses independently of the points.
type StrokePath struct {
	Points []vec.Vec2
	Breaks []int
	Dots   []rect.Rect
}

// AddPoint appends a pen position.
func (sp *StrokePath) AddPoint(p vec.Vec2) {
	sp.Points = append(sp.Points, p)
}

// AddBreak marks the pen as lifted after the last recorded point.
// Repeated breaks without points in between are stored once.
func (sp *StrokePath) AddBreak() {
	n := len(sp.Points)
	if k := len(sp.Breaks); k > 0 && sp.Breaks[k-1] == n {
		return
	}
	sp.Breaks = append(sp.Breaks, n)
}

// AddDot records a tap covering the rectangle r.
func (sp *StrokePath) AddDot(r rect.Rect) {
	sp.Dots = append(sp.Dots, r)
}

// Reset removes all points, breaks and dots.  The allocated storage is kept.
func (sp *StrokePath) Reset() {
	sp.Points = sp.Points[:0]
	sp.Breaks = sp.Breaks[:0]
	sp.Dots = sp.Dots[:0]
}

// IsEmpty reports whether there is nothing to draw.
func (sp *StrokePath) IsEmpty() bool {
	return len(sp.Points) == 0 && len(sp.Dots) == 0
}

// IsBreak reports whether the pen was lifted before point i.
func (sp *StrokePath) IsBreak(i int) bool {
	_, found := slices.BinarySearch(sp.Breaks, i)
	return found
}

// Clone returns a deep copy of sp.  Later changes to sp do not affect the
// copy.
func (sp *StrokePath) Clone() *StrokePath {
	return &StrokePath{
		Points: slices.Clone(sp.Points),
		Breaks: slices.Clone(sp.Breaks),
		Dots:   slices.Clone(sp.Dots),
	}
}

// Bounds returns the smallest rectangle containing all points and dots.
// The result is the zero rectangle for an empty path.
func (sp *StrokePath) Bounds() rect.Rect {
	var b rect.Rect
	first := true
	extend := func(r rect.Rect) {
		if first {
			b = r
			first = false
			return
		}
		b.LLx = min(b.LLx, r.LLx)
		b.LLy = min(b.LLy, r.LLy)
		b.URx = max(b.URx, r.URx)
		b.URy = max(b.URy, r.URy)
	}
	for _, p := range sp.Points {
		extend(rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y})
	}
	for _, d := range sp.Dots {
		extend(d)
	}
	return b
}
