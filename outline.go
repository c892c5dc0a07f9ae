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

package sigpad

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498

// BuildOutline converts a recorded path into vector form.
//
// The points form one subpath per stroke: every point after the first is
// joined to its predecessor by a straight line, unless the pen was lifted in
// between, in which case a new subpath starts.  A path with fewer than two
// points produces no lines.  Each dot is appended as a closed ellipse
// inscribed in its rectangle.
func BuildOutline(sp *StrokePath) *path.Data {
	res := &path.Data{}

	if len(sp.Points) > 1 {
		res.MoveTo(sp.Points[0])
		for i := 1; i < len(sp.Points); i++ {
			if sp.IsBreak(i) {
				res.MoveTo(sp.Points[i])
			} else {
				res.LineTo(sp.Points[i])
			}
		}
	}

	for _, r := range sp.Dots {
		appendEllipse(res, r)
	}

	return res
}

// appendEllipse adds the ellipse inscribed in r as a closed subpath.
func appendEllipse(p *path.Data, r rect.Rect) {
	cx := (r.LLx + r.URx) / 2
	cy := (r.LLy + r.URy) / 2
	rx := (r.URx - r.LLx) / 2
	ry := (r.URy - r.LLy) / 2
	kx := kappa * rx
	ky := kappa * ry

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	p.MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}
