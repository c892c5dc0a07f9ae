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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

type command struct {
	cmd path.Command
	pts []vec.Vec2
}

// commands lists the commands of p, with copies of their points.
func commands(p *path.Data) []command {
	var res []command
	for cmd, pts := range p.Iter() {
		res = append(res, command{cmd: cmd, pts: append([]vec.Vec2(nil), pts...)})
	}
	return res
}

func count(cmds []command, which path.Command) int {
	n := 0
	for _, c := range cmds {
		if c.cmd == which {
			n++
		}
	}
	return n
}

func TestStrokePathReset(t *testing.T) {
	paths := []*StrokePath{
		{},
		{Points: []vec.Vec2{pt(1, 2)}},
		{Points: []vec.Vec2{pt(1, 2), pt(3, 4)}, Breaks: []int{1, 2}},
		{Dots: []rect.Rect{{LLx: 1, LLy: 1, URx: 2, URy: 2}}},
	}
	for i, sp := range paths {
		sp.Reset()
		if !sp.IsEmpty() {
			t.Errorf("%d: path not empty after Reset", i)
		}
		if len(sp.Breaks) != 0 {
			t.Errorf("%d: %d breaks left after Reset", i, len(sp.Breaks))
		}
	}
}

func TestStrokePathIsEmpty(t *testing.T) {
	sp := &StrokePath{}
	if !sp.IsEmpty() {
		t.Fatal("new path is not empty")
	}
	sp.AddBreak()
	if !sp.IsEmpty() {
		t.Error("a break alone made the path non-empty")
	}
	sp.AddDot(rect.Rect{URx: 1, URy: 1})
	if sp.IsEmpty() {
		t.Error("path with a dot is empty")
	}
}

func TestAddBreak(t *testing.T) {
	sp := &StrokePath{}
	sp.AddBreak() // before any point
	sp.AddPoint(pt(0, 0))
	sp.AddPoint(pt(1, 0))
	sp.AddBreak()
	sp.AddBreak()
	sp.AddPoint(pt(5, 5))
	sp.AddBreak()

	want := []int{0, 2, 3}
	if len(sp.Breaks) != len(want) {
		t.Fatalf("breaks %v, want %v", sp.Breaks, want)
	}
	for i, b := range want {
		if sp.Breaks[i] != b {
			t.Fatalf("breaks %v, want %v", sp.Breaks, want)
		}
		if b > len(sp.Points) {
			t.Errorf("break %d beyond %d points", b, len(sp.Points))
		}
	}
	if !sp.IsBreak(2) || sp.IsBreak(1) {
		t.Error("IsBreak disagrees with Breaks")
	}
}

func TestClone(t *testing.T) {
	sp := &StrokePath{}
	sp.AddPoint(pt(1, 1))
	sp.AddBreak()
	sp.AddDot(rect.Rect{URx: 3, URy: 3})

	c := sp.Clone()
	sp.AddPoint(pt(2, 2))
	sp.Points[0] = pt(9, 9)
	sp.Reset()

	if len(c.Points) != 1 || c.Points[0] != pt(1, 1) {
		t.Errorf("clone points changed: %v", c.Points)
	}
	if len(c.Breaks) != 1 || len(c.Dots) != 1 {
		t.Errorf("clone changed: %v %v", c.Breaks, c.Dots)
	}
}

func TestBounds(t *testing.T) {
	sp := &StrokePath{}
	if b := sp.Bounds(); b != (rect.Rect{}) {
		t.Errorf("empty bounds %v", b)
	}
	sp.AddPoint(pt(10, 20))
	sp.AddPoint(pt(30, 5))
	sp.AddDot(rect.Rect{LLx: 40, LLy: 1, URx: 43, URy: 4})

	want := rect.Rect{LLx: 10, LLy: 1, URx: 43, URy: 20}
	if b := sp.Bounds(); b != want {
		t.Errorf("bounds %v, want %v", b, want)
	}
}

func TestOutlineContinuous(t *testing.T) {
	for n := 0; n < 8; n++ {
		sp := &StrokePath{}
		for i := range n {
			sp.AddPoint(pt(float64(i), float64(i*i)))
		}
		cmds := commands(BuildOutline(sp))

		if n < 2 {
			if len(cmds) != 0 {
				t.Errorf("%d points: got %d commands, want none", n, len(cmds))
			}
			continue
		}
		if cmds[0].cmd != path.CmdMoveTo || cmds[0].pts[0] != sp.Points[0] {
			t.Errorf("%d points: outline does not start at the first point", n)
		}
		if got := count(cmds, path.CmdMoveTo); got != 1 {
			t.Errorf("%d points: %d subpaths", n, got)
		}
		if got := count(cmds, path.CmdLineTo); got != n-1 {
			t.Errorf("%d points: %d line segments, want %d", n, got, n-1)
		}
	}
}

func TestOutlineBreak(t *testing.T) {
	const n = 6
	for k := 1; k < n; k++ {
		sp := &StrokePath{}
		for i := range n {
			if i == k {
				sp.AddBreak()
			}
			sp.AddPoint(pt(float64(i), 0))
		}
		cmds := commands(BuildOutline(sp))

		if len(cmds) != n {
			t.Fatalf("break at %d: %d commands, want %d", k, len(cmds), n)
		}
		if c := cmds[k]; c.cmd != path.CmdMoveTo || c.pts[0] != sp.Points[k] {
			t.Errorf("break at %d: command %d is %v %v", k, k, c.cmd, c.pts)
		}
		if got := count(cmds, path.CmdMoveTo); got != 2 {
			t.Errorf("break at %d: %d subpaths, want 2", k, got)
		}
		if got := count(cmds, path.CmdLineTo); got != n-2 {
			t.Errorf("break at %d: %d lines, want %d", k, got, n-2)
		}
	}
}

func TestOutlineDots(t *testing.T) {
	sp := &StrokePath{}
	sp.AddPoint(pt(5, 5)) // a single point draws nothing
	sp.AddDot(rect.Rect{LLx: 10, LLy: 20, URx: 14, URy: 22})
	sp.AddDot(rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2})

	cmds := commands(BuildOutline(sp))
	if len(cmds) != 2*6 {
		t.Fatalf("got %d commands, want 12", len(cmds))
	}
	for i := 0; i < len(cmds); i += 6 {
		ellipse := cmds[i : i+6]
		if ellipse[0].cmd != path.CmdMoveTo || ellipse[5].cmd != path.CmdClose {
			t.Errorf("ellipse %d is not a closed subpath", i/6)
		}
		if count(ellipse, path.CmdCubeTo) != 4 {
			t.Errorf("ellipse %d does not consist of four arcs", i/6)
		}
		// the last arc returns to the start point
		if ellipse[4].pts[2] != ellipse[0].pts[0] {
			t.Errorf("ellipse %d ends at %v, starts at %v", i/6, ellipse[4].pts[2], ellipse[0].pts[0])
		}
	}

	first := cmds[0].pts[0]
	if first != pt(14, 21) {
		t.Errorf("first ellipse starts at %v, want (14,21)", first)
	}
	if top := cmds[1].pts[2]; top != pt(12, 22) {
		t.Errorf("first arc ends at %v, want (12,22)", top)
	}
}
