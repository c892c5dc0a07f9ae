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

// Package testcases contains recorded pointer gestures for testing the
// signature pad.
//
// Each [Scenario] is a sequence of input events together with the state the
// signature should be in after all events have been replayed.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scenario is a recorded input session.
type Scenario struct {
	Name   string    // lowercase a-z and _ only
	Bounds rect.Rect // the drawing surface
	Events []Event
	Want   Want
}

// Want describes the expected outcome of a scenario.
type Want struct {
	Points  int // recorded points
	Breaks  int // recorded pen lifts
	Dots    int // recorded taps
	Lines   int // line segments in the outline
	MoveTos int // subpaths in the outline, including one per dot
	Commits int // calls of the commit callback
	Clears  int // calls of the clear callback
}

// Target receives the events of a scenario.  The signature controller
// implements this interface.
type Target interface {
	DragChanged(p vec.Vec2)
	DragEnded(p vec.Vec2)
	Tap(p vec.Vec2)
	Clear()
	SetDisabled(disabled bool)
}

// Event is an input event.
type Event interface {
	apply(t Target)
}

// Move reports the pointer positions of a drag, in order.
type Move []vec.Vec2

func (m Move) apply(t Target) {
	for _, p := range m {
		t.DragChanged(p)
	}
}

// Release ends a drag.
type Release vec.Vec2

func (r Release) apply(t Target) { t.DragEnded(vec.Vec2(r)) }

// Tap is a press and release without movement.
type Tap vec.Vec2

func (p Tap) apply(t Target) { t.Tap(vec.Vec2(p)) }

// Clear presses the clear button.
type Clear struct{}

func (Clear) apply(t Target) { t.Clear() }

// Disable locks or unlocks the input.
type Disable bool

func (d Disable) apply(t Target) { t.SetDisabled(bool(d)) }

// Replay sends all events of s to t.
func (s *Scenario) Replay(t Target) {
	for _, ev := range s.Events {
		ev.apply(t)
	}
}

// defaultBounds is the surface used by most scenarios.
var defaultBounds = rect.Rect{URx: 200, URy: 100}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// sample returns n points of the curve f, for parameters evenly spaced in
// [0, 1].
func sample(n int, f func(t float64) vec.Vec2) Move {
	res := make(Move, n)
	for i := range res {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		res[i] = f(t)
	}
	return res
}

// line returns n points on the segment from a to b.
func line(n int, a, b vec.Vec2) Move {
	return sample(n, func(t float64) vec.Vec2 {
		return a.Add(b.Sub(a).Mul(t))
	})
}

// circle returns n points on a circle, starting and ending at the same
// position.
func circle(n int, cx, cy, r float64) Move {
	return sample(n, func(t float64) vec.Vec2 {
		s, c := math.Sincos(2 * math.Pi * t)
		return pt(cx+r*c, cy+r*s)
	})
}
