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

// Package gesture turns raw pointer samples into drag and tap events.
package gesture

import "seehuhn.de/go/geom/vec"

// DefaultDeadZone is the distance a pointer must move, in surface units,
// before a press counts as a drag.
const DefaultDeadZone = 1.0

// Sink receives the recognised gestures.  [sigpad.Controller] implements
// this interface.
type Sink interface {
	DragChanged(p vec.Vec2)
	DragEnded(p vec.Vec2)
	Tap(p vec.Vec2)
}

// Tracker follows a single pointer.  It must be fed one sample per frame.
//
// A press followed by movement beyond DeadZone becomes a drag: the press
// position and every later position are reported through DragChanged, and
// the release through DragEnded.  A release without such movement is
// reported as a Tap.
type Tracker struct {
	DeadZone float64

	down     bool
	dragging bool
	start    vec.Vec2
	last     vec.Vec2
}

// Update processes one pointer sample.
func (t *Tracker) Update(sink Sink, p vec.Vec2, pressed bool) {
	switch {
	case pressed && !t.down:
		t.down = true
		t.dragging = false
		t.start = p
		t.last = p

	case pressed && t.down:
		if p == t.last {
			return
		}
		if !t.dragging && p.Sub(t.start).Length() > t.DeadZone {
			t.dragging = true
			sink.DragChanged(t.start)
		}
		if t.dragging {
			sink.DragChanged(p)
		}
		t.last = p

	case !pressed && t.down:
		t.down = false
		if t.dragging {
			sink.DragEnded(t.last)
		} else {
			sink.Tap(t.start)
		}
		t.dragging = false
	}
}

// Cancel forgets the current press without reporting anything.
func (t *Tracker) Cancel() {
	t.down = false
	t.dragging = false
}

// Down reports whether the pointer is pressed.
func (t *Tracker) Down() bool {
	return t.down
}

// Dragging reports whether the current press has turned into a drag.
func (t *Tracker) Dragging() bool {
	return t.dragging
}
