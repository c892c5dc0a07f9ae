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

package testcases

// tapScenarios place dots.
var tapScenarios = []Scenario{
	{
		Name:   "tap",
		Bounds: defaultBounds,
		Events: []Event{Tap(pt(100, 50))},
		Want:   Want{Dots: 1, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "dotted_i",
		Bounds: defaultBounds,
		Events: []Event{
			line(4, pt(50, 90), pt(50, 40)), Release(pt(50, 40)),
			Tap(pt(50, 20)),
		},
		Want: Want{Points: 4, Breaks: 1, Dots: 1, Lines: 3, MoveTos: 2, Commits: 2},
	},
	{
		Name:   "taps",
		Bounds: defaultBounds,
		Events: []Event{Tap(pt(20, 20)), Tap(pt(100, 50)), Tap(pt(180, 80))},
		Want:   Want{Dots: 3, MoveTos: 3, Commits: 3},
	},
	{
		Name:   "tap_at_corner",
		Bounds: defaultBounds,
		Events: []Event{Tap(pt(0, 0))},
		Want:   Want{Dots: 1, MoveTos: 1, Commits: 1},
	},
}
