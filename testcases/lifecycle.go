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

// lifecycleScenarios clear the signature and lock the input.
var lifecycleScenarios = []Scenario{
	{
		Name:   "clear",
		Bounds: defaultBounds,
		Events: []Event{line(5, pt(10, 10), pt(90, 90)), Release(pt(90, 90)), Clear{}},
		Want:   Want{Commits: 1, Clears: 1},
	},
	{
		Name:   "clear_then_draw",
		Bounds: defaultBounds,
		Events: []Event{
			line(5, pt(10, 10), pt(90, 90)), Release(pt(90, 90)),
			Clear{},
			line(3, pt(10, 90), pt(90, 10)), Release(pt(90, 10)),
		},
		Want: Want{Points: 3, Breaks: 1, Lines: 2, MoveTos: 1, Commits: 2, Clears: 1},
	},
	{
		Name:   "clear_while_drawing",
		Bounds: defaultBounds,
		Events: []Event{
			line(4, pt(10, 10), pt(90, 90)),
			Clear{},
			line(3, pt(10, 90), pt(90, 10)), Release(pt(90, 10)),
		},
		Want: Want{Points: 3, Breaks: 1, Lines: 2, MoveTos: 1, Commits: 1, Clears: 1},
	},
	{
		Name:   "disabled",
		Bounds: defaultBounds,
		Events: []Event{
			Disable(true),
			line(5, pt(10, 10), pt(90, 90)), Release(pt(90, 90)),
			Tap(pt(50, 50)),
			Disable(false),
		},
		Want: Want{},
	},
	{
		Name:   "disabled_midstroke",
		Bounds: defaultBounds,
		Events: []Event{
			line(3, pt(10, 50), pt(50, 50)),
			Disable(true),
			line(3, pt(60, 50), pt(100, 50)), Release(pt(100, 50)),
			Disable(false),
			Release(pt(100, 50)),
		},
		Want: Want{Points: 3, Breaks: 1, Lines: 2, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "clear_while_disabled",
		Bounds: defaultBounds,
		Events: []Event{
			line(3, pt(10, 50), pt(50, 50)), Release(pt(50, 50)),
			Disable(true),
			Clear{},
		},
		Want: Want{Commits: 1, Clears: 1},
	},
	{
		Name:   "empty_release",
		Bounds: defaultBounds,
		Events: []Event{Release(pt(10, 10))},
		Want:   Want{Breaks: 1},
	},
}
