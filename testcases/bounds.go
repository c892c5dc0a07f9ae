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

// boundsScenarios leave the drawing surface.  Positions outside the
// surface lift the pen.  The right and bottom edges lie outside.
var boundsScenarios = []Scenario{
	{
		Name:   "exit_and_reenter",
		Bounds: defaultBounds,
		Events: []Event{
			Move{pt(10, 50), pt(50, 50), pt(250, 50), pt(300, 50), pt(150, 50), pt(120, 50)},
			Release(pt(120, 50)),
		},
		Want: Want{Points: 4, Breaks: 2, Lines: 2, MoveTos: 2, Commits: 1},
	},
	{
		Name:   "start_outside",
		Bounds: defaultBounds,
		Events: []Event{Move{pt(-10, 50), pt(10, 50), pt(20, 50)}, Release(pt(20, 50))},
		Want:   Want{Points: 2, Breaks: 2, Lines: 1, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "all_outside",
		Bounds: defaultBounds,
		Events: []Event{Move{pt(250, 50), pt(260, 50), pt(270, 60)}, Release(pt(270, 60))},
		Want:   Want{Breaks: 1},
	},
	{
		Name:   "top_left_edges",
		Bounds: defaultBounds,
		Events: []Event{Move{pt(0, 0), pt(100, 0), pt(0, 50)}, Release(pt(0, 50))},
		Want:   Want{Points: 3, Breaks: 1, Lines: 2, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "bottom_right_edges",
		Bounds: defaultBounds,
		Events: []Event{
			Move{pt(10, 10), pt(200, 50), pt(50, 100), pt(60, 60)},
			Release(pt(60, 60)),
		},
		Want: Want{Points: 2, Breaks: 2, MoveTos: 2, Commits: 1},
	},
	{
		Name:   "excursion_above",
		Bounds: defaultBounds,
		Events: []Event{
			Move{pt(50, 10), pt(60, -5), pt(70, -10), pt(80, 10), pt(90, 20)},
			Release(pt(90, 20)),
		},
		Want: Want{Points: 3, Breaks: 2, Lines: 1, MoveTos: 2, Commits: 1},
	},
}
