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

// precisionScenarios use unusual coordinates.
var precisionScenarios = []Scenario{
	{
		Name:   "subpixel",
		Bounds: defaultBounds,
		Events: []Event{line(11, pt(50, 50), pt(51, 50)), Release(pt(51, 50))},
		Want:   Want{Points: 11, Breaks: 1, Lines: 10, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "repeated_point",
		Bounds: defaultBounds,
		Events: []Event{Move{pt(40, 40), pt(40, 40), pt(40, 40), pt(40, 40)}, Release(pt(40, 40))},
		Want:   Want{Points: 4, Breaks: 1, Lines: 3, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "far_away",
		Bounds: defaultBounds,
		Events: []Event{Move{pt(10, 10), pt(1e9, 1e9), pt(20, 20)}, Release(pt(20, 20))},
		Want:   Want{Points: 2, Breaks: 2, MoveTos: 2, Commits: 1},
	},
}
