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

// multiStrokeScenarios contain signatures made of several strokes.  Every
// stroke starts a new subpath.
var multiStrokeScenarios = []Scenario{
	{
		Name:   "two_strokes",
		Bounds: defaultBounds,
		Events: []Event{
			line(5, pt(20, 20), pt(180, 20)), Release(pt(180, 20)),
			line(4, pt(20, 80), pt(180, 80)), Release(pt(180, 80)),
		},
		Want: Want{Points: 9, Breaks: 2, Lines: 7, MoveTos: 2, Commits: 2},
	},
	{
		Name:   "cross",
		Bounds: defaultBounds,
		Events: []Event{
			line(3, pt(100, 10), pt(100, 90)), Release(pt(100, 90)),
			line(3, pt(60, 50), pt(140, 50)), Release(pt(140, 50)),
		},
		Want: Want{Points: 6, Breaks: 2, Lines: 4, MoveTos: 2, Commits: 2},
	},
	{
		Name:   "initials",
		Bounds: defaultBounds,
		Events: []Event{
			// "J"
			Move{pt(20, 20), pt(40, 20), pt(40, 70), pt(25, 80)}, Release(pt(25, 80)),
			// "V"
			Move{pt(60, 20), pt(75, 80)}, Release(pt(75, 80)),
			Move{pt(75, 80), pt(82, 60), pt(86, 45), pt(88, 30), pt(90, 20)}, Release(pt(90, 20)),
		},
		Want: Want{Points: 11, Breaks: 3, Lines: 8, MoveTos: 3, Commits: 3},
	},
}
