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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// strokeScenarios contain single pen strokes.
var strokeScenarios = []Scenario{
	{
		Name:   "line",
		Bounds: defaultBounds,
		Events: []Event{line(10, pt(10, 50), pt(190, 50)), Release(pt(190, 50))},
		Want:   Want{Points: 10, Breaks: 1, Lines: 9, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "zigzag",
		Bounds: defaultBounds,
		Events: []Event{
			Move{pt(10, 80), pt(40, 20), pt(70, 80), pt(100, 20), pt(130, 80), pt(160, 20), pt(190, 80)},
			Release(pt(190, 80)),
		},
		Want: Want{Points: 7, Breaks: 1, Lines: 6, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "single_point",
		Bounds: defaultBounds,
		Events: []Event{Move{pt(50, 50)}, Release(pt(50, 50))},
		Want:   Want{Points: 1, Breaks: 1, Commits: 1},
	},
	{
		Name:   "backtrack",
		Bounds: defaultBounds,
		Events: []Event{Move{pt(20, 50), pt(120, 50), pt(20, 50)}, Release(pt(20, 50))},
		Want:   Want{Points: 3, Breaks: 1, Lines: 2, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "loop",
		Bounds: defaultBounds,
		Events: []Event{circle(25, 100, 50, 40), Release(pt(140, 50))},
		Want:   Want{Points: 25, Breaks: 1, Lines: 24, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "wave",
		Bounds: defaultBounds,
		Events: []Event{
			sample(60, func(t float64) vec.Vec2 {
				return pt(10+180*t, 50+40*math.Sin(4*math.Pi*t))
			}),
			Release(pt(190, 50)),
		},
		Want: Want{Points: 60, Breaks: 1, Lines: 59, MoveTos: 1, Commits: 1},
	},
	{
		Name:   "spiral",
		Bounds: defaultBounds,
		Events: []Event{
			sample(80, func(t float64) vec.Vec2 {
				r := 5 + 35*t
				s, c := math.Sincos(6 * math.Pi * t)
				return pt(100+r*c, 50+r*s)
			}),
			Release(pt(140, 50)),
		},
		Want: Want{Points: 80, Breaks: 1, Lines: 79, MoveTos: 1, Commits: 1},
	},
}
