// seehuhn.de/go/mapscale - scale bars and coordinate axes for printed maps
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

// Package grid selects grid spacings for coordinate axes and places grid
// marks in image space.
//
// Coordinates are given in metres of a projected, metric coordinate
// reference system (for example EPSG:25832).
package grid

import "golang.org/x/exp/slices"

// Step is one entry of the grid size heuristic: maps with a scale
// denominator below Below use a grid spacing of Size metres.
type Step struct {
	Below int
	Size  int
}

// Steps is the grid size heuristic, sorted by increasing scale.
var Steps = []Step{
	{Below: 500, Size: 20},
	{Below: 1000, Size: 50},
	{Below: 2000, Size: 100},
	{Below: 5000, Size: 200},
	{Below: 25000, Size: 1000},
	{Below: 50000, Size: 2000},
	{Below: 75000, Size: 3000},
	{Below: 100000, Size: 4000},
	{Below: 150000, Size: 8000},
	{Below: 250000, Size: 12000},
}

// MaxSize is the grid spacing used for scales beyond the last entry of
// [Steps].
const MaxSize = 20000

// Size returns the grid spacing in metres for a map with scale 1:scale.
// Zero and negative scales use the finest grid.
func Size(scale int) int {
	i := slices.IndexFunc(Steps, func(s Step) bool {
		return scale < s.Below
	})
	if i < 0 {
		return MaxSize
	}
	return Steps[i].Size
}
