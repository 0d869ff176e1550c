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

package grid

import (
	"math"

	"seehuhn.de/go/mapscale/units"
)

// Mark is a grid-aligned real world coordinate together with its
// position in image space.
type Mark struct {
	Coord int     // real world coordinate in metres
	Pixel float64 // distance from the image edge at the minimum coordinate
}

// FindMarks returns all multiples of gridSize between minCoord and
// maxCoord (both inclusive), in increasing order.  Only whole metres are
// considered: the range is shrunk to [ceil(minCoord), floor(maxCoord)].
//
// gridSize must be positive.
func FindMarks(minCoord, maxCoord float64, gridSize int) []int {
	start := int(math.Ceil(minCoord))
	if start%gridSize != 0 {
		start = floorDiv(start, gridSize)*gridSize + gridSize
	}
	end := int(math.Floor(maxCoord))

	// TODO(voss): marks exactly on the map boundary are not treated
	// specially; the caller has no way to suppress them.
	var marks []int
	for c := start; c <= end; c += gridSize {
		marks = append(marks, c)
	}
	return marks
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Project maps the real world coordinate coord onto an image axis of
// extentPx pixels which covers the range [minCoord, maxCoord].  The
// result is the distance in pixels from the image edge at minCoord,
// rounded to the nearest integer.
//
// The computation goes through centimetres at the reference resolution.
// This is equivalent to a linear interpolation, but the order of
// operations determines which way values close to .5 are rounded.
func Project(coord, extentPx, minCoord, maxCoord float64) float64 {
	distCM := math.Abs(minCoord-coord) * units.CMPerMetre
	extentCM := math.Abs(maxCoord-minCoord) * units.CMPerMetre

	ratio := extentPx / ((extentCM * units.ReferenceDPI) / units.CMPerInch)

	return math.Round(((distCM * units.ReferenceDPI) / units.CMPerInch) * ratio)
}

// Marks finds the grid marks in [minCoord, maxCoord] and projects them
// onto an image axis of extentPx pixels.
func Marks(minCoord, maxCoord float64, gridSize int, extentPx float64) []Mark {
	coords := FindMarks(minCoord, maxCoord, gridSize)
	if len(coords) == 0 {
		return nil
	}
	res := make([]Mark, len(coords))
	for i, c := range coords {
		res[i] = Mark{
			Coord: c,
			Pixel: Project(float64(c), extentPx, minCoord, maxCoord),
		}
	}
	return res
}
