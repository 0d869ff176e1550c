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

// Package label formats and fits the text labels of scale bars and axes.
//
// Labels are kept legible at any print resolution by shrinking the font
// until the widest label fits into the space available for it.
package label

import (
	"strconv"
	"strings"

	"seehuhn.de/go/mapscale/grid"
)

// Fit returns the font size to use for a label which is measured pixels
// wide at font size size, if it must fit into target pixels.
//
// If the label is too wide, the font size is reduced proportionally and
// changed is true.  Otherwise size is returned unchanged.  Fit never
// increases the font size.  If target is not positive, no font size can
// make the label fit and size is returned unchanged.
func Fit(size, target, measured float64) (newSize float64, changed bool) {
	if measured <= target || target <= 0 {
		return size, false
	}
	return size * target / measured, true
}

// FitAxis returns the font size for the labels of an axis with the given
// marks.  The label of the last mark is assumed to be the widest; it must
// fit into the gap between the first two marks.  measure returns the
// width of a label at font size size.
//
// With fewer than two marks there is no gap to fit into, and size is
// returned unchanged.
func FitAxis(size float64, marks []grid.Mark, measure func(text string) float64) (float64, bool) {
	if len(marks) < 2 {
		return size, false
	}

	widest := measure(Coordinate(marks[len(marks)-1].Coord))

	gap := float64(int(abs(marks[1].Pixel - marks[0].Pixel)))
	return Fit(size, gap, widest)
}

// Distance formats a distance in metres for a scale bar, using at most
// one decimal digit.  Ties are rounded to even.
func Distance(metres float64) string {
	s := strconv.FormatFloat(metres, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		s = "0"
	}
	return s
}

// Coordinate formats the label of an axis mark.
func Coordinate(c int) string {
	return strconv.Itoa(c)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
