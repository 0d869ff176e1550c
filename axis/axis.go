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

// Package axis draws coordinate rulers along the edges of a printed map.
//
// An axis has a tick mark at every multiple of the grid size which lies
// inside the map, labelled with the real world coordinate of the mark.
// Labels of a vertical axis are rotated, so that they read from bottom to
// top.  Labels which would extend beyond the end of the axis are omitted.
package axis

import (
	"log/slog"

	"seehuhn.de/go/mapscale/grid"
	"seehuhn.de/go/mapscale/label"
	"seehuhn.de/go/mapscale/surface"
	"seehuhn.de/go/mapscale/units"
)

// Thickness is the width of a vertical axis, and the height of a
// horizontal axis, at the reference resolution.
const Thickness = 25

// Orientation selects between vertical and horizontal axes.
type Orientation int

// These are the supported orientations.
const (
	Vertical   Orientation = iota // along the left or right edge, y increases upwards
	Horizontal                    // along the top or bottom edge, x increases to the right
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "invalid"
	}
}

// Size returns the size of the axis image for a map which is mapSize
// pixels tall (for a vertical axis) or wide (for a horizontal axis) at
// the reference resolution.
func (o Orientation) Size(mapSize, dpi int) (width, height int) {
	long := units.Scaled(float64(mapSize), dpi)
	short := units.Scaled(Thickness, dpi)
	if o == Vertical {
		return short, long
	}
	return long, short
}

// Draw draws an axis which covers the real world coordinates from
// minCoord to maxCoord onto s, with marks every gridSize metres.  The
// axis fills the whole surface.  The marks which were drawn are returned.
//
// gridSize must be positive.
func Draw(s surface.Surface, o Orientation, minCoord, maxCoord float64, gridSize int, st surface.Style, logger *slog.Logger) []grid.Mark {
	w, h := s.Size()
	extent := w
	if o == Vertical {
		extent = h
	}

	s.Clear(st)

	marks := grid.Marks(minCoord, maxCoord, gridSize, float64(extent))
	if len(marks) == 0 {
		logger.Warn("no grid marks on axis",
			"axis", o,
			"min", minCoord,
			"max", maxCoord,
			"grid", gridSize)
		return nil
	}

	measure := func(text string) float64 {
		return float64(s.TextWidth(st, text))
	}
	if size, changed := label.FitAxis(st.FontSize, marks, measure); changed {
		logger.Debug("need to scale font size",
			"axis", o,
			"old", st.FontSize,
			"new", size)
		st = st.WithFontSize(size)
	}

	// The gap is the advance of the digit "1", not of U+0001.
	gap := float64(s.TextWidth(st, "1"))
	for _, m := range marks {
		logger.Debug("grid mark",
			"axis", o,
			"coord", m.Coord,
			"pixel", m.Pixel)

		text := label.Coordinate(m.Coord)
		tw := float64(s.TextWidth(st, text))
		fits := m.Pixel+gap+tw < float64(extent)

		switch o {
		case Vertical:
			y := float64(h) - m.Pixel
			s.StrokeLine(st, 0, y, float64(w), y)
			if fits {
				s.DrawTextUp(st, text, float64(w/2), y-tw-gap)
			}
		case Horizontal:
			x := m.Pixel
			s.StrokeLine(st, x, 0, x, float64(h))
			if fits {
				s.DrawText(st, text, x+gap, float64(h/2))
			}
		}
	}
	return marks
}
