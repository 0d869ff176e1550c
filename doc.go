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

// Package mapscale draws scale bars and coordinate axes for printed maps.
//
// The map is described by a bounding box in a metric, projected coordinate
// system, the size of the map image in pixels at 72 dpi, and the
// resolution at which the map is printed.  From this, the package
// generates three small images which are placed next to the map:
//
//   - a scale bar, showing which real world distance corresponds to one
//     centimetre on paper,
//   - a vertical axis with tick marks at grid-aligned y-coordinates, and
//   - a horizontal axis with tick marks at grid-aligned x-coordinates.
//
// The grid size of the axes is either given directly, or chosen from the
// map scale using [GridSize].
//
// A scale bar for a map which shows 1 km across 1000 pixels can be
// generated like this:
//
//	bbox := rect.Rect{LLx: 350000, LLy: 5600000, URx: 351000, URy: 5601000}
//	img, err := mapscale.GenerateScaleImage(bbox, 1000, 1000, 300, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	... encode img as PNG ...
//
// All images are rendered into fresh memory for every call, and all
// functions in this package are safe for concurrent use.  To draw onto
// a different target, for example a page of a PDF document, use
// [DrawScaleBar], [DrawVerticalAxis] and [DrawHorizontalAxis] with any
// implementation of [surface.Surface].
package mapscale
