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

// Package units converts between print resolutions and metric lengths.
//
// All image dimensions in this module are given in pixels at a reference
// resolution of 72 dots per inch.  At a different resolution, every
// dimension, stroke width and font size is scaled linearly by
// [ScaleFactor].
package units

import "math"

const (
	// ReferenceDPI is the resolution at which one pixel equals one point.
	ReferenceDPI = 72.0

	// CMPerInch is the number of centimetres in one inch.
	CMPerInch = 2.54

	// CMPerMetre is the number of centimetres in one metre.
	CMPerMetre = 100.0
)

// ScaleFactor returns the linear scale factor for the given resolution,
// relative to [ReferenceDPI].  The result is only meaningful for dpi > 0.
func ScaleFactor(dpi int) float64 {
	return float64(dpi) / ReferenceDPI
}

// Scaled converts a length given at the reference resolution into whole
// pixels at the given resolution.  The result is rounded down.
func Scaled(base float64, dpi int) int {
	return int(math.Floor(base * ScaleFactor(dpi)))
}

// DotsPerCM returns the number of pixels covering one centimetre at the
// given resolution, rounded up.
func DotsPerCM(dpi int) int {
	return int(math.Ceil(float64(dpi) / CMPerInch))
}

// PixelsToCM converts a length in reference pixels into centimetres.
func PixelsToCM(px float64) float64 {
	return px / ReferenceDPI * CMPerInch
}

// CMToPixels converts a length in centimetres into reference pixels.
func CMToPixels(cm float64) float64 {
	return cm * ReferenceDPI / CMPerInch
}
