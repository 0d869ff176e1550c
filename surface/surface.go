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

// Package surface defines the drawing operations used to render scale bars
// and axes.
//
// All coordinates are in device pixels with the origin in the top-left
// corner and y growing downwards.  Drawing parameters are passed explicitly
// as a [Style] value with every call; a Surface has no current font, colour
// or stroke width.
package surface

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/mapscale/units"
)

// Style describes how lines, shapes and text are drawn.
// Style values are immutable; use the With* methods to derive new styles.
type Style struct {
	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// FontSize is the text size in pixels.
	FontSize float64

	// Color is used for strokes, fills and text.
	Color color.Color

	// Background is used for clearing and for the backdrop of rotated text.
	Background color.Color
}

// WithFontSize returns a copy of s with the font size replaced.
func (s Style) WithFontSize(size float64) Style {
	s.FontSize = size
	return s
}

// WithLineWidth returns a copy of s with the line width replaced.
func (s Style) WithLineWidth(w float64) Style {
	s.LineWidth = w
	return s
}

// Surface is a drawing target.
//
// A Surface is owned by a single rendering call and is not safe for
// concurrent use.
type Surface interface {
	// Size returns the width and height of the surface in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with the background colour.
	Clear(s Style)

	// StrokeLine draws a straight line with square caps.
	StrokeLine(s Style, x0, y0, x1, y1 float64)

	// StrokeRect draws the outline of r.  The stroke is centred on the
	// rectangle's edges.
	StrokeRect(s Style, r image.Rectangle)

	// FillRect fills r.
	FillRect(s Style, r image.Rectangle)

	// TextWidth returns the advance width of text, rounded up to whole
	// pixels.
	TextWidth(s Style, text string) int

	// TextHeight returns the line height of the font.
	TextHeight(s Style) int

	// DrawText draws text with the left end of its baseline at (x, y).
	DrawText(s Style, text string, x, y float64)

	// DrawTextUp draws text rotated by 270 degrees, so that it reads from
	// bottom to top.  The rotated text occupies a box which is TextHeight
	// pixels wide and TextWidth pixels tall, with its top-left corner at
	// (x, y).
	DrawTextUp(s Style, text string, x, y float64)
}

// Base returns the default style for the given resolution: black one
// pixel lines and 8 pixel text on white, scaled from the reference
// resolution.
func Base(dpi int) Style {
	f := units.ScaleFactor(dpi)
	return Style{
		LineWidth:  BaseLineWidth * f,
		FontSize:   math.Ceil(BaseFontSize * f),
		Color:      color.Black,
		Background: color.White,
	}
}

// Sizes at the reference resolution.
const (
	BaseLineWidth = 1.0
	BaseFontSize  = 8.0
)
