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

// Package surfacetest provides a [surface.Surface] which records all
// drawing operations, for use in tests.
package surfacetest

import (
	"image"
	"math"

	"seehuhn.de/go/mapscale/surface"
)

// Op is a recorded drawing operation.
type Op struct {
	Kind  string // "clear", "line", "stroke", "fill", "text" or "text-up"
	Style surface.Style

	X0, Y0, X1, Y1 float64 // line end points, or the text position in X0, Y0
	Rect           image.Rectangle
	Text           string
}

// Recorder is a surface.Surface which records drawing operations.
//
// Text is measured with a fixed-pitch model: every character is half the
// font size wide, and lines are 5/4 of the font size high.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

var _ surface.Surface = (*Recorder)(nil)

// New returns an empty recorder of the given size.
func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size implements the [surface.Surface] interface.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Clear implements the [surface.Surface] interface.
func (r *Recorder) Clear(s surface.Style) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Style: s})
}

// StrokeLine implements the [surface.Surface] interface.
func (r *Recorder) StrokeLine(s surface.Style, x0, y0, x1, y1 float64) {
	r.Ops = append(r.Ops, Op{Kind: "line", Style: s, X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// StrokeRect implements the [surface.Surface] interface.
func (r *Recorder) StrokeRect(s surface.Style, rect image.Rectangle) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", Style: s, Rect: rect})
}

// FillRect implements the [surface.Surface] interface.
func (r *Recorder) FillRect(s surface.Style, rect image.Rectangle) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Style: s, Rect: rect})
}

// TextWidth implements the [surface.Surface] interface.
func (r *Recorder) TextWidth(s surface.Style, text string) int {
	return int(math.Ceil(float64(len(text)) * s.FontSize / 2))
}

// TextHeight implements the [surface.Surface] interface.
func (r *Recorder) TextHeight(s surface.Style) int {
	return int(math.Ceil(s.FontSize * 5 / 4))
}

// DrawText implements the [surface.Surface] interface.
func (r *Recorder) DrawText(s surface.Style, text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: "text", Style: s, X0: x, Y0: y, Text: text})
}

// DrawTextUp implements the [surface.Surface] interface.
func (r *Recorder) DrawTextUp(s surface.Style, text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: "text-up", Style: s, X0: x, Y0: y, Text: text})
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind string) []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			res = append(res, op)
		}
	}
	return res
}
