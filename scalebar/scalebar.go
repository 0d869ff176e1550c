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

// Package scalebar draws the scale bar of a printed map.
//
// A scale bar consists of five adjacent rectangles, each one centimetre
// wide on paper.  Every second rectangle is filled.  The distance in the
// real world covered by the bar up to the end of each rectangle is written
// above its right edge.
package scalebar

import (
	"image"
	"log/slog"
	"math"

	"seehuhn.de/go/mapscale/label"
	"seehuhn.de/go/mapscale/surface"
	"seehuhn.de/go/mapscale/units"
)

// Dimensions at the reference resolution.
const (
	Width  = 170
	Height = 25
)

// NumUnits is the number of unit rectangles in a scale bar.
const NumUnits = 5

// LabelMargin is the space, in pixels, kept free on either side of the
// widest label.  It does not depend on the resolution.
const LabelMargin = 10

// UnitValue returns the real world distance, in metres, corresponding to
// one centimetre on a map which shows bboxWidth metres across mapWidth
// pixels at the reference resolution.  The result is rounded to four
// decimal places.
func UnitValue(bboxWidth float64, mapWidth int) float64 {
	widthCM := math.Abs(bboxWidth) * units.CMPerMetre
	scaleWidth := widthCM / units.PixelsToCM(float64(mapWidth))
	return math.Round(scaleWidth*100) / 10000
}

// Size returns the size of a scale bar image at the given resolution.
func Size(dpi int) (width, height int) {
	return units.Scaled(Width, dpi), units.Scaled(Height, dpi)
}

// Layout gives the positions of all parts of a scale bar.
type Layout struct {
	Width, Height int

	// Unit is the real world distance of one rectangle, in metres.
	Unit float64

	// Rects are the unit rectangles, from left to right.
	Rects []image.Rectangle

	// TickHeight is the height of the tick marks drawn upwards from the
	// right edge of every rectangle.
	TickHeight int
}

// NewLayout computes the layout of the scale bar for a map which shows
// bboxWidth metres across mapWidth pixels, rendered at dpi.
func NewLayout(bboxWidth float64, mapWidth, dpi int) *Layout {
	w, h := Size(dpi)
	dpc := units.DotsPerCM(dpi)

	top := h - h/2 - 1
	left := dpc / 2
	rects := make([]image.Rectangle, NumUnits)
	for i := range rects {
		x := left + i*dpc
		rects[i] = image.Rect(x, top, x+dpc, top+h/3)
	}

	return &Layout{
		Width:      w,
		Height:     h,
		Unit:       UnitValue(bboxWidth, mapWidth),
		Rects:      rects,
		TickHeight: top / 6,
	}
}

// Label returns the label written at the end of rectangle i.
func (l *Layout) Label(i int) string {
	return label.Distance(l.Unit * float64(i+1))
}

// Filled reports whether rectangle i is filled.
func (l *Layout) Filled(i int) bool {
	return (i+1)%2 == 0
}

// Draw draws the scale bar onto s, using the base style st.  The font size
// is reduced if the widest label does not fit into one rectangle.
func Draw(s surface.Surface, l *Layout, st surface.Style, logger *slog.Logger) {
	s.Clear(st)
	if len(l.Rects) == 0 {
		return
	}

	first := l.Rects[0]
	tickTop := first.Min.Y - l.TickHeight

	// The baseline is placed using the height of the unscaled font.
	baseline := tickTop - s.TextHeight(st)/4

	widest := s.TextWidth(st, l.Label(len(l.Rects)-1))
	target := first.Dx() - 2*LabelMargin
	if size, changed := label.Fit(st.FontSize, float64(target), float64(widest)); changed {
		logger.Debug("need to scale font size",
			"old", st.FontSize,
			"new", size)
		st = st.WithFontSize(size)
	}

	for i, r := range l.Rects {
		if l.Filled(i) {
			s.FillRect(st, r)
		}
		s.StrokeRect(st, r)

		x := r.Max.X
		text := l.Label(i)
		tw := s.TextWidth(st, text)
		s.DrawText(st, text, float64(x-tw/2), float64(baseline))

		s.StrokeLine(st, float64(x), float64(tickTop), float64(x), float64(r.Min.Y))
	}
}
