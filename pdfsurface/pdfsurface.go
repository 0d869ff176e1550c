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

// Package pdfsurface implements a [surface.Surface] which draws vector
// graphics onto a page of a PDF document, using gofpdf.
//
// Text is measured with the same Go fonts as on raster surfaces, so that
// a scale bar or an axis has the same layout on paper as on screen.
package pdfsurface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"seehuhn.de/go/mapscale/font/gofont"
	"seehuhn.de/go/mapscale/surface"
	"seehuhn.de/go/mapscale/units"
)

// Surface draws into a rectangular area of the current page of a PDF
// document.  Pixel coordinates are converted to page coordinates using
// the resolution given to New.
type Surface struct {
	pdf *gofpdf.Fpdf

	x, y          float64 // top-left corner, in document units
	width, height int
	unit          float64 // document units per pixel

	family string
	faces  *gofont.Faces
}

var _ surface.Surface = (*Surface)(nil)

// New returns a surface of width×height pixels whose top-left corner is at
// (x, y) on the current page, in the unit of measure of pdf.  One pixel
// corresponds to 1/dpi inch.  The font F is embedded into the document.
//
// A page must have been added to pdf before drawing.
func New(pdf *gofpdf.Fpdf, x, y float64, width, height, dpi int, F gofont.Font) (*Surface, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("pdfsurface: invalid resolution %d", dpi)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pdfsurface: invalid size %dx%d", width, height)
	}

	data, err := F.TTF()
	if err != nil {
		return nil, err
	}
	parsed, err := F.Parse()
	if err != nil {
		return nil, err
	}

	family := fmt.Sprintf("gofont%d", int(F))
	pdf.AddUTF8FontFromBytes(family, "", data)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdfsurface: %w", err)
	}

	points := units.ReferenceDPI / float64(dpi)
	return &Surface{
		pdf:    pdf,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		unit:   points / pdf.GetConversionRatio(),
		family: family,
		faces:  gofont.NewFaces(parsed),
	}, nil
}

// Err returns the first error reported by the PDF document, if any.
func (s *Surface) Err() error {
	return s.pdf.Error()
}

// Close releases the font faces used for text measurement.  It returns the
// first error encountered while drawing.
func (s *Surface) Close() error {
	return errors.Join(s.faces.Close(), s.pdf.Error())
}

// Size implements the [surface.Surface] interface.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

func (s *Surface) pageX(x float64) float64 {
	return s.x + x*s.unit
}

func (s *Surface) pageY(y float64) float64 {
	return s.y + y*s.unit
}

func (s *Surface) rect(r image.Rectangle, style string) {
	s.pdf.Rect(s.pageX(float64(r.Min.X)), s.pageY(float64(r.Min.Y)),
		float64(r.Dx())*s.unit, float64(r.Dy())*s.unit, style)
}

// Clear implements the [surface.Surface] interface.
func (s *Surface) Clear(st surface.Style) {
	s.pdf.SetFillColor(rgb(background(st)))
	s.rect(image.Rect(0, 0, s.width, s.height), "F")
}

// StrokeLine implements the [surface.Surface] interface.
func (s *Surface) StrokeLine(st surface.Style, x0, y0, x1, y1 float64) {
	s.setStroke(st)
	s.pdf.Line(s.pageX(x0), s.pageY(y0), s.pageX(x1), s.pageY(y1))
}

// StrokeRect implements the [surface.Surface] interface.
func (s *Surface) StrokeRect(st surface.Style, r image.Rectangle) {
	s.setStroke(st)
	s.rect(r, "D")
}

// FillRect implements the [surface.Surface] interface.
func (s *Surface) FillRect(st surface.Style, r image.Rectangle) {
	s.pdf.SetFillColor(rgb(foreground(st)))
	s.rect(r, "F")
}

func (s *Surface) setStroke(st surface.Style) {
	s.pdf.SetDrawColor(rgb(foreground(st)))
	s.pdf.SetLineWidth(st.LineWidth * s.unit)
	s.pdf.SetLineCapStyle("square")
	s.pdf.SetLineJoinStyle("miter")
}

// TextWidth implements the [surface.Surface] interface.
func (s *Surface) TextWidth(st surface.Style, text string) int {
	return s.faces.TextWidth(st.FontSize, text)
}

// TextHeight implements the [surface.Surface] interface.
func (s *Surface) TextHeight(st surface.Style) int {
	return s.faces.TextHeight(st.FontSize)
}

func (s *Surface) setFont(st surface.Style) {
	s.pdf.SetTextColor(rgb(foreground(st)))
	s.pdf.SetFont(s.family, "", 0)
	s.pdf.SetFontUnitSize(st.FontSize * s.unit)
}

// DrawText implements the [surface.Surface] interface.
func (s *Surface) DrawText(st surface.Style, text string, x, y float64) {
	s.setFont(st)
	s.pdf.Text(s.pageX(x), s.pageY(y), text)
}

// DrawTextUp implements the [surface.Surface] interface.
func (s *Surface) DrawTextUp(st surface.Style, text string, x, y float64) {
	tw := s.TextWidth(st, text)
	th := s.TextHeight(st)
	if tw <= 0 || th <= 0 {
		return
	}

	s.pdf.SetFillColor(rgb(background(st)))
	s.pdf.Rect(s.pageX(x), s.pageY(y), float64(th)*s.unit, float64(tw)*s.unit, "F")

	// start of the baseline, at the bottom of the label box
	bx := s.pageX(x + 0.75*float64(th))
	by := s.pageY(y + float64(tw))

	s.setFont(st)
	s.pdf.TransformBegin()
	s.pdf.TransformRotate(90, bx, by)
	s.pdf.Text(bx, by, text)
	s.pdf.TransformEnd()
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func foreground(st surface.Style) color.Color {
	if st.Color == nil {
		return color.Black
	}
	return st.Color
}

func background(st surface.Style) color.Color {
	if st.Background == nil {
		return color.White
	}
	return st.Background
}
