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

package pdfsurface

import (
	"bytes"
	"image"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"gonum.org/v1/gonum/floats/scalar"

	"seehuhn.de/go/mapscale/font/gofont"
	"seehuhn.de/go/mapscale/surface"
)

func newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	return pdf
}

func TestUnitConversion(t *testing.T) {
	cases := []struct {
		docUnit string
		dpi     int
		want    float64 // document units per pixel
	}{
		{"pt", 72, 1},
		{"pt", 144, 0.5},
		{"in", 72, 1.0 / 72},
		{"mm", 72, 25.4 / 72},
	}
	for _, tc := range cases {
		pdf := gofpdf.New("P", tc.docUnit, "A4", "")
		pdf.AddPage()
		s, err := New(pdf, 0, 0, 10, 10, tc.dpi, gofont.Regular)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(s.unit, tc.want, 1e-12) {
			t.Errorf("%s at %d dpi: unit = %g, want %g", tc.docUnit, tc.dpi, s.unit, tc.want)
		}
		if err := s.Close(); err != nil {
			t.Error(err)
		}
	}
}

func TestInvalid(t *testing.T) {
	if _, err := New(newDoc(), 0, 0, 10, 10, 0, gofont.Regular); err == nil {
		t.Error("zero resolution accepted")
	}
	if _, err := New(newDoc(), 0, 0, 0, 10, 72, gofont.Regular); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := New(newDoc(), 0, 0, 10, 10, 72, gofont.Font(-1)); err == nil {
		t.Error("unknown font accepted")
	}
}

// TestMetrics checks that text is measured in pixels of the
// surface, independent of the document's unit of measure.
func TestMetrics(t *testing.T) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	s, err := New(pdf, 10, 10, 100, 100, 300, gofont.Regular)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	st := surface.Base(300)
	w := s.TextWidth(st, "352000")
	if w <= 0 || w > 6*int(st.FontSize) {
		t.Errorf("text width %d at font size %g", w, st.FontSize)
	}
	if h := s.TextHeight(st); h < int(st.FontSize) {
		t.Errorf("text height %d at font size %g", h, st.FontSize)
	}
}

func TestDraw(t *testing.T) {
	pdf := newDoc()
	s, err := New(pdf, 20, 30, 170, 25, 72, gofont.Regular)
	if err != nil {
		t.Fatal(err)
	}

	st := surface.Base(72)
	s.Clear(st)
	s.FillRect(st, image.Rect(5, 5, 33, 13))
	s.StrokeRect(st, image.Rect(33, 5, 61, 13))
	s.StrokeLine(st, 61, 2, 61, 5)
	s.DrawText(st, "28.3", 20, 3)
	s.DrawTextUp(st, "352000", 100, 0)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(buf.Len(), 10)])
	}
}
