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

package axis

import (
	"bytes"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/mapscale/grid"
	"seehuhn.de/go/mapscale/raster"
	"seehuhn.de/go/mapscale/surface"
	"seehuhn.de/go/mapscale/surface/surfacetest"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSize(t *testing.T) {
	cases := []struct {
		o       Orientation
		mapSize int
		dpi     int
		w, h    int
	}{
		{Vertical, 708, 72, 25, 708},
		{Horizontal, 708, 72, 708, 25},
		{Vertical, 500, 300, 104, 2083},
		{Horizontal, 1000, 150, 2083, 52},
	}
	for _, tc := range cases {
		w, h := tc.o.Size(tc.mapSize, tc.dpi)
		if w != tc.w || h != tc.h {
			t.Errorf("%s.Size(%d, %d) = %dx%d, want %dx%d",
				tc.o, tc.mapSize, tc.dpi, w, h, tc.w, tc.h)
		}
	}
}

func TestVertical(t *testing.T) {
	rec := surfacetest.New(25, 708)
	marks := Draw(rec, Vertical, 350000, 352000, 500, surface.Base(72), discard)

	wantMarks := []grid.Mark{
		{Coord: 350000, Pixel: 0},
		{Coord: 350500, Pixel: 177},
		{Coord: 351000, Pixel: 354},
		{Coord: 351500, Pixel: 531},
		{Coord: 352000, Pixel: 708},
	}
	if d := cmp.Diff(wantMarks, marks); d != "" {
		t.Errorf("marks (-want +got):\n%s", d)
	}

	// ticks are flipped, so that coordinates increase upwards
	var ticks []float64
	for _, op := range rec.Filter("line") {
		if op.Y0 != op.Y1 || op.X0 != 0 || op.X1 != 25 {
			t.Errorf("unexpected tick %+v", op)
		}
		ticks = append(ticks, op.Y0)
	}
	if d := cmp.Diff([]float64{708, 531, 354, 177, 0}, ticks); d != "" {
		t.Errorf("ticks (-want +got):\n%s", d)
	}

	// "352000" is 24 pixels wide, the digit "1" is 4 pixels wide.  The
	// label of the last mark does not fit.
	type pos struct {
		Text string
		X, Y float64
	}
	var got []pos
	for _, op := range rec.Filter("text-up") {
		got = append(got, pos{op.Text, op.X0, op.Y0})
	}
	want := []pos{
		{"350000", 12, 680},
		{"350500", 12, 503},
		{"351000", 12, 326},
		{"351500", 12, 149},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("labels (-want +got):\n%s", d)
	}
	if n := len(rec.Filter("text")); n != 0 {
		t.Errorf("%d upright labels on a vertical axis", n)
	}
}

func TestHorizontal(t *testing.T) {
	rec := surfacetest.New(708, 25)
	Draw(rec, Horizontal, 350000, 352000, 500, surface.Base(72), discard)

	var ticks []float64
	for _, op := range rec.Filter("line") {
		if op.X0 != op.X1 || op.Y0 != 0 || op.Y1 != 25 {
			t.Errorf("unexpected tick %+v", op)
		}
		ticks = append(ticks, op.X0)
	}
	if d := cmp.Diff([]float64{0, 177, 354, 531, 708}, ticks); d != "" {
		t.Errorf("ticks (-want +got):\n%s", d)
	}

	type pos struct {
		Text string
		X, Y float64
	}
	var got []pos
	for _, op := range rec.Filter("text") {
		got = append(got, pos{op.Text, op.X0, op.Y0})
	}
	want := []pos{
		{"350000", 4, 12},
		{"350500", 181, 12},
		{"351000", 358, 12},
		{"351500", 535, 12},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("labels (-want +got):\n%s", d)
	}
}

// TestLabelsInside checks that no label extends beyond the axis, for a
// range of resolutions and grid sizes.
func TestLabelsInside(t *testing.T) {
	for _, dpi := range []int{72, 96, 150, 300} {
		for _, gridSize := range []int{20, 100, 200, 1000} {
			for _, o := range []Orientation{Vertical, Horizontal} {
				w, h := o.Size(400, dpi)
				rec := surfacetest.New(w, h)
				Draw(rec, o, 5000.3, 7999.7, gridSize, surface.Base(dpi), discard)

				for _, op := range rec.Ops {
					tw := float64(rec.TextWidth(op.Style, op.Text))
					th := float64(rec.TextHeight(op.Style))
					switch op.Kind {
					case "text-up":
						if op.Y0 < 0 || op.Y0+tw > float64(h) || op.X0+th > float64(w) {
							t.Errorf("%s axis, %d dpi, grid %d: label %q at (%g,%g) is outside %dx%d",
								o, dpi, gridSize, op.Text, op.X0, op.Y0, w, h)
						}
					case "text":
						if op.X0 < 0 || op.X0+tw > float64(w) {
							t.Errorf("%s axis, %d dpi, grid %d: label %q at x=%g is outside width %d",
								o, dpi, gridSize, op.Text, op.X0, w)
						}
					}
				}
			}
		}
	}
}

func TestShrink(t *testing.T) {
	rec := surfacetest.New(25, 708)
	Draw(rec, Vertical, 350000, 352000, 20, surface.Base(72), discard)

	// marks are 7 pixels apart, the widest label is 24 pixels wide
	want := 8 * 7 / 24.0
	ops := rec.Filter("text-up")
	if len(ops) == 0 {
		t.Fatal("no labels")
	}
	for _, op := range ops {
		if op.Style.FontSize != want {
			t.Fatalf("font size %g, want %g", op.Style.FontSize, want)
		}
	}
}

func TestEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	rec := surfacetest.New(708, 25)
	marks := Draw(rec, Horizontal, 350001, 350499, 500, surface.Base(72), logger)
	if marks != nil {
		t.Errorf("marks = %v", marks)
	}
	if len(rec.Ops) != 1 || rec.Ops[0].Kind != "clear" {
		t.Errorf("unexpected operations %v", rec.Ops)
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func TestRender(t *testing.T) {
	w, h := Vertical.Size(708, 72)
	c, err := raster.New(w, h, nil)
	if err != nil {
		t.Fatal(err)
	}
	Draw(c, Vertical, 350000, 352000, 500, surface.Base(72), discard)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	white := color.RGBA{255, 255, 255, 255}
	if c.Image.RGBAAt(2, 530) == white && c.Image.RGBAAt(2, 531) == white {
		t.Error("tick at y=531 is missing")
	}
	if c.Image.RGBAAt(2, 440) != white {
		t.Error("unexpected ink between ticks")
	}
}
