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

package label

import (
	"testing"

	"seehuhn.de/go/mapscale/grid"
)

func TestFit(t *testing.T) {
	cases := []struct {
		size, target, measured float64
		want                   float64
		changed                bool
	}{
		{8, 100, 50, 8, false},
		{8, 50, 50, 8, false},
		{8, 50, 100, 4, true},
		{10, 30, 40, 7.5, true},
		{8, 0, 40, 8, false},
		{8, -11, 40, 8, false},
	}
	for _, c := range cases {
		got, changed := Fit(c.size, c.target, c.measured)
		if got != c.want || changed != c.changed {
			t.Errorf("Fit(%g, %g, %g) = %g, %t, want %g, %t",
				c.size, c.target, c.measured, got, changed, c.want, c.changed)
		}
	}
}

// measureLinear models a font where every character is 0.6em wide.
func measureLinear(size float64) func(string) float64 {
	return func(text string) float64 {
		return 0.6 * size * float64(len(text))
	}
}

func TestFitNeverGrows(t *testing.T) {
	for _, target := range []float64{1, 5, 17, 40, 200} {
		for _, measured := range []float64{0.5, 3, 17, 39, 500} {
			got, _ := Fit(12, target, measured)
			if got > 12 {
				t.Errorf("Fit(12, %g, %g) = %g grows the font", target, measured, got)
			}
		}
	}
}

func TestFitIdempotent(t *testing.T) {
	// every character is a quarter em wide, so that all values are exact
	measure := func(size float64) float64 { return size * 7 / 4 }

	const target = 21
	size := 16.0
	size, changed := Fit(size, target, measure(size))
	if !changed || size != 12 {
		t.Fatalf("first fit gave %g, %t, want 12, true", size, changed)
	}
	again, changed := Fit(size, target, measure(size))
	if changed || again != size {
		t.Errorf("second fit changed %g to %g", size, again)
	}
}

func TestFitAxis(t *testing.T) {
	marks := []grid.Mark{
		{Coord: 5682000, Pixel: 10},
		{Coord: 5683000, Pixel: 40.4},
		{Coord: 5684000, Pixel: 71},
	}

	// "5684000" is 7 characters, 0.6*10*7 = 42 > gap of 30
	size, changed := FitAxis(10, marks, measureLinear(10))
	if !changed {
		t.Fatal("expected the axis font to shrink")
	}
	if want := 10 * 30 / 42.0; size != want {
		t.Errorf("FitAxis = %g, want %g", size, want)
	}

	size, changed = FitAxis(4, marks, measureLinear(4))
	if changed || size != 4 {
		t.Errorf("FitAxis with small font = %g, %t", size, changed)
	}

	for _, few := range [][]grid.Mark{nil, marks[:1]} {
		size, changed := FitAxis(10, few, measureLinear(10))
		if changed || size != 10 {
			t.Errorf("FitAxis with %d marks = %g, %t", len(few), size, changed)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.04, "0"},
		{1, "1"},
		{28.3465, "28.3"},
		{56.693, "56.7"},
		{85.0395, "85"},
		{113.386, "113.4"},
		{141.7325, "141.7"},
		{0.25, "0.2"},
		{0.75, "0.8"},
		{1234.96, "1235"},
	}
	for _, c := range cases {
		if got := Distance(c.in); got != c.want {
			t.Errorf("Distance(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCoordinate(t *testing.T) {
	if got := Coordinate(5682000); got != "5682000" {
		t.Errorf("Coordinate(5682000) = %q", got)
	}
	if got := Coordinate(-1000); got != "-1000" {
		t.Errorf("Coordinate(-1000) = %q", got)
	}
}
