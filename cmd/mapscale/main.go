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

// Mapscale renders the scale bar and the coordinate axes for a printed map.
//
// Usage:
//
//	mapscale -bbox minX,minY,maxX,maxY -width 1000 -height 700 [options]
//
// By default, three PNG files are written: prefix-scale.png,
// prefix-vertical.png and prefix-horizontal.png.  With -pdf, a single
// PDF page containing all three is written instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/term"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/mapscale"
	"seehuhn.de/go/mapscale/pdfsurface"
	"seehuhn.de/go/mapscale/surface"
)

func main() {
	bboxArg := flag.String("bbox", "", "map area `minX,minY,maxX,maxY` in metres")
	width := flag.Int("width", 0, "map width in pixels at 72 dpi")
	height := flag.Int("height", 0, "map height in pixels at 72 dpi")
	dpi := flag.Int("dpi", 72, "resolution of the generated images")
	scale := flag.Int("scale", 10000, "map scale, used to choose the grid size")
	gridSize := flag.Int("grid", 0, "distance between axis marks in metres (overrides -scale)")
	prefix := flag.String("o", "map", "`prefix` for the PNG output files")
	pdfFile := flag.String("pdf", "", "write a PDF `file` instead of PNG images (\"-\" for stdout)")
	verbose := flag.Bool("v", false, "log font size adjustments and grid marks")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("mapscale: ")

	if *bboxArg == "" || flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -bbox minX,minY,maxX,maxY -width w -height h [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	bbox, err := parseBBox(*bboxArg)
	if err != nil {
		log.Fatal(err)
	}

	r := &mapscale.Request{
		BBox:      bbox,
		MapWidth:  *width,
		MapHeight: *height,
		DPI:       *dpi,
		Scale:     *scale,
		GridSize:  *gridSize,
	}
	if err := r.Validate(); err != nil {
		log.Fatal(err)
	}

	opt := &mapscale.Options{}
	if *verbose {
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if *pdfFile != "" {
		err = writePDFFile(*pdfFile, r, opt)
	} else {
		err = writePNGFiles(*prefix, r, opt)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// parseBBox parses a bounding box given as four comma-separated numbers.
func parseBBox(s string) (rect.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return rect.Rect{}, fmt.Errorf("invalid bounding box %q: need four values", s)
	}
	var v [4]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return rect.Rect{}, fmt.Errorf("invalid bounding box %q: %w", s, err)
		}
		v[i] = x
	}
	return rect.Rect{LLx: v[0], LLy: v[1], URx: v[2], URy: v[3]}, nil
}

type part struct {
	name string
	size func() (int, int)
	draw func(surface.Surface, *mapscale.Request, *mapscale.Options) error
}

func parts(r *mapscale.Request) []part {
	return []part{
		{"scale", r.ScaleBarSize, mapscale.DrawScaleBar},
		{"vertical", r.VerticalAxisSize, mapscale.DrawVerticalAxis},
		{"horizontal", r.HorizontalAxisSize, mapscale.DrawHorizontalAxis},
	}
}

func writePNGFiles(prefix string, r *mapscale.Request, opt *mapscale.Options) error {
	b, w, h, dpi := r.BBox, r.MapWidth, r.MapHeight, r.DPI
	generate := map[string]func() (*image.RGBA, error){
		"scale": func() (*image.RGBA, error) {
			return mapscale.GenerateScaleImage(b, w, h, dpi, opt)
		},
		"vertical": func() (*image.RGBA, error) {
			if r.GridSize != 0 {
				return mapscale.GenerateVerticalAxisWithGrid(b, w, h, dpi, r.GridSize, opt)
			}
			return mapscale.GenerateVerticalAxis(b, w, h, dpi, r.Scale, opt)
		},
		"horizontal": func() (*image.RGBA, error) {
			if r.GridSize != 0 {
				return mapscale.GenerateHorizontalAxisWithGrid(b, w, h, dpi, r.GridSize, opt)
			}
			return mapscale.GenerateHorizontalAxis(b, w, h, dpi, r.Scale, opt)
		},
	}

	for _, p := range parts(r) {
		img, err := generate[p.name]()
		if err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		fname := prefix + "-" + p.name + ".png"
		if err := writePNG(fname, img); err != nil {
			return err
		}
		log.Printf("wrote %s", fname)
	}
	return nil
}

func writePNG(fname string, img image.Image) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", fname, err)
	}
	return out.Close()
}

// margin around and between the parts on the PDF page, in points
const margin = 18.0

func writePDFFile(fname string, r *mapscale.Request, opt *mapscale.Options) error {
	if fname == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		return writePDF(os.Stdout, r, opt)
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = writePDF(out, r, opt)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writePDF writes a one-page PDF document, with the vertical axis on the
// left, the horizontal axis at the bottom of the vertical axis and the
// scale bar below.
func writePDF(w io.Writer, r *mapscale.Request, opt *mapscale.Options) error {
	pt := 72 / float64(r.DPI)
	vw, vh := r.VerticalAxisSize()
	hw, hh := r.HorizontalAxisSize()
	sw, sh := r.ScaleBarSize()

	pageWidth := 2*margin + float64(vw+max(hw, sw))*pt
	pageHeight := 3*margin + float64(vh+hh+sh)*pt
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetTitle("Map scale", true)
	pdf.AddPage()

	pos := map[string][2]float64{
		"vertical":   {margin, margin},
		"horizontal": {margin + float64(vw)*pt, margin + float64(vh)*pt},
		"scale":      {margin + float64(vw)*pt, 2*margin + float64(vh+hh)*pt},
	}
	for _, p := range parts(r) {
		width, height := p.size()
		xy := pos[p.name]
		s, err := pdfsurface.New(pdf, xy[0], xy[1], width, height, r.DPI, opt.Font)
		if err != nil {
			return err
		}
		err = p.draw(s, r, opt)
		closeErr := s.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
	}

	return pdf.Output(w)
}
