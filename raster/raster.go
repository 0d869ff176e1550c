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

// Package raster implements a [surface.Surface] which draws into an
// in-memory RGB image.
//
// Shapes are rasterized with anti-aliasing using golang.org/x/image/vector,
// text is drawn with golang.org/x/image/font.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapscale/font/gofont"
	"seehuhn.de/go/mapscale/surface"
)

// Canvas draws into an RGB image.  Every pixel of the image is opaque.
//
// A Canvas holds font faces which must be released using Close.
type Canvas struct {
	Image  *image.RGBA
	Raster *vector.Rasterizer
	Width  int
	Height int

	faces *gofont.Faces
}

var _ surface.Surface = (*Canvas)(nil)

// New allocates a canvas of the given size.  The image is initially
// white.  If F is nil, Go Regular is used for text.
func New(width, height int, F *opentype.Font) (*Canvas, error) {
	if F == nil {
		var err error
		F, err = gofont.Regular.Parse()
		if err != nil {
			return nil, err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Canvas{
		Image:  img,
		Raster: vector.NewRasterizer(0, 0),
		Width:  width,
		Height: height,
		faces:  gofont.NewFaces(F),
	}, nil
}

// Close releases the font faces used by the canvas.  It returns the first
// error encountered while creating a face, if any.
func (c *Canvas) Close() error {
	return c.faces.Close()
}

// Size implements the [surface.Surface] interface.
func (c *Canvas) Size() (int, int) {
	return c.Width, c.Height
}

// Clear implements the [surface.Surface] interface.
func (c *Canvas) Clear(s surface.Style) {
	bg := image.NewUniform(background(s))
	draw.Draw(c.Image, c.Image.Bounds(), bg, image.Point{}, draw.Src)
}

// StrokeLine implements the [surface.Surface] interface.
func (c *Canvas) StrokeLine(s surface.Style, x0, y0, x1, y1 float64) {
	seg := segment(vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y1}, s.LineWidth)
	c.fill(s, seg)
}

// StrokeRect implements the [surface.Surface] interface.
func (c *Canvas) StrokeRect(s surface.Style, r image.Rectangle) {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	corners := []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}

	// All four sides go into one path, so that the corners where the
	// sides overlap are painted only once.
	var sides [][]vec.Vec2
	for i, p := range corners {
		sides = append(sides, segment(p, corners[(i+1)%4], s.LineWidth)...)
	}
	c.fill(s, sides)
}

// FillRect implements the [surface.Surface] interface.
func (c *Canvas) FillRect(s surface.Style, r image.Rectangle) {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	c.fill(s, [][]vec.Vec2{{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}})
}

// segment returns the outline of a stroked line segment with square caps.
// All outlines have the same orientation, so that overlapping segments do
// not cancel each other out.
func segment(a, b vec.Vec2, width float64) [][]vec.Vec2 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || width <= 0 {
		return nil
	}
	u := d.Mul(1 / l)
	hw := width / 2
	n := vec.Vec2{X: -u.Y, Y: u.X}.Mul(hw)

	p0 := a.Sub(u.Mul(hw))
	p1 := b.Add(u.Mul(hw))

	return [][]vec.Vec2{{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}}
}

// fill paints the union of the closed polygons in path.  Only the pixels
// inside the bounding box of the path are touched, so that the cost does
// not depend on the size of the canvas.
func (c *Canvas) fill(s surface.Style, path [][]vec.Vec2) {
	box := pathBounds(path).Intersect(c.Image.Bounds())
	if box.Empty() {
		return
	}

	off := vec.Vec2{X: float64(box.Min.X), Y: float64(box.Min.Y)}
	c.Raster.Reset(box.Dx(), box.Dy())
	for _, poly := range path {
		for i, p := range poly {
			p = p.Sub(off)
			if i == 0 {
				c.Raster.MoveTo(float32(p.X), float32(p.Y))
			} else {
				c.Raster.LineTo(float32(p.X), float32(p.Y))
			}
		}
		c.Raster.ClosePath()
	}

	src := image.NewUniform(foreground(s))
	c.Raster.Draw(c.Image, box, src, image.Point{})
}

// pathBounds returns the smallest integer rectangle containing all
// points of path.
func pathBounds(path [][]vec.Vec2) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range path {
		for _, p := range poly {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	if !(minX <= maxX && minY <= maxY) {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// TextWidth implements the [surface.Surface] interface.
func (c *Canvas) TextWidth(s surface.Style, text string) int {
	return c.faces.TextWidth(s.FontSize, text)
}

// TextHeight implements the [surface.Surface] interface.
func (c *Canvas) TextHeight(s surface.Style) int {
	return c.faces.TextHeight(s.FontSize)
}

// DrawText implements the [surface.Surface] interface.
func (c *Canvas) DrawText(s surface.Style, text string, x, y float64) {
	drawString(c.Image, c.faces.Get(s.FontSize), foreground(s), text, x, y)
}

// DrawTextUp implements the [surface.Surface] interface.
//
// The text is first drawn upright into a temporary image, which is then
// rotated into place.  The temporary image has the background colour, so
// that the label box covers anything drawn below it.
func (c *Canvas) DrawTextUp(s surface.Style, text string, x, y float64) {
	face := c.faces.Get(s.FontSize)
	if face == nil {
		return
	}
	tw := c.faces.TextWidth(s.FontSize, text)
	th := c.faces.TextHeight(s.FontSize)
	if tw <= 0 || th <= 0 {
		return
	}

	tmp := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.Draw(tmp, tmp.Bounds(), image.NewUniform(background(s)), image.Point{}, draw.Src)
	drawString(tmp, face, foreground(s), text, 0, math.Floor(float64(th)*0.75))

	// (u, v) in the temporary image maps to (x+v, y+tw-u) on the canvas
	m := matrix.Matrix{0, -1, 1, 0, 0, 0}.Mul(matrix.Translate(x, y+float64(tw)))
	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	xdraw.NearestNeighbor.Transform(c.Image, aff, tmp, tmp.Bounds(), draw.Src, nil)
}

func drawString(dst draw.Image, face font.Face, col color.Color, text string, x, y float64) {
	if face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(y * 64)),
		},
	}
	d.DrawString(text)
}

func foreground(s surface.Style) color.Color {
	if s.Color == nil {
		return color.Black
	}
	return s.Color
}

func background(s surface.Style) color.Color {
	if s.Background == nil {
		return color.White
	}
	return s.Background
}
