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

package mapscale

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/mapscale/axis"
	"seehuhn.de/go/mapscale/grid"
	"seehuhn.de/go/mapscale/raster"
	"seehuhn.de/go/mapscale/scalebar"
	"seehuhn.de/go/mapscale/surface"
)

// GridSize returns the distance in metres between neighbouring axis
// marks for a map of the given scale.  For example, a scale of 10000
// stands for 1:10000.
func GridSize(scale int) int {
	return grid.Size(scale)
}

// Request describes a map, for which scale bars and axes are drawn.
type Request struct {
	// BBox is the area shown on the map, in metres.
	BBox rect.Rect

	// MapWidth and MapHeight give the size of the map in pixels at 72 dpi.
	MapWidth, MapHeight int

	// DPI is the resolution of the generated images.
	DPI int

	// Scale is the map scale, used to choose the grid size of the axes
	// when GridSize is zero.
	Scale int

	// GridSize, if non-zero, is the distance in metres between
	// neighbouring axis marks.
	GridSize int
}

// Validate checks that the request describes a non-empty map at a valid
// resolution.  The returned error, if any, is an *InvalidInputError.
func (r *Request) Validate() error {
	if r.MapWidth <= 0 {
		return &InvalidInputError{Field: "map width", Value: r.MapWidth, Reason: "must be positive"}
	}
	if r.MapHeight <= 0 {
		return &InvalidInputError{Field: "map height", Value: r.MapHeight, Reason: "must be positive"}
	}
	if r.DPI <= 0 {
		return &InvalidInputError{Field: "resolution", Value: r.DPI, Reason: "must be positive"}
	}
	b := r.BBox
	for _, x := range []float64{b.LLx, b.LLy, b.URx, b.URy} {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return &InvalidInputError{Field: "bounding box", Value: b, Reason: "coordinates must be finite"}
		}
	}
	if !(b.URx >= b.LLx) || !(b.URy >= b.LLy) {
		return &InvalidInputError{Field: "bounding box", Value: b, Reason: "maximum is smaller than minimum"}
	}
	return nil
}

// gridSize returns the grid size to use for the axes.
func (r *Request) gridSize() (int, error) {
	g := r.GridSize
	if g == 0 {
		g = grid.Size(r.Scale)
	}
	if g <= 0 {
		return 0, &InvalidInputError{Field: "grid size", Value: g, Reason: "must be positive"}
	}
	return g, nil
}

// ScaleBarSize returns the size of the scale bar image in pixels.
func (r *Request) ScaleBarSize() (width, height int) {
	return scalebar.Size(r.DPI)
}

// VerticalAxisSize returns the size of the vertical axis image in pixels.
func (r *Request) VerticalAxisSize() (width, height int) {
	return axis.Vertical.Size(r.MapHeight, r.DPI)
}

// HorizontalAxisSize returns the size of the horizontal axis image in
// pixels.
func (r *Request) HorizontalAxisSize() (width, height int) {
	return axis.Horizontal.Size(r.MapWidth, r.DPI)
}

// DrawScaleBar draws the scale bar for r onto s.  The surface should have
// the size given by r.ScaleBarSize.
func DrawScaleBar(s surface.Surface, r *Request, opt *Options) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.BBox.Dx() == 0 {
		return &InvalidInputError{Field: "bounding box", Value: r.BBox, Reason: "zero width"}
	}
	opt = mergeOptions(opt)

	l := scalebar.NewLayout(r.BBox.Dx(), r.MapWidth, r.DPI)
	scalebar.Draw(s, l, opt.style(r.DPI), opt.Logger)
	return nil
}

// DrawVerticalAxis draws the vertical axis for r onto s.  The surface
// should have the size given by r.VerticalAxisSize.
func DrawVerticalAxis(s surface.Surface, r *Request, opt *Options) error {
	return drawAxis(s, axis.Vertical, r, opt)
}

// DrawHorizontalAxis draws the horizontal axis for r onto s.  The surface
// should have the size given by r.HorizontalAxisSize.
func DrawHorizontalAxis(s surface.Surface, r *Request, opt *Options) error {
	return drawAxis(s, axis.Horizontal, r, opt)
}

func drawAxis(s surface.Surface, o axis.Orientation, r *Request, opt *Options) error {
	if err := r.Validate(); err != nil {
		return err
	}
	g, err := r.gridSize()
	if err != nil {
		return err
	}

	minCoord, maxCoord := r.BBox.LLx, r.BBox.URx
	if o == axis.Vertical {
		minCoord, maxCoord = r.BBox.LLy, r.BBox.URy
	}
	if minCoord == maxCoord {
		return &InvalidInputError{Field: "bounding box", Value: r.BBox, Reason: "zero extent along the " + o.String() + " axis"}
	}
	opt = mergeOptions(opt)

	axis.Draw(s, o, minCoord, maxCoord, g, opt.style(r.DPI), opt.Logger)
	return nil
}

// GenerateScaleImage returns the scale bar image for a map which shows
// bbox across mapWidth×mapHeight pixels, rendered at dpi.
func GenerateScaleImage(bbox rect.Rect, mapWidth, mapHeight, dpi int, opt *Options) (*image.RGBA, error) {
	r := &Request{BBox: bbox, MapWidth: mapWidth, MapHeight: mapHeight, DPI: dpi}
	return render(r, r.ScaleBarSize, DrawScaleBar, opt)
}

// GenerateVerticalAxis returns the vertical axis image for a map of the
// given scale.  The grid size is chosen using [GridSize].
func GenerateVerticalAxis(bbox rect.Rect, mapWidth, mapHeight, dpi, scale int, opt *Options) (*image.RGBA, error) {
	return GenerateVerticalAxisWithGrid(bbox, mapWidth, mapHeight, dpi, grid.Size(scale), opt)
}

// GenerateVerticalAxisString is like [GenerateVerticalAxis], but takes the
// scale as a decimal string.
func GenerateVerticalAxisString(bbox rect.Rect, mapWidth, mapHeight, dpi int, scale string, opt *Options) (*image.RGBA, error) {
	s, err := parseScale(scale)
	if err != nil {
		return nil, err
	}
	return GenerateVerticalAxis(bbox, mapWidth, mapHeight, dpi, s, opt)
}

// GenerateVerticalAxisWithGrid returns the vertical axis image with marks
// every gridSize metres.
func GenerateVerticalAxisWithGrid(bbox rect.Rect, mapWidth, mapHeight, dpi, gridSize int, opt *Options) (*image.RGBA, error) {
	if gridSize <= 0 {
		return nil, &InvalidInputError{Field: "grid size", Value: gridSize, Reason: "must be positive"}
	}
	r := &Request{BBox: bbox, MapWidth: mapWidth, MapHeight: mapHeight, DPI: dpi, GridSize: gridSize}
	return render(r, r.VerticalAxisSize, DrawVerticalAxis, opt)
}

// GenerateHorizontalAxis returns the horizontal axis image for a map of
// the given scale.  The grid size is chosen using [GridSize].
func GenerateHorizontalAxis(bbox rect.Rect, mapWidth, mapHeight, dpi, scale int, opt *Options) (*image.RGBA, error) {
	return GenerateHorizontalAxisWithGrid(bbox, mapWidth, mapHeight, dpi, grid.Size(scale), opt)
}

// GenerateHorizontalAxisString is like [GenerateHorizontalAxis], but takes
// the scale as a decimal string.
func GenerateHorizontalAxisString(bbox rect.Rect, mapWidth, mapHeight, dpi int, scale string, opt *Options) (*image.RGBA, error) {
	s, err := parseScale(scale)
	if err != nil {
		return nil, err
	}
	return GenerateHorizontalAxis(bbox, mapWidth, mapHeight, dpi, s, opt)
}

// GenerateHorizontalAxisWithGrid returns the horizontal axis image with
// marks every gridSize metres.
func GenerateHorizontalAxisWithGrid(bbox rect.Rect, mapWidth, mapHeight, dpi, gridSize int, opt *Options) (*image.RGBA, error) {
	if gridSize <= 0 {
		return nil, &InvalidInputError{Field: "grid size", Value: gridSize, Reason: "must be positive"}
	}
	r := &Request{BBox: bbox, MapWidth: mapWidth, MapHeight: mapHeight, DPI: dpi, GridSize: gridSize}
	return render(r, r.HorizontalAxisSize, DrawHorizontalAxis, opt)
}

func parseScale(scale string) (int, error) {
	s, err := strconv.Atoi(scale)
	if err != nil {
		return 0, &InvalidInputError{Field: "scale", Value: strconv.Quote(scale), Reason: "not an integer", Err: err}
	}
	return s, nil
}

type drawFunc func(surface.Surface, *Request, *Options) error

// render allocates a raster canvas of the given size and draws onto it.
func render(r *Request, size func() (int, int), draw drawFunc, opt *Options) (*image.RGBA, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	w, h := size()
	if w < 1 || h < 1 {
		return nil, &InvalidInputError{
			Field:  "resolution",
			Value:  r.DPI,
			Reason: fmt.Sprintf("image size %dx%d is empty", w, h),
		}
	}

	opt = mergeOptions(opt)
	F, err := opt.Font.Parse()
	if err != nil {
		return nil, err
	}

	c, err := raster.New(w, h, F)
	if err != nil {
		return nil, err
	}
	err = draw(c, r, opt)
	closeErr := c.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, closeErr
	}
	return c.Image, nil
}
