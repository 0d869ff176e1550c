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
	"image/color"
	"log/slog"

	"seehuhn.de/go/mapscale/font/gofont"
	"seehuhn.de/go/mapscale/surface"
)

// Options allows to customize the appearance of scale bars and axes.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Font is used for all labels.  The default is Go Regular.
	Font gofont.Font

	// Color is used for lines, filled rectangles and text.  The default
	// is black.
	Color color.Color

	// Background is the colour of the image background.  The default is
	// white.
	Background color.Color

	// Logger receives debug messages about font size adjustments and
	// projected grid marks, and a warning if an axis has no marks.  If
	// Logger is nil, no messages are logged.
	Logger *slog.Logger
}

var defaultOptions = &Options{
	Font:       gofont.Regular,
	Color:      color.Black,
	Background: color.White,
	Logger:     slog.New(slog.DiscardHandler),
}

// mergeOptions returns a copy of opt where all unset fields are replaced
// by their default values.  opt can be nil.
func mergeOptions(opt *Options) *Options {
	if opt == nil {
		return defaultOptions
	}

	res := &Options{
		Font:       opt.Font,
		Color:      opt.Color,
		Background: opt.Background,
		Logger:     opt.Logger,
	}
	if res.Color == nil {
		res.Color = defaultOptions.Color
	}
	if res.Background == nil {
		res.Background = defaultOptions.Background
	}
	if res.Logger == nil {
		res.Logger = defaultOptions.Logger
	}
	return res
}

func (opt *Options) style(dpi int) surface.Style {
	st := surface.Base(dpi)
	st.Color = opt.Color
	st.Background = opt.Background
	return st
}
