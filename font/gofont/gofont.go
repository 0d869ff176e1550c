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

// Package gofont provides access to the Go font family for drawing labels.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular         Font = iota // Go Regular
	Bold                        // Go Semi Bold
	BoldItalic                  // Go Semi Bold Italic
	Italic                      // Go Italic
	Medium                      // Go Medium Regular
	MediumItalic                // Go Medium Italic
	Smallcaps                   // Go Smallcaps Regular
	SmallcapsItalic             // Go Smallcaps Italic
	Mono                        // Go Mono Regular
	MonoBold                    // Go Mono Semi Bold
	MonoBoldItalic              // Go Mono Semi Bold Italic
	MonoItalic                  // Go Mono Italic
)

// TTF returns the TrueType data of the font.
func (f Font) TTF() ([]byte, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	return data, nil
}

// Parse returns the parsed font.  Fonts are parsed only once; the
// returned value is shared and safe for concurrent use.
func (f Font) Parse() (*opentype.Font, error) {
	data, err := f.TTF()
	if err != nil {
		return nil, err
	}

	parsedMu.Lock()
	defer parsedMu.Unlock()
	if F, ok := parsed[f]; ok {
		return F, nil
	}

	F, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	parsed[f] = F
	return F, nil
}

// NewFace returns a new face for drawing text of the given size in
// pixels.  Faces are not safe for concurrent use and must be closed by
// the caller.
func NewFace(F *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(F, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

var (
	parsedMu sync.Mutex
	parsed   = map[Font]*opentype.Font{}
)

var ttf = map[Font][]byte{
	Bold:            gobold.TTF,
	BoldItalic:      gobolditalic.TTF,
	Italic:          goitalic.TTF,
	Medium:          gomedium.TTF,
	MediumItalic:    gomediumitalic.TTF,
	Regular:         goregular.TTF,
	Smallcaps:       gosmallcaps.TTF,
	SmallcapsItalic: gosmallcapsitalic.TTF,
	Mono:            gomono.TTF,
	MonoBold:        gomonobold.TTF,
	MonoBoldItalic:  gomonobolditalic.TTF,
	MonoItalic:      gomonoitalic.TTF,
}

// All contains all the Go font family fonts available in this package.
var All = []Font{
	Bold,
	BoldItalic,
	Italic,
	Medium,
	MediumItalic,
	Regular,
	Smallcaps,
	SmallcapsItalic,
	Mono,
	MonoBold,
	MonoBoldItalic,
	MonoItalic,
}
