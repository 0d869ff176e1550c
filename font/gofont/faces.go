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

package gofont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Faces holds the faces of one font at different sizes.  Text measured
// with a Faces value has the same width on every surface which uses the
// same font.
//
// Faces is not safe for concurrent use.  Call Close to release the faces.
type Faces struct {
	font  *opentype.Font
	faces map[float64]font.Face
	err   error
}

// NewFaces returns an empty face cache for F.
func NewFaces(F *opentype.Font) *Faces {
	return &Faces{
		font:  F,
		faces: make(map[float64]font.Face),
	}
}

// Get returns the face for the given size in pixels.  If the face cannot
// be created, nil is returned and the error is reported by Close.
func (fs *Faces) Get(size float64) font.Face {
	if f, ok := fs.faces[size]; ok {
		return f
	}
	f, err := NewFace(fs.font, size)
	if err != nil {
		if fs.err == nil {
			fs.err = err
		}
		return nil
	}
	fs.faces[size] = f
	return f
}

// TextWidth returns the advance width of text, rounded up to whole pixels.
func (fs *Faces) TextWidth(size float64, text string) int {
	face := fs.Get(size)
	if face == nil {
		return 0
	}
	return font.MeasureString(face, text).Ceil()
}

// TextHeight returns the line height for the given size, rounded up to
// whole pixels.
func (fs *Faces) TextHeight(size float64) int {
	face := fs.Get(size)
	if face == nil {
		return 0
	}
	return face.Metrics().Height.Ceil()
}

// Close releases all faces.  It returns the first error encountered while
// creating a face, if any.
func (fs *Faces) Close() error {
	for size, face := range fs.faces {
		face.Close()
		delete(fs.faces, size)
	}
	return fs.err
}
