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
)

// InvalidInputError indicates that a scale bar or an axis cannot be drawn
// for the given parameters.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (err *InvalidInputError) Error() string {
	middle := ""
	if err.Reason != "" {
		middle = ": " + err.Reason
	}
	tail := ""
	if err.Err != nil {
		tail = " (" + err.Err.Error() + ")"
	}
	return fmt.Sprintf("mapscale: invalid %s %v%s%s", err.Field, err.Value, middle, tail)
}

func (err *InvalidInputError) Unwrap() error {
	return err.Err
}
