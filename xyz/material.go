// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
)

// Material describes the material properties of a surface.
// Color is the base color, whose alpha component determines opacity.
// Emissive is the color the surface emits independent of lighting,
// used to highlight selected objects.
type Material struct {
	Color    color.RGBA
	Emissive color.RGBA
}

// Rendered returns the color to draw the surface with:
// the emissive color if it is set, otherwise the base color.
func (mt *Material) Rendered() color.RGBA {
	if mt.Emissive.A > 0 {
		return mt.Emissive
	}
	return mt.Color
}
