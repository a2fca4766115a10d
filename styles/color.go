// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/linkdiagram/colors"
)

// Color is a color that encodes as text (hex, rgb() or a CSS name)
// in configuration files.
type Color struct {
	color.RGBA
}

// Hex returns a [Color] from the given hex string, panicking
// if it is invalid; it is intended for defaults.
func Hex(hex string) Color {
	return Color{colors.MustFromString(hex)}
}

// MarshalText encodes the color as a #RRGGBBAA hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(colors.AsHex(c.RGBA)), nil
}

// UnmarshalText decodes any color string accepted by [colors.FromString].
func (c *Color) UnmarshalText(text []byte) error {
	rgba, err := colors.FromString(string(text))
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}
