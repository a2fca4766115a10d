// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and manipulation
// for diagram styles and scene materials.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/linkdiagram/base/errors"
	"golang.org/x/image/colornames"
)

// Standard colors used by the default styles.
var (
	Transparent = color.RGBA{}
	White       = colornames.White
	Black       = colornames.Black
)

// IsNil returns whether the color is the nil initial default color
func IsNil(c color.Color) bool {
	return c == nil || AsRGBA(c) == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// FromString accepts hex values (#rgb, #rrggbb, #rrggbbaa),
// rgb(r, g, b) and rgba(r, g, b, a) with a in [0, 1] or [0, 255],
// "none" or "transparent", and standard CSS color names.
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 { // consider it null
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "rgba("), strings.HasPrefix(lstr, "rgb("):
		val := lstr[strings.IndexByte(lstr, '(')+1:]
		val = strings.TrimRight(val, ")")
		val = strings.ReplaceAll(val, " ", "")
		var r, g, b int
		a := float32(255)
		switch strings.Count(val, ",") {
		case 2:
			if _, err := fmt.Sscanf(val, "%d,%d,%d", &r, &g, &b); err != nil {
				return color.RGBA{}, fmt.Errorf("colors.FromString: invalid rgb value %q: %w", str, err)
			}
		case 3:
			if _, err := fmt.Sscanf(val, "%d,%d,%d,%g", &r, &g, &b, &a); err != nil {
				return color.RGBA{}, fmt.Errorf("colors.FromString: invalid rgba value %q: %w", str, err)
			}
			if a <= 1 {
				a *= 255
			}
		default:
			return color.RGBA{}, errors.New("colors.FromString: could not process: " + str)
		}
		return color.RGBA{clamp8(r), clamp8(g), clamp8(b), clamp8(int(a + 0.5))}, nil
	case lstr == "none", lstr == "off", lstr == "transparent":
		return color.RGBA{}, nil
	default:
		return FromName(lstr)
	}
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) color.RGBA {
	c, err := FromString(str)
	if err != nil {
		panic("colors.MustFromString: " + err.Error())
	}
	return c
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// WithAF32 returns the given color with the alpha
// component set to the given proportion, premultiplying
// the color components as [color.RGBA] requires.
func WithAF32(c color.Color, a float32) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(min(max(a, 0), 1)*255 + 0.5)
	return AsRGBA(n)
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
