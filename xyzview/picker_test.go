// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/linkdiagram/math32"
	"cogentcore.org/linkdiagram/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var highlight = color.RGBA{255, 209, 102, 255}

func pixelOf(sc *xyz.Scene, pt math32.Vector3) image.Point {
	ndc := sc.Camera.Project(pt)
	px := xyz.NDCToPixel(math32.Vec2(ndc.X, ndc.Y), size)
	return image.Pt(int(px.X+0.5), int(px.Y+0.5))
}

func TestPicker(t *testing.T) {
	sc := xyz.NewScene()
	sc.Camera.SetSize(size)
	glow := color.RGBA{1, 2, 3, 255}
	a := xyz.NewMarker("a", math32.Vec3(0, 0, 0), 1, xyz.Material{})
	b := xyz.NewMarker("b", math32.Vec3(50, 0, 0), 1, xyz.Material{Emissive: glow})
	l := xyz.NewLine("a-b", a.Pos, b.Pos, xyz.Material{})
	sc.Add(l)
	sc.Add(a)
	sc.Add(b)
	pk := NewPicker(sc, highlight)

	// the marker is nearer than the line through it
	hit, ok := pk.Pick(pixelOf(sc, a.Pos), size)
	require.True(t, ok)
	assert.Equal(t, a, hit.Object)

	assert.Equal(t, a, pk.Select(pixelOf(sc, a.Pos), size))
	assert.Equal(t, highlight, a.Material.Emissive)
	assert.Equal(t, a, pk.Selected())

	// reselecting keeps the highlight and its original
	pk.Select(pixelOf(sc, a.Pos), size)
	assert.Equal(t, highlight, a.Material.Emissive)

	assert.Equal(t, b, pk.Select(pixelOf(sc, b.Pos), size))
	assert.Equal(t, color.RGBA{}, a.Material.Emissive)
	assert.Equal(t, highlight, b.Material.Emissive)

	assert.Equal(t, l, pk.Select(pixelOf(sc, math32.Vec3(25, 0.3, 0)), size))
	assert.Equal(t, glow, b.Material.Emissive)

	// a miss clears the selection
	assert.Nil(t, pk.Select(image.Pt(0, 0), size))
	assert.Nil(t, pk.Selected())
	assert.Equal(t, color.RGBA{}, l.Material.Emissive)
	assert.Equal(t, glow, b.Material.Emissive)
	_, ok = pk.Pick(image.Pt(0, 0), size)
	assert.False(t, ok)
}
