// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"cogentcore.org/linkdiagram/base/tolassert"
	"cogentcore.org/linkdiagram/math32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaults(t *testing.T) {
	var cm Camera
	cm.Defaults()
	assert.Equal(t, math32.Vec3(0, 0, 400), cm.Pos)
	assert.Equal(t, math32.Vector3Y, cm.UpDir)
	assert.Equal(t, float32(50), cm.FOV)

	p := cm.Project(math32.Vector3Zero)
	tolassert.Equal(t, 0, p.X)
	tolassert.Equal(t, 0, p.Y)

	ray := cm.RayFromNDC(math32.Vec2(0, 0))
	assert.Equal(t, cm.Pos, ray.Origin)
	tolassert.Equal(t, -1, ray.Dir.Z)
}

func TestCameraRayThroughProjection(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.SetSize(image.Pt(800, 600))
	tolassert.Equal(t, 800.0/600.0, cm.Aspect)

	cm.Translate(math32.Vec3(15, -7, 0))
	assert.Equal(t, math32.Vec3(15, -7, 0), cm.Target)
	for _, pt := range []math32.Vector3{{10, 20, 0}, {-50, 30, 0}, {0, 0, 0}} {
		ndc := cm.Project(pt)
		ray := cm.RayFromNDC(math32.Vec2(ndc.X, ndc.Y))
		assert.Less(t, ray.DistanceSqToPoint(pt), float32(1e-3), pt)
	}
}

func TestPixelToNDC(t *testing.T) {
	size := image.Pt(100, 50)
	assert.Equal(t, math32.Vec2(-1, 1), PixelToNDC(image.Pt(0, 0), size))
	assert.Equal(t, math32.Vec2(0, 0), PixelToNDC(image.Pt(50, 25), size))
	assert.Equal(t, math32.Vec2(1, -1), PixelToNDC(image.Pt(100, 50), size))
	assert.Equal(t, math32.Vec2(25, 12.5), NDCToPixel(math32.Vec2(-0.5, 0.5), size))
	assert.Equal(t, math32.Vector2{}, PixelToNDC(image.Pt(1, 1), image.Point{}))
}

func TestScaleAtDepth(t *testing.T) {
	var cm Camera
	cm.Defaults()
	s := cm.ScaleAtDepth(500, 400)
	tolassert.EqualTol(t, 1.3404, s, 1e-3)
	tolassert.EqualTol(t, 400, cm.DepthAtScale(500, s), 1e-3)
}
