// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/linkdiagram/base/tolassert"
	"cogentcore.org/linkdiagram/events"
	"cogentcore.org/linkdiagram/math32"
	"cogentcore.org/linkdiagram/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var size = image.Pt(800, 600)

func newNavigator() *Navigator {
	return NewNavigator(xyz.NewScene(), size)
}

// planePoint returns the world point on z = 0 under the given pixel.
func planePoint(t *testing.T, cam *xyz.Camera, pt image.Point) math32.Vector3 {
	t.Helper()
	ray := cam.RayFromNDC(xyz.PixelToNDC(pt, size))
	d, ok := ray.IntersectPlaneZ(0)
	require.True(t, ok)
	return ray.At(d)
}

func TestPan(t *testing.T) {
	nv := newNavigator()
	cam := &nv.Scene.Camera
	s := cam.ScaleAtDepth(600, 400)
	tolassert.Equal(t, s, nv.Scale())

	nv.Pan(10, 20)
	tolassert.Equal(t, -10/s, cam.Pos.X)
	tolassert.Equal(t, 20/s, cam.Pos.Y)
	assert.Equal(t, float32(400), cam.Pos.Z)
	assert.Equal(t, math32.Vec3(cam.Pos.X, cam.Pos.Y, 0), cam.Target)

	// events drive the same pan
	nv = newNavigator()
	cam = &nv.Scene.Camera
	assert.True(t, nv.HandleEvent(events.NewMouse(events.MouseDown, events.Left, image.Pt(100, 100))))
	assert.Equal(t, Pan, nv.Mode())
	nv.HandleEvent(events.NewMouseDrag(events.Left, image.Pt(110, 120), image.Pt(100, 100)))
	tolassert.Equal(t, -10/s, cam.Pos.X)
	tolassert.Equal(t, 20/s, cam.Pos.Y)
	nv.HandleEvent(events.NewMouse(events.MouseUp, events.Left, image.Pt(110, 120)))
	assert.Equal(t, Idle, nv.Mode())
	assert.False(t, nv.HandleEvent(events.NewMouseDrag(events.Left, image.Pt(0, 0), image.Pt(5, 5))))
}

func TestZoomAnchor(t *testing.T) {
	nv := newNavigator()
	cam := &nv.Scene.Camera
	nv.Pan(-30, 12)
	for _, pt := range []image.Point{{400, 300}, {650, 120}, {37, 580}} {
		before := planePoint(t, cam, pt)
		nv.ZoomAt(pt, nv.Scale()*1.7)
		after := planePoint(t, cam, pt)
		tolassert.EqualTol(t, before.X, after.X, 1e-2)
		tolassert.EqualTol(t, before.Y, after.Y, 1e-2)
	}
	tolassert.EqualTol(t, 400/(1.7*1.7*1.7), cam.Pos.Z, 1e-2)
	tolassert.EqualTol(t, cam.ScaleAtDepth(600, cam.Pos.Z), nv.Scale(), 1e-3)
}

func TestZoomClamp(t *testing.T) {
	nv := newNavigator()
	cam := &nv.Scene.Camera
	nv.ZoomAt(image.Pt(400, 300), 1e6)
	tolassert.EqualTol(t, 10, cam.Pos.Z, 1e-3)
	nv.ZoomAt(image.Pt(400, 300), 1e-6)
	tolassert.EqualTol(t, 1500, cam.Pos.Z, 1e-2)
	tolassert.EqualTol(t, cam.ScaleAtDepth(600, 1500), nv.Scale(), 1e-5)
}

func TestZoomDegenerate(t *testing.T) {
	nv := newNavigator()
	cam := &nv.Scene.Camera
	// looking along +X: the center ray is parallel to the view plane
	cam.LookAt(math32.Vec3(100, 0, 400), math32.Vector3Z)
	nv.ZoomAt(image.Pt(400, 300), nv.Scale()*2)
	tolassert.EqualTol(t, 200, cam.Pos.Z, 1e-2)
	assert.Equal(t, float32(0), cam.Pos.X)
	assert.Equal(t, float32(0), cam.Pos.Y)
}

func TestWheelAndMagnify(t *testing.T) {
	nv := newNavigator()
	cam := &nv.Scene.Camera
	k := nv.Scale()
	assert.True(t, nv.HandleEvent(events.NewScroll(image.Pt(400, 300), math32.Vec2(0, 100), events.DeltaPixel)))
	assert.Equal(t, Zoom, nv.Mode())
	tolassert.EqualTol(t, k*math32.Pow(2, -0.2), nv.Scale(), 1e-4)
	assert.Greater(t, cam.Pos.Z, float32(400))

	k = nv.Scale()
	nv.HandleEvent(events.NewScroll(image.Pt(400, 300), math32.Vec2(0, -2), events.DeltaLine))
	tolassert.EqualTol(t, k*math32.Pow(2, 0.1), nv.Scale(), 1e-4)

	nv.HandleEvent(events.NewMouseMove(image.Pt(1, 1), image.Pt(0, 0)))
	assert.Equal(t, Idle, nv.Mode())

	nv = newNavigator()
	cam = &nv.Scene.Camera
	nv.HandleEvent(events.NewMagnify(image.Pt(400, 300), 2))
	tolassert.EqualTol(t, 200, cam.Pos.Z, 1e-2)
}

func TestZoomToFit(t *testing.T) {
	nv := newNavigator()
	cam := &nv.Scene.Camera
	initial := *cam
	k := nv.Scale()
	nv.Pan(100, -50)
	nv.ZoomAt(image.Pt(200, 200), k*3)
	from := cam.Pos

	nv.ZoomToFit()
	assert.True(t, nv.IsAnimating())
	t0 := time.Now()
	assert.True(t, nv.Animate(t0))
	assert.Equal(t, from, cam.Pos)

	assert.True(t, nv.Animate(t0.Add(250*time.Millisecond)))
	mid := from.Lerp(initial.Pos, 0.5)
	tolassert.EqualTol(t, mid.X, cam.Pos.X, 1e-3)
	tolassert.EqualTol(t, mid.Z, cam.Pos.Z, 1e-3)

	assert.False(t, nv.Animate(t0.Add(600*time.Millisecond)))
	assert.False(t, nv.IsAnimating())
	assert.Equal(t, initial.Pos, cam.Pos)
	assert.Equal(t, initial.Target, cam.Target)
	tolassert.Equal(t, k, nv.Scale())
	assert.False(t, nv.Animate(t0.Add(time.Second)))
}

func TestZoomToFitInterrupt(t *testing.T) {
	nv := newNavigator()
	cam := &nv.Scene.Camera
	nv.Pan(100, 0)
	nv.ZoomToFit()
	t0 := time.Now()
	nv.Animate(t0)
	nv.Animate(t0.Add(100 * time.Millisecond))
	pos := cam.Pos
	nv.HandleEvent(events.NewMouse(events.MouseDown, events.Left, image.Pt(10, 10)))
	assert.False(t, nv.IsAnimating())
	assert.False(t, nv.Animate(t0.Add(time.Second)))
	assert.Equal(t, pos, cam.Pos)
}

func TestEase(t *testing.T) {
	assert.Equal(t, float32(0), EaseCubicInOut(0))
	assert.Equal(t, float32(0.5), EaseCubicInOut(0.5))
	assert.Equal(t, float32(1), EaseCubicInOut(1))
	tolassert.Equal(t, 0.0625, EaseCubicInOut(0.25))
	assert.Equal(t, "Pan", Pan.String())
}

// customEvent is an event of a type other than the one
// the events package uses for its [events.Types].
type customEvent struct {
	events.Base
}

func (ev *customEvent) String() string { return "custom " + ev.Typ.String() }

func TestForeignEventTypes(t *testing.T) {
	nv := newNavigator()
	before := nv.Scene.Camera.Pos
	require.True(t, nv.HandleEvent(events.NewMouse(events.MouseDown, events.Left, image.Pt(10, 10))))
	for _, typ := range []events.Types{events.MouseDrag, events.Scroll, events.Magnify} {
		ev := &customEvent{Base: events.Base{Typ: typ, Where: image.Pt(20, 20)}}
		assert.NotPanics(t, func() { assert.False(t, nv.HandleEvent(ev)) }, typ.String())
	}
	nv.HandleEvent(events.NewMouse(events.MouseUp, events.Left, image.Pt(10, 10)))
	ev := &customEvent{Base: events.Base{Typ: events.Scroll, Where: image.Pt(20, 20)}}
	assert.False(t, nv.HandleEvent(ev))
	assert.Equal(t, before, nv.Scene.Camera.Pos)
	assert.Equal(t, Idle, nv.Mode())
}
