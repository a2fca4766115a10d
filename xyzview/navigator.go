// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzview provides camera navigation and object picking
// for an [xyz.Scene] driven by input events.
package xyzview

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/linkdiagram/events"
	"cogentcore.org/linkdiagram/math32"
	"cogentcore.org/linkdiagram/xyz"
)

// Modes are the gesture modes of a [Navigator].
type Modes int32

const (
	// Idle is no active gesture.
	Idle Modes = iota

	// Zoom is a wheel or magnify gesture.
	Zoom

	// Pan is a pointer drag.
	Pan
)

func (m Modes) String() string {
	switch m {
	case Zoom:
		return "Zoom"
	case Pan:
		return "Pan"
	}
	return "Idle"
}

// InitialCamera is the name under which the initial camera is saved.
const InitialCamera = "initial"

// Navigator moves the camera of a scene looking down at the z = 0
// plane in response to wheel, magnify and drag events. Zooming
// keeps the world point under the pointer fixed.
type Navigator struct {

	// Scene is the scene whose camera is moved.
	Scene *xyz.Scene

	// Size is the size of the drawing surface in pixels.
	Size image.Point

	// MinDepth and MaxDepth bound the camera distance from the z = 0 plane.
	MinDepth, MaxDepth float32

	// PixelFactor and LineFactor scale wheel deltas in pixels
	// and lines into zoom exponents.
	PixelFactor, LineFactor float32

	// FitDuration is the duration of the [Navigator.ZoomToFit] animation.
	FitDuration time.Duration

	mode  Modes
	scale float32
	tween *Tween
}

// NewNavigator returns a new navigator for the scene, saving its
// current camera as the initial camera.
func NewNavigator(sc *xyz.Scene, size image.Point) *Navigator {
	nv := &Navigator{
		Scene:       sc,
		MinDepth:    10,
		MaxDepth:    1500,
		PixelFactor: 0.002,
		LineFactor:  0.05,
		FitDuration: 500 * time.Millisecond,
	}
	sc.SaveCamera(InitialCamera)
	nv.Resize(size)
	return nv
}

// Mode returns the current gesture mode.
func (nv *Navigator) Mode() Modes { return nv.mode }

// Scale returns the zoom scale, in pixels per world unit at the z = 0 plane.
func (nv *Navigator) Scale() float32 { return nv.scale }

// IsAnimating returns whether a zoom-to-fit animation is running.
func (nv *Navigator) IsAnimating() bool { return nv.tween != nil }

// Resize sets the drawing surface size, updating the camera aspect
// ratio and the zoom scale for the current depth.
func (nv *Navigator) Resize(size image.Point) {
	nv.Size = size
	cam := &nv.Scene.Camera
	cam.SetSize(size)
	if ic, ok := nv.Scene.SavedCams[InitialCamera]; ok {
		ic.SetSize(size)
		nv.Scene.SavedCams[InitialCamera] = ic
	}
	nv.syncScale()
}

func (nv *Navigator) depth() float32 {
	return nv.Scene.Camera.Pos.Z
}

func (nv *Navigator) height() float32 {
	return float32(nv.Size.Y)
}

// syncScale sets the zoom scale from the current camera depth.
func (nv *Navigator) syncScale() {
	if nv.Size.Y <= 0 {
		return
	}
	nv.scale = nv.Scene.Camera.ScaleAtDepth(nv.height(), nv.depth())
}

// HandleEvent handles the given event, returning whether it was used.
func (nv *Navigator) HandleEvent(ev events.Event) bool {
	switch ev.Type() {
	case events.MouseDown:
		nv.interrupt()
		nv.mode = Pan
		return true
	case events.MouseDrag:
		me, ok := ev.(*events.Mouse)
		if !ok || nv.mode != Pan {
			return false
		}
		d := me.PrevDelta()
		nv.Pan(float32(d.X), float32(d.Y))
		return true
	case events.MouseUp:
		used := nv.mode == Pan
		nv.mode = Idle
		return used
	case events.MouseMove:
		if nv.mode == Zoom {
			nv.mode = Idle
		}
		return false
	case events.Scroll:
		se, ok := ev.(*events.ScrollEvent)
		if !ok || nv.mode == Pan {
			return false
		}
		factor := nv.PixelFactor
		if se.Mode == events.DeltaLine {
			factor = nv.LineFactor
		}
		nv.interrupt()
		nv.mode = Zoom
		nv.ZoomAt(se.Pos(), nv.scale*math32.Pow(2, -se.Delta.Y*factor))
		return true
	case events.Magnify:
		me, ok := ev.(*events.TouchMagnify)
		if !ok || nv.mode == Pan {
			return false
		}
		nv.interrupt()
		nv.mode = Zoom
		nv.ZoomAt(me.Pos(), nv.scale*me.ScaleFactor)
		return true
	}
	return false
}

// ZoomAt sets the zoom scale, moving the camera to the corresponding
// depth so that the world point under the given pixel stays fixed.
func (nv *Navigator) ZoomAt(pt image.Point, scale float32) {
	if nv.Size.X <= 0 || nv.Size.Y <= 0 || !(scale > 0) {
		return
	}
	cam := &nv.Scene.Camera
	z := math32.Clamp(cam.DepthAtScale(nv.height(), scale), nv.MinDepth, nv.MaxDepth)
	nv.scale = cam.ScaleAtDepth(nv.height(), z)
	cur := nv.depth()
	if z == cur {
		return
	}
	ray := cam.RayFromNDC(xyz.PixelToNDC(pt, nv.Size))
	if math32.Abs(ray.Dir.Z) < 1e-6 {
		slog.Debug("zoom anchor skipped: ray parallel to view plane")
		cam.SetPos(math32.Vec3(cam.Pos.X, cam.Pos.Y, z))
		return
	}
	t := (z - ray.Origin.Z) / ray.Dir.Z
	cam.SetPos(ray.At(t))
}

// Pan moves the camera and its target by the given drag in pixels,
// so that the scene follows the pointer.
func (nv *Navigator) Pan(dx, dy float32) {
	if nv.Size.Y <= 0 {
		return
	}
	cam := &nv.Scene.Camera
	scale := cam.ScaleAtDepth(nv.height(), nv.depth())
	cam.Translate(math32.Vec3(-dx/scale, dy/scale, 0))
}

// ZoomToFit animates the camera back to the initial camera.
func (nv *Navigator) ZoomToFit() {
	ic, ok := nv.Scene.SavedCams[InitialCamera]
	if !ok {
		return
	}
	nv.mode = Idle
	nv.tween = NewTween(nv.Scene.Camera.Pos, ic.Pos, nv.FitDuration)
}

// Animate advances a running zoom-to-fit animation to the given time,
// returning whether it is still running. On completion the initial
// camera is restored exactly.
func (nv *Navigator) Animate(now time.Time) bool {
	if nv.tween == nil {
		return false
	}
	pos, done := nv.tween.At(now)
	if !done {
		nv.Scene.Camera.SetPos(pos)
		return true
	}
	nv.tween = nil
	if err := nv.Scene.SetCamera(InitialCamera); err != nil {
		return false
	}
	nv.syncScale()
	return false
}

// interrupt stops a running animation where it is.
func (nv *Navigator) interrupt() {
	if nv.tween == nil {
		return
	}
	nv.tween = nil
	nv.syncScale()
}
