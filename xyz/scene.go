// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a renderer-agnostic 3D scene of node markers and
// link lines viewed through a perspective camera.
package xyz

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/linkdiagram/base/ordmap"
	"cogentcore.org/linkdiagram/colors"
	"cogentcore.org/linkdiagram/math32"
)

// Scene holds the visual objects of a diagram and the camera
// through which they are drawn. Objects are drawn in the order
// they were added.
type Scene struct {

	// Camera determines the view onto the scene.
	Camera Camera

	// BackgroundColor is the color the scene is cleared to.
	BackgroundColor color.RGBA

	// Objects are the objects of the scene, by handle.
	Objects ordmap.Map[Handle, *Object]

	// SavedCams are saved cameras, which can be restored with [Scene.SetCamera].
	SavedCams map[string]Camera

	nextHandle Handle
}

// NewScene returns a new scene with the default camera.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

// Defaults sets the default camera and a black background.
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.BackgroundColor = colors.Black
	sc.Objects.Init()
}

// Add adds the object to the scene, returning its handle.
func (sc *Scene) Add(ob *Object) Handle {
	h := sc.nextHandle
	sc.nextHandle++
	sc.Objects.Add(h, ob)
	return h
}

// Object returns the object with the given handle, or nil.
func (sc *Scene) Object(h Handle) *Object {
	ob, _ := sc.Objects.ValueByKeyTry(h)
	return ob
}

// Remove removes the object with the given handle,
// returning whether it existed.
func (sc *Scene) Remove(h Handle) bool {
	return sc.Objects.DeleteKey(h)
}

// Len returns the number of objects in the scene.
func (sc *Scene) Len() int {
	return sc.Objects.Len()
}

// Reset removes all objects from the scene.
func (sc *Scene) Reset() {
	sc.Objects.Reset()
}

// SaveCamera saves the current camera with the given name.
func (sc *Scene) SaveCamera(name string) {
	if sc.SavedCams == nil {
		sc.SavedCams = make(map[string]Camera)
	}
	sc.SavedCams[name] = sc.Camera
}

// SetCamera sets the current camera to the one saved with
// the given name, returning an error if it is not found.
func (sc *Scene) SetCamera(name string) error {
	cam, ok := sc.SavedCams[name]
	if !ok {
		return fmt.Errorf("xyz.SetCamera: saved camera %q not found", name)
	}
	sc.Camera = cam
	sc.Camera.UpdateMatrix()
	return nil
}

// Bounds returns the bounding box of all objects.
func (sc *Scene) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, ob := range sc.Objects.All() {
		obb := ob.Bounds()
		if obb.IsEmpty() {
			continue
		}
		bb.ExpandByPoint(obb.Min)
		bb.ExpandByPoint(obb.Max)
	}
	return bb
}

// Intersection is an object hit by a ray.
type Intersection struct {
	Handle   Handle
	Object   *Object
	Distance float32
	Point    math32.Vector3
}

// RayIntersections returns the objects hit by the ray, nearest first.
// Lines are hit within lineThreshold world units.
func (sc *Scene) RayIntersections(ray *math32.Ray, lineThreshold float32) []Intersection {
	var hits []Intersection
	for h, ob := range sc.Objects.All() {
		if t, ok := ob.Intersect(ray, lineThreshold); ok {
			hits = append(hits, Intersection{Handle: h, Object: ob, Distance: t, Point: ray.At(t)})
		}
	}
	slices.SortStableFunc(hits, func(a, b Intersection) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}
