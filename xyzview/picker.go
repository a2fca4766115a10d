// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"image"
	"image/color"

	"cogentcore.org/linkdiagram/xyz"
)

// Picker selects the scene object under the pointer and highlights
// it by setting its emissive color.
type Picker struct {

	// Scene is the scene to pick from.
	Scene *xyz.Scene

	// HighlightColor is the emissive color of the selected object.
	HighlightColor color.RGBA

	// LineThreshold is the world distance within which lines are hit.
	LineThreshold float32

	selected    xyz.Handle
	hasSelected bool
	original    color.RGBA
}

// NewPicker returns a new picker for the scene.
func NewPicker(sc *xyz.Scene, highlight color.RGBA) *Picker {
	return &Picker{Scene: sc, HighlightColor: highlight, LineThreshold: 1}
}

// Pick returns the nearest object under the given pixel position
// on a surface of the given size.
func (pk *Picker) Pick(pt, size image.Point) (xyz.Intersection, bool) {
	ray := pk.Scene.Camera.RayFromNDC(xyz.PixelToNDC(pt, size))
	hits := pk.Scene.RayIntersections(ray, pk.LineThreshold)
	if len(hits) == 0 {
		return xyz.Intersection{}, false
	}
	return hits[0], true
}

// Select picks the object under the given pixel position and makes
// it the highlighted selection, returning it, or clears the selection
// and returns nil if there is none.
func (pk *Picker) Select(pt, size image.Point) *xyz.Object {
	hit, ok := pk.Pick(pt, size)
	if !ok {
		pk.Clear()
		return nil
	}
	if pk.hasSelected && pk.selected == hit.Handle {
		return hit.Object
	}
	pk.Clear()
	pk.selected = hit.Handle
	pk.hasSelected = true
	pk.original = hit.Object.Material.Emissive
	hit.Object.Material.Emissive = pk.HighlightColor
	return hit.Object
}

// Selected returns the selected object, or nil.
func (pk *Picker) Selected() *xyz.Object {
	if !pk.hasSelected {
		return nil
	}
	return pk.Scene.Object(pk.selected)
}

// Clear restores the emissive color of the selected object
// and clears the selection.
func (pk *Picker) Clear() {
	if !pk.hasSelected {
		return
	}
	if ob := pk.Scene.Object(pk.selected); ob != nil {
		ob.Material.Emissive = pk.original
	}
	pk.hasSelected = false
	pk.original = color.RGBA{}
}
