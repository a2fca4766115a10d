// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/linkdiagram/math32"
)

// Kinds are the kinds of scene [Object].
type Kinds int32

const (
	// Marker is a sphere with an optional halo and label.
	Marker Kinds = iota

	// Line is a line segment between two points.
	Line
)

func (k Kinds) String() string {
	switch k {
	case Marker:
		return "Marker"
	case Line:
		return "Line"
	}
	return fmt.Sprintf("Kinds(%d)", int32(k))
}

// Handle identifies an [Object] in a [Scene].
type Handle int

// Halo is a translucent sphere drawn around a marker.
type Halo struct {
	Radius   float32
	Material Material
}

// Label is a text label drawn next to a marker, in the z = 0 plane.
type Label struct {

	// Text is the label text.
	Text string

	// Offset is the position of the start of the label baseline
	// relative to the marker position.
	Offset math32.Vector2

	// Size is the font size in world units.
	Size float32

	// Width and Height are the measured extent of the text in
	// world units, used for picking.
	Width, Height float32

	// Descent is the extent of the text below the baseline.
	Descent float32

	// Color is the text color.
	Color color.RGBA
}

// Object is a persistent visual object in a [Scene]: a node marker
// or a link line. Only its position (for markers) or endpoints
// (for lines) change after it is built.
type Object struct {

	// Name is the id of the entity the object represents.
	Name string

	// Kind is the kind of object.
	Kind Kinds

	// Pos is the center of a marker.
	Pos math32.Vector3

	// Points are the endpoints of a line.
	Points [2]math32.Vector3

	// Radius is the radius of the marker sphere.
	Radius float32

	// Material is the surface material of the marker sphere or line.
	Material Material

	// Halo is the optional marker halo; a zero radius has no halo.
	Halo Halo

	// Label is the optional marker label; empty text has no label.
	Label Label
}

// NewMarker returns a new marker object at the given position.
func NewMarker(name string, pos math32.Vector3, radius float32, mat Material) *Object {
	return &Object{Name: name, Kind: Marker, Pos: pos, Radius: radius, Material: mat}
}

// NewLine returns a new line object between the given points.
func NewLine(name string, p0, p1 math32.Vector3, mat Material) *Object {
	return &Object{Name: name, Kind: Line, Points: [2]math32.Vector3{p0, p1}, Material: mat}
}

// SetPos sets the marker position in the z = 0 plane.
func (ob *Object) SetPos(x, y float32) {
	ob.Pos.Set(x, y, 0)
}

// SetPoints sets the line endpoints in the z = 0 plane.
func (ob *Object) SetPoints(x0, y0, x1, y1 float32) {
	ob.Points[0].Set(x0, y0, 0)
	ob.Points[1].Set(x1, y1, 0)
}

// HasLabel returns whether the object has a label.
func (ob *Object) HasLabel() bool {
	return ob.Kind == Marker && ob.Label.Text != ""
}

// LabelBox returns the world-space rectangle of the label.
func (ob *Object) LabelBox() math32.Box3 {
	x := ob.Pos.X + ob.Label.Offset.X
	y := ob.Pos.Y + ob.Label.Offset.Y - ob.Label.Descent
	return math32.B3(x, y, ob.Pos.Z, x+ob.Label.Width, y+ob.Label.Height, ob.Pos.Z)
}

// Bounds returns the world-space bounding box of the object.
func (ob *Object) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	switch ob.Kind {
	case Marker:
		r := max(ob.Radius, ob.Halo.Radius)
		bb.Min = ob.Pos.Sub(math32.Vector3Scalar(r))
		bb.Max = ob.Pos.Add(math32.Vector3Scalar(r))
		if ob.HasLabel() {
			lb := ob.LabelBox()
			bb.ExpandByPoint(lb.Min)
			bb.ExpandByPoint(lb.Max)
		}
	case Line:
		bb.ExpandByPoint(ob.Points[0])
		bb.ExpandByPoint(ob.Points[1])
	}
	return bb
}

// Intersect returns the distance along the ray to the object and
// whether the ray hits it. Markers are hit through their sphere, halo
// or label; lines within lineThreshold world units of the segment.
func (ob *Object) Intersect(ray *math32.Ray, lineThreshold float32) (float32, bool) {
	switch ob.Kind {
	case Marker:
		best, hit := ray.IntersectSphere(ob.Pos, max(ob.Radius, ob.Halo.Radius))
		if ob.HasLabel() {
			if t, ok := ray.IntersectBox(ob.LabelBox()); ok && (!hit || t < best) {
				best, hit = t, true
			}
		}
		return best, hit
	case Line:
		p0, p1 := ob.Points[0], ob.Points[1]
		var d2, t float32
		if p0 == p1 {
			d2 = ray.DistanceSqToPoint(p0)
			t = p0.Sub(ray.Origin).Dot(ray.Dir)
		} else {
			d2, t = ray.DistanceSqToSegment(p0, p1)
		}
		if t < 0 || d2 > lineThreshold*lineThreshold {
			return 0, false
		}
		return t, true
	}
	return 0, false
}
