// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"

	"cogentcore.org/linkdiagram/base/errors"
	"cogentcore.org/linkdiagram/math32"
)

// Camera defines the properties of a perspective camera.
type Camera struct {

	// Pos is the position of the camera in world coordinates.
	Pos math32.Vector3

	// Target is the location the camera points at; it moves with
	// panning movements, and is reset by a call to [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the distance to the near clipping plane.
	Near float32

	// Far is the distance to the far clipping plane.
	Far float32

	// WorldMatrix is the camera to world transform.
	WorldMatrix math32.Matrix4 `toml:"-"`

	// ViewMatrix is the world to camera transform (the inverse of WorldMatrix).
	ViewMatrix math32.Matrix4 `toml:"-"`

	// ProjectionMatrix maps camera coordinates to clip space.
	ProjectionMatrix math32.Matrix4 `toml:"-"`

	// InvProjectionMatrix is the inverse of ProjectionMatrix.
	InvProjectionMatrix math32.Matrix4 `toml:"-"`
}

// Defaults sets the default camera: a 50 degree field of view at
// (0, 0, 400) looking at the origin with the Y axis up.
func (cm *Camera) Defaults() {
	cm.FOV = 50
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 2000
	cm.Pos = math32.Vec3(0, 0, 400)
	cm.LookAt(math32.Vector3Zero, math32.Vector3Y)
}

// UpdateMatrix updates the world, view and projection matrices
// from the current position, target and lens parameters.
func (cm *Camera) UpdateMatrix() {
	cm.WorldMatrix.SetLookAt(cm.Pos, cm.Target, cm.UpDir)
	errors.Log(cm.ViewMatrix.SetInverse(&cm.WorldMatrix))
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	errors.Log(cm.InvProjectionMatrix.SetInverse(&cm.ProjectionMatrix))
}

// LookAt points the camera at the given target location, using the
// given up direction, and sets the Target and UpDir fields.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vector3Y
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// Translate moves the camera and its target by the given offset.
func (cm *Camera) Translate(delta math32.Vector3) {
	cm.Pos.SetAdd(delta)
	cm.Target.SetAdd(delta)
	cm.UpdateMatrix()
}

// SetPos moves the camera to the given position, keeping
// the view direction by moving the target with it.
func (cm *Camera) SetPos(pos math32.Vector3) {
	cm.Translate(pos.Sub(cm.Pos))
}

// SetSize sets the aspect ratio from the given drawing surface size.
func (cm *Camera) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	cm.Aspect = float32(size.X) / float32(size.Y)
	cm.UpdateMatrix()
}

// Unproject returns the world point for the given normalized device
// coordinates, with z in [-1, 1] from the near to the far plane.
func (cm *Camera) Unproject(ndc math32.Vector3) math32.Vector3 {
	return ndc.MulMatrix4(&cm.InvProjectionMatrix).MulMatrix4(&cm.WorldMatrix)
}

// Project returns the normalized device coordinates of the given world point.
func (cm *Camera) Project(pt math32.Vector3) math32.Vector3 {
	return pt.MulMatrix4(&cm.ViewMatrix).MulMatrix4(&cm.ProjectionMatrix)
}

// RayFromNDC returns the ray from the camera through the given
// normalized device coordinates.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) *math32.Ray {
	pt := cm.Unproject(math32.Vec3(ndc.X, ndc.Y, 0.5))
	return math32.NewRay(cm.Pos, pt.Sub(cm.Pos))
}

// PixelToNDC converts a pixel position on a surface of the given size,
// with the origin at the top left, to normalized device coordinates.
func PixelToNDC(pt, size image.Point) math32.Vector2 {
	if size.X <= 0 || size.Y <= 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(
		float32(pt.X)/float32(size.X)*2-1,
		-float32(pt.Y)/float32(size.Y)*2+1)
}

// NDCToPixel converts normalized device coordinates to a pixel
// position on a surface of the given size.
func NDCToPixel(ndc math32.Vector2, size image.Point) math32.Vector2 {
	return math32.Vec2(
		(ndc.X+1)*0.5*float32(size.X),
		(1-ndc.Y)*0.5*float32(size.Y))
}

// ScaleAtDepth returns the number of pixels per world unit for a plane
// at the given distance from the camera, on a surface of the given height.
func (cm *Camera) ScaleAtDepth(height, depth float32) float32 {
	return height / (2 * math32.Tan(math32.DegToRad(cm.FOV*0.5)) * depth)
}

// DepthAtScale is the inverse of [Camera.ScaleAtDepth]: the distance
// at which one world unit spans scale pixels.
func (cm *Camera) DepthAtScale(height, scale float32) float32 {
	return height / (2 * math32.Tan(math32.DegToRad(cm.FOV*0.5)) * scale)
}
