// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"image"
	"time"

	"cogentcore.org/linkdiagram/fonts"
	"cogentcore.org/linkdiagram/force"
	"cogentcore.org/linkdiagram/styles"
	"cogentcore.org/linkdiagram/xyz"
	"cogentcore.org/linkdiagram/xyzview"
)

// Camera are the camera and navigation settings.
type Camera struct {

	// FOV is the vertical field of view in degrees.
	FOV float32 `toml:"fov"`

	// Distance is the initial distance of the camera from the z = 0 plane.
	Distance float32 `toml:"distance"`

	// Near and Far are the clipping plane distances.
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`

	// MinDepth and MaxDepth bound the zoom.
	MinDepth float32 `toml:"min-depth"`
	MaxDepth float32 `toml:"max-depth"`

	// PixelFactor and LineFactor scale wheel deltas.
	PixelFactor float32 `toml:"pixel-factor"`
	LineFactor  float32 `toml:"line-factor"`

	// FitSeconds is the duration of the zoom-to-fit animation.
	FitSeconds float32 `toml:"fit-seconds"`
}

// Defaults sets the default camera settings.
func (cm *Camera) Defaults() {
	cm.FOV = 50
	cm.Distance = 400
	cm.Near = 0.1
	cm.Far = 2000
	cm.MinDepth = 10
	cm.MaxDepth = 1500
	cm.PixelFactor = 0.002
	cm.LineFactor = 0.05
	cm.FitSeconds = 0.5
}

func (cm *Camera) apply(cam *xyz.Camera) {
	cam.FOV = cm.FOV
	cam.Near = cm.Near
	cam.Far = cm.Far
	cam.Pos.Set(0, 0, cm.Distance)
	cam.LookAt(cam.Target, cam.UpDir)
}

func (cm *Camera) applyNavigator(nv *xyzview.Navigator) {
	nv.MinDepth = cm.MinDepth
	nv.MaxDepth = cm.MaxDepth
	nv.PixelFactor = cm.PixelFactor
	nv.LineFactor = cm.LineFactor
	nv.FitDuration = time.Duration(cm.FitSeconds * float32(time.Second))
}

// Options are the options of a [Diagram].
type Options struct {

	// Params are the simulation parameters.
	Params force.Params

	// Style is the diagram style.
	Style styles.Style

	// Camera are the camera settings.
	Camera Camera

	// Font is the source of the label font.
	Font fonts.Source

	// LineThreshold is the world distance within which links are picked.
	LineThreshold float32

	// DragNodes enables dragging nodes with the pointer.
	DragNodes bool

	// Size is the initial drawing surface size.
	Size image.Point
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.Params.Defaults()
	o.Style.Defaults()
	o.Camera.Defaults()
	o.Font = fonts.DefaultSource
	o.LineThreshold = 1
	o.Size = image.Pt(1280, 800)
}

// DefaultOptions returns new default options.
func DefaultOptions() Options {
	o := Options{}
	o.Defaults()
	return o
}
