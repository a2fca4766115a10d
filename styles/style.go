// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the style configuration of a diagram.
// A [Style] is passed by value as an immutable snapshot.
package styles

import "cogentcore.org/linkdiagram/math32"

// Style is the style of a diagram.
type Style struct {

	// BackgroundColor is the color the scene is cleared to.
	BackgroundColor Color `toml:"background-color"`

	// HighlightColor is the emissive color of the picked object.
	HighlightColor Color `toml:"highlight-color"`

	// Link is the style of link lines.
	Link Link `toml:"link"`

	// Node is the style of node markers.
	Node Node `toml:"node"`
}

// Link is the style of link lines.
type Link struct {
	LineColor Color `toml:"line-color"`
}

// Node is the style of node markers: an inner sphere, a translucent
// halo sphere, and a text label to the right.
type Node struct {

	// BgColor is the color of the inner sphere and the label.
	BgColor Color `toml:"bg-color"`

	// LineColor is the color of the halo.
	LineColor Color `toml:"line-color"`

	// Radius is the radius of the inner sphere.
	Radius float32 `toml:"radius"`

	// HaloRadius is the radius of the halo sphere.
	HaloRadius float32 `toml:"halo-radius"`

	// HaloOpacity is the opacity of the halo.
	HaloOpacity float32 `toml:"halo-opacity"`

	// LabelSize is the height of label text in world units.
	LabelSize float32 `toml:"label-size"`

	// LabelOffset is the position of the label baseline start
	// relative to the node center.
	LabelOffset math32.Vector2 `toml:"label-offset"`
}

// Defaults sets the default style: light blue nodes and
// dark blue links on a navy background.
func (s *Style) Defaults() {
	s.BackgroundColor = Hex("#04182A")
	s.HighlightColor = Hex("#FFD166")
	s.Link.LineColor = Hex("#133C5C")
	s.Node.Defaults()
}

// Defaults sets the default node style.
func (n *Node) Defaults() {
	n.BgColor = Hex("#4B9FCC")
	n.LineColor = Hex("#4B9FCC")
	n.Radius = 1
	n.HaloRadius = 1.75
	n.HaloOpacity = 0.25
	n.LabelSize = 1
	n.LabelOffset = math32.Vec2(2, -0.5)
}

// Default returns a new default style.
func Default() Style {
	s := Style{}
	s.Defaults()
	return s
}
