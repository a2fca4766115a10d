// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import "cogentcore.org/linkdiagram/graph"

// Position pulls each node toward a target coordinate along one axis,
// with a velocity change proportional to its distance from it.
type Position struct {

	// Target is the coordinate nodes are pulled toward.
	Target float64

	// Strength is the fraction of the distance added to the velocity
	// per tick at alpha = 1.
	Strength float64

	// Y selects the y axis instead of x.
	Y bool

	nodes []*graph.Node
}

// NewX returns a force pulling nodes toward x = target.
func NewX(target, strength float64) *Position {
	return &Position{Target: target, Strength: strength}
}

// NewY returns a force pulling nodes toward y = target.
func NewY(target, strength float64) *Position {
	return &Position{Target: target, Strength: strength, Y: true}
}

func (pf *Position) Initialize(nodes []*graph.Node, jiggle func() float64) {
	pf.nodes = nodes
}

func (pf *Position) Apply(alpha float64) {
	k := pf.Strength * alpha
	for _, n := range pf.nodes {
		if pf.Y {
			n.VY += (pf.Target - n.Y) * k
		} else {
			n.VX += (pf.Target - n.X) * k
		}
	}
}

// Center translates all nodes each tick so that their mean
// position is at the center point. It does not change velocities.
type Center struct {
	X, Y float64

	// Strength is the fraction of the offset corrected per tick.
	Strength float64

	nodes []*graph.Node
}

// NewCenter returns a centroid force toward (x, y) with strength 1.
func NewCenter(x, y float64) *Center {
	return &Center{X: x, Y: y, Strength: 1}
}

func (cf *Center) Initialize(nodes []*graph.Node, jiggle func() float64) {
	cf.nodes = nodes
}

func (cf *Center) Apply(alpha float64) {
	if len(cf.nodes) == 0 {
		return
	}
	var sx, sy float64
	for _, n := range cf.nodes {
		sx += n.X
		sy += n.Y
	}
	nf := float64(len(cf.nodes))
	dx := (sx/nf - cf.X) * cf.Strength
	dy := (sy/nf - cf.Y) * cf.Strength
	for _, n := range cf.nodes {
		n.X -= dx
		n.Y -= dy
	}
}
