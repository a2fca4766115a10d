// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"cogentcore.org/linkdiagram/graph"
)

// Link is a spring force pulling the endpoints of each link
// toward a rest distance apart.
type Link struct {

	// Distance is the rest length of each link.
	Distance float64

	// Iterations is the number of passes per tick; more passes
	// make the links stiffer at the cost of time.
	Iterations int

	links     []*graph.Link
	strengths []float64
	bias      []float64
	jiggle    func() float64
}

// NewLink returns a new link force over the given links, with
// a default distance of 30 and one iteration.
func NewLink(links []*graph.Link) *Link {
	return &Link{Distance: 30, Iterations: 1, links: links}
}

// Initialize computes the per-link strength, 1 / min(degree) of its
// endpoints, and bias, the share of the correction applied to the target.
func (lf *Link) Initialize(nodes []*graph.Node, jiggle func() float64) {
	lf.jiggle = jiggle
	count := make(map[*graph.Node]int, len(nodes))
	for _, l := range lf.links {
		count[l.Source]++
		count[l.Target]++
	}
	lf.strengths = make([]float64, len(lf.links))
	lf.bias = make([]float64, len(lf.links))
	for i, l := range lf.links {
		cs, ct := float64(count[l.Source]), float64(count[l.Target])
		lf.strengths[i] = 1 / min(cs, ct)
		lf.bias[i] = cs / (cs + ct)
	}
}

// Apply moves the predicted positions of each link's endpoints
// toward the rest distance.
func (lf *Link) Apply(alpha float64) {
	for range max(lf.Iterations, 1) {
		for i, l := range lf.links {
			src, tgt := l.Source, l.Target
			x := tgt.X + tgt.VX - src.X - src.VX
			if x == 0 {
				x = lf.jiggle()
			}
			y := tgt.Y + tgt.VY - src.Y - src.VY
			if y == 0 {
				y = lf.jiggle()
			}
			d := math.Sqrt(x*x + y*y)
			k := (d - lf.Distance) / d * alpha * lf.strengths[i]
			x *= k
			y *= k
			b := lf.bias[i]
			tgt.VX -= x * b
			tgt.VY -= y * b
			src.VX += x * (1 - b)
			src.VY += y * (1 - b)
		}
	}
}
