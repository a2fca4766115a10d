// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"cogentcore.org/linkdiagram/graph"
)

// ManyBody is a charge force between every pair of nodes, repulsive
// for negative strength, approximated with a Barnes-Hut quadtree:
// a cell of width w at squared distance l is treated as a single body
// at its center of charge when w² / theta² < l.
type ManyBody struct {

	// Strength is the charge of each node; negative values repel.
	Strength float64

	// Theta is the approximation criterion; 0 computes every pair exactly.
	Theta float64

	// DistanceMin floors the distance between interacting bodies,
	// avoiding unbounded forces between close nodes.
	DistanceMin float64

	// DistanceMax is the distance beyond which bodies do not interact;
	// zero means unbounded.
	DistanceMax float64

	nodes  []*graph.Node
	jiggle func() float64
	tree   quadtree
}

// NewManyBody returns a new many-body force with strength -30,
// theta 0.9 and a minimum distance of 1.
func NewManyBody() *ManyBody {
	return &ManyBody{Strength: -30, Theta: 0.9, DistanceMin: 1}
}

func (mb *ManyBody) Initialize(nodes []*graph.Node, jiggle func() float64) {
	mb.nodes = nodes
	mb.jiggle = jiggle
}

func (mb *ManyBody) Apply(alpha float64) {
	if len(mb.nodes) == 0 {
		return
	}
	mb.tree.build(mb.nodes)
	mb.tree.accumulate(mb.Strength)

	dmin2 := mb.DistanceMin * mb.DistanceMin
	dmax2 := math.Inf(1)
	if mb.DistanceMax > 0 {
		dmax2 = mb.DistanceMax * mb.DistanceMax
	}
	theta2 := mb.Theta * mb.Theta

	for _, n := range mb.nodes {
		mb.tree.visit(func(q *quad, w float64) bool {
			if q.value == 0 {
				return true
			}
			x := q.x - n.X
			y := q.y - n.Y
			l := x*x + y*y

			// far enough away: apply the aggregate charge of the cell
			if w*w < theta2*l {
				if l < dmax2 {
					if x == 0 {
						x = mb.jiggle()
						l += x * x
					}
					if y == 0 {
						y = mb.jiggle()
						l += y * y
					}
					if l < dmin2 {
						l = math.Sqrt(dmin2 * l)
					}
					n.VX += x * q.value * alpha / l
					n.VY += y * q.value * alpha / l
				}
				return true
			}
			if !q.isLeaf() || l >= dmax2 {
				return !q.isLeaf()
			}

			// leaf too close to approximate: apply each body directly
			if len(q.bodies) > 1 || q.bodies[0] != n.Index {
				if x == 0 {
					x = mb.jiggle()
					l += x * x
				}
				if y == 0 {
					y = mb.jiggle()
					l += y * y
				}
				if l < dmin2 {
					l = math.Sqrt(dmin2 * l)
				}
			}
			for _, bi := range q.bodies {
				if bi == n.Index {
					continue
				}
				k := mb.Strength * alpha / l
				n.VX += x * k
				n.VY += y * k
			}
			return true
		})
	}
}
