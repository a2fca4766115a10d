// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"cogentcore.org/linkdiagram/graph"
)

// maxDepth bounds the subdivision of nearly coincident nodes.
const maxDepth = 32

// quad is a cell of a [quadtree]. An internal cell has children;
// a leaf holds one or more bodies at the same position.
type quad struct {
	children [4]*quad
	internal bool

	// bodies are node indexes of a leaf.
	bodies []int

	// x and y are the center of charge; value is the total charge.
	x, y, value float64
}

func (q *quad) isLeaf() bool { return !q.internal }

// quadtree is a square region quadtree over node positions,
// rebuilt every tick. Cells are reused between builds.
type quadtree struct {
	root         *quad
	x0, y0, size float64
	nodes        []*graph.Node

	cells []*quad
	used  int
}

func (t *quadtree) alloc() *quad {
	if t.used < len(t.cells) {
		q := t.cells[t.used]
		*q = quad{bodies: q.bodies[:0]}
		t.used++
		return q
	}
	q := &quad{}
	t.cells = append(t.cells, q)
	t.used++
	return q
}

// build builds the tree over the current positions of the nodes,
// which must be non-empty.
func (t *quadtree) build(nodes []*graph.Node) {
	t.nodes = nodes
	t.used = 0
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range nodes {
		minX, maxX = min(minX, n.X), max(maxX, n.X)
		minY, maxY = min(minY, n.Y), max(maxY, n.Y)
	}
	t.x0, t.y0 = minX, minY
	t.size = max(maxX-minX, maxY-minY)
	if t.size == 0 {
		t.size = 1
	}
	t.root = t.alloc()
	for i := range nodes {
		t.insert(t.root, t.x0, t.y0, t.size, i, 0)
	}
}

func (t *quadtree) insert(q *quad, x0, y0, size float64, i, depth int) {
	if !q.internal {
		if len(q.bodies) == 0 {
			q.bodies = append(q.bodies, i)
			return
		}
		b, n := t.nodes[q.bodies[0]], t.nodes[i]
		if (b.X == n.X && b.Y == n.Y) || depth >= maxDepth {
			q.bodies = append(q.bodies, i)
			return
		}
		// split the leaf; its bodies are coincident and move together
		q.internal = true
		for _, bi := range q.bodies {
			t.insertChild(q, x0, y0, size, bi, depth)
		}
		q.bodies = q.bodies[:0]
	}
	t.insertChild(q, x0, y0, size, i, depth)
}

func (t *quadtree) insertChild(q *quad, x0, y0, size float64, i, depth int) {
	h := size / 2
	n := t.nodes[i]
	ci := 0
	if n.X >= x0+h {
		ci |= 1
		x0 += h
	}
	if n.Y >= y0+h {
		ci |= 2
		y0 += h
	}
	if q.children[ci] == nil {
		q.children[ci] = t.alloc()
	}
	t.insert(q.children[ci], x0, y0, h, i, depth+1)
}

// accumulate computes the charge and the charge-weighted center of
// every cell, for bodies of the given uniform strength.
func (t *quadtree) accumulate(strength float64) {
	t.accumulateQuad(t.root, strength)
}

func (t *quadtree) accumulateQuad(q *quad, strength float64) {
	if !q.internal {
		b := t.nodes[q.bodies[0]]
		q.x, q.y = b.X, b.Y
		q.value = strength * float64(len(q.bodies))
		return
	}
	var s, w, x, y float64
	for _, c := range q.children {
		if c == nil {
			continue
		}
		t.accumulateQuad(c, strength)
		if a := math.Abs(c.value); a != 0 {
			s += c.value
			w += a
			x += a * c.x
			y += a * c.y
		}
	}
	q.value = s
	if w > 0 {
		q.x, q.y = x/w, y/w
	}
}

// visit calls fn for each cell in pre-order with the cell width.
// The children of a cell are skipped when fn returns true.
func (t *quadtree) visit(fn func(q *quad, w float64) bool) {
	t.visitQuad(t.root, t.size, fn)
}

func (t *quadtree) visitQuad(q *quad, size float64, fn func(q *quad, w float64) bool) {
	if fn(q, size) || !q.internal {
		return
	}
	for _, c := range q.children {
		if c != nil {
			t.visitQuad(c, size/2, fn)
		}
	}
}
