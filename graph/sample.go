// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"math"
	"math/rand/v2"

	"cogentcore.org/linkdiagram/base/errors"
	"github.com/aquilax/go-perlin"
)

// SampleOptions configures [Sample].
type SampleOptions struct {
	// Nodes is the number of nodes to generate.
	Nodes int

	// ExtraLinks is the number of links added on top of the spanning tree.
	ExtraLinks int

	// Seed makes the generated graph reproducible.
	Seed int64
}

// Defaults sets the default sample options.
func (so *SampleOptions) Defaults() {
	so.Nodes = 100
	so.ExtraLinks = 20
	so.Seed = 1
}

// ErrInvalidSample is returned by [Sample] for negative counts.
var ErrInvalidSample = errors.New("negative sample count")

// Sample generates a connected random graph: a random spanning tree
// over the nodes plus extra links between random distinct pairs.
// Node values in [0, 1000] follow smooth perlin noise over the node sequence.
func Sample(opts SampleOptions) (*Data, error) {
	if opts.Nodes < 0 || opts.ExtraLinks < 0 {
		return nil, fmt.Errorf("graph.Sample: %d nodes, %d extra links: %w", opts.Nodes, opts.ExtraLinks, ErrInvalidSample)
	}
	rnd := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)^0x9e3779b97f4a7c15))
	noise := perlin.NewPerlin(2, 2, 3, opts.Seed)

	d := &Data{Nodes: make([]NodeData, opts.Nodes)}
	for i := range d.Nodes {
		v := min(max((noise.Noise1D(float64(i)/10)+1)*500, 0), 1000)
		d.Nodes[i] = NodeData{
			ID:    fmt.Sprintf("node-%d", i+1),
			Name:  fmt.Sprintf("Node %d", i+1),
			Value: math.Round(v),
		}
	}
	if opts.Nodes < 2 {
		return d, nil
	}

	seen := map[[2]int]bool{}
	add := func(a, b int) bool {
		if a == b {
			return false
		}
		key := [2]int{min(a, b), max(a, b)}
		if seen[key] {
			return false
		}
		seen[key] = true
		d.Links = append(d.Links, LinkData{
			ID:     fmt.Sprintf("link-%d", len(d.Links)+1),
			Source: d.Nodes[a].ID,
			Target: d.Nodes[b].ID,
		})
		return true
	}
	for i := 1; i < opts.Nodes; i++ {
		add(i, rnd.IntN(i))
	}
	maxLinks := opts.Nodes * (opts.Nodes - 1) / 2
	for extra := 0; extra < opts.ExtraLinks && len(d.Links) < maxLinks; {
		if add(rnd.IntN(opts.Nodes), rnd.IntN(opts.Nodes)) {
			extra++
		}
	}
	return d, nil
}
