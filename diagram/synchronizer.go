// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"log/slog"

	"cogentcore.org/linkdiagram/base/ordmap"
	"cogentcore.org/linkdiagram/colors"
	"cogentcore.org/linkdiagram/fonts"
	"cogentcore.org/linkdiagram/graph"
	"cogentcore.org/linkdiagram/math32"
	"cogentcore.org/linkdiagram/styles"
	"cogentcore.org/linkdiagram/xyz"
)

// Synchronizer creates one scene object per node and link of a graph
// and copies the simulated node positions into them after every tick.
// It owns the mapping from entity ids to scene handles.
type Synchronizer struct {

	// Scene is the scene the objects are added to.
	Scene *xyz.Scene

	// Graph is the graph whose nodes and links are shown.
	Graph *graph.Graph

	// Style is the style objects are built with.
	Style styles.Style

	nodes ordmap.Map[string, xyz.Handle]
	links ordmap.Map[string, xyz.Handle]

	// objects by node and link index, for per-tick updates
	nodeObjs []*xyz.Object
	linkObjs []*xyz.Object

	loading bool
}

// NewSynchronizer returns a new synchronizer, loading until [Synchronizer.Build].
func NewSynchronizer(sc *xyz.Scene, g *graph.Graph, st styles.Style) *Synchronizer {
	return &Synchronizer{Scene: sc, Graph: g, Style: st, loading: true}
}

// IsLoading returns whether the objects have not been built yet.
func (sy *Synchronizer) IsLoading() bool {
	return sy.loading
}

// Build creates the scene objects, measuring labels with the given face.
// Links are added first so that markers are drawn over them.
func (sy *Synchronizer) Build(face *fonts.Face) {
	if !sy.loading {
		return
	}
	ns := sy.Style.Node
	lineMat := xyz.Material{Color: sy.Style.Link.LineColor.RGBA}
	sy.linkObjs = make([]*xyz.Object, len(sy.Graph.Links))
	for i, l := range sy.Graph.Links {
		ob := xyz.NewLine(l.ID, math32.Vector3{}, math32.Vector3{}, lineMat)
		sy.links.Add(l.ID, sy.Scene.Add(ob))
		sy.linkObjs[i] = ob
	}

	mat := xyz.Material{Color: ns.BgColor.RGBA}
	halo := xyz.Halo{
		Radius:   ns.HaloRadius,
		Material: xyz.Material{Color: colors.WithAF32(ns.LineColor.RGBA, ns.HaloOpacity)},
	}
	ascent, descent := face.Height(ns.LabelSize)
	sy.nodeObjs = make([]*xyz.Object, len(sy.Graph.Nodes))
	for i, n := range sy.Graph.Nodes {
		ob := xyz.NewMarker(n.ID, math32.Vector3{}, ns.Radius, mat)
		ob.Halo = halo
		ob.Label = xyz.Label{
			Text:    n.Label(),
			Offset:  ns.LabelOffset,
			Size:    ns.LabelSize,
			Width:   face.Advance(n.Label(), ns.LabelSize),
			Height:  ascent + descent,
			Descent: descent,
			Color:   ns.BgColor.RGBA,
		}
		sy.nodes.Add(n.ID, sy.Scene.Add(ob))
		sy.nodeObjs[i] = ob
	}
	sy.loading = false
	sy.Update()
	slog.Debug("built diagram objects", "nodes", len(sy.nodeObjs), "links", len(sy.linkObjs))
}

// Update copies the current node positions into the node markers
// and link endpoints. It does nothing while loading.
func (sy *Synchronizer) Update() {
	if sy.loading {
		return
	}
	for i, n := range sy.Graph.Nodes {
		sy.nodeObjs[i].SetPos(float32(n.X), float32(n.Y))
	}
	for i, l := range sy.Graph.Links {
		s, t := l.Source, l.Target
		sy.linkObjs[i].SetPoints(float32(s.X), float32(s.Y), float32(t.X), float32(t.Y))
	}
}

// NodeHandle returns the scene handle of the node with the given id.
func (sy *Synchronizer) NodeHandle(id string) (xyz.Handle, bool) {
	return sy.nodes.ValueByKeyTry(id)
}

// LinkHandle returns the scene handle of the link with the given id.
func (sy *Synchronizer) LinkHandle(id string) (xyz.Handle, bool) {
	return sy.links.ValueByKeyTry(id)
}

// NumNodes returns the number of node objects.
func (sy *Synchronizer) NumNodes() int { return sy.nodes.Len() }

// NumLinks returns the number of link objects.
func (sy *Synchronizer) NumLinks() int { return sy.links.Len() }
