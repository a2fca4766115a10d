// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph provides the node and link model of a diagram:
// input records, validation into resolved nodes and links,
// JSON and YAML encoding, and sample data generation.
package graph

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"cogentcore.org/linkdiagram/base/errors"
)

var (
	// ErrSelfLoop is reported for a link whose source and target are the same node.
	ErrSelfLoop = errors.New("link source and target are the same node")

	// ErrUnknownSource is reported for a link whose source id is not a node.
	ErrUnknownSource = errors.New("link source is not a known node")

	// ErrUnknownTarget is reported for a link whose target id is not a node.
	ErrUnknownTarget = errors.New("link target is not a known node")

	// ErrDuplicateLink is reported for a link whose explicit id is already used.
	ErrDuplicateLink = errors.New("duplicate link id")

	// ErrDuplicateNode is returned by [Build] when two nodes share an id.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrMissingID is returned by [Build] for a node without an id.
	ErrMissingID = errors.New("node has no id")
)

// Node is a resolved node of a [Graph]. The position and velocity
// fields are owned by the force simulation; X and Y are NaN
// until the node has been placed.
type Node struct {
	// Index is the position of the node in [Graph.Nodes].
	Index int
	ID    string
	Name  string
	Value float64

	X, Y   float64
	VX, VY float64

	// FX and FY fix the node position when non-nil.
	FX, FY *float64
}

// Label returns the display label of the node: its name, or its id.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// IsPlaced returns whether the node has a position.
func (n *Node) IsPlaced() bool {
	return !math.IsNaN(n.X) && !math.IsNaN(n.Y)
}

// Link is a resolved link between two distinct nodes.
type Link struct {
	// Index is the position of the link in [Graph.Links].
	Index  int
	ID     string
	Source *Node
	Target *Node
}

// InvalidLink is an input link excluded from the graph.
type InvalidLink struct {
	Link LinkData
	Err  error
}

func (il InvalidLink) Error() string {
	return fmt.Sprintf("link %s -> %s: %v", il.Link.Source, il.Link.Target, il.Err)
}

func (il InvalidLink) Unwrap() error { return il.Err }

// Graph is a set of nodes and the valid links between them.
type Graph struct {
	Nodes []*Node
	Links []*Link

	byID map[string]*Node
}

// Build resolves the given data into a [Graph]. Links with unknown
// endpoints, self-loops, or duplicate ids are excluded, logged, and
// returned as invalid links; they never make the build fail.
// Duplicate or missing node ids are an error.
func Build(data *Data) (*Graph, []InvalidLink, error) {
	g := &Graph{byID: make(map[string]*Node, len(data.Nodes))}
	for i, nd := range data.Nodes {
		if nd.ID == "" {
			return nil, nil, fmt.Errorf("graph.Build: node %d: %w", i, ErrMissingID)
		}
		if _, has := g.byID[nd.ID]; has {
			return nil, nil, fmt.Errorf("graph.Build: node %q: %w", nd.ID, ErrDuplicateNode)
		}
		n := &Node{Index: i, ID: nd.ID, Name: nd.Name, Value: nd.Value, X: math.NaN(), Y: math.NaN()}
		if nd.X != nil {
			n.X = *nd.X
		}
		if nd.Y != nil {
			n.Y = *nd.Y
		}
		g.Nodes = append(g.Nodes, n)
		g.byID[nd.ID] = n
	}

	var invalid []InvalidLink
	linkIDs := make(map[string]bool, len(data.Links))
	reject := func(ld LinkData, err error) {
		il := InvalidLink{Link: ld, Err: err}
		slog.Warn("dropping invalid link", "link", ld.ID, "source", ld.Source, "target", ld.Target, "err", err)
		invalid = append(invalid, il)
	}
	for i, ld := range data.Links {
		src, ok := g.byID[ld.Source]
		if !ok {
			reject(ld, ErrUnknownSource)
			continue
		}
		tgt, ok := g.byID[ld.Target]
		if !ok {
			reject(ld, ErrUnknownTarget)
			continue
		}
		if src == tgt {
			reject(ld, ErrSelfLoop)
			continue
		}
		id := ld.ID
		if id == "" {
			id = ld.Source + "-" + ld.Target
			if linkIDs[id] {
				id += "-" + strconv.Itoa(i)
			}
		} else if linkIDs[id] {
			reject(ld, ErrDuplicateLink)
			continue
		}
		linkIDs[id] = true
		g.Links = append(g.Links, &Link{Index: len(g.Links), ID: id, Source: src, Target: tgt})
	}
	return g, invalid, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Degrees returns the number of links attached to each node, by node index.
func (g *Graph) Degrees() []int {
	deg := make([]int, len(g.Nodes))
	for _, l := range g.Links {
		deg[l.Source.Index]++
		deg[l.Target.Index]++
	}
	return deg
}

// Data returns the serialized form of the graph with the current
// node positions, for saving a computed layout.
func (g *Graph) Data() *Data {
	d := &Data{
		Nodes: make([]NodeData, len(g.Nodes)),
		Links: make([]LinkData, len(g.Links)),
	}
	for i, n := range g.Nodes {
		d.Nodes[i] = NodeData{ID: n.ID, Name: n.Name, Value: n.Value}
		if n.IsPlaced() {
			x, y := n.X, n.Y
			d.Nodes[i].X, d.Nodes[i].Y = &x, &y
		}
	}
	for i, l := range g.Links {
		d.Links[i] = LinkData{ID: l.ID, Source: l.Source.ID, Target: l.Target.ID}
	}
	return d
}
