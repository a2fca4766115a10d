// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// NodeData is the input record for one node.
// X and Y are optional initial positions.
type NodeData struct {
	ID    string   `json:"id" yaml:"id"`
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
	Value float64  `json:"value,omitempty" yaml:"value,omitempty"`
	X     *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y     *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// LinkData is the input record for one link between two node ids.
// An empty ID is assigned from the endpoints when the graph is built.
type LinkData struct {
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Data is the serialized form of a graph.
type Data struct {
	Nodes []NodeData `json:"nodes" yaml:"nodes"`
	Links []LinkData `json:"links" yaml:"links"`
}
