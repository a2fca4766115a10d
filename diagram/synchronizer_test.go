// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"testing"

	"cogentcore.org/linkdiagram/base/errors"
	"cogentcore.org/linkdiagram/fonts"
	"cogentcore.org/linkdiagram/force"
	"cogentcore.org/linkdiagram/graph"
	"cogentcore.org/linkdiagram/styles"
	"cogentcore.org/linkdiagram/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() *graph.Data {
	return &graph.Data{
		Nodes: []graph.NodeData{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}, {ID: "c"}},
		Links: []graph.LinkData{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c"},
			{Source: "a", Target: "a"},
			{Source: "a", Target: "zz"},
		},
	}
}

func TestSynchronizer(t *testing.T) {
	g, invalid, err := graph.Build(testData())
	require.NoError(t, err)
	require.Len(t, invalid, 2)
	force.New(g, force.DefaultParams())

	sc := xyz.NewScene()
	sy := NewSynchronizer(sc, g, styles.Default())
	assert.True(t, sy.IsLoading())
	sy.Update()
	assert.Equal(t, 0, sc.Len())

	face := errors.Must1(fonts.Default())
	sy.Build(face)
	assert.False(t, sy.IsLoading())
	assert.Equal(t, 5, sc.Len())
	assert.Equal(t, 3, sy.NumNodes())
	assert.Equal(t, 2, sy.NumLinks())
	_, ok := sy.LinkHandle("a-a")
	assert.False(t, ok)

	h, ok := sy.NodeHandle("a")
	require.True(t, ok)
	a := sc.Object(h)
	assert.Equal(t, xyz.Marker, a.Kind)
	assert.Equal(t, float32(g.Nodes[0].X), a.Pos.X)
	assert.Equal(t, float32(0), a.Pos.Z)
	assert.Equal(t, "Alpha", a.Label.Text)
	assert.Greater(t, a.Label.Width, float32(0))
	assert.Greater(t, a.Label.Height, float32(0))
	assert.Equal(t, float32(1.75), a.Halo.Radius)
	assert.Equal(t, uint8(64), a.Halo.Material.Color.A)

	hc, _ := sy.NodeHandle("c")
	assert.Equal(t, "c", sc.Object(hc).Label.Text)

	hl, ok := sy.LinkHandle("a-b")
	require.True(t, ok)
	l := sc.Object(hl)
	assert.Equal(t, xyz.Line, l.Kind)

	g.Nodes[0].X, g.Nodes[0].Y = 42, -3
	sy.Update()
	assert.Equal(t, float32(42), a.Pos.X)
	assert.Equal(t, float32(-3), a.Pos.Y)
	assert.Equal(t, float32(42), l.Points[0].X)
	assert.Equal(t, float32(g.Nodes[1].X), l.Points[1].X)

	// building again adds nothing
	sy.Build(face)
	assert.Equal(t, 5, sc.Len())
}
