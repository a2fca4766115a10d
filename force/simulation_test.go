// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"
	"testing"
	"time"

	"cogentcore.org/linkdiagram/base/tolassert"
	"cogentcore.org/linkdiagram/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frames is a minimal [Scheduler] that runs requested frames on demand.
type frames struct {
	pending []func(time.Time)
}

func (f *frames) RequestFrame(fn func(time.Time)) {
	f.pending = append(f.pending, fn)
}

// run runs frames until none are requested or max is reached,
// returning the number run.
func (f *frames) run(max int) int {
	n := 0
	for len(f.pending) > 0 && n < max {
		fns := f.pending
		f.pending = nil
		for _, fn := range fns {
			fn(time.Now())
		}
		n++
	}
	return n
}

func ptr(v float64) *float64 { return &v }

func buildGraph(t *testing.T, d *graph.Data) *graph.Graph {
	t.Helper()
	g, _, err := graph.Build(d)
	require.NoError(t, err)
	return g
}

func sample(t *testing.T, opts graph.SampleOptions) *graph.Data {
	t.Helper()
	d, err := graph.Sample(opts)
	require.NoError(t, err)
	return d
}

func twoNodes(t *testing.T, dist float64) *graph.Graph {
	return buildGraph(t, &graph.Data{
		Nodes: []graph.NodeData{{ID: "a", X: ptr(0), Y: ptr(0)}, {ID: "b", X: ptr(dist), Y: ptr(0)}},
		Links: []graph.LinkData{{Source: "a", Target: "b"}},
	})
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	tolassert.EqualTol(t, 0.0228, p.AlphaDecay, 1e-4)
	assert.Equal(t, 0.001, p.AlphaMin)
	assert.Equal(t, 0.6, p.VelocityDecay)
	assert.Equal(t, -30.0, p.ChargeStrength)
	assert.Equal(t, 30.0, p.LinkDistance)
}

func TestInitialPlacement(t *testing.T) {
	g := buildGraph(t, &graph.Data{Nodes: []graph.NodeData{{ID: "a"}, {ID: "b"}, {ID: "c", X: ptr(5), Y: ptr(6)}, {ID: "d", X: ptr(7)}}})
	sim := New(g, DefaultParams())
	a, b := sim.Nodes[0], sim.Nodes[1]
	tolassert.Equal(t, 10*math.Sqrt(0.5), a.X)
	tolassert.Equal(t, 0, a.Y)
	r := 10 * math.Sqrt(1.5)
	tolassert.Equal(t, r*math.Cos(initialAngle), b.X)
	tolassert.Equal(t, r*math.Sin(initialAngle), b.Y)
	assert.Equal(t, 5.0, sim.Nodes[2].X)
	assert.Equal(t, 6.0, sim.Nodes[2].Y)
	d := sim.Nodes[3]
	assert.Equal(t, 7.0, d.X)
	tolassert.Equal(t, 10*math.Sqrt(3.5)*math.Sin(3*initialAngle), d.Y)
	assert.Equal(t, []string{"link", "charge", "x", "y", "center"}, sim.forces.Keys())
}

func TestTwoNodeLink(t *testing.T) {
	t.Run("closer than rest length moves apart", func(t *testing.T) {
		g := twoNodes(t, 10)
		sim := New(g, DefaultParams())
		sim.Tick()
		a, b := g.Nodes[0], g.Nodes[1]
		assert.Greater(t, b.X-a.X, 10.0)
		tolassert.EqualTol(t, 0, a.Y, 1e-5)
		tolassert.EqualTol(t, 0, b.Y, 1e-5)
	})
	t.Run("farther than rest length moves together", func(t *testing.T) {
		g := twoNodes(t, 100)
		sim := New(g, DefaultParams())
		sim.Tick()
		a, b := g.Nodes[0], g.Nodes[1]
		assert.Less(t, b.X-a.X, 100.0)
		assert.Greater(t, b.X-a.X, 0.0)
	})
	t.Run("link force alone moves each node", func(t *testing.T) {
		g := twoNodes(t, 10)
		sim := New(g, DefaultParams())
		for _, name := range []string{"charge", "x", "y", "center"} {
			assert.True(t, sim.DeleteForce(name))
		}
		sim.Tick()
		assert.Less(t, g.Nodes[0].X, 0.0)
		assert.Greater(t, g.Nodes[1].X, 10.0)

		g = twoNodes(t, 100)
		sim = New(g, DefaultParams())
		sim.DeleteForce("charge")
		sim.DeleteForce("x")
		sim.DeleteForce("y")
		sim.DeleteForce("center")
		sim.Tick()
		// d = 100, k = 70/100 and bias 1/2: each end moves 35
		tolassert.Equal(t, 35, g.Nodes[0].X)
		tolassert.Equal(t, 65, g.Nodes[1].X)
		tolassert.Equal(t, 35*0.6, g.Nodes[0].VX)
	})
}

func TestAlphaSchedule(t *testing.T) {
	g := buildGraph(t, sample(t, graph.SampleOptions{Nodes: 20, ExtraLinks: 5, Seed: 2}))
	sim := New(g, DefaultParams())
	sch := &frames{}
	ticks, ends := 0, 0
	last := sim.Alpha()
	sim.OnTick(func() {
		ticks++
		assert.LessOrEqual(t, sim.Alpha(), last)
		last = sim.Alpha()
	})
	sim.OnEnd(func() { ends++ })
	sim.Start(sch)
	assert.True(t, sim.IsRunning())
	sch.run(1000)

	assert.Equal(t, 1, ends)
	assert.LessOrEqual(t, ticks, 300)
	assert.Greater(t, ticks, 200)
	assert.LessOrEqual(t, sim.Alpha(), sim.AlphaMin())
	assert.False(t, sim.IsRunning())
	assert.Empty(t, sch.pending)

	// reheat resumes ticking from alpha 1
	before := sim.Ticks()
	sim.Reheat()
	assert.Equal(t, 1.0, sim.Alpha())
	sch.run(5)
	assert.Equal(t, before+5, sim.Ticks())
}

func TestStop(t *testing.T) {
	g := twoNodes(t, 50)
	sim := New(g, DefaultParams())
	sch := &frames{}
	ticks := 0
	sim.OnTick(func() { ticks++ })
	sim.Start(sch)
	sch.run(3)
	assert.Equal(t, 3, ticks)
	sim.Stop()
	assert.False(t, sim.IsRunning())
	sch.run(10)
	assert.Equal(t, 3, ticks)
	assert.Empty(t, sch.pending)

	sim.Restart()
	sch.run(2)
	assert.Equal(t, 5, ticks)
}

func TestCentering(t *testing.T) {
	d := sample(t, graph.SampleOptions{Nodes: 40, ExtraLinks: 15, Seed: 5})
	for i := range d.Nodes {
		x, y := 200+float64(i), -100+float64(i%7)
		d.Nodes[i].X, d.Nodes[i].Y = &x, &y
	}
	g := buildGraph(t, d)
	sim := New(g, DefaultParams())
	n := sim.Converge(1000)
	assert.LessOrEqual(t, n, 300)

	var mx, my float64
	for _, nd := range g.Nodes {
		mx += nd.X
		my += nd.Y
		assert.False(t, math.IsNaN(nd.X))
	}
	mx /= float64(len(g.Nodes))
	my /= float64(len(g.Nodes))
	tolassert.EqualTol(t, 0, mx, 0.1)
	tolassert.EqualTol(t, 0, my, 0.1)
}

func TestWithoutCentroid(t *testing.T) {
	p := DefaultParams()
	p.Center = false
	g := buildGraph(t, sample(t, graph.SampleOptions{Nodes: 30, ExtraLinks: 10, Seed: 9}))
	sim := New(g, p)
	assert.Nil(t, sim.Force("center"))
	sim.Converge(300)
	for _, nd := range g.Nodes {
		assert.Less(t, math.Abs(nd.X), 1000.0)
		assert.Less(t, math.Abs(nd.Y), 1000.0)
	}
}

func TestPin(t *testing.T) {
	g := twoNodes(t, 10)
	sim := New(g, DefaultParams())
	require.NoError(t, sim.Pin("a", 3, 4))
	sim.Converge(50)
	a := g.Nodes[0]
	assert.Equal(t, 3.0, a.X)
	assert.Equal(t, 4.0, a.Y)
	assert.Equal(t, 0.0, a.VX)

	require.NoError(t, sim.Unpin("a"))
	assert.Nil(t, a.FX)
	assert.Error(t, sim.Pin("zz", 0, 0))
	assert.Error(t, sim.Unpin("zz"))
}

func TestFind(t *testing.T) {
	g := twoNodes(t, 10)
	sim := New(g, DefaultParams())
	assert.Equal(t, "b", sim.Find(9, 1, 5).ID)
	assert.Nil(t, sim.Find(50, 50, 5))
	assert.Equal(t, "b", sim.Find(50, 0, 0).ID)
}

func TestAlphaTarget(t *testing.T) {
	g := twoNodes(t, 10)
	sim := New(g, DefaultParams())
	sim.SetAlphaTarget(0.3)
	sim.Converge(1000)
	// alpha approaches the target and never reaches alphaMin
	tolassert.EqualTol(t, 0.3, sim.Alpha(), 1e-3)
	sim.SetAlphaTarget(0)
	assert.LessOrEqual(t, sim.Converge(1000), 300)
	sim.SetAlpha(2)
	assert.Equal(t, 1.0, sim.Alpha())
}

func TestEmptyGraph(t *testing.T) {
	g := buildGraph(t, &graph.Data{})
	sim := New(g, DefaultParams())
	n := sim.Converge(1000)
	assert.LessOrEqual(t, n, 300)
	assert.Greater(t, n, 290)
}
