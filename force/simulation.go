// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package force implements a force-directed layout simulation
// over the nodes and links of a graph: link springs, Barnes-Hut
// many-body repulsion and centering, cooled by a decaying alpha.
package force

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"cogentcore.org/linkdiagram/base/ordmap"
	"cogentcore.org/linkdiagram/graph"
)

// Force is one force of a [Simulation]. Apply adds the force,
// scaled by alpha, to the node velocities (or positions).
type Force interface {

	// Initialize is called when the force is added to a simulation,
	// with the simulation nodes and its jiggle source, which returns
	// a tiny random offset for separating coincident nodes.
	Initialize(nodes []*graph.Node, jiggle func() float64)

	// Apply applies the force for one tick.
	Apply(alpha float64)
}

// Scheduler runs frame callbacks; it is satisfied by render.Scheduler.
type Scheduler interface {
	RequestFrame(fn func(now time.Time))
}

const (
	initialRadius = 10
)

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// Simulation is a force-directed layout simulation.
// It is not safe for concurrent use; all calls and scheduled ticks
// are expected on the thread of its [Scheduler].
type Simulation struct {

	// Graph is the graph being laid out.
	Graph *graph.Graph

	// Nodes are the graph nodes, whose positions the simulation owns.
	Nodes []*graph.Node

	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	alphaTarget   float64
	velocityDecay float64

	forces ordmap.Map[string, Force]
	rnd    *rand.Rand

	onTick []func()
	onEnd  []func()

	sched   Scheduler
	running bool
	stopped bool
	ticks   int
}

// New returns a new simulation over the graph with the default forces
// ("link", "charge", "x", "y", and "center" if enabled) configured by
// the given params. Nodes without a position are placed on a
// phyllotaxis spiral around the origin.
func New(g *graph.Graph, p Params) *Simulation {
	sim := &Simulation{
		Graph:         g,
		Nodes:         g.Nodes,
		alpha:         1,
		alphaMin:      p.AlphaMin,
		alphaDecay:    p.AlphaDecay,
		velocityDecay: p.VelocityDecay,
		rnd:           rand.New(rand.NewPCG(p.Seed, p.Seed+1)),
	}
	sim.forces.Init()
	sim.initializeNodes()

	lf := NewLink(g.Links)
	lf.Distance = p.LinkDistance
	lf.Iterations = p.LinkIterations
	sim.SetForce("link", lf)

	mb := NewManyBody()
	mb.Strength = p.ChargeStrength
	mb.Theta = p.Theta
	mb.DistanceMin = p.DistanceMin
	mb.DistanceMax = p.DistanceMax
	sim.SetForce("charge", mb)

	sim.SetForce("x", NewX(0, p.PositionStrength))
	sim.SetForce("y", NewY(0, p.PositionStrength))
	if p.Center {
		sim.SetForce("center", NewCenter(0, 0))
	}
	return sim
}

func (sim *Simulation) initializeNodes() {
	for i, n := range sim.Nodes {
		if n.FX != nil {
			n.X = *n.FX
		}
		if n.FY != nil {
			n.Y = *n.FY
		}
		if math.IsNaN(n.X) || math.IsNaN(n.Y) {
			r := initialRadius * math.Sqrt(0.5+float64(i))
			a := float64(i) * initialAngle
			if math.IsNaN(n.X) {
				n.X = r * math.Cos(a)
			}
			if math.IsNaN(n.Y) {
				n.Y = r * math.Sin(a)
			}
		}
		if math.IsNaN(n.VX) || math.IsNaN(n.VY) {
			n.VX, n.VY = 0, 0
		}
	}
}

// jiggle returns a tiny random value, used to separate coincident nodes.
func (sim *Simulation) jiggle() float64 {
	return (sim.rnd.Float64() - 0.5) * 1e-6
}

// Alpha returns the current alpha.
func (sim *Simulation) Alpha() float64 { return sim.alpha }

// SetAlpha sets the current alpha, clamped to [0, 1].
func (sim *Simulation) SetAlpha(alpha float64) {
	sim.alpha = min(max(alpha, 0), 1)
}

// AlphaMin returns the alpha at or below which the simulation stops.
func (sim *Simulation) AlphaMin() float64 { return sim.alphaMin }

// AlphaTarget returns the alpha target.
func (sim *Simulation) AlphaTarget() float64 { return sim.alphaTarget }

// SetAlphaTarget sets the value alpha decays toward. A target above
// alphaMin keeps the simulation running, as while dragging a node.
func (sim *Simulation) SetAlphaTarget(target float64) {
	sim.alphaTarget = min(max(target, 0), 1)
}

// Ticks returns the number of ticks run since the simulation was created.
func (sim *Simulation) Ticks() int { return sim.ticks }

// Force returns the force with the given name, or nil.
func (sim *Simulation) Force(name string) Force {
	f, _ := sim.forces.ValueByKeyTry(name)
	return f
}

// SetForce adds or replaces the named force and initializes it.
// Forces apply in the order they were first added.
func (sim *Simulation) SetForce(name string, f Force) {
	f.Initialize(sim.Nodes, sim.jiggle)
	sim.forces.Add(name, f)
}

// DeleteForce removes the named force, returning whether it existed.
func (sim *Simulation) DeleteForce(name string) bool {
	return sim.forces.DeleteKey(name)
}

// OnTick adds a function called after each scheduled tick.
func (sim *Simulation) OnTick(fn func()) {
	sim.onTick = append(sim.onTick, fn)
}

// OnEnd adds a function called when a scheduled run reaches alphaMin.
func (sim *Simulation) OnEnd(fn func()) {
	sim.onEnd = append(sim.onEnd, fn)
}

// Tick runs one step of the simulation without emitting events:
// each force is applied with the current alpha, positions are
// integrated, velocities decayed, and then alpha is decayed.
func (sim *Simulation) Tick() {
	for _, f := range sim.forces.All() {
		f.Apply(sim.alpha)
	}
	for _, n := range sim.Nodes {
		if n.FX != nil {
			n.X, n.VX = *n.FX, 0
		} else {
			n.X += n.VX
			n.VX *= sim.velocityDecay
		}
		if n.FY != nil {
			n.Y, n.VY = *n.FY, 0
		} else {
			n.Y += n.VY
			n.VY *= sim.velocityDecay
		}
	}
	sim.alpha += (sim.alphaTarget - sim.alpha) * sim.alphaDecay
	sim.ticks++
}

// Converge runs ticks without events until alpha is at or below
// alphaMin, or max ticks have run, returning the number of ticks run.
func (sim *Simulation) Converge(max int) int {
	n := 0
	for n < max && sim.alpha > sim.alphaMin {
		sim.Tick()
		n++
	}
	return n
}

// Start schedules ticks on the scheduler, one per frame,
// until the simulation converges or is stopped.
func (sim *Simulation) Start(sched Scheduler) {
	sim.sched = sched
	sim.Restart()
}

// Restart resumes scheduled ticks after [Simulation.Stop] or
// convergence, keeping the current alpha.
func (sim *Simulation) Restart() {
	sim.stopped = false
	if sim.running || sim.sched == nil {
		return
	}
	sim.running = true
	sim.sched.RequestFrame(sim.frame)
}

// Reheat sets alpha back to 1 and restarts the simulation.
func (sim *Simulation) Reheat() {
	sim.alpha = 1
	sim.Restart()
}

// Stop stops scheduled ticks; no further tick events are emitted.
func (sim *Simulation) Stop() {
	sim.stopped = true
}

// IsRunning returns whether ticks are currently scheduled.
func (sim *Simulation) IsRunning() bool {
	return sim.running && !sim.stopped
}

func (sim *Simulation) frame(now time.Time) {
	if sim.stopped {
		sim.running = false
		return
	}
	sim.Tick()
	for _, fn := range sim.onTick {
		fn()
	}
	if sim.alpha <= sim.alphaMin {
		sim.running = false
		slog.Debug("simulation converged", "ticks", sim.ticks, "alpha", sim.alpha)
		for _, fn := range sim.onEnd {
			fn()
		}
		return
	}
	sim.sched.RequestFrame(sim.frame)
}

// Pin fixes the node with the given id at the given position.
func (sim *Simulation) Pin(id string, x, y float64) error {
	n, ok := sim.Graph.Node(id)
	if !ok {
		return fmt.Errorf("force.Pin: node %q not found", id)
	}
	n.FX, n.FY = &x, &y
	return nil
}

// Unpin releases a node fixed by [Simulation.Pin].
func (sim *Simulation) Unpin(id string) error {
	n, ok := sim.Graph.Node(id)
	if !ok {
		return fmt.Errorf("force.Unpin: node %q not found", id)
	}
	n.FX, n.FY = nil, nil
	return nil
}

// Find returns the node closest to the given position within
// the given radius, or nil. A radius <= 0 is unbounded.
func (sim *Simulation) Find(x, y, radius float64) *graph.Node {
	r2 := math.Inf(1)
	if radius > 0 {
		r2 = radius * radius
	}
	var closest *graph.Node
	for _, n := range sim.Nodes {
		dx, dy := x-n.X, y-n.Y
		if d2 := dx*dx + dy*dy; d2 < r2 {
			closest, r2 = n, d2
		}
	}
	return closest
}
