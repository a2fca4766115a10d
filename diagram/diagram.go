// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram shows a graph as an interactive 3D link diagram:
// a force simulation lays out the nodes, and each tick is copied into
// a scene that is drawn every frame and can be zoomed, panned and picked.
//
// All methods of a [Diagram], and all of its callbacks, run on the
// thread of the [render.Scheduler] it is started on.
package diagram

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/linkdiagram/base/errors"
	"cogentcore.org/linkdiagram/events"
	"cogentcore.org/linkdiagram/fonts"
	"cogentcore.org/linkdiagram/force"
	"cogentcore.org/linkdiagram/graph"
	"cogentcore.org/linkdiagram/render"
	"cogentcore.org/linkdiagram/xyz"
	"cogentcore.org/linkdiagram/xyzview"
)

// States are the lifecycle states of a [Diagram].
type States int32

const (
	// Loading is waiting for the label font.
	Loading States = iota

	// Ready has built the scene objects.
	Ready

	// Failed could not load the label font; the scene stays empty.
	Failed

	// Stopped has been torn down.
	Stopped
)

func (s States) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	case Stopped:
		return "Stopped"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

// DragAlphaTarget is the simulation alpha target while dragging a node.
const DragAlphaTarget = 0.3

// Diagram is one interactive link diagram of a graph.
type Diagram struct {

	// Graph is the graph shown.
	Graph *graph.Graph

	// Invalid are the input links excluded from the graph.
	Invalid []graph.InvalidLink

	// Sim is the layout simulation.
	Sim *force.Simulation

	// Scene is the scene the diagram is drawn from.
	Scene *xyz.Scene

	// Sync copies node positions into the scene.
	Sync *Synchronizer

	// Nav moves the camera.
	Nav *xyzview.Navigator

	// Picker selects objects under the pointer.
	Picker *xyzview.Picker

	// Loop draws the scene every frame.
	Loop *render.Loop

	opts     Options
	state    States
	err      error
	dragging *graph.Node
}

// New returns a new diagram of the given data, drawn with the given
// renderer. Invalid links are excluded and logged; an error is returned
// only for invalid nodes.
func New(data *graph.Data, r render.Renderer, opts Options) (*Diagram, error) {
	g, invalid, err := graph.Build(data)
	if err != nil {
		return nil, fmt.Errorf("diagram.New: %w", err)
	}
	d := &Diagram{Graph: g, Invalid: invalid, opts: opts}
	d.Sim = force.New(g, opts.Params)

	d.Scene = xyz.NewScene()
	d.Scene.BackgroundColor = opts.Style.BackgroundColor.RGBA
	opts.Camera.apply(&d.Scene.Camera)

	d.Sync = NewSynchronizer(d.Scene, g, opts.Style)
	d.Sim.OnTick(d.Sync.Update)
	d.Sim.OnEnd(func() {
		slog.Info("layout converged", "nodes", len(g.Nodes), "links", len(g.Links), "ticks", d.Sim.Ticks())
	})

	d.Nav = xyzview.NewNavigator(d.Scene, opts.Size)
	opts.Camera.applyNavigator(d.Nav)
	d.Picker = xyzview.NewPicker(d.Scene, opts.Style.HighlightColor.RGBA)
	if opts.LineThreshold > 0 {
		d.Picker.LineThreshold = opts.LineThreshold
	}

	d.Loop = render.NewLoop(d.Scene, r)
	d.Loop.AddAnimator(d.Nav)
	return d, nil
}

// Start loads the label font in the background and starts the
// simulation and the render loop on the scheduler.
func (d *Diagram) Start(sched render.Scheduler) {
	src := d.opts.Font
	if src == nil {
		src = fonts.DefaultSource
	}
	fonts.LoadAsync(src, sched, d.fontLoaded)
	d.Sim.Start(sched)
	d.Loop.Start(sched)
}

func (d *Diagram) fontLoaded(face *fonts.Face, err error) {
	if d.state != Loading {
		return
	}
	if err != nil {
		d.state = Failed
		d.err = fmt.Errorf("diagram: loading label font: %w", err)
		return
	}
	if fr, ok := d.Loop.Renderer.(render.FontRenderer); ok {
		errors.Log(fr.SetFace(face))
	}
	d.Sync.Build(face)
	d.state = Ready
}

// State returns the lifecycle state.
func (d *Diagram) State() States { return d.state }

// Err returns the error that made the diagram fail, if any.
func (d *Diagram) Err() error { return d.err }

// IsLoading returns whether the scene objects are not built yet.
func (d *Diagram) IsLoading() bool { return d.Sync.IsLoading() }

// ZoomToFit animates the camera back to its initial view.
func (d *Diagram) ZoomToFit() { d.Nav.ZoomToFit() }

// Resize sets the drawing surface size.
func (d *Diagram) Resize(size image.Point) {
	if size == d.Nav.Size {
		return
	}
	d.Nav.Resize(size)
}

// Teardown stops the simulation and the render loop.
func (d *Diagram) Teardown() {
	d.Loop.Stop()
	d.Sim.Stop()
	d.Picker.Clear()
	d.state = Stopped
}

// HandleEvent handles an input event: pointer down selects the object
// under the pointer, and drags either move a node (with DragNodes)
// or pan. It returns whether the event was used.
func (d *Diagram) HandleEvent(ev events.Event) bool {
	if d.state == Stopped {
		return false
	}
	switch ev.Type() {
	case events.MouseDown:
		ob := d.Picker.Select(ev.Pos(), d.Nav.Size)
		if d.opts.DragNodes && ob != nil && ob.Kind == xyz.Marker {
			if n, ok := d.Graph.Node(ob.Name); ok {
				d.startDrag(n, ev.Pos())
				return true
			}
		}
	case events.MouseDrag:
		if d.dragging != nil {
			d.drag(ev.Pos())
			return true
		}
	case events.MouseUp:
		if d.dragging != nil {
			d.endDrag()
			return true
		}
	}
	return d.Nav.HandleEvent(ev)
}

// planePoint returns the point on the z = 0 plane under the given pixel.
func (d *Diagram) planePoint(pt image.Point) (x, y float64, ok bool) {
	ray := d.Scene.Camera.RayFromNDC(xyz.PixelToNDC(pt, d.Nav.Size))
	t, ok := ray.IntersectPlaneZ(0)
	if !ok {
		return 0, 0, false
	}
	p := ray.At(t)
	return float64(p.X), float64(p.Y), true
}

func (d *Diagram) startDrag(n *graph.Node, pt image.Point) {
	d.dragging = n
	errors.Log(d.Sim.Pin(n.ID, n.X, n.Y))
	d.Sim.SetAlphaTarget(DragAlphaTarget)
	d.Sim.Restart()
	d.drag(pt)
}

func (d *Diagram) drag(pt image.Point) {
	x, y, ok := d.planePoint(pt)
	if !ok {
		return
	}
	errors.Log(d.Sim.Pin(d.dragging.ID, x, y))
}

func (d *Diagram) endDrag() {
	errors.Log(d.Sim.Unpin(d.dragging.ID))
	d.Sim.SetAlphaTarget(0)
	d.dragging = nil
}
