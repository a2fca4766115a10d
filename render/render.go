// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the frame loop that draws a scene through
// a [Renderer] once per frame of a [Scheduler].
package render

import (
	"time"

	"cogentcore.org/linkdiagram/base/errors"
	"cogentcore.org/linkdiagram/fonts"
	"cogentcore.org/linkdiagram/xyz"
)

// Scheduler runs callbacks on the single thread of a host window.
type Scheduler interface {

	// RequestFrame runs fn once at the start of the next display
	// frame, with the frame time.
	RequestFrame(fn func(now time.Time))

	// Post runs fn on the scheduler thread as soon as possible.
	// It is safe to call from any goroutine.
	Post(fn func())
}

// Renderer draws a scene through its camera.
type Renderer interface {
	Render(sc *xyz.Scene) error
}

// FontRenderer is a [Renderer] that draws labels with a font face,
// set once the face has loaded.
type FontRenderer interface {
	Renderer
	SetFace(face *fonts.Face) error
}

// Animator is advanced once per frame before drawing. Animate
// returns whether the animation is still running.
type Animator interface {
	Animate(now time.Time) bool
}

// Loop draws a scene once per frame until stopped, advancing its
// animators first. Renderer errors are logged and do not stop it.
type Loop struct {

	// Scene is the scene to draw.
	Scene *xyz.Scene

	// Renderer draws the scene.
	Renderer Renderer

	animators []Animator
	sched     Scheduler
	running   bool
	stopped   bool
	frames    int
}

// NewLoop returns a new loop drawing the scene with the renderer.
func NewLoop(sc *xyz.Scene, r Renderer) *Loop {
	return &Loop{Scene: sc, Renderer: r}
}

// AddAnimator adds an animator advanced every frame.
func (lp *Loop) AddAnimator(a Animator) {
	lp.animators = append(lp.animators, a)
}

// Start starts drawing frames on the scheduler.
func (lp *Loop) Start(sched Scheduler) {
	lp.sched = sched
	lp.stopped = false
	if lp.running {
		return
	}
	lp.running = true
	sched.RequestFrame(lp.frame)
}

// Stop stops the loop; no frame is requested after the current one.
func (lp *Loop) Stop() {
	lp.stopped = true
}

// IsRunning returns whether frames are being requested.
func (lp *Loop) IsRunning() bool {
	return lp.running && !lp.stopped
}

// Frames returns the number of frames drawn.
func (lp *Loop) Frames() int {
	return lp.frames
}

func (lp *Loop) frame(now time.Time) {
	if lp.stopped {
		lp.running = false
		return
	}
	for _, a := range lp.animators {
		a.Animate(now)
	}
	if lp.Renderer != nil {
		errors.Log(lp.Renderer.Render(lp.Scene))
	}
	lp.frames++
	if lp.stopped {
		lp.running = false
		return
	}
	lp.sched.RequestFrame(lp.frame)
}
