// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebitengine hosts a diagram in an Ebitengine window: it is the
// frame [render.Scheduler], translates input into events, and draws
// scenes with vector graphics.
package ebitengine

import (
	"image"
	"sync"
	"time"

	"cogentcore.org/linkdiagram/events"
	"cogentcore.org/linkdiagram/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Handler receives the input and size of the window.
// It is satisfied by diagram.Diagram.
type Handler interface {
	HandleEvent(ev events.Event) bool
	Resize(size image.Point)
	ZoomToFit()
}

var buttons = []struct {
	eb  ebiten.MouseButton
	but events.Buttons
}{
	{ebiten.MouseButtonLeft, events.Left},
	{ebiten.MouseButtonMiddle, events.Middle},
	{ebiten.MouseButtonRight, events.Right},
}

// Game is an [ebiten.Game] that runs frame callbacks in Draw and
// posted functions and input handling in Update, all on the
// Ebitengine game thread.
type Game struct {

	// Renderer draws scenes onto the screen during Draw.
	Renderer *Renderer

	handler Handler
	frames  []func(now time.Time)

	mu    sync.Mutex
	posts []func()

	size   image.Point
	cursor image.Point
	held   events.Buttons
	quit   bool
}

// NewGame returns a new game with a new [Renderer].
func NewGame() *Game {
	return &Game{Renderer: NewRenderer()}
}

// SetHandler sets the handler of input events, resizing it to the
// current window size. It must be called on the game thread,
// for example from a posted function.
func (g *Game) SetHandler(h Handler) {
	g.handler = h
	if h != nil && g.size != (image.Point{}) {
		h.Resize(g.size)
	}
}

// Size returns the current window size.
func (g *Game) Size() image.Point { return g.size }

// Quit stops the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) RequestFrame(fn func(now time.Time)) {
	g.frames = append(g.frames, fn)
}

func (g *Game) Post(fn func()) {
	g.mu.Lock()
	g.posts = append(g.posts, fn)
	g.mu.Unlock()
}

func (g *Game) runPosted() {
	g.mu.Lock()
	posts := g.posts
	g.posts = nil
	g.mu.Unlock()
	for _, fn := range posts {
		fn()
	}
}

func (g *Game) Update() error {
	g.runPosted()
	if g.quit {
		return ebiten.Termination
	}
	if g.handler != nil {
		g.handleInput()
	}
	return nil
}

func (g *Game) handleInput() {
	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.held = b.but
			g.handler.HandleEvent(events.NewMouse(events.MouseDown, b.but, pos))
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			if g.held == b.but {
				g.held = events.NoButton
			}
			g.handler.HandleEvent(events.NewMouse(events.MouseUp, b.but, pos))
		}
	}
	if pos != g.cursor {
		if g.held != events.NoButton {
			g.handler.HandleEvent(events.NewMouseDrag(g.held, pos, g.cursor))
		} else {
			g.handler.HandleEvent(events.NewMouseMove(pos, g.cursor))
		}
		g.cursor = pos
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		// wheel up is a positive y offset, which zooms in
		delta := math32.Vec2(float32(-dx), float32(-dy))
		g.handler.HandleEvent(events.NewScroll(pos, delta, events.DeltaLine))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.handler.HandleEvent(events.NewMagnify(pos, 1.25))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.handler.HandleEvent(events.NewMagnify(pos, 0.8))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.handler.ZoomToFit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Screen = screen
	g.RunFrames(time.Now())
	g.Renderer.Screen = nil
}

// RunFrames runs the frame callbacks requested before the call.
func (g *Game) RunFrames(now time.Time) {
	fns := g.frames
	g.frames = nil
	for _, fn := range fns {
		fn(now)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := image.Pt(outsideWidth, outsideHeight)
	if size != g.size {
		g.size = size
		if g.handler != nil {
			g.handler.Resize(size)
		}
	}
	return outsideWidth, outsideHeight
}

// Window are the settings of the game window.
type Window struct {
	Title         string
	Width, Height int
	VSync         bool
}

// Run opens a window and runs the game until it is closed or quits.
func Run(g *Game, win Window) error {
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(win.VSync)
	return ebiten.RunGame(g)
}
