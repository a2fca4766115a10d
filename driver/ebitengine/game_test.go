// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ebitengine

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/linkdiagram/events"
	"cogentcore.org/linkdiagram/render"
	"cogentcore.org/linkdiagram/xyz"
	"github.com/stretchr/testify/assert"
)

var _ render.Scheduler = (*Game)(nil)

var _ render.FontRenderer = (*Renderer)(nil)

type recorder struct {
	sizes []image.Point
	fits  int
}

func (rc *recorder) HandleEvent(ev events.Event) bool { return false }
func (rc *recorder) Resize(size image.Point)          { rc.sizes = append(rc.sizes, size) }
func (rc *recorder) ZoomToFit()                       { rc.fits++ }

func TestGameScheduling(t *testing.T) {
	g := NewGame()
	ran := 0
	done := make(chan struct{})
	go func() {
		g.Post(func() { ran++ })
		close(done)
	}()
	<-done
	assert.NoError(t, g.Update())
	assert.Equal(t, 1, ran)

	frames := 0
	var tick func(time.Time)
	tick = func(time.Time) {
		frames++
		g.RequestFrame(tick)
	}
	g.RequestFrame(tick)
	g.RunFrames(time.Now())
	g.RunFrames(time.Now())
	assert.Equal(t, 2, frames)

	g.Quit()
	assert.Error(t, g.Update())
}

func TestGameLayout(t *testing.T) {
	g := NewGame()
	rc := &recorder{}
	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	g.SetHandler(rc)
	assert.Equal(t, []image.Point{{640, 480}}, rc.sizes)
	g.Layout(640, 480)
	g.Layout(800, 600)
	assert.Equal(t, []image.Point{{640, 480}, {800, 600}}, rc.sizes)
	assert.Equal(t, image.Pt(800, 600), g.Size())
}

func TestRenderWithoutScreen(t *testing.T) {
	r := NewRenderer()
	assert.ErrorIs(t, r.Render(xyz.NewScene()), ErrNoScreen)
}
