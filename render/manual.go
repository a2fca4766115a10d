// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"sync"
	"time"
)

// ManualScheduler is a [Scheduler] whose frames are run explicitly,
// for tests and headless use. Frame times start at Now and advance
// by Interval each frame.
type ManualScheduler struct {

	// Now is the time of the next frame.
	Now time.Time

	// Interval is the time between frames.
	Interval time.Duration

	frames []func(time.Time)

	mu     sync.Mutex
	posts  []func()
	posted chan struct{}
}

// NewManualScheduler returns a new manual scheduler at 60 frames per second.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		Now:      time.Now(),
		Interval: time.Second / 60,
		posted:   make(chan struct{}, 1),
	}
}

func (ms *ManualScheduler) RequestFrame(fn func(now time.Time)) {
	ms.frames = append(ms.frames, fn)
}

func (ms *ManualScheduler) Post(fn func()) {
	ms.mu.Lock()
	ms.posts = append(ms.posts, fn)
	ms.mu.Unlock()
	select {
	case ms.posted <- struct{}{}:
	default:
	}
}

// Pending returns the number of requested frame callbacks.
func (ms *ManualScheduler) Pending() int {
	return len(ms.frames)
}

// RunPosted runs the posted functions, returning how many ran.
func (ms *ManualScheduler) RunPosted() int {
	ms.mu.Lock()
	posts := ms.posts
	ms.posts = nil
	ms.mu.Unlock()
	for _, fn := range posts {
		fn()
	}
	return len(posts)
}

// WaitPosted blocks until a function has been posted or the timeout
// elapses, then runs the posted functions, returning how many ran.
func (ms *ManualScheduler) WaitPosted(timeout time.Duration) int {
	deadline := time.After(timeout)
	for {
		ms.mu.Lock()
		has := len(ms.posts) > 0
		ms.mu.Unlock()
		if has {
			return ms.RunPosted()
		}
		select {
		case <-ms.posted:
		case <-deadline:
			return ms.RunPosted()
		}
	}
}

// RunFrame runs posted functions and then one frame: the callbacks
// requested before it started. It returns whether any callback ran.
func (ms *ManualScheduler) RunFrame() bool {
	ms.RunPosted()
	fns := ms.frames
	ms.frames = nil
	now := ms.Now
	for _, fn := range fns {
		fn(now)
	}
	ms.Now = ms.Now.Add(ms.Interval)
	return len(fns) > 0
}

// Run runs up to n frames, stopping early when no frame is
// requested, and returns the number of frames run.
func (ms *ManualScheduler) Run(n int) int {
	i := 0
	for ; i < n; i++ {
		if !ms.RunFrame() {
			break
		}
	}
	return i
}
