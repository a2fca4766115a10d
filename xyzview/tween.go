// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"time"

	"cogentcore.org/linkdiagram/math32"
)

// EaseCubicInOut is symmetric cubic easing: slow at both ends.
func EaseCubicInOut(t float32) float32 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Tween interpolates a position over a duration. Its clock starts
// at the first call to [Tween.At].
type Tween struct {
	From, To math32.Vector3

	Duration time.Duration

	// Ease maps linear progress in [0, 1] to eased progress;
	// nil is linear.
	Ease func(t float32) float32

	start time.Time
}

// NewTween returns a new cubic ease-in-out tween.
func NewTween(from, to math32.Vector3, dur time.Duration) *Tween {
	return &Tween{From: from, To: to, Duration: dur, Ease: EaseCubicInOut}
}

// At returns the position at the given time and whether
// the tween has completed.
func (tw *Tween) At(now time.Time) (math32.Vector3, bool) {
	if tw.start.IsZero() {
		tw.start = now
	}
	if tw.Duration <= 0 {
		return tw.To, true
	}
	p := float32(now.Sub(tw.start)) / float32(tw.Duration)
	if p >= 1 {
		return tw.To, true
	}
	p = max(p, 0)
	if tw.Ease != nil {
		p = tw.Ease(p)
	}
	return tw.From.Lerp(tw.To, p), false
}
