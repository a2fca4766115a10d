// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer, wheel and magnify input events
// delivered to a diagram by its host.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/linkdiagram/math32"
)

// Types determines the type of an input event.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	MouseMove

	// MouseDrag is sent when the mouse is moving with a button down.
	// Prev is the position of the previous move or drag event.
	MouseDrag

	// Scroll is a scroll wheel or trackpad scroll event.
	Scroll

	// Magnify is a pinch or touchpad zoom gesture.
	Magnify
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "Scroll", "Magnify"}

func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typesNames[tp]
}

// Event is the interface for all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Pos returns the pointer position of the event in window
	// pixels, with the origin at the top left.
	Pos() image.Point

	// Time returns the time at which the event occurred.
	Time() time.Time
}

// Base is the base type for events.
type Base struct {

	// Typ is the type of the event.
	Typ Types

	// Where is the pointer position in window pixels.
	Where image.Point

	// GenTime is when the event was generated.
	GenTime time.Time
}

func (ev *Base) Type() Types      { return ev.Typ }
func (ev *Base) Pos() image.Point { return ev.Where }
func (ev *Base) Time() time.Time  { return ev.GenTime }

func (ev *Base) init(typ Types, where image.Point) {
	ev.Typ = typ
	ev.Where = where
	ev.GenTime = time.Now()
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b < 0 || int(b) >= len(buttonsNames) {
		return fmt.Sprintf("Buttons(%d)", int32(b))
	}
	return buttonsNames[b]
}

// Mouse is a mouse button or move event.
type Mouse struct {
	Base

	// Button is the button that was pressed, released or is held
	// during a drag.
	Button Buttons

	// Prev is the previous position for move and drag events.
	Prev image.Point
}

// NewMouse returns a new [MouseDown] or [MouseUp] event.
func NewMouse(typ Types, but Buttons, where image.Point) *Mouse {
	ev := &Mouse{Button: but}
	ev.init(typ, where)
	return ev
}

// NewMouseMove returns a new [MouseMove] event.
func NewMouseMove(where, prev image.Point) *Mouse {
	ev := &Mouse{Prev: prev}
	ev.init(MouseMove, where)
	return ev
}

// NewMouseDrag returns a new [MouseDrag] event.
func NewMouseDrag(but Buttons, where, prev image.Point) *Mouse {
	ev := &Mouse{Button: but, Prev: prev}
	ev.init(MouseDrag, where)
	return ev
}

// PrevDelta returns the change in position since the previous event.
func (ev *Mouse) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Time().Format("04:05"))
}

// DeltaModes are the units of a [ScrollEvent] delta.
type DeltaModes int32

const (
	// DeltaPixel is a delta in pixels.
	DeltaPixel DeltaModes = iota

	// DeltaLine is a delta in lines, as sent by most mouse wheels.
	DeltaLine
)

func (dm DeltaModes) String() string {
	if dm == DeltaLine {
		return "DeltaLine"
	}
	return "DeltaPixel"
}

// ScrollEvent is a scroll wheel event. Positive Delta.Y scrolls
// down, which zooms out.
type ScrollEvent struct {
	Base

	// Delta is the amount of scrolling in each axis.
	Delta math32.Vector2

	// Mode is the unit of Delta.
	Mode DeltaModes
}

// NewScroll returns a new [Scroll] event.
func NewScroll(where image.Point, delta math32.Vector2, mode DeltaModes) *ScrollEvent {
	ev := &ScrollEvent{Delta: delta, Mode: mode}
	ev.init(Scroll, where)
	return ev
}

func (ev *ScrollEvent) String() string {
	return fmt.Sprintf("%v{Delta: %v, Mode: %v, Pos: %v, Time: %v}", ev.Type(), ev.Delta, ev.Mode, ev.Where, ev.Time().Format("04:05"))
}

// TouchMagnify is a magnify (pinch) gesture.
type TouchMagnify struct {
	Base

	// ScaleFactor is the multiplicative change in scale,
	// where values above 1 zoom in.
	ScaleFactor float32
}

// NewMagnify returns a new [Magnify] event.
func NewMagnify(where image.Point, scale float32) *TouchMagnify {
	ev := &TouchMagnify{ScaleFactor: scale}
	ev.init(Magnify, where)
	return ev
}

func (ev *TouchMagnify) String() string {
	return fmt.Sprintf("%v{ScaleFactor: %v, Pos: %v, Time: %v}", ev.Type(), ev.ScaleFactor, ev.Where, ev.Time().Format("04:05"))
}
