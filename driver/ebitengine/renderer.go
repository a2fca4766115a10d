// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ebitengine

import (
	"image"
	"image/color"

	"cogentcore.org/linkdiagram/base/errors"
	"cogentcore.org/linkdiagram/fonts"
	"cogentcore.org/linkdiagram/math32"
	"cogentcore.org/linkdiagram/xyz"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrNoScreen is returned by [Renderer.Render] outside of a Draw call.
var ErrNoScreen = errors.New("ebitengine: no screen to render to")

// Renderer draws a scene onto an Ebitengine screen image as flat
// vector graphics seen through the scene camera: lines, filled
// circles for markers and halos, and rasterized labels.
type Renderer struct {

	// Screen is the image drawn onto; it is set by [Game.Draw].
	Screen *ebiten.Image

	// LineWidth is the width of link lines in pixels.
	LineWidth float32

	// LabelPixels is the font size labels are rasterized at.
	LabelPixels float64

	// MinLabelPixels is the height below which labels are not drawn.
	MinLabelPixels float32

	face   font.Face
	ascent int
	labels map[labelKey]*ebiten.Image
}

type labelKey struct {
	text  string
	color color.RGBA
}

// NewRenderer returns a new renderer.
func NewRenderer() *Renderer {
	return &Renderer{LineWidth: 1, LabelPixels: 32, MinLabelPixels: 3}
}

// SetFace sets the face labels are drawn with.
func (r *Renderer) SetFace(f *fonts.Face) error {
	otf, err := opentype.Parse(f.Data)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: r.LabelPixels, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return err
	}
	for _, img := range r.labels {
		img.Deallocate()
	}
	r.face = face
	r.ascent = face.Metrics().Ascent.Ceil()
	r.labels = make(map[labelKey]*ebiten.Image)
	return nil
}

func (r *Renderer) Render(sc *xyz.Scene) error {
	if r.Screen == nil {
		return ErrNoScreen
	}
	r.Screen.Fill(sc.BackgroundColor)
	size := r.Screen.Bounds().Size()
	cam := &sc.Camera
	toPixel := func(p math32.Vector3) (math32.Vector2, bool) {
		ndc := cam.Project(p)
		if ndc.Z < -1 || ndc.Z > 1 {
			return math32.Vector2{}, false
		}
		return xyz.NDCToPixel(math32.Vec2(ndc.X, ndc.Y), size), true
	}
	for _, ob := range sc.Objects.All() {
		switch ob.Kind {
		case xyz.Line:
			p0, ok0 := toPixel(ob.Points[0])
			p1, ok1 := toPixel(ob.Points[1])
			if ok0 && ok1 {
				vector.StrokeLine(r.Screen, p0.X, p0.Y, p1.X, p1.Y, r.LineWidth, ob.Material.Rendered(), true)
			}
		case xyz.Marker:
			c, ok := toPixel(ob.Pos)
			if !ok {
				continue
			}
			unit, _ := toPixel(ob.Pos.Add(math32.Vector3X))
			scale := unit.X - c.X
			if ob.Halo.Radius > 0 {
				vector.DrawFilledCircle(r.Screen, c.X, c.Y, ob.Halo.Radius*scale, ob.Halo.Material.Rendered(), true)
			}
			vector.DrawFilledCircle(r.Screen, c.X, c.Y, ob.Radius*scale, ob.Material.Rendered(), true)
			if ob.HasLabel() {
				r.drawLabel(ob, c, scale)
			}
		}
	}
	return nil
}

// drawLabel draws the label of the marker at pixel position c,
// with the given pixels per world unit.
func (r *Renderer) drawLabel(ob *xyz.Object, c math32.Vector2, scale float32) {
	if r.face == nil || ob.Label.Size*scale < r.MinLabelPixels {
		return
	}
	clr := ob.Label.Color
	if ob.Material.Emissive.A > 0 {
		clr = ob.Material.Emissive
	}
	img := r.labelImage(ob.Label.Text, clr)
	if img == nil {
		return
	}
	f := float64(ob.Label.Size * scale / float32(r.LabelPixels))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -float64(r.ascent))
	op.GeoM.Scale(f, f)
	// pixel y grows downward, world y upward
	op.GeoM.Translate(float64(c.X+ob.Label.Offset.X*scale), float64(c.Y-ob.Label.Offset.Y*scale))
	op.Filter = ebiten.FilterLinear
	r.Screen.DrawImage(img, op)
}

// labelImage returns the cached rasterized image of the text.
func (r *Renderer) labelImage(text string, clr color.RGBA) *ebiten.Image {
	key := labelKey{text, clr}
	if img, ok := r.labels[key]; ok {
		return img
	}
	w := font.MeasureString(r.face, text).Ceil()
	h := r.ascent + r.face.Metrics().Descent.Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: rgba, Src: image.NewUniform(clr), Face: r.face, Dot: fixed.P(0, r.ascent)}
	d.DrawString(text)
	img := ebiten.NewImageFromImage(rgba)
	r.labels[key] = img
	return img
}
