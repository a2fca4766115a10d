// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/linkdiagram/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, -30.0, c.Simulation.ChargeStrength)
	assert.Equal(t, float32(400), c.Camera.Distance)
	assert.Equal(t, float32(1), c.Picking.LineThreshold)
	opts := c.Options()
	assert.Equal(t, image.Pt(1280, 800), opts.Size)
	_, isDefault := opts.Font.(fonts.SourceFunc)
	assert.True(t, isDefault)
}

func TestReadBytes(t *testing.T) {
	c, err := ReadBytes([]byte(`
[simulation]
charge-strength = -60
center = false

[camera]
fov = 40

[style]
background-color = "#ffffff"

[style.node]
bg-color = "rgb(10, 20, 30)"

[font]
path = "label.ttf"

[picking]
drag-nodes = true
`))
	require.NoError(t, err)
	assert.Equal(t, -60.0, c.Simulation.ChargeStrength)
	assert.False(t, c.Simulation.Center)
	assert.Equal(t, 30.0, c.Simulation.LinkDistance)
	assert.Equal(t, float32(40), c.Camera.FOV)
	assert.Equal(t, float32(1500), c.Camera.MaxDepth)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Style.BackgroundColor.RGBA)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, c.Style.Node.BgColor.RGBA)
	assert.Equal(t, float32(0.25), c.Style.Node.HaloOpacity)
	assert.True(t, c.Picking.DragNodes)
	assert.Equal(t, fonts.File("label.ttf"), c.Options().Font)

	_, err = ReadBytes([]byte(`[style]
background-color = "nope"`))
	assert.Error(t, err)
}

func TestOpenSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "linkdiagram.toml")
	c := New()
	c.Window.Title = "Test"
	c.Simulation.Theta = 0.5
	require.NoError(t, c.Save(fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[simulation]")

	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "Test", o.Window.Title)
	assert.Equal(t, 0.5, o.Simulation.Theta)
	assert.Equal(t, c.Style, o.Style)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFontHome(t *testing.T) {
	f := Font{Path: "~/fonts/label.ttf"}
	src, ok := f.Source().(fonts.File)
	require.True(t, ok)
	assert.NotContains(t, string(src), "~")
	assert.True(t, strings.HasSuffix(string(src), "fonts/label.ttf"))
}
