// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the TOML configuration of the linkdiagram
// command. Fields missing from a configuration file keep their defaults.
package config

import (
	"fmt"
	"image"
	"io"

	"cogentcore.org/linkdiagram/base/errors"
	"cogentcore.org/linkdiagram/base/iox/tomlx"
	"cogentcore.org/linkdiagram/diagram"
	"cogentcore.org/linkdiagram/fonts"
	"cogentcore.org/linkdiagram/force"
	"cogentcore.org/linkdiagram/styles"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of the linkdiagram command.
type Config struct {

	// Simulation are the layout simulation parameters.
	Simulation force.Params `toml:"simulation"`

	// Camera are the camera and navigation settings.
	Camera diagram.Camera `toml:"camera"`

	// Style is the diagram style.
	Style styles.Style `toml:"style"`

	// Font is the label font.
	Font Font `toml:"font"`

	// Picking are the picking and dragging settings.
	Picking Picking `toml:"picking"`

	// Window are the window settings of the view command.
	Window Window `toml:"window"`
}

// Font is the label font configuration.
type Font struct {

	// Path is the path of a TrueType or OpenType font file,
	// which may start with ~; empty uses the embedded default font.
	Path string `toml:"path"`
}

// Source returns the font source for the configuration.
func (f *Font) Source() fonts.Source {
	if f.Path == "" {
		return fonts.DefaultSource
	}
	path, err := homedir.Expand(f.Path)
	if errors.Log(err) != nil {
		path = f.Path
	}
	return fonts.File(path)
}

// Picking are the picking and dragging settings.
type Picking struct {

	// LineThreshold is the world distance within which links are picked.
	LineThreshold float32 `toml:"line-threshold"`

	// DragNodes enables dragging nodes with the pointer.
	DragNodes bool `toml:"drag-nodes"`
}

// Window are the window settings.
type Window struct {
	Title string `toml:"title"`

	Width  int `toml:"width"`
	Height int `toml:"height"`

	// VSync synchronizes frames with the display refresh.
	VSync bool `toml:"vsync"`
}

// Defaults sets the default configuration.
func (c *Config) Defaults() {
	c.Simulation.Defaults()
	c.Camera.Defaults()
	c.Style.Defaults()
	c.Font = Font{}
	c.Picking.LineThreshold = 1
	c.Picking.DragNodes = false
	c.Window = Window{Title: "Link Diagram", Width: 1280, Height: 800, VSync: true}
}

// New returns a new default configuration.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Open returns the default configuration updated from the TOML file.
func Open(filename string) (*Config, error) {
	c := New()
	if err := tomlx.Open(c, filename); err != nil {
		return nil, fmt.Errorf("config: opening %s: %w", filename, err)
	}
	return c, nil
}

// ReadBytes returns the default configuration updated from the TOML data.
func ReadBytes(data []byte) (*Config, error) {
	c := New()
	if err := tomlx.ReadBytes(c, data); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Save writes the configuration to the TOML file.
func (c *Config) Save(filename string) error {
	return tomlx.Save(c, filename)
}

// Options returns the diagram options for the configuration.
func (c *Config) Options() diagram.Options {
	return diagram.Options{
		Params:        c.Simulation,
		Style:         c.Style,
		Camera:        c.Camera,
		Font:          c.Font.Source(),
		LineThreshold: c.Picking.LineThreshold,
		DragNodes:     c.Picking.DragNodes,
		Size:          image.Pt(c.Window.Width, c.Window.Height),
	}
}

// Write writes the configuration as TOML.
func (c *Config) Write(w io.Writer) error {
	return tomlx.Write(c, w)
}
