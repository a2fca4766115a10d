// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import "math"

// Params are the parameters of a [Simulation] and its default forces.
type Params struct {

	// AlphaMin is the alpha at or below which the simulation stops.
	AlphaMin float64 `toml:"alpha-min"`

	// AlphaDecay is the rate at which alpha approaches AlphaTarget each tick.
	// The default reaches AlphaMin in 300 ticks.
	AlphaDecay float64 `toml:"alpha-decay"`

	// VelocityDecay is the fraction of velocity retained after each tick.
	VelocityDecay float64 `toml:"velocity-decay"`

	// LinkDistance is the rest length of links.
	LinkDistance float64 `toml:"link-distance"`

	// LinkIterations is the number of link constraint passes per tick.
	LinkIterations int `toml:"link-iterations"`

	// ChargeStrength is the many-body strength; negative values repel.
	ChargeStrength float64 `toml:"charge-strength"`

	// Theta is the Barnes-Hut approximation criterion.
	Theta float64 `toml:"theta"`

	// DistanceMin floors the distance between bodies in the many-body force.
	DistanceMin float64 `toml:"distance-min"`

	// DistanceMax is the distance beyond which bodies do not interact;
	// zero means unbounded.
	DistanceMax float64 `toml:"distance-max"`

	// PositionStrength is the strength of the x and y forces toward the origin.
	PositionStrength float64 `toml:"position-strength"`

	// Center enables the centroid force that keeps the mean position at the origin.
	Center bool `toml:"center"`

	// Seed seeds the jiggle used to separate coincident nodes.
	Seed uint64 `toml:"seed"`
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.AlphaMin = 0.001
	p.AlphaDecay = 1 - math.Pow(p.AlphaMin, 1.0/300)
	p.VelocityDecay = 0.6
	p.LinkDistance = 30
	p.LinkIterations = 1
	p.ChargeStrength = -30
	p.Theta = 0.9
	p.DistanceMin = 1
	p.DistanceMax = 0
	p.PositionStrength = 0.1
	p.Center = true
	p.Seed = 1
}

// DefaultParams returns a new set of default parameters.
func DefaultParams() Params {
	p := Params{}
	p.Defaults()
	return p
}
