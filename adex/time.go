// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import "github.com/goki/ki/kit"

// adex.Context contains the timing state for running a simulation.
// Each Network or solo simulation owns its own Context -- there is no
// process-wide simulation state, so independent simulations can be advanced
// in any interleaving without coordination.
type Context struct {
	TimeMs   float32 `desc:"accumulated simulated time since last Reset, in ms"`
	Cycle    int     `desc:"cycle counter within the current RunStep call"`
	CycleTot int     `desc:"total cycle count since last Reset"`
	DtMs     float32 `def:"0.05,0.1" desc:"amount of simulated time per cycle, in ms"`
}

// NewContext returns a new Context with default parameters
func NewContext() *Context {
	ctx := &Context{}
	ctx.Defaults()
	return ctx
}

// Defaults sets default values
func (ctx *Context) Defaults() {
	ctx.DtMs = 0.05
}

// Reset resets the counters all back to zero
func (ctx *Context) Reset() {
	ctx.TimeMs = 0
	ctx.Cycle = 0
	ctx.CycleTot = 0
	if ctx.DtMs == 0 {
		ctx.Defaults()
	}
}

// StepStart resets the within-step cycle counter at the start of a RunStep
func (ctx *Context) StepStart() {
	ctx.Cycle = 0
}

// CycleInc increments at the cycle level
func (ctx *Context) CycleInc() {
	ctx.Cycle++
	ctx.CycleTot++
	ctx.TimeMs += ctx.DtMs
}

//////////////////////////////////////////////////////////////////////////////////////
//  IntegMeths

// IntegMeths are the numerical integration methods for the membrane and
// adaptation equations.  Synaptic currents always decay by exact exponential
// factors regardless of this setting.
type IntegMeths int

//go:generate stringer -type=IntegMeths

var KiT_IntegMeths = kit.Enums.AddEnum(IntegMethsN, kit.NotBitFlag, nil)

const (
	// Euler is simple forward euler: stable for single neurons at dt = 0.1 ms
	Euler IntegMeths = iota

	// ExpEuler is exponential euler: linear relaxation toward the
	// instantaneous equilibrium with the exponential term frozen at the
	// current V -- keeps network simulations stable at dt = 0.05 ms
	ExpEuler

	IntegMethsN
)
