// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"fmt"

	"github.com/chewxy/math32"
)

///////////////////////////////////////////////////////////////////////
//  solo.go contains the single-neuron simulations: the rate-matching
//  challenge (SoloSim) and the free parameter explorer (Explorer)

// SoloResults is the plain data returned from a solo-neuron RunStep:
// cumulative spike times and full per-step state traces since Setup,
// plus the trailing-window firing rate.  All values use interface units:
// ms, mV, pA, Hz.
type SoloResults struct {
	SpikeTimes []float32 `desc:"spike times in ms since Setup"`
	Voltage    []float32 `desc:"membrane potential in mV, sampled every integration step"`
	Recovery   []float32 `desc:"adaptation current in pA, sampled every integration step"`
	Time       []float32 `desc:"sample times in ms"`
	FiringRate float32   `desc:"firing rate in Hz over the trailing window"`
	TargetHz   float32   `desc:"target firing rate for the challenge, in Hz"`
	OnTarget   bool      `desc:"true if FiringRate is within 2 Hz of TargetHz"`
}

// SoloSim is the single-neuron rate-matching challenge: a regular-spiking
// AdEx neuron under adjustable constant current drive, with a target firing
// rate to hit.  Integrated with forward euler at dt = 0.1 ms; spikes are
// detected at a hard -20 mV threshold.
type SoloSim struct {
	Params   AdExParams   `view:"no-inline" desc:"neuron parameters -- the regular_spiking preset by default"`
	Neuron   Neuron       `desc:"the unit state"`
	TargetHz float32      `def:"10" desc:"target firing rate in Hz"`
	Input    float32      `desc:"external drive current in pA"`
	Ctx      Context      `desc:"simulation clock"`
	Spikes   SpikeMonitor `view:"-" desc:"accumulated spikes"`
	States   StateMonitor `view:"-" desc:"per-step voltage and adaptation trace"`
	RateWin  float32      `def:"500" desc:"trailing window for the firing rate readout, in ms"`
	IsSetup  bool         `inactive:"+" desc:"true once Setup has completed"`
}

// NewSoloSim returns a new solo simulation with the default 10 Hz target,
// unconfigured until Setup is called.
func NewSoloSim() *SoloSim {
	ss := &SoloSim{TargetHz: 10, RateWin: 500}
	return ss
}

// Setup initializes the neuron with regular-spiking parameters and the
// current input drive, and clears all monitors.
func (ss *SoloSim) Setup() {
	ss.Params.Defaults() // defaults = regular_spiking preset
	ss.Params.Dt.Ms = 0.1
	ss.Params.Dt.Method = Euler
	ss.Params.Update()
	ss.Ctx.DtMs = 0.1
	ss.Ctx.Reset()
	ss.Params.InitActs(&ss.Neuron)
	ss.Neuron.IExt = ss.Input
	ss.Spikes.Reset()
	ss.States.Reset()
	ss.IsSetup = true
}

// Reset discards all state and re-runs Setup.
func (ss *SoloSim) Reset() {
	ss.IsSetup = false
	ss.Setup()
}

// SetInputCurrent sets the external drive in pA, applied immediately to the
// live neuron -- takes effect from the next integration step.
func (ss *SoloSim) SetInputCurrent(pa float32) {
	ss.Input = pa
	ss.Neuron.IExt = pa
}

// cycle advances the neuron one step and records monitors
func (ss *SoloSim) cycle() {
	spiked := ss.Params.CycleNeuron(&ss.Neuron)
	ss.Ctx.CycleInc()
	if spiked {
		ss.Spikes.Add(0, ss.Ctx.TimeMs)
	}
	ss.States.Add(ss.Ctx.TimeMs, &ss.Neuron)
}

// FiringRate returns the firing rate in Hz over the trailing RateWin ms.
// Fewer than 2 spikes in the window yields 0.
func (ss *SoloSim) FiringRate() float32 {
	n := ss.Spikes.CountSince(ss.Ctx.TimeMs - ss.RateWin)
	if n < 2 {
		return 0
	}
	return float32(n) / (ss.RateWin * 0.001)
}

// RunStep advances the simulation by durMs of simulated time and returns the
// cumulative traces since Setup.  If Setup has not completed, returns the
// empty sentinel -- never an error.
func (ss *SoloSim) RunStep(durMs float32) *SoloResults {
	if !ss.IsSetup {
		return &SoloResults{
			SpikeTimes: []float32{},
			Voltage:    []float32{},
			Recovery:   []float32{},
			Time:       []float32{},
			TargetHz:   ss.TargetHz,
		}
	}
	ss.Ctx.StepStart()
	nsteps := int(durMs/ss.Ctx.DtMs + 0.5)
	for ci := 0; ci < nsteps; ci++ {
		ss.cycle()
	}
	rate := ss.FiringRate()
	return &SoloResults{
		SpikeTimes: ss.Spikes.Times(),
		Voltage:    ss.States.V,
		Recovery:   ss.States.W,
		Time:       ss.States.Times,
		FiringRate: rate,
		TargetHz:   ss.TargetHz,
		OnTarget:   math32.Abs(rate-ss.TargetHz) < 2,
	}
}

// Hint returns a guidance message for the given firing rate relative to the
// target.
func (ss *SoloSim) Hint(rate float32) string {
	switch {
	case rate == 0:
		return "The neuron is silent. Increase the input current to depolarize it!"
	case rate < ss.TargetHz-2:
		return fmt.Sprintf("Firing at %.1f Hz. Need more drive to reach %g Hz.", rate, ss.TargetHz)
	case rate > ss.TargetHz+2:
		return fmt.Sprintf("Firing at %.1f Hz. Too fast! Reduce the input slightly.", rate)
	default:
		return fmt.Sprintf("You got it! The neuron fires at ~%g Hz.", ss.TargetHz)
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  Explorer

// Explorer is the free-form single-neuron parameter explorer: a solo neuron
// whose full parameter set can be switched between named presets and mutated
// live, one parameter at a time, while it runs.
type Explorer struct {
	SoloSim
	Preset string `desc:"id of the currently selected preset"`
}

// NewExplorer returns a new explorer on the regular_spiking preset,
// unconfigured until Setup is called.
func NewExplorer() *Explorer {
	ex := &Explorer{}
	ex.Preset = "regular_spiking"
	ex.RateWin = 500
	return ex
}

// Setup initializes the neuron with the selected preset's parameters and
// clears all monitors.
func (ex *Explorer) Setup() {
	ex.SoloSim.Setup()
	if pr, ok := Presets[ex.Preset]; ok {
		pr.Apply(&ex.Params)
	}
}

// Reset discards all state and re-runs Setup with the selected preset.
func (ex *Explorer) Reset() {
	ex.IsSetup = false
	ex.Setup()
}

// SetPreset selects a named preset and applies its parameters to the live
// neuron.  Unknown names are ignored.  Returns true if the preset exists.
func (ex *Explorer) SetPreset(name string) bool {
	pr, ok := Presets[name]
	if !ok {
		return false
	}
	ex.Preset = name
	pr.Apply(&ex.Params)
	return true
}

// PresetInfo returns the current preset, or nil if unknown.
func (ex *Explorer) PresetInfo() *Preset {
	return Presets[ex.Preset]
}

// SetParameter sets one named parameter on the live neuron, taking effect
// from the next integration step.  Names follow the interface convention:
// a, b, V_r, tau_w, C, g_L, E_L, V_T, Delta_T.  Unknown names are ignored.
func (ex *Explorer) SetParameter(name string, val float32) {
	ap := &ex.Params
	switch name {
	case "a":
		ap.A = val
	case "b":
		ap.B = val
	case "V_r":
		ap.Vr = val
	case "tau_w":
		ap.TauW = val
	case "C":
		ap.C = val
	case "g_L":
		ap.GL = val
	case "E_L":
		ap.EL = val
	case "V_T":
		ap.VT = val
	case "Delta_T":
		ap.DeltaT = val
	default:
		return
	}
	ap.Update()
}

// RunStep advances the simulation by durMs and returns cumulative traces.
// The explorer has no target rate, so TargetHz / OnTarget are zero-valued.
func (ex *Explorer) RunStep(durMs float32) *SoloResults {
	res := ex.SoloSim.RunStep(durMs)
	res.TargetHz = 0
	res.OnTarget = false
	return res
}
