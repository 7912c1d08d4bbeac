// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

// adex.Pop is a homogeneous population of AdEx neurons: all units share one
// parameter set and differ only in their randomized initial state, their
// fixed per-unit drive offset, and their noise realization.
type Pop struct {
	Name     string       `desc:"name of the population, e.g., E, PV, SOM"`
	Params   AdExParams   `view:"no-inline" desc:"neuron parameters shared by all units"`
	Init     InitParams   `view:"inline" desc:"initial-state randomization parameters"`
	Drive    float32      `desc:"base external drive current in pA -- per-unit offsets are added on top"`
	Neurons  []Neuron     `view:"-" desc:"per-unit state"`
	DriveOff []float32    `view:"-" desc:"fixed per-unit drive offsets in pA, drawn at InitState"`
	Spikes   SpikeMonitor `view:"-" desc:"accumulated spike events"`
	Rates    RateMonitor  `view:"-" desc:"per-step instantaneous rate trace"`
	RateWin  float32      `def:"500" desc:"trailing window for the scalar FiringRate readout, in ms"`
}

// NewPop returns a new population with the given name and number of units,
// with default parameters, unbuilt until Build is called.
func NewPop(name string, n int) *Pop {
	pp := &Pop{Name: name}
	pp.Params.Defaults()
	pp.Init.Defaults()
	pp.RateWin = 500
	pp.Build(n)
	return pp
}

// Build allocates unit state for n units.  InitState must be called before
// running.
func (pp *Pop) Build(n int) {
	pp.Neurons = make([]Neuron, n)
	pp.DriveOff = make([]float32, n)
}

// N returns the number of units
func (pp *Pop) N() int {
	return len(pp.Neurons)
}

// InitState initializes all unit state: V = EL plus gaussian noise, W and
// synaptic currents zero, and external drive = Drive plus a fixed per-unit
// gaussian offset drawn here.  Also clears the monitors.
func (pp *Pop) InitState() {
	for i := range pp.Neurons {
		nrn := &pp.Neurons[i]
		pp.Params.InitActs(nrn)
		nrn.V += float32(pp.Init.Vm.Gen(-1))
		pp.DriveOff[i] = float32(pp.Init.Drive.Gen(-1))
		nrn.IExt = pp.Drive + pp.DriveOff[i]
	}
	pp.Spikes.Reset()
	pp.Rates.Reset()
}

// SetDrive sets the base external drive, applied immediately to all units
// on top of their fixed offsets -- takes effect from the next cycle.
func (pp *Pop) SetDrive(drive float32) {
	pp.Drive = drive
	for i := range pp.Neurons {
		pp.Neurons[i].IExt = drive + pp.DriveOff[i]
	}
}

// Cycle advances every unit by one integration step, records spikes into the
// spike monitor, and appends the instantaneous population rate sample.
// Synaptic delivery for this cycle must already have happened.
func (pp *Pop) Cycle(ctx *Context) {
	nspk := 0
	for i := range pp.Neurons {
		if pp.Params.CycleNeuron(&pp.Neurons[i]) {
			pp.Spikes.Add(int32(i), ctx.TimeMs)
			nspk++
		}
	}
	rate := float32(0)
	if len(pp.Neurons) > 0 {
		rate = float32(nspk) / (float32(len(pp.Neurons)) * ctx.DtMs * 0.001)
	}
	pp.Rates.Add(ctx.TimeMs, rate)
}

// FiringRate returns the mean per-neuron firing rate in Hz over the trailing
// RateWin ms ending at the given time.  Fewer than 2 spikes in the window
// yields 0.
func (pp *Pop) FiringRate(now float32) float32 {
	if len(pp.Neurons) == 0 {
		return 0
	}
	win := pp.RateWin
	n := pp.Spikes.CountSince(now - win)
	if n < 2 {
		return 0
	}
	return float32(n) / (win * 0.001 * float32(len(pp.Neurons)))
}
