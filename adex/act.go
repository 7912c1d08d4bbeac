// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/minmax"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the AdEx neuron params and update functions

// AdExParams are the parameters for the adaptive exponential integrate-and-fire
// (AdEx) neuron model, including synaptic current time constants and the
// spike / reset rule.  One copy is shared by all units in a Pop.
// Units are pF, nS, mV, pA, ms throughout -- this system is self-consistent
// (pF * mV / ms = pA, nS * mV = pA) so no unit conversion happens anywhere.
type AdExParams struct {
	C      float32 `def:"200" min:"1" desc:"membrane capacitance in pF"`
	GL     float32 `def:"10" desc:"leak conductance in nS -- reciprocal of membrane resistance"`
	EL     float32 `def:"-70" desc:"leak reversal (resting) potential in mV"`
	VT     float32 `def:"-50" desc:"soft spike-initiation threshold in mV where the exponential term engages -- not the spike detection voltage, see Thr"`
	DeltaT float32 `def:"2" desc:"slope factor in mV governing the sharpness of spike initiation"`
	Thr    float32 `def:"-20" desc:"hard spike-detection voltage in mV -- crossing this triggers the spike / reset rule"`
	Vr     float32 `def:"-58" desc:"post-spike reset potential in mV"`
	A      float32 `def:"2" desc:"subthreshold adaptation coupling in nS -- drives adaptation current toward A * (V - EL)"`
	B      float32 `def:"100" desc:"spike-triggered adaptation increment in pA, added to W at each spike"`
	TauW   float32 `def:"120" desc:"adaptation current time constant in ms"`
	TauExc float32 `def:"3" desc:"excitatory synaptic current decay time constant in ms"`
	TauInh float32 `def:"6" desc:"inhibitory synaptic current decay time constant in ms"`
	Refrac float32 `def:"0" desc:"absolute refractory duration in ms -- spike detection is suppressed for this long after each spike"`

	ExpArg minmax.F32 `view:"-" json:"-" xml:"-" desc:"clipping range for the exponential term argument -- required for numeric stability when V transiently exceeds threshold, not a physiological feature"`
	Dt     DtParams   `view:"inline" desc:"integration step size and method"`

	ExcDk float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"per-step excitatory current decay factor = exp(-dt / TauExc)"`
	InhDk float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"per-step inhibitory current decay factor = exp(-dt / TauInh)"`
	WDt   float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"per-step adaptation integration factor for exponential euler = 1 - exp(-dt / TauW)"`
	VmDt  float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"per-step membrane integration factor for exponential euler = 1 - exp(-dt * GL / C)"`
}

func (ap *AdExParams) Defaults() {
	// regular-spiking pyramidal cell values (the regular_spiking preset)
	ap.C = 200
	ap.GL = 10
	ap.EL = -70
	ap.VT = -50
	ap.DeltaT = 2
	ap.Thr = -20
	ap.Vr = -58
	ap.A = 2
	ap.B = 100
	ap.TauW = 120
	ap.TauExc = 3
	ap.TauInh = 6
	ap.Refrac = 0
	ap.ExpArg.Set(-20, 20)
	ap.Dt.Defaults()
	ap.Update()
}

// Update must be called after any changes to parameters
func (ap *AdExParams) Update() {
	ap.Dt.Update()
	ap.ExcDk = mat32.Exp(-ap.Dt.Ms / ap.TauExc)
	ap.InhDk = mat32.Exp(-ap.Dt.Ms / ap.TauInh)
	ap.WDt = 1 - mat32.Exp(-ap.Dt.Ms/ap.TauW)
	ap.VmDt = 1 - mat32.Exp(-ap.Dt.Ms*ap.GL/ap.C)
}

///////////////////////////////////////////////////////////////////////
//  Init

// InitActs initializes the neuron state to resting values: V = EL, everything
// else zero.  Population-level noise is added on top of this by Pop.InitState.
func (ap *AdExParams) InitActs(nrn *Neuron) {
	nrn.V = ap.EL
	nrn.W = 0
	nrn.IExc = 0
	nrn.IInh = 0
	nrn.IExt = 0
	nrn.Inet = 0
	nrn.Spike = 0
	nrn.RefracT = 0
}

///////////////////////////////////////////////////////////////////////
//  Cycle

// ExpCurrent returns the exponential spike-initiation current
// GL * DeltaT * exp((v - VT) / DeltaT) with the exponent argument clipped
// to ExpArg range to prevent overflow above threshold.
func (ap *AdExParams) ExpCurrent(v float32) float32 {
	return ap.GL * ap.DeltaT * mat32.FastExp(ap.ExpArg.ClipVal((v-ap.VT)/ap.DeltaT))
}

// VmFmState computes the new membrane potential from the current state,
// using the method selected in Dt.  The exponential term is evaluated at the
// current V in both cases; exponential euler treats the remaining dynamics as
// linear relaxation toward the instantaneous equilibrium, which stays stable
// at network step sizes where forward euler does not.
func (ap *AdExParams) VmFmState(nrn *Neuron) {
	idrive := ap.ExpCurrent(nrn.V) + nrn.IExt + nrn.IExc - nrn.IInh - nrn.W
	nrn.Inet = -ap.GL*(nrn.V-ap.EL) + idrive
	switch ap.Dt.Method {
	case ExpEuler:
		vinf := ap.EL + idrive/ap.GL
		nrn.V += (vinf - nrn.V) * ap.VmDt
	default:
		nrn.V += ap.Dt.Ms * nrn.Inet / ap.C
	}
}

// WFmV integrates the adaptation current toward A * (V - EL).
func (ap *AdExParams) WFmV(nrn *Neuron) {
	winf := ap.A * (nrn.V - ap.EL)
	switch ap.Dt.Method {
	case ExpEuler:
		nrn.W += (winf - nrn.W) * ap.WDt
	default:
		nrn.W += ap.Dt.Ms * (winf - nrn.W) / ap.TauW
	}
}

// SynDecay applies exponential decay to the synaptic currents.
// The decay factors are exact, so this is stable for any step size.
func (ap *AdExParams) SynDecay(nrn *Neuron) {
	nrn.IExc *= ap.ExcDk
	nrn.IInh *= ap.InhDk
}

// SpikeFmVm applies the spike detection / reset rule: if V has reached Thr,
// set V to Vr, increment W by B, and start the refractory period.
// During the refractory period detection is suppressed and integration
// continues normally.  Returns true if the neuron spiked on this step.
func (ap *AdExParams) SpikeFmVm(nrn *Neuron) bool {
	if nrn.RefracT > 0 {
		nrn.RefracT = mat32.Max(nrn.RefracT-ap.Dt.Ms, 0)
		nrn.Spike = 0
		return false
	}
	if nrn.V < ap.Thr {
		nrn.Spike = 0
		return false
	}
	nrn.Spike = 1
	nrn.V = ap.Vr
	nrn.W += ap.B
	nrn.RefracT = ap.Refrac
	return true
}

// CycleNeuron advances the neuron by one Dt.Ms step: membrane and adaptation
// integration using the start-of-step synaptic currents, then synaptic decay,
// then the spike / reset rule.  Synaptic input delivered by projections for
// this step must be added to IExc / IInh before calling this.
// Returns true if the neuron spiked.
func (ap *AdExParams) CycleNeuron(nrn *Neuron) bool {
	ap.VmFmState(nrn)
	ap.WFmV(nrn)
	ap.SynDecay(nrn)
	return ap.SpikeFmVm(nrn)
}

//////////////////////////////////////////////////////////////////////////////////////
//  DtParams

// DtParams are time integration parameters: step size and method.
type DtParams struct {
	Ms     float32    `def:"0.05,0.1" min:"0.001" desc:"integration step size in ms -- 0.1 is stable for single neurons with forward euler, networks use 0.05 with exponential euler"`
	Method IntegMeths `desc:"integration method for the membrane and adaptation equations"`
}

func (dp *DtParams) Defaults() {
	dp.Ms = 0.1
	dp.Method = Euler
}

func (dp *DtParams) Update() {
	if dp.Ms <= 0 {
		dp.Ms = 0.1
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  InitParams

// InitParams parameterize the per-unit randomization applied when a Pop is
// (re)initialized.  The heterogeneity is intentional: it desynchronizes units
// so collective dynamics are emergent rather than artificially uniform.
type InitParams struct {
	Vm    erand.RndParams `view:"inline" desc:"noise added to the initial membrane potential, in mV (gaussian, sd 3 by default)"`
	Drive erand.RndParams `view:"inline" desc:"fixed per-unit offset added to the base external drive, in pA (gaussian, sd per population role)"`
}

func (ip *InitParams) Defaults() {
	ip.Vm.Dist = erand.Gaussian
	ip.Vm.Mean = 0
	ip.Vm.Var = 3
	ip.Drive.Dist = erand.Gaussian
	ip.Drive.Mean = 0
	ip.Drive.Var = 20
}

func (ip *InitParams) Update() {
}
