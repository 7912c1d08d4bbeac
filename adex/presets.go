// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

///////////////////////////////////////////////////////////////////////
//  presets.go contains the named single-neuron parameter presets that
//  map parameter regimes onto characteristic firing patterns

// Preset is a named set of AdEx cell-body parameters producing a
// characteristic firing pattern.  Synaptic and integration parameters are
// not part of a preset and are left untouched when one is applied.
type Preset struct {
	Name string  `desc:"display name"`
	Desc string  `desc:"one-line description of the firing pattern"`
	C    float32 `desc:"membrane capacitance in pF"`
	GL   float32 `desc:"leak conductance in nS"`
	EL   float32 `desc:"leak reversal potential in mV"`
	VT   float32 `desc:"soft spike-initiation threshold in mV"`
	DT   float32 `desc:"spike-initiation slope factor in mV"`
	Vr   float32 `desc:"post-spike reset potential in mV"`
	A    float32 `desc:"subthreshold adaptation coupling in nS"`
	B    float32 `desc:"spike-triggered adaptation increment in pA"`
	TauW float32 `desc:"adaptation time constant in ms"`
}

// Apply sets the preset's values on the given params and updates them.
func (pr *Preset) Apply(ap *AdExParams) {
	ap.C = pr.C
	ap.GL = pr.GL
	ap.EL = pr.EL
	ap.VT = pr.VT
	ap.DeltaT = pr.DT
	ap.Vr = pr.Vr
	ap.A = pr.A
	ap.B = pr.B
	ap.TauW = pr.TauW
	ap.Update()
}

// Presets are the named single-neuron parameter presets, keyed by id.
var Presets = map[string]*Preset{
	"regular_spiking": {
		Name: "Regular Spiking (Excitatory)",
		Desc: "Pyramidal neuron.",
		C:    200, GL: 10, EL: -70, VT: -50, DT: 2, Vr: -58, A: 2, B: 100, TauW: 120,
	},
	"fast_spiking": {
		Name: "Fast Spiking (PV Interneuron)",
		Desc: "PV interneuron. No adaptation, can sustain very high firing rates.",
		C:    150, GL: 10, EL: -70, VT: -50, DT: 0.5, Vr: -58, A: 0, B: 0, TauW: 10,
	},
	"low_threshold": {
		Name: "Low-Threshold Spiking (SOM Interneuron)",
		Desc: "SOM interneuron. Strong adaptation, and slow decay.",
		C:    200, GL: 10, EL: -70, VT: -55, DT: 2, Vr: -60, A: 4, B: 150, TauW: 300,
	},
	"tonic": {
		Name: "Tonic Spiking",
		Desc: "Sustained regular firing with no adaptation. Constant ISI.",
		C:    200, GL: 10, EL: -70, VT: -50, DT: 2, Vr: -55, A: 0, B: 60, TauW: 30,
	},
	"adapting": {
		Name: "Adapting",
		Desc: "Starts fast, gradually slows down. Classic spike-frequency adaptation.",
		C:    200, GL: 10, EL: -70, VT: -50, DT: 2, Vr: -55, A: 0, B: 50, TauW: 100,
	},
	"initial_burst": {
		Name: "Initial Bursting",
		Desc: "Fires a burst at stimulus onset, then regular spikes.",
		C:    100, GL: 20, EL: -70, VT: -50, DT: 2, Vr: -51, A: 0.5, B: 70, TauW: 100,
	},
	"bursting": {
		Name: "Bursting",
		Desc: "Rhythmic bursts of spikes.",
		C:    100, GL: 20, EL: -70, VT: -50, DT: 2, Vr: -46, A: -0.5, B: 70, TauW: 100,
	},
	"irregular": {
		Name: "Irregular Spiking",
		Desc: "Chaotic-like firing with variable ISIs.",
		C:    99, GL: 10, EL: -70, VT: -50, DT: 2, Vr: -46, A: -0.5, B: 70, TauW: 100,
	},
	"intrinsically_bursting": {
		Name: "Intrinsically Bursting",
		Desc: "Layer 5 pyramidal. Fires bursts of 2-4 spikes.",
		C:    200, GL: 10, EL: -70, VT: -50, DT: 2, Vr: -46, A: 2, B: 40, TauW: 100,
	},
}

// PresetNames lists the presets in menu order.
var PresetNames = []string{
	"regular_spiking",
	"fast_spiking",
	"low_threshold",
	"tonic",
	"adapting",
	"initial_burst",
	"bursting",
	"irregular",
	"intrinsically_bursting",
}

// ParamDescs describe the role of each explorer-adjustable parameter,
// keyed by the interface parameter name.
var ParamDescs = map[string]string{
	"a": "Subthreshold adaptation (nS): How adaptation current tracks voltage below threshold. " +
		"Higher = more subthreshold adaptation.",
	"b": "Spike-triggered adaptation (pA): How much adaptation increases after each spike. " +
		"Higher = stronger spike frequency adaptation.",
	"V_r": "Reset voltage (mV): Where voltage resets after spike. " +
		"Higher (closer to threshold) = easier to fire again = bursting.",
	"tau_w": "Adaptation time constant (ms): How fast adaptation decays. " +
		"Longer = sustained adaptation effect.",
}
