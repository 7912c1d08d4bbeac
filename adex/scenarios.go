// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import "github.com/goki/ki/kit"

///////////////////////////////////////////////////////////////////////
//  scenarios.go contains the declarative descriptors for the three
//  built-in network scenarios, and the cell-type parameter builders.
//  All constants here are part of the engine's external contract.

// ScenTypes are the built-in network scenarios.
type ScenTypes int

//go:generate stringer -type=ScenTypes

var KiT_ScenTypes = kit.Enums.AddEnum(ScenTypesN, kit.NotBitFlag, nil)

const (
	// GammaScen is the two-population mutual excitatory / fast-spiking
	// inhibitory loop producing gamma-band (30-80 Hz) oscillations
	GammaScen ScenTypes = iota

	// ThetaScen is the two-population excitatory / slow-adapting
	// inhibitory loop producing theta-band (4-8 Hz) oscillations
	ThetaScen

	// CoupledScen is the three-population network combining both
	// inhibitory types, with a direct slow-to-fast inhibitory projection,
	// producing coupled theta-gamma rhythms
	CoupledScen

	ScenTypesN
)

//////////////////////////////////////////////////////////////////////////////////////
//  Cell types

// ECellParams returns the AdEx parameters for excitatory pyramidal cells in
// network scenarios (membrane time constant 15 ms, resistance 100 MOhm).
func ECellParams() AdExParams {
	ap := AdExParams{}
	ap.Defaults()
	ap.C = 150
	ap.GL = 10
	ap.EL = -70
	ap.VT = -50
	ap.DeltaT = 2
	ap.Thr = -40
	ap.Vr = -70 // resets to rest
	ap.A = 1
	ap.B = 30
	ap.TauW = 80
	ap.TauExc = 3
	ap.TauInh = 6
	ap.Refrac = 1.5
	ap.Dt.Ms = 0.05
	ap.Dt.Method = ExpEuler
	ap.Update()
	return ap
}

// PVCellParams returns the AdEx parameters for fast-spiking PV interneurons:
// fast membrane (5 ms), depolarized rest, sharp spike initiation, no
// adaptation, short refractory -- sustains very high firing rates.
func PVCellParams() AdExParams {
	ap := AdExParams{}
	ap.Defaults()
	ap.C = 50
	ap.GL = 10
	ap.EL = -60
	ap.VT = -52
	ap.DeltaT = 0.5
	ap.Thr = -45
	ap.Vr = -60
	ap.A = 0
	ap.B = 0
	ap.TauW = 50
	ap.TauExc = 1
	ap.TauInh = 2
	ap.Refrac = 0.5
	ap.Dt.Ms = 0.05
	ap.Dt.Method = ExpEuler
	ap.Update()
	return ap
}

// SOMCellParams returns the AdEx parameters for low-threshold-spiking SOM
// interneurons: slow membrane (20 ms), strong slow adaptation, slow synapses.
func SOMCellParams() AdExParams {
	ap := AdExParams{}
	ap.Defaults()
	ap.C = 200
	ap.GL = 10
	ap.EL = -70
	ap.VT = -52
	ap.DeltaT = 2
	ap.Thr = -40
	ap.Vr = -70
	ap.A = 2
	ap.B = 150
	ap.TauW = 200
	ap.TauExc = 8
	ap.TauInh = 30
	ap.Refrac = 3
	ap.Dt.Ms = 0.05
	ap.Dt.Method = ExpEuler
	ap.Update()
	return ap
}

//////////////////////////////////////////////////////////////////////////////////////
//  Scenario descriptors

// PopSpec describes one population in a scenario: its cell type, size, and
// external drive, plus the option names that override the defaults in Setup.
type PopSpec struct {
	Name     string            `desc:"population name"`
	N        int               `desc:"default number of units"`
	Params   func() AdExParams `view:"-" desc:"cell-type parameter builder"`
	Drive    float32           `desc:"default base external drive in pA"`
	DriveSig float64           `desc:"standard deviation of the fixed per-unit drive offsets in pA"`
	NOpt     string            `desc:"setup option name overriding N"`
	DriveOpt string            `desc:"setup option name overriding Drive"`
}

// PrjnSpec describes one projection in a scenario, with the option names
// that override its weight and connection probability in Setup.
type PrjnSpec struct {
	Send    string   `desc:"sending population name"`
	Recv    string   `desc:"receiving population name"`
	PCon    float32  `desc:"default connection probability per ordered unit pair"`
	Wt      float32  `desc:"default synaptic weight in pA"`
	Chan    SynChans `desc:"target channel on receiving units"`
	WtOpt   string   `desc:"setup option name overriding Wt"`
	PConOpt string   `desc:"setup option name overriding PCon"`
}

// ScenSpec is the full declarative description of a network scenario:
// which populations, how they are wired, and the default parameter table.
type ScenSpec struct {
	Name  string     `desc:"scenario name"`
	Desc  string     `desc:"what rhythm this scenario produces"`
	Pops  []PopSpec  `desc:"populations, in build order"`
	Prjns []PrjnSpec `desc:"projections wiring the populations"`
}

// Scenarios are the built-in scenario descriptors, keyed by type.
var Scenarios = map[ScenTypes]*ScenSpec{
	GammaScen: {
		Name: "Gamma",
		Desc: "E-PV loop: pyramidal cells recruit fast-spiking inhibition that gates them rhythmically at gamma frequency (30-80 Hz)",
		Pops: []PopSpec{
			{Name: "E", N: 400, Params: ECellParams, Drive: 220, DriveSig: 20, NOpt: "n_exc", DriveOpt: "input_drive_E"},
			{Name: "PV", N: 80, Params: PVCellParams, Drive: 0, DriveSig: 15, NOpt: "n_pv", DriveOpt: "input_drive_PV"},
		},
		Prjns: []PrjnSpec{
			{Send: "E", Recv: "E", PCon: 0.1, Wt: 8, Chan: Exc, WtOpt: "J_EE", PConOpt: "p_EE"},
			{Send: "E", Recv: "PV", PCon: 0.3, Wt: 30, Chan: Exc, WtOpt: "J_EPV", PConOpt: "p_EPV"},
			{Send: "PV", Recv: "E", PCon: 0.4, Wt: 35, Chan: Inh, WtOpt: "J_PVE", PConOpt: "p_PVE"},
			{Send: "PV", Recv: "PV", PCon: 0.35, Wt: 20, Chan: Inh, WtOpt: "J_PVPV", PConOpt: "p_PVPV"},
		},
	},
	ThetaScen: {
		Name: "Theta",
		Desc: "E-SOM loop: slow adapting inhibition paces pyramidal cells at theta frequency (4-8 Hz)",
		Pops: []PopSpec{
			{Name: "E", N: 400, Params: ECellParams, Drive: 250, DriveSig: 20, NOpt: "n_exc", DriveOpt: "input_drive_E"},
			{Name: "SOM", N: 80, Params: SOMCellParams, Drive: 0, DriveSig: 10, NOpt: "n_som", DriveOpt: "input_drive_SOM"},
		},
		Prjns: []PrjnSpec{
			{Send: "E", Recv: "E", PCon: 0.1, Wt: 8, Chan: Exc, WtOpt: "J_EE", PConOpt: "p_EE"},
			{Send: "E", Recv: "SOM", PCon: 0.35, Wt: 30, Chan: Exc, WtOpt: "J_ESOM", PConOpt: "p_ESOM"},
			{Send: "SOM", Recv: "E", PCon: 0.35, Wt: 45, Chan: Inh, WtOpt: "J_SOME", PConOpt: "p_SOME"},
		},
	},
	CoupledScen: {
		Name: "Coupled",
		Desc: "E-PV-SOM network: both inhibitory loops plus SOM-to-PV inhibition, producing nested theta-gamma rhythms",
		Pops: []PopSpec{
			{Name: "E", N: 400, Params: ECellParams, Drive: 220, DriveSig: 20, NOpt: "n_exc", DriveOpt: "input_drive_E"},
			{Name: "PV", N: 80, Params: PVCellParams, Drive: 0, DriveSig: 15, NOpt: "n_pv", DriveOpt: "input_drive_PV"},
			{Name: "SOM", N: 80, Params: SOMCellParams, Drive: 0, DriveSig: 10, NOpt: "n_som", DriveOpt: "input_drive_SOM"},
		},
		Prjns: []PrjnSpec{
			{Send: "E", Recv: "E", PCon: 0.1, Wt: 8, Chan: Exc, WtOpt: "J_EE", PConOpt: "p_EE"},
			{Send: "E", Recv: "PV", PCon: 0.3, Wt: 30, Chan: Exc, WtOpt: "J_EPV", PConOpt: "p_EPV"},
			{Send: "E", Recv: "SOM", PCon: 0.35, Wt: 30, Chan: Exc, WtOpt: "J_ESOM", PConOpt: "p_ESOM"},
			{Send: "PV", Recv: "E", PCon: 0.4, Wt: 35, Chan: Inh, WtOpt: "J_PVE", PConOpt: "p_PVE"},
			{Send: "SOM", Recv: "E", PCon: 0.3, Wt: 40, Chan: Inh, WtOpt: "J_SOME", PConOpt: "p_SOME"},
			{Send: "SOM", Recv: "PV", PCon: 0.35, Wt: 20, Chan: Inh, WtOpt: "J_SOMPV", PConOpt: "p_SOMPV"},
			{Send: "PV", Recv: "PV", PCon: 0.35, Wt: 20, Chan: Inh, WtOpt: "J_PVPV", PConOpt: "p_PVPV"},
		},
	},
}
