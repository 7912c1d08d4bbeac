// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-5)

func TestSynDecay(t *testing.T) {
	ap := AdExParams{}
	ap.Defaults()
	ap.Dt.Ms = 0.1
	ap.Update()

	nrn := &Neuron{}
	ap.InitActs(nrn)
	nrn.IExc = 100
	nrn.IInh = 50

	nsteps := 30
	for i := 0; i < nsteps; i++ {
		ap.SynDecay(nrn)
	}
	// decay factors are exact exponentials, so n steps = one big step
	elapsed := float32(nsteps) * ap.Dt.Ms
	corExc := 100 * math32.Exp(-elapsed/ap.TauExc)
	corInh := 50 * math32.Exp(-elapsed/ap.TauInh)
	if dif := math32.Abs(nrn.IExc - corExc); dif > difTol {
		t.Errorf("IExc err: iexc: %v, cor: %v, dif: %v\n", nrn.IExc, corExc, dif)
	}
	if dif := math32.Abs(nrn.IInh - corInh); dif > difTol {
		t.Errorf("IInh err: iinh: %v, cor: %v, dif: %v\n", nrn.IInh, corInh, dif)
	}
}

func TestExpCurrentClip(t *testing.T) {
	ap := AdExParams{}
	ap.Defaults()

	// above the clip point the exponential term must saturate, not overflow
	hi := ap.ExpCurrent(ap.VT + 25*ap.DeltaT)
	vhi := ap.ExpCurrent(ap.VT + 1000*ap.DeltaT)
	if hi != vhi {
		t.Errorf("exp current not clipped: at +25dT: %v, at +1000dT: %v\n", hi, vhi)
	}
	if math32.IsNaN(vhi) || math32.IsInf(vhi, 1) {
		t.Errorf("exp current overflowed: %v\n", vhi)
	}
	// well below threshold the term is negligible relative to leak scale
	lo := ap.ExpCurrent(ap.EL)
	if lo > 1 {
		t.Errorf("exp current too large at rest: %v\n", lo)
	}
}

func TestSpikeReset(t *testing.T) {
	ap := AdExParams{}
	ap.Defaults()
	ap.Refrac = 2
	ap.Update()

	nrn := &Neuron{}
	ap.InitActs(nrn)
	nrn.W = 10
	nrn.V = ap.Thr + 1

	if !ap.SpikeFmVm(nrn) {
		t.Errorf("no spike at V = %v >= Thr = %v\n", nrn.V, ap.Thr)
	}
	if nrn.Spike != 1 {
		t.Errorf("Spike flag not set\n")
	}
	if nrn.V != ap.Vr {
		t.Errorf("V not reset: v: %v, vr: %v\n", nrn.V, ap.Vr)
	}
	if dif := math32.Abs(nrn.W - (10 + ap.B)); dif > difTol {
		t.Errorf("W increment err: w: %v, cor: %v\n", nrn.W, 10+ap.B)
	}
	if nrn.RefracT != ap.Refrac {
		t.Errorf("refractory not started: refract: %v\n", nrn.RefracT)
	}

	// detection is suppressed while refractory even above threshold
	nrn.V = ap.Thr + 5
	if ap.SpikeFmVm(nrn) {
		t.Errorf("spike during refractory period\n")
	}
	if nrn.V != ap.Thr+5 {
		t.Errorf("V altered during refractory suppression: %v\n", nrn.V)
	}
	if nrn.RefracT >= ap.Refrac {
		t.Errorf("refractory time not counting down: %v\n", nrn.RefracT)
	}
}

func TestSubthresholdEquilibrium(t *testing.T) {
	ap := AdExParams{}
	ap.Defaults()
	ap.Dt.Ms = 0.1
	ap.Update()

	nrn := &Neuron{}
	ap.InitActs(nrn)
	nrn.IExt = 100 // below rheobase for the default cell

	nspk := 0
	for i := 0; i < 20000; i++ { // 2000 ms
		if ap.CycleNeuron(nrn) {
			nspk++
		}
	}
	if nspk != 0 {
		t.Errorf("spiked %v times below rheobase\n", nspk)
	}
	// at equilibrium V is above rest, below soft threshold, and Inet is ~0
	if nrn.V <= ap.EL || nrn.V >= ap.VT {
		t.Errorf("equilibrium V out of range: %v\n", nrn.V)
	}
	if math32.Abs(nrn.Inet) > 0.1 {
		t.Errorf("Inet not settled: %v\n", nrn.Inet)
	}
	// W settled at A * (V - EL)
	corw := ap.A * (nrn.V - ap.EL)
	if dif := math32.Abs(nrn.W - corw); dif > 0.1 {
		t.Errorf("W equilibrium err: w: %v, cor: %v\n", nrn.W, corw)
	}
}

func TestTonicISI(t *testing.T) {
	ap := AdExParams{}
	ap.Defaults()
	Presets["tonic"].Apply(&ap)
	ap.Dt.Ms = 0.1
	ap.Dt.Method = Euler
	ap.Update()

	nrn := &Neuron{}
	ap.InitActs(nrn)
	nrn.IExt = 500

	var spks []float32
	tm := float32(0)
	for i := 0; i < 20000; i++ { // 2000 ms
		tm += ap.Dt.Ms
		if ap.CycleNeuron(nrn) {
			spks = append(spks, tm)
		}
	}
	if len(spks) < 10 {
		t.Fatalf("tonic cell fired only %v spikes\n", len(spks))
	}
	// after the initial transient the ISI is constant
	isis := make([]float32, 0, 5)
	for i := len(spks) - 5; i < len(spks); i++ {
		isis = append(isis, spks[i]-spks[i-1])
	}
	for _, isi := range isis {
		if dif := math32.Abs(isi - isis[0]); dif > 0.05*isis[0]+2*ap.Dt.Ms {
			t.Errorf("tonic ISI not constant: %v vs %v\n", isi, isis[0])
		}
	}
}

func TestExpEulerStability(t *testing.T) {
	// exponential euler stays bounded at the network step size even for the
	// fast PV cell under strong drive
	ap := PVCellParams()
	nrn := &Neuron{}
	ap.InitActs(nrn)
	nrn.IExt = 600

	nspk := 0
	for i := 0; i < 40000; i++ { // 2000 ms at dt = 0.05
		if ap.CycleNeuron(nrn) {
			nspk++
		}
		if math32.IsNaN(nrn.V) || math32.Abs(nrn.V) > 200 {
			t.Fatalf("V diverged at step %v: %v\n", i, nrn.V)
		}
	}
	if nspk == 0 {
		t.Errorf("PV cell silent under strong drive\n")
	}
}

func TestNeuronVars(t *testing.T) {
	nrn := &Neuron{}
	nrn.V = -65
	nrn.W = 42
	nrn.Spike = 1

	v, err := nrn.VarByName("V")
	if err != nil || v != -65 {
		t.Errorf("VarByName V: %v, err: %v\n", v, err)
	}
	w, err := nrn.VarByName("W")
	if err != nil || w != 42 {
		t.Errorf("VarByName W: %v, err: %v\n", w, err)
	}
	if _, err := nrn.VarByName("Bogus"); err == nil {
		t.Errorf("no error for unknown var name\n")
	}
	for i, nm := range NeuronVars {
		bv, err := nrn.VarByName(nm)
		if err != nil {
			t.Errorf("VarByName %v err: %v\n", nm, err)
		}
		if iv := nrn.VarByIndex(i); iv != bv {
			t.Errorf("VarByIndex %v: %v != VarByName: %v\n", i, iv, bv)
		}
	}
}

func TestPresets(t *testing.T) {
	if len(PresetNames) != len(Presets) {
		t.Errorf("PresetNames has %v entries, Presets has %v\n", len(PresetNames), len(Presets))
	}
	for _, nm := range PresetNames {
		pr, ok := Presets[nm]
		if !ok {
			t.Errorf("preset %v in PresetNames but not in Presets\n", nm)
			continue
		}
		if pr.Name == "" || pr.Desc == "" {
			t.Errorf("preset %v missing name or description\n", nm)
		}
	}
	// applying a preset leaves synaptic and integration params untouched
	ap := AdExParams{}
	ap.Defaults()
	ap.TauExc = 7
	ap.Dt.Ms = 0.025
	ap.Update()
	Presets["bursting"].Apply(&ap)
	if ap.TauExc != 7 || ap.Dt.Ms != 0.025 {
		t.Errorf("preset Apply modified synaptic / integration params\n")
	}
	if ap.Vr != -46 || ap.A != -0.5 {
		t.Errorf("bursting preset not applied: vr: %v, a: %v\n", ap.Vr, ap.A)
	}
}
