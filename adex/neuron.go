// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"fmt"
	"unsafe"
)

// adex.Neuron holds the state variables for one AdEx unit.
// All variables are float32 and are accessible by name through the
// NeuronVars mechanism for monitoring / display purposes.
type Neuron struct {
	V       float32 `desc:"membrane potential in mV"`
	W       float32 `desc:"adaptation current in pA"`
	IExc    float32 `desc:"excitatory synaptic current in pA, decays with TauExc"`
	IInh    float32 `desc:"inhibitory synaptic current in pA, decays with TauInh"`
	IExt    float32 `desc:"external drive current in pA -- set by the caller, not integrated"`
	Inet    float32 `desc:"net current in pA from the last integration step"`
	Spike   float32 `desc:"1 if the neuron spiked on the last step, 0 otherwise"`
	RefracT float32 `desc:"remaining absolute refractory time in ms -- 0 when not refractory"`
}

// NeuronVars are the names of the neuron variables, in field order.
var NeuronVars = []string{"V", "W", "IExc", "IInh", "IExt", "Inet", "Spike", "RefracT"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

// VarNames returns the names of all the neuron variables
func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the Neuron, or error
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	fv := (*float32)(unsafe.Pointer(uintptr(unsafe.Pointer(nrn)) + uintptr(4*idx)))
	return *fv
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return 0, err
	}
	return nrn.VarByIndex(i), nil
}
