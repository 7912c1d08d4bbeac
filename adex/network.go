// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/c2h5oh/datasize"
)

// adex.Network is the generic scenario engine: it builds populations and
// projections from a declarative ScenSpec, advances them in lockstep, and
// accumulates spike and rate monitors.  All state, including the random
// topology and the simulation clock, is owned by the instance -- independent
// networks can run side by side without coordination.
type Network struct {
	Spec    *ScenSpec       `desc:"scenario descriptor this network was built from"`
	Pops    []*Pop          `desc:"populations, in spec order"`
	PopMap  map[string]*Pop `view:"-" desc:"populations by name"`
	Prjns   []*Prjn         `desc:"projections, in spec order"`
	Ctx     Context         `desc:"simulation clock and step size"`
	IsSetup bool            `inactive:"+" desc:"true once Setup has completed -- RunStep before that returns the empty sentinel"`
}

// NewNetwork returns a new network for the given built-in scenario,
// unconfigured until Setup is called.
func NewNetwork(scen ScenTypes) *Network {
	return NewNetworkSpec(Scenarios[scen])
}

// NewNetworkSpec returns a new network for the given scenario descriptor,
// unconfigured until Setup is called.
func NewNetworkSpec(spec *ScenSpec) *Network {
	nt := &Network{Spec: spec}
	nt.Ctx.Defaults()
	return nt
}

// Setup (re)builds the network from the scenario descriptor: populations with
// randomized initial state, freshly realized random connectivity, and cleared
// monitors.  Recognized option names in opts override the descriptor's
// default drives, weights, probabilities, and sizes; unrecognized names are
// ignored; nil means all defaults.  May be called again at any time to fully
// reconfigure -- all prior monitors and state are discarded.
func (nt *Network) Setup(opts map[string]float64) {
	nt.Ctx.Reset()
	nt.Pops = nil
	nt.PopMap = make(map[string]*Pop, len(nt.Spec.Pops))
	nt.Prjns = nil
	for _, ps := range nt.Spec.Pops {
		n := ps.N
		if v, ok := opts[ps.NOpt]; ok {
			n = int(v)
		}
		drive := ps.Drive
		if v, ok := opts[ps.DriveOpt]; ok {
			drive = float32(v)
		}
		pp := NewPop(ps.Name, n)
		pp.Params = ps.Params()
		pp.Params.Dt.Ms = nt.Ctx.DtMs
		pp.Params.Update()
		pp.Init.Drive.Var = ps.DriveSig
		pp.Drive = drive
		pp.InitState()
		nt.Pops = append(nt.Pops, pp)
		nt.PopMap[ps.Name] = pp
	}
	for _, js := range nt.Spec.Prjns {
		pcon := js.PCon
		if v, ok := opts[js.PConOpt]; ok {
			pcon = float32(v)
		}
		wt := js.Wt
		if v, ok := opts[js.WtOpt]; ok {
			wt = float32(v)
		}
		pj := NewPrjn(nt.PopMap[js.Send], nt.PopMap[js.Recv], NewBernoulli(pcon), js.Chan, wt)
		pj.Build()
		nt.Prjns = append(nt.Prjns, pj)
	}
	nt.IsSetup = true
}

// Reset discards all populations, projections, and monitors, returning the
// network to the unconfigured state.  A following Setup restores the same
// initial-state statistics as first construction.
func (nt *Network) Reset() {
	nt.IsSetup = false
	nt.Pops = nil
	nt.PopMap = nil
	nt.Prjns = nil
	nt.Ctx.Reset()
}

// PopByName returns the named population, or nil if not present
func (nt *Network) PopByName(name string) *Pop {
	return nt.PopMap[name]
}

// SetDrive sets the base external drive of the named population, taking
// effect from the next cycle without requiring a new Setup.
func (nt *Network) SetDrive(pop string, drive float32) {
	if pp := nt.PopMap[pop]; pp != nil {
		pp.SetDrive(drive)
	}
}

// Cycle runs one integration step for the whole network: deliver the spikes
// from the previous cycle into postsynaptic currents, then integrate every
// population (which also checks thresholds and records monitors).
func (nt *Network) Cycle() {
	for _, pj := range nt.Prjns {
		pj.Deliver()
	}
	for _, pp := range nt.Pops {
		pp.Cycle(&nt.Ctx)
	}
	nt.Ctx.CycleInc()
}

// RunStep advances the whole network by durMs of simulated time and returns
// all monitor data accumulated since the last Setup (monitors are cumulative
// across RunStep calls).  If Setup has not completed, returns the empty
// sentinel with no spikes and no rates -- never an error.  Blocks until the
// full duration has been integrated.
func (nt *Network) RunStep(durMs float32) *Results {
	if !nt.IsSetup {
		return NewResults()
	}
	nt.Ctx.StepStart()
	nsteps := int(durMs/nt.Ctx.DtMs + 0.5)
	for ci := 0; ci < nsteps; ci++ {
		nt.Cycle()
	}
	return nt.CollectResults()
}

// CollectResults returns the accumulated monitor data for all populations.
// The slices are views into the live monitors, valid until the next Setup.
func (nt *Network) CollectResults() *Results {
	res := NewResults()
	for _, pp := range nt.Pops {
		res.Spikes[pp.Name] = SpikeData{Times: pp.Spikes.Times(), Indexes: pp.Spikes.Indexes()}
		res.Rates[pp.Name] = RateData{Times: pp.Rates.Times, Rates: pp.Rates.Rates}
	}
	return res
}

// SizeReport returns a string report of the memory allocated in the network
func (nt *Network) SizeReport() string {
	var b bytes.Buffer
	neur := 0
	neurMem := 0
	con := 0
	conMem := 0
	for _, pp := range nt.Pops {
		nn := len(pp.Neurons)
		nmem := nn * int(unsafe.Sizeof(Neuron{}))
		neur += nn
		neurMem += nmem
		fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v\n", pp.Name, nn, (datasize.ByteSize)(nmem).HumanReadable())
	}
	for _, pj := range nt.Prjns {
		nc := pj.NCons()
		cmem := nc*4 + len(pj.SConN)*8
		con += nc
		conMem += cmem
		fmt.Fprintf(&b, "%14s:\t Cons: %d\t ConMem: %v\n", pj.String(), nc, (datasize.ByteSize)(cmem).HumanReadable())
	}
	fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v \t Cons: %d \t ConMem: %v\n",
		nt.Spec.Name, neur, (datasize.ByteSize)(neurMem).HumanReadable(), con, (datasize.ByteSize)(conMem).HumanReadable())
	return b.String()
}

//////////////////////////////////////////////////////////////////////////////////////
//  Results

// SpikeData is the accumulated spike record for one population: parallel
// ordered slices of spike times (ms) and spiking unit indexes.
type SpikeData struct {
	Times   []float32 `desc:"spike times in ms"`
	Indexes []int32   `desc:"spiking unit indexes"`
}

// RateData is the accumulated rate trace for one population: parallel slices
// of sample times (ms) and instantaneous population rates (Hz), one sample
// per integration step.
type RateData struct {
	Times []float32 `desc:"sample times in ms"`
	Rates []float32 `desc:"instantaneous population rates in Hz"`
}

// Results is the plain data returned from Network.RunStep, per monitored
// population.  All values use interface units: ms and Hz.
type Results struct {
	Spikes map[string]SpikeData `desc:"spike records by population name"`
	Rates  map[string]RateData  `desc:"rate traces by population name"`
}

// NewResults returns an empty Results -- the sentinel returned before Setup.
func NewResults() *Results {
	return &Results{Spikes: make(map[string]SpikeData), Rates: make(map[string]RateData)}
}
