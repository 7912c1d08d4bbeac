// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

///////////////////////////////////////////////////////////////////////
//  monitor.go contains the spike, rate, and state monitors that
//  accumulate simulation output between Setup calls

// Spike is one spike event: which unit fired, and when.
type Spike struct {
	Index int32   `desc:"index of the spiking unit within its population"`
	Time  float32 `desc:"spike time in ms"`
}

// SpikeMonitor accumulates spike events for one population, in time order.
// It is append-only and cumulative across RunStep calls: it is only cleared
// by Reset, which Setup calls.
type SpikeMonitor struct {
	Spikes []Spike `desc:"ordered (unit, time) spike events"`
}

// Reset clears all recorded spikes
func (sm *SpikeMonitor) Reset() {
	sm.Spikes = sm.Spikes[:0]
}

// Add appends one spike event
func (sm *SpikeMonitor) Add(idx int32, t float32) {
	sm.Spikes = append(sm.Spikes, Spike{Index: idx, Time: t})
}

// Len returns the number of recorded spikes
func (sm *SpikeMonitor) Len() int {
	return len(sm.Spikes)
}

// Times returns the spike times in ms, in recording order
func (sm *SpikeMonitor) Times() []float32 {
	ts := make([]float32, len(sm.Spikes))
	for i := range sm.Spikes {
		ts[i] = sm.Spikes[i].Time
	}
	return ts
}

// Indexes returns the spiking unit indexes, in recording order
func (sm *SpikeMonitor) Indexes() []int32 {
	ix := make([]int32, len(sm.Spikes))
	for i := range sm.Spikes {
		ix[i] = sm.Spikes[i].Index
	}
	return ix
}

// CountSince returns the number of spikes at or after the given time in ms.
// Spikes are in time order so this scans backward from the end.
func (sm *SpikeMonitor) CountSince(t float32) int {
	n := 0
	for i := len(sm.Spikes) - 1; i >= 0; i-- {
		if sm.Spikes[i].Time < t {
			break
		}
		n++
	}
	return n
}

// ConfigLog adds this monitor's columns to the given log schema
func (sm *SpikeMonitor) ConfigLog(sch *etable.Schema) {
	*sch = append(*sch, etable.Column{Name: "Time", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil})
	*sch = append(*sch, etable.Column{Name: "Unit", Type: etensor.INT32, CellShape: nil, DimNames: nil})
}

// Log writes all recorded spikes to the given table, one row per spike
func (sm *SpikeMonitor) Log(dt *etable.Table) {
	dt.SetNumRows(len(sm.Spikes))
	for i, sp := range sm.Spikes {
		dt.SetCellFloat("Time", i, float64(sp.Time))
		dt.SetCellFloat("Unit", i, float64(sp.Index))
	}
}

// Table returns a new table with all recorded spikes
func (sm *SpikeMonitor) Table(name string) *etable.Table {
	dt := &etable.Table{}
	sch := etable.Schema{}
	sm.ConfigLog(&sch)
	dt.SetFromSchema(sch, len(sm.Spikes))
	dt.SetMetaData("name", name)
	sm.Log(dt)
	return dt
}

//////////////////////////////////////////////////////////////////////////////////////
//  RateMonitor

// RateMonitor records the per-step instantaneous population rate:
// spike count on the step / (population size * step duration in seconds),
// in Hz.  This is the signal used for spectral analysis -- the trailing
// window rate readout is Pop.FiringRate.
type RateMonitor struct {
	Times []float32 `desc:"sample times in ms"`
	Rates []float32 `desc:"instantaneous population rates in Hz"`
}

// Reset clears the recorded trace
func (rm *RateMonitor) Reset() {
	rm.Times = rm.Times[:0]
	rm.Rates = rm.Rates[:0]
}

// Add appends one rate sample
func (rm *RateMonitor) Add(t, rate float32) {
	rm.Times = append(rm.Times, t)
	rm.Rates = append(rm.Rates, rate)
}

// Len returns the number of samples
func (rm *RateMonitor) Len() int {
	return len(rm.Times)
}

// ConfigLog adds this monitor's columns to the given log schema
func (rm *RateMonitor) ConfigLog(sch *etable.Schema) {
	*sch = append(*sch, etable.Column{Name: "Time", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil})
	*sch = append(*sch, etable.Column{Name: "Rate", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil})
}

// Log writes the recorded trace to the given table, one row per sample
func (rm *RateMonitor) Log(dt *etable.Table) {
	dt.SetNumRows(len(rm.Times))
	for i := range rm.Times {
		dt.SetCellFloat("Time", i, float64(rm.Times[i]))
		dt.SetCellFloat("Rate", i, float64(rm.Rates[i]))
	}
}

// Table returns a new table with the recorded trace
func (rm *RateMonitor) Table(name string) *etable.Table {
	dt := &etable.Table{}
	sch := etable.Schema{}
	rm.ConfigLog(&sch)
	dt.SetFromSchema(sch, len(rm.Times))
	dt.SetMetaData("name", name)
	rm.Log(dt)
	return dt
}

//////////////////////////////////////////////////////////////////////////////////////
//  StateMonitor

// StateMonitor records the full membrane potential and adaptation current
// trace for a single neuron, sampled every integration step -- used by the
// solo-neuron simulations.
type StateMonitor struct {
	Times []float32 `desc:"sample times in ms"`
	V     []float32 `desc:"membrane potential in mV"`
	W     []float32 `desc:"adaptation current in pA"`
}

// Reset clears the recorded trace
func (tm *StateMonitor) Reset() {
	tm.Times = tm.Times[:0]
	tm.V = tm.V[:0]
	tm.W = tm.W[:0]
}

// Add appends one sample
func (tm *StateMonitor) Add(t float32, nrn *Neuron) {
	tm.Times = append(tm.Times, t)
	tm.V = append(tm.V, nrn.V)
	tm.W = append(tm.W, nrn.W)
}

// ConfigLog adds this monitor's columns to the given log schema
func (tm *StateMonitor) ConfigLog(sch *etable.Schema) {
	*sch = append(*sch, etable.Column{Name: "Time", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil})
	*sch = append(*sch, etable.Column{Name: "V", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil})
	*sch = append(*sch, etable.Column{Name: "W", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil})
}

// Log writes the recorded trace to the given table, one row per sample
func (tm *StateMonitor) Log(dt *etable.Table) {
	dt.SetNumRows(len(tm.Times))
	for i := range tm.Times {
		dt.SetCellFloat("Time", i, float64(tm.Times[i]))
		dt.SetCellFloat("V", i, float64(tm.V[i]))
		dt.SetCellFloat("W", i, float64(tm.W[i]))
	}
}

// Table returns a new table with the recorded trace
func (tm *StateMonitor) Table(name string) *etable.Table {
	dt := &etable.Table{}
	sch := etable.Schema{}
	tm.ConfigLog(&sch)
	dt.SetFromSchema(sch, len(tm.Times))
	dt.SetMetaData("name", name)
	tm.Log(dt)
	return dt
}
