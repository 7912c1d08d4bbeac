// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rhythms is the overall repository for the spiking neural oscillation
simulation engine implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* adex: the adaptive exponential integrate-and-fire (AdEx) neuron model,
single-neuron simulations with named parameter presets, and the population /
projection network engine with the built-in gamma, theta, and coupled
oscillation scenarios.

* spectral: smoothing and Welch power-spectral-density analysis of population
rate traces, for identifying the dominant rhythm frequencies.

* examples: these actually compile into runnable programs.  examples/rhythms
runs any of the built-in scenarios headlessly and reports firing rates and
the dominant theta / gamma frequencies.
*/
package rhythms
