// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spectral provides the signal analysis applied to population
firing-rate traces: centered moving-average smoothing for display, and
Welch power-spectral-density estimation for identifying the dominant
oscillation frequency in the theta and gamma bands.
*/
package spectral

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// MinSamples is the minimum rate-trace length for spectral estimation --
// callers must skip spectral analysis for shorter traces.
const MinSamples = 100

// Frequency band limits in Hz.
const (
	ThetaLo = 4
	ThetaHi = 8
	GammaLo = 30
	GammaHi = 80

	// MaxFreq is the upper frequency bound for reported spectra
	MaxFreq = 100
)

// Smooth returns a centered moving average of x with the given window size
// in samples, damping sample-to-sample integration noise without obscuring
// the oscillatory envelope.  Window sizes below 2 return x unchanged.
func Smooth(x []float64, win int) []float64 {
	if win < 2 || len(x) == 0 {
		return x
	}
	sm := make([]float64, len(x))
	half := win / 2
	for i := range x {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + (win - half)
		if hi > len(x) {
			hi = len(x)
		}
		sum := 0.0
		for j := lo; j < hi; j++ {
			sum += x[j]
		}
		sm[i] = sum / float64(hi-lo)
	}
	return sm
}

// SmoothDefault smooths with the standard display window of
// min(50, len/10) samples.
func SmoothDefault(x []float64) []float64 {
	win := len(x) / 10
	if win > 50 {
		win = 50
	}
	return Smooth(x, win)
}

// Welch estimates the one-sided power spectral density of x sampled at fs Hz
// using Welch's method: nperseg-sample segments with 50% overlap, each
// demeaned and Hann windowed, periodograms averaged, density scaling.
// nperseg is clipped to len(x).  Returns parallel frequency (Hz) and power
// slices of length nperseg/2 + 1, or nil if x is too short to form a segment.
func Welch(x []float64, fs float64, nperseg int) (freqs, psd []float64) {
	if nperseg > len(x) {
		nperseg = len(x)
	}
	if nperseg < 2 {
		return nil, nil
	}
	wf := window.Hann(ones(nperseg))
	wsum2 := 0.0
	for _, w := range wf {
		wsum2 += w * w
	}
	step := nperseg / 2
	if step < 1 {
		step = 1
	}
	fft := fourier.NewFFT(nperseg)
	nfreq := nperseg/2 + 1
	psd = make([]float64, nfreq)
	seg := make([]float64, nperseg)
	nseg := 0
	for st := 0; st+nperseg <= len(x); st += step {
		copy(seg, x[st:st+nperseg])
		demean(seg)
		for i := range seg {
			seg[i] *= wf[i]
		}
		coefs := fft.Coefficients(nil, seg)
		for k, c := range coefs {
			re := real(c)
			im := imag(c)
			psd[k] += re*re + im*im
		}
		nseg++
	}
	if nseg == 0 {
		return nil, nil
	}
	scale := 1.0 / (float64(nseg) * fs * wsum2)
	freqs = make([]float64, nfreq)
	for k := range psd {
		psd[k] *= scale
		if k > 0 && k < nfreq-1 {
			psd[k] *= 2 // one-sided: fold negative frequencies
		}
		freqs[k] = float64(k) * fs / float64(nperseg)
	}
	return freqs, psd
}

// Spectrum computes the Welch PSD of a rate trace sampled every dtMs ms,
// restricted to frequencies at or below MaxFreq, with the standard segment
// length of 100 * min(1024, len/2) samples (clipped to the trace length, so
// short traces use a single full-length segment for maximal frequency
// resolution).  Traces shorter than MinSamples return ok = false and the
// caller must skip spectral analysis.
func Spectrum(rate []float64, dtMs float64) (freqs, psd []float64, ok bool) {
	if len(rate) < MinSamples {
		return nil, nil, false
	}
	fs := 1000.0 / dtMs
	nper := len(rate) / 2
	if nper > 1024 {
		nper = 1024
	}
	nper *= 100
	f, p := Welch(rate, fs, nper)
	if f == nil {
		return nil, nil, false
	}
	cut := len(f)
	for i, fr := range f {
		if fr > MaxFreq {
			cut = i
			break
		}
	}
	return f[:cut], p[:cut], true
}

// DominantFreq returns the frequency of maximum power within [lo, hi] Hz,
// or 0 if no frequency falls in the band.
func DominantFreq(freqs, psd []float64, lo, hi float64) float64 {
	best := -1
	for i, f := range freqs {
		if f < lo || f > hi {
			continue
		}
		if best < 0 || psd[i] > psd[best] {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return freqs[best]
}

// F64 converts a float32 trace to float64 for analysis.
func F64(x []float32) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = float64(v)
	}
	return y
}

func ones(n int) []float64 {
	o := make([]float64, n)
	for i := range o {
		o[i] = 1
	}
	return o
}

func demean(x []float64) {
	m := 0.0
	for _, v := range x {
		m += v
	}
	m /= float64(len(x))
	for i := range x {
		x[i] -= m
	}
}
